//go:build unit

package password_test

import (
	"testing"

	"github.com/Pruthvi98/klaw/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := password.HashPassword("welcome-to-kafka")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.NoError(t, password.ComparePassword(hash, "welcome-to-kafka"))
	})

	t.Run("wrong password is a comparison failure", func(t *testing.T) {
		hash, err := password.HashPassword("welcome-to-kafka")
		require.NoError(t, err)

		assert.ErrorIs(t, password.ComparePassword(hash, "goodbye-to-kafka"), password.ErrComparisonFailed)
	})

	t.Run("empty inputs are rejected before bcrypt runs", func(t *testing.T) {
		_, err := password.HashPassword("")
		assert.ErrorIs(t, err, password.ErrInvalidPassword)

		assert.ErrorIs(t, password.ComparePassword("", "secret"), password.ErrInvalidPassword)
		assert.ErrorIs(t, password.ComparePassword("some-hash", ""), password.ErrInvalidPassword)
	})
}
