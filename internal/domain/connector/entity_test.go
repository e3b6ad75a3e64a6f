//go:build unit

package connector_test

import (
	"testing"
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/connector"
	"github.com/Pruthvi98/klaw/internal/domain/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newRequest(name, config, description string) (*connector.Request, error) {
	return connector.NewRequest("alice", 101, 1, "DEV", name, config, description, now)
}

func TestNewRequest(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req, err := newRequest("pg-sink.v1", `{"connector.class":"JdbcSinkConnector"}`, "orders sink")
		require.NoError(t, err)
		assert.Equal(t, request.StatusCreated, req.Status())
		assert.Equal(t, "pg-sink.v1", req.ConnectorName())
		assert.Equal(t, int32(1), req.TenantID())
	})

	cases := []struct {
		name        string
		connName    string
		config      string
		description string
		errIs       error
	}{
		{"name too short", "ab", `{}`, "orders sink", connector.ErrInvalidConnectorName},
		{"name with spaces", "bad name", `{}`, "orders sink", connector.ErrInvalidConnectorName},
		{"description with illegal chars", "pg-sink", `{}`, "bad;desc", connector.ErrInvalidDescription},
		{"config not json", "pg-sink", `not-json`, "orders sink", connector.ErrInvalidConfig},
		{"config json array", "pg-sink", `[1,2]`, "orders sink", connector.ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req, err := newRequest(c.connName, c.config, c.description)
			assert.Nil(t, req)
			assert.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestConnectorLifecycle(t *testing.T) {
	pending := func(t *testing.T) *connector.Request {
		t.Helper()
		req, err := newRequest("pg-sink", `{"tasks.max":"1"}`, "orders sink")
		require.NoError(t, err)
		return req
	}

	t.Run("approve then redecide fails", func(t *testing.T) {
		req := pending(t)
		require.NoError(t, req.Approve("bob"))
		assert.ErrorIs(t, req.Decline("carol"), request.ErrAlreadyDecided)
	})

	t.Run("self approval rejected", func(t *testing.T) {
		req := pending(t)
		assert.ErrorIs(t, req.Approve("alice"), request.ErrSelfApprovalForbidden)
	})
}
