//go:build unit

package request_test

import (
	"testing"
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newFactory() *request.Factory {
	return request.NewFactory(clock.NewMockClock(testTime))
}

type buildParams struct {
	consumerGroup string
	resetType     request.OffsetResetType
	timestampStr  string
}

func build(p buildParams) (*request.OffsetResetRequest, error) {
	return newFactory().NewOffsetResetRequest(
		"alice", 101, 1, "DEV", "orders", p.consumerGroup, p.resetType, p.timestampStr, "",
	)
}

func TestNewOffsetResetRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		req, err := build(buildParams{consumerGroup: "g1", resetType: request.ResetToEarliest})
		require.NoError(t, err)
		require.NotNil(t, req)

		assert.Equal(t, request.StatusCreated, req.Status())
		assert.Equal(t, request.TypeResetConsumerOffsets, req.RequestType())
		assert.Equal(t, "alice", req.Requestor())
		assert.Equal(t, int32(101), req.RequestingTeamID())
		assert.Equal(t, int32(1), req.TenantID())
		assert.Equal(t, testTime, req.RequestTime())
		assert.Nil(t, req.ResetTimestamp())
		assert.True(t, req.IsPending())
	})

	t.Run("consumer group is required", func(t *testing.T) {
		req, err := build(buildParams{resetType: request.ResetToEarliest})
		assert.Nil(t, req)
		assert.ErrorIs(t, err, request.ErrMissingConsumerGroup)
	})

	t.Run("timestamp rules", func(t *testing.T) {
		cases := []struct {
			name  string
			p     buildParams
			errIs error
		}{
			{
				name: "date-time reset with valid timestamp",
				p:    buildParams{"g1", request.ResetToDateTime, "2024-01-01T00:00:00.000+0000"},
			},
			{
				name:  "date-time reset without timestamp",
				p:     buildParams{"g1", request.ResetToDateTime, ""},
				errIs: request.ErrMissingResetTimestamp,
			},
			{
				name:  "date-time reset with unparseable timestamp",
				p:     buildParams{"g1", request.ResetToDateTime, "2024-01-01 00:00:00"},
				errIs: request.ErrInvalidResetTimestamp,
			},
			{
				name:  "date-time reset with missing offset",
				p:     buildParams{"g1", request.ResetToDateTime, "2024-01-01T00:00:00.000"},
				errIs: request.ErrInvalidResetTimestamp,
			},
			{
				name:  "earliest reset rejects timestamp",
				p:     buildParams{"g1", request.ResetToEarliest, "2024-01-01T00:00:00.000+0000"},
				errIs: request.ErrUnexpectedTimestamp,
			},
			{
				name: "latest reset without timestamp",
				p:    buildParams{"g1", request.ResetToLatest, ""},
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				req, err := build(c.p)
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, req)
					if c.p.resetType.RequiresTimestamp() {
						require.NotNil(t, req.ResetTimestamp())
						assert.Equal(t, int64(1704067200), req.ResetTimestamp().Unix())
					}
				} else {
					require.Nil(t, req)
					assert.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}

func TestStatusTransitions(t *testing.T) {
	pending := func(t *testing.T) *request.OffsetResetRequest {
		t.Helper()
		req, err := build(buildParams{consumerGroup: "g1", resetType: request.ResetToLatest})
		require.NoError(t, err)
		return req
	}

	t.Run("approve from created", func(t *testing.T) {
		req := pending(t)
		require.NoError(t, req.Approve("bob"))
		assert.Equal(t, request.StatusApproved, req.Status())
		assert.Equal(t, "bob", req.Approver())
		assert.False(t, req.IsPending())
	})

	t.Run("decline from created", func(t *testing.T) {
		req := pending(t)
		require.NoError(t, req.Decline("bob"))
		assert.Equal(t, request.StatusDeclined, req.Status())
	})

	t.Run("no transition out of approved", func(t *testing.T) {
		req := pending(t)
		require.NoError(t, req.Approve("bob"))
		assert.ErrorIs(t, req.Approve("carol"), request.ErrAlreadyDecided)
		assert.ErrorIs(t, req.Decline("carol"), request.ErrAlreadyDecided)
	})

	t.Run("no transition out of declined", func(t *testing.T) {
		req := pending(t)
		require.NoError(t, req.Decline("bob"))
		assert.ErrorIs(t, req.Approve("carol"), request.ErrAlreadyDecided)
	})

	t.Run("requestor cannot approve own request", func(t *testing.T) {
		req := pending(t)
		assert.ErrorIs(t, req.Approve("alice"), request.ErrSelfApprovalForbidden)
		assert.Equal(t, request.StatusCreated, req.Status())
	})
}
