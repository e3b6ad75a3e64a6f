//go:build unit

package repository

import (
	"testing"

	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestSearchRequestsQuery(t *testing.T) {
	t.Run("tenant filter only", func(t *testing.T) {
		sql, args := searchRequestsQuery("alice", queries.RequestFilter{}, 101)
		assert.Contains(t, sql, "WHERE tenant_id = $1")
		assert.NotContains(t, sql, "AND")
		assert.Equal(t, []any{int32(101)}, args)
	})

	t.Run("wildcard matches topic, group and remarks with one argument", func(t *testing.T) {
		sql, args := searchRequestsQuery("alice", queries.RequestFilter{Wildcard: strPtr("payments")}, 101)
		assert.Contains(t, sql, "(topic_name ILIKE $2 OR consumer_group ILIKE $2 OR remarks ILIKE $2)")
		assert.Equal(t, []any{int32(101), "%payments%"}, args)
	})

	t.Run("mine-only binds the requestor", func(t *testing.T) {
		sql, args := searchRequestsQuery("alice", queries.RequestFilter{MineOnly: true}, 101)
		assert.Contains(t, sql, "requestor = $2")
		assert.Equal(t, []any{int32(101), "alice"}, args)
	})

	t.Run("placeholders number in filter order", func(t *testing.T) {
		status := request.StatusCreated
		filter := queries.RequestFilter{
			Status:      &status,
			Environment: strPtr("DEV"),
			Wildcard:    strPtr("orders"),
		}
		sql, args := searchRequestsQuery("alice", filter, 101)
		assert.Contains(t, sql, "request_status = $2")
		assert.Contains(t, sql, "environment = $3")
		assert.Contains(t, sql, "remarks ILIKE $4")
		assert.Equal(t, []any{int32(101), request.StatusCreated, "DEV", "%orders%"}, args)
	})
}
