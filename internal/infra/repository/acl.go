package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pruthvi98/klaw/internal/infra"
)

// AclStore answers ownership questions against the approved access grants
// table. Consumer-group grants are keyed by topic, group and owning team
// within an environment.
type AclStore struct {
	pool *pgxpool.Pool
}

func NewAclStore(pool *pgxpool.Pool) *AclStore {
	return &AclStore{pool: pool}
}

func (s *AclStore) HasApprovedConsumerAcl(ctx context.Context, environment, topicName string, teamID int32, consumerGroup string, tenantID int32) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM acls
			WHERE environment = $1
			  AND topic_name = $2
			  AND team_id = $3
			  AND consumer_group = $4
			  AND tenant_id = $5
			  AND acl_type = 'Consumer'
			  AND acl_status = 'approved'
		)`,
		environment, topicName, teamID, consumerGroup, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("check consumer acl", err)
	}
	return exists, nil
}
