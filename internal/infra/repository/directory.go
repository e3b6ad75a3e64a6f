package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pruthvi98/klaw/internal/infra"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"
)

// DirectoryStore resolves tenant-scoped directory data: which environments a
// user may see, display names for environments and teams, and team rosters.
type DirectoryStore struct {
	pool *pgxpool.Pool
}

func NewDirectoryStore(pool *pgxpool.Pool) *DirectoryStore {
	return &DirectoryStore{pool: pool}
}

func (s *DirectoryStore) AllowedEnvironments(ctx context.Context, username string, tenantID int32) (map[string]bool, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT e.env_id
		FROM environments e
		JOIN users u ON u.tenant_id = e.tenant_id
		WHERE u.username = $1 AND e.tenant_id = $2 AND e.visible`,
		username, tenantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("list allowed environments", err)
	}
	defer rows.Close()

	allowed := map[string]bool{}
	for rows.Next() {
		var envID string
		if err := rows.Scan(&envID); err != nil {
			return nil, infra.WrapRepoErr("scan environment row", err)
		}
		allowed[envID] = true
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate environment rows", err)
	}
	return allowed, nil
}

func (s *DirectoryStore) EnvironmentName(ctx context.Context, envID string, tenantID int32) (string, error) {
	var name string
	err := s.pool.QueryRow(ctx, `
		SELECT name FROM environments
		WHERE env_id = $1 AND tenant_id = $2`,
		envID, tenantID,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("environment not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("find environment name", err)
	}
	return name, nil
}

func (s *DirectoryStore) TeamName(ctx context.Context, teamID, tenantID int32) (string, error) {
	var name string
	err := s.pool.QueryRow(ctx, `
		SELECT name FROM teams
		WHERE id = $1 AND tenant_id = $2`,
		teamID, tenantID,
	).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("team not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("find team name", err)
	}
	return name, nil
}

func (s *DirectoryStore) TeamMembers(ctx context.Context, teamID, tenantID int32) ([]queries.TeamMember, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT username, role FROM users
		WHERE team_id = $1 AND tenant_id = $2 AND is_active
		ORDER BY username`,
		teamID, tenantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("list team members", err)
	}
	defer rows.Close()

	var members []queries.TeamMember
	for rows.Next() {
		var m queries.TeamMember
		if err := rows.Scan(&m.Username, &m.Role); err != nil {
			return nil, infra.WrapRepoErr("scan team member row", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate team member rows", err)
	}
	return members, nil
}
