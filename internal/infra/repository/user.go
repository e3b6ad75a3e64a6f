package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pruthvi98/klaw/internal/domain/user"
	"github.com/Pruthvi98/klaw/internal/infra"
	"github.com/Pruthvi98/klaw/internal/usecase/readmodel"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username user.Username) (*readmodel.AuthorizedUserRM, string, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, password_hash, role, team_id, tenant_id, is_active
		FROM users
		WHERE username = $1`,
		username.Value(),
	)

	var (
		rm           readmodel.AuthorizedUserRM
		passwordHash string
	)
	err := row.Scan(&rm.ID, &rm.Username, &rm.Email, &passwordHash, &rm.Role, &rm.TeamID, &rm.TenantID, &rm.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("find user by username", err)
	}
	return &rm, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, username, email, role, team_id, tenant_id, is_active
		FROM users
		WHERE id = $1`,
		id,
	)

	var rm readmodel.AuthorizedUserRM
	err := row.Scan(&rm.ID, &rm.Username, &rm.Email, &rm.Role, &rm.TeamID, &rm.TenantID, &rm.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("find user by id", err)
	}
	return &rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET last_login_at = now() WHERE id = $1`,
		userID,
	)
	if err != nil {
		return infra.WrapRepoErr("update last login", err)
	}
	return nil
}
