package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Pruthvi98/klaw/internal/domain/connector"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/infra"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"
)

type ConnectorRepository struct {
	pool *pgxpool.Pool
}

func NewConnectorRepository(pool *pgxpool.Pool) *ConnectorRepository {
	return &ConnectorRepository{pool: pool}
}

func (r *ConnectorRepository) Insert(ctx context.Context, req *connector.Request) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO connector_requests (
			id, request_status, requestor, requesting_team_id, tenant_id,
			environment, connector_name, connector_config, description, request_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		req.ID(), req.Status(), req.Requestor(), req.RequestingTeamID(), req.TenantID(),
		req.Environment(), req.ConnectorName(), req.ConnectorConfig(), req.Description(), req.RequestTime(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return infra.WrapRepoErr("pending connector request already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("insert connector request", err)
	}
	return nil
}

func (r *ConnectorRepository) FindByID(ctx context.Context, id uuid.UUID, tenantID int32) (*connector.Request, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, request_status, requestor, requesting_team_id, approver,
		       tenant_id, environment, connector_name, connector_config,
		       description, request_time
		FROM connector_requests
		WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)

	var (
		reqID       uuid.UUID
		status      request.Status
		requestor   string
		teamID      int32
		approver    *string
		tenant      int32
		environment string
		name        string
		config      string
		description string
		requestTime time.Time
	)
	err := row.Scan(
		&reqID, &status, &requestor, &teamID, &approver,
		&tenant, &environment, &name, &config,
		&description, &requestTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("connector request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("find connector request", err)
	}

	return connector.ReconstructRequest(
		reqID, status, requestor, teamID, deref(approver),
		tenant, environment, name, config, description, requestTime,
	), nil
}

func (r *ConnectorRepository) HasPendingDuplicate(ctx context.Context, requestor, environment, connectorName string, tenantID int32) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM connector_requests
			WHERE requestor = $1
			  AND request_status = $2
			  AND environment = $3
			  AND connector_name = $4
			  AND tenant_id = $5
		)`,
		requestor, request.StatusCreated, environment, connectorName, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("check pending connector duplicate", err)
	}
	return exists, nil
}

func (r *ConnectorRepository) UpdateStatus(ctx context.Context, id uuid.UUID, tenantID int32, from, to request.Status, approver string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE connector_requests
		SET request_status = $1, approver = $2, approving_time = now()
		WHERE id = $3 AND tenant_id = $4 AND request_status = $5`,
		to, approver, id, tenantID, from,
	)
	if err != nil {
		return infra.WrapRepoErr("update connector request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("connector request already decided", nil, infra.KindConflict)
	}
	return nil
}

func (r *ConnectorRepository) Search(ctx context.Context, requestor string, filter queries.RequestFilter, tenantID int32) ([]*queries.ConnectorRecord, error) {
	sql := strings.Builder{}
	sql.WriteString(`
		SELECT id, request_status, requestor, requesting_team_id, approver,
		       environment, connector_name, connector_config, description, request_time
		FROM connector_requests
		WHERE tenant_id = $1`)
	args := []any{tenantID}

	addCond := func(cond string, v any) {
		args = append(args, v)
		sql.WriteString(" AND " + cond + placeholder(len(args)))
	}

	if filter.Status != nil {
		addCond("request_status = ", *filter.Status)
	}
	if filter.Environment != nil {
		addCond("environment = ", *filter.Environment)
	}
	if filter.Wildcard != nil {
		addCond("connector_name ILIKE ", "%"+*filter.Wildcard+"%")
	}
	if filter.MineOnly {
		addCond("requestor = ", requestor)
	}

	rows, err := r.pool.Query(ctx, sql.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("search connector requests", err)
	}
	defer rows.Close()

	var records []*queries.ConnectorRecord
	for rows.Next() {
		var (
			rec      queries.ConnectorRecord
			approver *string
		)
		err := rows.Scan(
			&rec.ID, &rec.Status, &rec.Requestor, &rec.RequestingTeamID, &approver,
			&rec.Environment, &rec.ConnectorName, &rec.ConnectorConfig, &rec.Description, &rec.RequestTime,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("scan connector request row", err)
		}
		rec.Approver = deref(approver)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate connector request rows", err)
	}
	return records, nil
}
