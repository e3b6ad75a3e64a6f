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

	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/infra"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"
)

const uniqueViolationCode = "23505"

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) Insert(ctx context.Context, req *request.OffsetResetRequest) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO operational_requests (
			id, request_type, request_status, requestor, requesting_team_id,
			tenant_id, environment, topic_name, consumer_group,
			offset_reset_type, reset_timestamp, remarks, request_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		req.ID(), req.RequestType(), req.Status(), req.Requestor(), req.RequestingTeamID(),
		req.TenantID(), req.Environment(), req.TopicName(), req.ConsumerGroup(),
		req.OffsetResetType(), req.ResetTimestamp(), req.Remarks(), req.RequestTime(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return infra.WrapRepoErr("pending request already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("insert operational request", err)
	}
	return nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID, tenantID int32) (*request.OffsetResetRequest, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, request_status, requestor, requesting_team_id, approver,
		       tenant_id, environment, topic_name, consumer_group,
		       offset_reset_type, reset_timestamp, remarks, request_time
		FROM operational_requests
		WHERE id = $1 AND tenant_id = $2`,
		id, tenantID,
	)

	var (
		reqID          uuid.UUID
		status         request.Status
		requestor      string
		teamID         int32
		approver       *string
		tenant         int32
		environment    string
		topicName      string
		consumerGroup  string
		resetType      request.OffsetResetType
		resetTimestamp *time.Time
		remarks        *string
		requestTime    time.Time
	)
	err := row.Scan(
		&reqID, &status, &requestor, &teamID, &approver,
		&tenant, &environment, &topicName, &consumerGroup,
		&resetType, &resetTimestamp, &remarks, &requestTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("operational request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("find operational request", err)
	}

	return request.ReconstructOffsetResetRequest(
		reqID, status, requestor, teamID, deref(approver),
		tenant, environment, topicName, consumerGroup,
		resetType, resetTimestamp, deref(remarks), requestTime,
	), nil
}

func (r *RequestRepository) HasPendingDuplicate(ctx context.Context, key commands.DuplicateKey) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM operational_requests
			WHERE requestor = $1
			  AND request_type = $2
			  AND request_status = $3
			  AND environment = $4
			  AND topic_name = $5
			  AND consumer_group = $6
			  AND tenant_id = $7
		)`,
		key.Requestor, key.RequestType, request.StatusCreated,
		key.Environment, key.TopicName, key.ConsumerGroup, key.TenantID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("check pending duplicate", err)
	}
	return exists, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, tenantID int32, from, to request.Status, approver string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE operational_requests
		SET request_status = $1, approver = $2, approving_time = now()
		WHERE id = $3 AND tenant_id = $4 AND request_status = $5`,
		to, approver, id, tenantID, from,
	)
	if err != nil {
		return infra.WrapRepoErr("update request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request already decided", nil, infra.KindConflict)
	}
	return nil
}

// Search implements the read-side listing. Filters are applied in SQL;
// visibility, ordering, enrichment and pagination happen in the usecase.
func (r *RequestRepository) Search(ctx context.Context, requestor string, filter queries.RequestFilter, tenantID int32) ([]*queries.RequestRecord, error) {
	query, args := searchRequestsQuery(requestor, filter, tenantID)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("search operational requests", err)
	}
	defer rows.Close()

	var records []*queries.RequestRecord
	for rows.Next() {
		var (
			rec      queries.RequestRecord
			approver *string
			remarks  *string
		)
		err := rows.Scan(
			&rec.ID, &rec.RequestType, &rec.Status, &rec.Requestor, &rec.RequestingTeamID,
			&approver, &rec.Environment, &rec.TopicName, &rec.ConsumerGroup,
			&rec.OffsetResetType, &rec.ResetTimestamp, &remarks, &rec.RequestTime,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("scan operational request row", err)
		}
		rec.Approver = deref(approver)
		rec.Remarks = deref(remarks)
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate operational request rows", err)
	}
	return records, nil
}

func searchRequestsQuery(requestor string, filter queries.RequestFilter, tenantID int32) (string, []any) {
	sql := strings.Builder{}
	sql.WriteString(`
		SELECT id, request_type, request_status, requestor, requesting_team_id,
		       approver, environment, topic_name, consumer_group,
		       offset_reset_type, reset_timestamp, remarks, request_time
		FROM operational_requests
		WHERE tenant_id = $1`)
	args := []any{tenantID}

	addCond := func(cond string, v any) {
		args = append(args, v)
		sql.WriteString(" AND " + cond + placeholder(len(args)))
	}

	if filter.RequestType != nil {
		addCond("request_type = ", *filter.RequestType)
	}
	if filter.Status != nil {
		addCond("request_status = ", *filter.Status)
	}
	if filter.Environment != nil {
		addCond("environment = ", *filter.Environment)
	}
	if filter.TopicName != nil {
		addCond("topic_name = ", *filter.TopicName)
	}
	if filter.ConsumerGroup != nil {
		addCond("consumer_group = ", *filter.ConsumerGroup)
	}
	if filter.Wildcard != nil {
		args = append(args, "%"+*filter.Wildcard+"%")
		p := placeholder(len(args))
		sql.WriteString(" AND (topic_name ILIKE " + p + " OR consumer_group ILIKE " + p + " OR remarks ILIKE " + p + ")")
	}
	if filter.MineOnly {
		addCond("requestor = ", requestor)
	}

	return sql.String(), args
}
