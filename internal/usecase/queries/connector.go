package queries

import (
	"context"

	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/pkg/pager"
	"github.com/Pruthvi98/klaw/internal/usecase"
)

type ConnectorQueries interface {
	List(ctx context.Context, actor usecase.ActorContext, filter RequestFilter, order SortOrder, pageNo int) ([]*ConnectorRequestView, error)
}

type connectorQueriesImpl struct {
	connectorReads ConnectorReadStore
	directory      DirectoryReadStore
}

func NewConnectorQueries(connectorReads ConnectorReadStore, directory DirectoryReadStore) ConnectorQueries {
	return &connectorQueriesImpl{
		connectorReads: connectorReads,
		directory:      directory,
	}
}

func (q *connectorQueriesImpl) List(
	ctx context.Context,
	actor usecase.ActorContext,
	filter RequestFilter,
	order SortOrder,
	pageNo int,
) ([]*ConnectorRequestView, error) {
	records, err := q.connectorReads.Search(ctx, actor.Username, filter, actor.TenantID)
	if err != nil {
		return nil, err
	}

	records = filterByAllowedEnvs(ctx, q.directory, actor, records, func(r *ConnectorRecord) string {
		return r.Environment
	})
	sortByRequestTime(records, order, func(r *ConnectorRecord) int64 {
		return r.RequestTime.UnixNano()
	})

	enrich := newEnricher(ctx, q.directory, actor)

	views := pager.Paginate(pageNo, PageSize, records, func(pc pager.PageContext, rec *ConnectorRecord) *ConnectorRequestView {
		view := &ConnectorRequestView{
			ID:               rec.ID,
			Status:           rec.Status,
			Requestor:        rec.Requestor,
			RequestingTeamID: rec.RequestingTeamID,
			TeamName:         enrich.teamName(rec.RequestingTeamID),
			Approver:         rec.Approver,
			Environment:      rec.Environment,
			EnvironmentName:  enrich.environmentName(rec.Environment),
			ConnectorName:    rec.ConnectorName,
			ConnectorConfig:  rec.ConnectorConfig,
			Description:      rec.Description,
			RequestTime:      rec.RequestTime,
			CurrentPage:      pc.PageNo,
			TotalPages:       pc.TotalPages,
			AllPageNos:       pc.AllPageNos,
		}
		if !rec.Status.IsTerminal() {
			view.ApproverInfo = enrich.approverInfo(rec.Requestor)
		}
		if rec.Status == request.StatusCreated && rec.Requestor == actor.Username {
			view.Editable = true
			view.Deletable = true
		}
		return view
	})

	return views, nil
}
