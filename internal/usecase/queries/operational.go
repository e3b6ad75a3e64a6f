package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/pkg/pager"
	"github.com/Pruthvi98/klaw/internal/usecase"
)

type OperationalQueries interface {
	List(ctx context.Context, actor usecase.ActorContext, filter RequestFilter, order SortOrder, pageNo int) ([]*OperationalRequestView, error)
}

type operationalQueriesImpl struct {
	requestReads RequestReadStore
	directory    DirectoryReadStore
}

func NewOperationalQueries(requestReads RequestReadStore, directory DirectoryReadStore) OperationalQueries {
	return &operationalQueriesImpl{
		requestReads: requestReads,
		directory:    directory,
	}
}

func (q *operationalQueriesImpl) List(
	ctx context.Context,
	actor usecase.ActorContext,
	filter RequestFilter,
	order SortOrder,
	pageNo int,
) ([]*OperationalRequestView, error) {
	records, err := q.requestReads.Search(ctx, actor.Username, filter, actor.TenantID)
	if err != nil {
		return nil, err
	}

	records = filterByAllowedEnvs(ctx, q.directory, actor, records, func(r *RequestRecord) string {
		return r.Environment
	})
	sortByRequestTime(records, order, func(r *RequestRecord) int64 {
		return r.RequestTime.UnixNano()
	})

	enrich := newEnricher(ctx, q.directory, actor)

	views := pager.Paginate(pageNo, PageSize, records, func(pc pager.PageContext, rec *RequestRecord) *OperationalRequestView {
		view := &OperationalRequestView{
			ID:               rec.ID,
			RequestType:      rec.RequestType,
			Status:           rec.Status,
			Requestor:        rec.Requestor,
			RequestingTeamID: rec.RequestingTeamID,
			TeamName:         enrich.teamName(rec.RequestingTeamID),
			Approver:         rec.Approver,
			Environment:      rec.Environment,
			EnvironmentName:  enrich.environmentName(rec.Environment),
			TopicName:        rec.TopicName,
			ConsumerGroup:    rec.ConsumerGroup,
			OffsetResetType:  rec.OffsetResetType,
			ResetTimestamp:   rec.ResetTimestamp,
			Remarks:          rec.Remarks,
			RequestTime:      rec.RequestTime,
			CurrentPage:      pc.PageNo,
			TotalPages:       pc.TotalPages,
			AllPageNos:       pc.AllPageNos,
		}
		// Approver info is shown only while a decision is still possible.
		if !rec.Status.IsTerminal() {
			view.ApproverInfo = enrich.approverInfo(rec.Requestor)
		}
		// Self-service affordances: only the original requestor may edit or
		// withdraw, and only before a decision.
		if rec.Status == request.StatusCreated && rec.Requestor == actor.Username {
			view.Editable = true
			view.Deletable = true
		}
		return view
	})

	return views, nil
}

// filterByAllowedEnvs drops every record outside the caller's visible
// environment set. A failure to resolve the set (or an empty set) yields an
// empty listing rather than an error.
func filterByAllowedEnvs[T any](
	ctx context.Context,
	directory DirectoryReadStore,
	actor usecase.ActorContext,
	records []*T,
	envOf func(*T) string,
) []*T {
	allowed, err := directory.AllowedEnvironments(ctx, actor.Username, actor.TenantID)
	if err != nil {
		slog.Error("no environments resolved for user",
			"username", actor.Username, "tenant_id", actor.TenantID, "error", err)
		return nil
	}
	if len(allowed) == 0 {
		return nil
	}

	out := records[:0]
	for _, rec := range records {
		if allowed[envOf(rec)] {
			out = append(out, rec)
		}
	}
	return out
}

func sortByRequestTime[T any](records []*T, order SortOrder, timeOf func(*T) int64) {
	sort.SliceStable(records, func(i, j int) bool {
		if order == OrderDescRequestedTime {
			return timeOf(records[i]) > timeOf(records[j])
		}
		return timeOf(records[i]) < timeOf(records[j])
	})
}

// enricher caches directory lookups for the duration of one listing call.
type enricher struct {
	ctx       context.Context
	directory DirectoryReadStore
	actor     usecase.ActorContext

	envNames  map[string]string
	teamNames map[int32]string
}

func newEnricher(ctx context.Context, directory DirectoryReadStore, actor usecase.ActorContext) *enricher {
	return &enricher{
		ctx:       ctx,
		directory: directory,
		actor:     actor,
		envNames:  map[string]string{},
		teamNames: map[int32]string{},
	}
}

func (e *enricher) environmentName(envID string) string {
	if name, ok := e.envNames[envID]; ok {
		return name
	}
	name, err := e.directory.EnvironmentName(e.ctx, envID, e.actor.TenantID)
	if err != nil {
		slog.Warn("environment name lookup failed", "env_id", envID, "error", err)
		name = ""
	}
	e.envNames[envID] = name
	return name
}

func (e *enricher) teamName(teamID int32) string {
	if name, ok := e.teamNames[teamID]; ok {
		return name
	}
	name, err := e.directory.TeamName(e.ctx, teamID, e.actor.TenantID)
	if err != nil {
		slog.Warn("team name lookup failed", "team_id", teamID, "error", err)
		name = ""
	}
	e.teamNames[teamID] = name
	return name
}

// approverInfo names the approving team and its members holding an approver
// role, leaving out the requestor so self-approval is visibly impossible.
func (e *enricher) approverInfo(requestor string) string {
	members, err := e.directory.TeamMembers(e.ctx, e.actor.TeamID, e.actor.TenantID)
	if err != nil {
		slog.Warn("team member lookup failed", "team_id", e.actor.TeamID, "error", err)
		return ""
	}

	approverRoles := map[string]bool{}
	for _, role := range auth.ApproverRoles() {
		approverRoles[role.String()] = true
	}

	var b strings.Builder
	b.WriteString("Team : ")
	b.WriteString(e.teamName(e.actor.TeamID))
	b.WriteString(", Users : ")
	for _, m := range members {
		if approverRoles[m.Role] && m.Username != requestor {
			b.WriteString(m.Username)
			b.WriteString(",")
		}
	}
	return b.String()
}
