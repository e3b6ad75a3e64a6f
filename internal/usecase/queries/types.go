package queries

import (
	"context"
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/request"

	"github.com/google/uuid"
)

// SortOrder selects the requestTime ordering of a listing.
type SortOrder string

const (
	OrderAscRequestedTime  SortOrder = "ASC_REQUESTED_TIME"
	OrderDescRequestedTime SortOrder = "DESC_REQUESTED_TIME"
)

// PageSize is fixed for request listings.
const PageSize = 10

// RequestFilter carries the optional listing filters. A nil field places no
// constraint; the tenant is always supplied separately and is mandatory.
type RequestFilter struct {
	RequestType   *request.OperationalRequestType
	Status        *request.Status
	Environment   *string
	TopicName     *string
	ConsumerGroup *string
	Wildcard      *string
	MineOnly      bool
}

// RequestRecord is the flat row shape the read store returns for an
// operational request.
type RequestRecord struct {
	ID               uuid.UUID
	RequestType      request.OperationalRequestType
	Status           request.Status
	Requestor        string
	RequestingTeamID int32
	Approver         string
	Environment      string
	TopicName        string
	ConsumerGroup    string
	OffsetResetType  request.OffsetResetType
	ResetTimestamp   *time.Time
	Remarks          string
	RequestTime      time.Time
}

// OperationalRequestView is the enriched response item, including the
// per-item pagination metadata the response shape denormalizes.
type OperationalRequestView struct {
	ID               uuid.UUID
	RequestType      request.OperationalRequestType
	Status           request.Status
	Requestor        string
	RequestingTeamID int32
	TeamName         string
	Approver         string
	Environment      string
	EnvironmentName  string
	TopicName        string
	ConsumerGroup    string
	OffsetResetType  request.OffsetResetType
	ResetTimestamp   *time.Time
	Remarks          string
	RequestTime      time.Time
	ApproverInfo     string
	Editable         bool
	Deletable        bool
	CurrentPage      int
	TotalPages       int
	AllPageNos       []int
}

// ConnectorRecord mirrors RequestRecord for connector requests.
type ConnectorRecord struct {
	ID               uuid.UUID
	Status           request.Status
	Requestor        string
	RequestingTeamID int32
	Approver         string
	Environment      string
	ConnectorName    string
	ConnectorConfig  string
	Description      string
	RequestTime      time.Time
}

type ConnectorRequestView struct {
	ID               uuid.UUID
	Status           request.Status
	Requestor        string
	RequestingTeamID int32
	TeamName         string
	Approver         string
	Environment      string
	EnvironmentName  string
	ConnectorName    string
	ConnectorConfig  string
	Description      string
	RequestTime      time.Time
	ApproverInfo     string
	Editable         bool
	Deletable        bool
	CurrentPage      int
	TotalPages       int
	AllPageNos       []int
}

// TeamMember is a directory entry used to compose approver info.
type TeamMember struct {
	Username string
	Role     string
}

type RequestReadStore interface {
	Search(ctx context.Context, requestor string, filter RequestFilter, tenantID int32) ([]*RequestRecord, error)
}

type ConnectorReadStore interface {
	Search(ctx context.Context, requestor string, filter RequestFilter, tenantID int32) ([]*ConnectorRecord, error)
}

// DirectoryReadStore resolves tenant-scoped directory data: environments,
// team names and team membership.
type DirectoryReadStore interface {
	AllowedEnvironments(ctx context.Context, username string, tenantID int32) (map[string]bool, error)
	EnvironmentName(ctx context.Context, envID string, tenantID int32) (string, error)
	TeamName(ctx context.Context, teamID, tenantID int32) (string, error)
	TeamMembers(ctx context.Context, teamID, tenantID int32) ([]TeamMember, error)
}
