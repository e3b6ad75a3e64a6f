package commands

import (
	"context"
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/connector"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side ports are declared here, next to their consumers, so the infra
// layer depends on the usecase layer and not the other way around.

type Authorizer interface {
	Require(role user.Role, permission auth.Permission) error
}

// DuplicateKey is the coordinate tuple on which at most one pending request
// may exist.
type DuplicateKey struct {
	Requestor     string
	RequestType   request.OperationalRequestType
	Environment   string
	TopicName     string
	ConsumerGroup string
	TenantID      int32
}

type RequestRepository interface {
	Insert(ctx context.Context, req *request.OffsetResetRequest) error
	FindByID(ctx context.Context, id uuid.UUID, tenantID int32) (*request.OffsetResetRequest, error)
	HasPendingDuplicate(ctx context.Context, key DuplicateKey) (bool, error)
	// UpdateStatus applies the created->terminal transition conditionally;
	// a concurrent decision surfaces as a conflict.
	UpdateStatus(ctx context.Context, id uuid.UUID, tenantID int32, from, to request.Status, approver string) error
}

type ConnectorRepository interface {
	Insert(ctx context.Context, req *connector.Request) error
	FindByID(ctx context.Context, id uuid.UUID, tenantID int32) (*connector.Request, error)
	HasPendingDuplicate(ctx context.Context, requestor, environment, connectorName string, tenantID int32) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, tenantID int32, from, to request.Status, approver string) error
}

type AclReadStore interface {
	// HasApprovedConsumerAcl reports whether the team holds an approved
	// access grant on the topic/consumer-group pair in the environment.
	HasApprovedConsumerAcl(ctx context.Context, environment, topicName string, teamID int32, consumerGroup string, tenantID int32) (bool, error)
}

type NotificationKind string

const (
	NotifyOffsetResetRequested NotificationKind = "RESET_CONSUMER_OFFSET_REQUESTED"
	NotifyOffsetResetApproved  NotificationKind = "RESET_CONSUMER_OFFSET_APPROVED"
	NotifyOffsetResetDeclined  NotificationKind = "RESET_CONSUMER_OFFSET_DECLINED"
	NotifyConnectorRequested   NotificationKind = "CONNECTOR_CREATE_REQUESTED"
	NotifyConnectorApproved    NotificationKind = "CONNECTOR_CREATE_APPROVED"
	NotifyConnectorDeclined    NotificationKind = "CONNECTOR_CREATE_DECLINED"
)

type Notification struct {
	Topic     string
	Body      string
	Requestor string
	Approver  string
	TeamID    int32
	TenantID  int32
	Kind      NotificationKind
	LoginURL  string
}

// Notifier delivery is fire-and-forget from the caller's perspective:
// usecases log failures and never surface them.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

type OffsetResetParams struct {
	TopicName     string
	ConsumerGroup string
	ResetType     request.OffsetResetType
	Timestamp     *time.Time
}

// ResetOutcome carries consumer group offsets per topic-partition captured
// around the reset. Either map may be nil when the executor could not
// measure.
type ResetOutcome struct {
	Before map[string]int64
	After  map[string]int64
}

type OffsetResetExecutor interface {
	Execute(ctx context.Context, params OffsetResetParams, environment string, tenantID int32) (*ResetOutcome, error)
}

type ConnectorExecutor interface {
	CreateConnector(ctx context.Context, name, config, environment string, tenantID int32) error
}
