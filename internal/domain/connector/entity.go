package connector

import (
	"encoding/json"
	"errors"
	"regexp"
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/request"

	"github.com/google/uuid"
)

var (
	ErrInvalidConnectorName = errors.New("invalid connector name")
	ErrInvalidDescription   = errors.New("invalid description")
	ErrInvalidConfig        = errors.New("connector config must be a JSON object")
)

var (
	connectorNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,}$`)
	descriptionRegex   = regexp.MustCompile(`^[a-zA-Z 0-9_.,-]{3,}$`)
)

// Request is a pending intent to create a connector on a Kafka Connect
// cluster. It shares the operational request lifecycle.
type Request struct {
	id               uuid.UUID
	status           request.Status
	requestor        string
	requestingTeamID int32
	approver         string
	tenantID         int32
	environment      string
	connectorName    string
	connectorConfig  string
	description      string
	requestTime      time.Time
}

func NewRequest(
	requestor string,
	requestingTeamID int32,
	tenantID int32,
	environment string,
	connectorName string,
	connectorConfig string,
	description string,
	now time.Time,
) (*Request, error) {
	if !connectorNameRegex.MatchString(connectorName) {
		return nil, ErrInvalidConnectorName
	}
	if !descriptionRegex.MatchString(description) {
		return nil, ErrInvalidDescription
	}
	if !isJSONObject(connectorConfig) {
		return nil, ErrInvalidConfig
	}

	return &Request{
		id:               uuid.New(),
		status:           request.StatusCreated,
		requestor:        requestor,
		requestingTeamID: requestingTeamID,
		tenantID:         tenantID,
		environment:      environment,
		connectorName:    connectorName,
		connectorConfig:  connectorConfig,
		description:      description,
		requestTime:      now,
	}, nil
}

func isJSONObject(raw string) bool {
	var obj map[string]any
	return json.Unmarshal([]byte(raw), &obj) == nil
}

func ReconstructRequest(
	id uuid.UUID,
	status request.Status,
	requestor string,
	requestingTeamID int32,
	approver string,
	tenantID int32,
	environment string,
	connectorName string,
	connectorConfig string,
	description string,
	requestTime time.Time,
) *Request {
	return &Request{
		id:               id,
		status:           status,
		requestor:        requestor,
		requestingTeamID: requestingTeamID,
		approver:         approver,
		tenantID:         tenantID,
		environment:      environment,
		connectorName:    connectorName,
		connectorConfig:  connectorConfig,
		description:      description,
		requestTime:      requestTime,
	}
}

func (r *Request) Approve(approver string) error {
	if r.status != request.StatusCreated {
		return request.ErrAlreadyDecided
	}
	if approver == r.requestor {
		return request.ErrSelfApprovalForbidden
	}
	r.status = request.StatusApproved
	r.approver = approver
	return nil
}

func (r *Request) Decline(approver string) error {
	if r.status != request.StatusCreated {
		return request.ErrAlreadyDecided
	}
	r.status = request.StatusDeclined
	r.approver = approver
	return nil
}

func (r *Request) IsPending() bool {
	return r.status == request.StatusCreated
}

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) Status() request.Status  { return r.status }
func (r *Request) Requestor() string       { return r.requestor }
func (r *Request) RequestingTeamID() int32 { return r.requestingTeamID }
func (r *Request) Approver() string        { return r.approver }
func (r *Request) TenantID() int32         { return r.tenantID }
func (r *Request) Environment() string     { return r.environment }
func (r *Request) ConnectorName() string   { return r.connectorName }
func (r *Request) ConnectorConfig() string { return r.connectorConfig }
func (r *Request) Description() string     { return r.description }
func (r *Request) RequestTime() time.Time  { return r.requestTime }
