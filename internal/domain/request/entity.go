package request

import (
	"time"

	"github.com/google/uuid"
)

// OffsetResetRequest is a pending intent to reset a consumer group's
// offsets on a live cluster. Tenant and requesting team are stamped once at
// creation and never change afterwards.
type OffsetResetRequest struct {
	id               uuid.UUID
	requestType      OperationalRequestType
	status           Status
	requestor        string
	requestingTeamID int32
	approver         string
	tenantID         int32
	environment      string
	topicName        string
	consumerGroup    string
	offsetResetType  OffsetResetType
	resetTimestamp   *time.Time
	remarks          string
	requestTime      time.Time
}

func newOffsetResetRequest(
	requestor string,
	requestingTeamID int32,
	tenantID int32,
	environment string,
	topicName string,
	consumerGroup string,
	resetType OffsetResetType,
	resetTimestampStr string,
	remarks string,
	now time.Time,
) (*OffsetResetRequest, error) {
	if consumerGroup == "" {
		return nil, ErrMissingConsumerGroup
	}

	resetTimestamp, err := parseResetTimestamp(resetType, resetTimestampStr)
	if err != nil {
		return nil, err
	}

	return &OffsetResetRequest{
		id:               uuid.New(),
		requestType:      TypeResetConsumerOffsets,
		status:           StatusCreated,
		requestor:        requestor,
		requestingTeamID: requestingTeamID,
		tenantID:         tenantID,
		environment:      environment,
		topicName:        topicName,
		consumerGroup:    consumerGroup,
		offsetResetType:  resetType,
		resetTimestamp:   resetTimestamp,
		remarks:          remarks,
		requestTime:      now,
	}, nil
}

// parseResetTimestamp enforces the invariant that a timestamp is present iff
// the reset type requires one.
func parseResetTimestamp(resetType OffsetResetType, raw string) (*time.Time, error) {
	if !resetType.RequiresTimestamp() {
		if raw != "" {
			return nil, ErrUnexpectedTimestamp
		}
		return nil, nil
	}
	if raw == "" {
		return nil, ErrMissingResetTimestamp
	}
	ts, err := time.Parse(ResetTimestampLayout, raw)
	if err != nil {
		return nil, ErrInvalidResetTimestamp
	}
	return &ts, nil
}

func ReconstructOffsetResetRequest(
	id uuid.UUID,
	status Status,
	requestor string,
	requestingTeamID int32,
	approver string,
	tenantID int32,
	environment string,
	topicName string,
	consumerGroup string,
	resetType OffsetResetType,
	resetTimestamp *time.Time,
	remarks string,
	requestTime time.Time,
) *OffsetResetRequest {
	return &OffsetResetRequest{
		id:               id,
		requestType:      TypeResetConsumerOffsets,
		status:           status,
		requestor:        requestor,
		requestingTeamID: requestingTeamID,
		approver:         approver,
		tenantID:         tenantID,
		environment:      environment,
		topicName:        topicName,
		consumerGroup:    consumerGroup,
		offsetResetType:  resetType,
		resetTimestamp:   resetTimestamp,
		remarks:          remarks,
		requestTime:      requestTime,
	}
}

// Approve moves the request to its terminal approved state. Transitions out
// of created are one-way; a decided request cannot be decided again.
func (r *OffsetResetRequest) Approve(approver string) error {
	if r.status != StatusCreated {
		return ErrAlreadyDecided
	}
	if approver == r.requestor {
		return ErrSelfApprovalForbidden
	}
	r.status = StatusApproved
	r.approver = approver
	return nil
}

func (r *OffsetResetRequest) Decline(approver string) error {
	if r.status != StatusCreated {
		return ErrAlreadyDecided
	}
	r.status = StatusDeclined
	r.approver = approver
	return nil
}

func (r *OffsetResetRequest) IsPending() bool {
	return r.status == StatusCreated
}

func (r *OffsetResetRequest) ID() uuid.UUID                       { return r.id }
func (r *OffsetResetRequest) RequestType() OperationalRequestType { return r.requestType }
func (r *OffsetResetRequest) Status() Status                      { return r.status }
func (r *OffsetResetRequest) Requestor() string                   { return r.requestor }
func (r *OffsetResetRequest) RequestingTeamID() int32             { return r.requestingTeamID }
func (r *OffsetResetRequest) Approver() string                    { return r.approver }
func (r *OffsetResetRequest) TenantID() int32                     { return r.tenantID }
func (r *OffsetResetRequest) Environment() string                 { return r.environment }
func (r *OffsetResetRequest) TopicName() string                   { return r.topicName }
func (r *OffsetResetRequest) ConsumerGroup() string               { return r.consumerGroup }
func (r *OffsetResetRequest) OffsetResetType() OffsetResetType    { return r.offsetResetType }
func (r *OffsetResetRequest) ResetTimestamp() *time.Time          { return r.resetTimestamp }
func (r *OffsetResetRequest) Remarks() string                     { return r.remarks }
func (r *OffsetResetRequest) RequestTime() time.Time              { return r.requestTime }
