package request

import "errors"

var (
	ErrMissingConsumerGroup  = errors.New("consumer group is required")
	ErrMissingResetTimestamp = errors.New("reset timestamp is required for date-time resets")
	ErrUnexpectedTimestamp   = errors.New("reset timestamp is only valid for date-time resets")
	ErrInvalidResetTimestamp = errors.New("reset timestamp does not match the expected format")
	ErrInvalidResetType      = errors.New("invalid offset reset type")
	ErrInvalidStatus         = errors.New("invalid request status")
	ErrAlreadyDecided        = errors.New("request has already been approved or declined")
	ErrSelfApprovalForbidden = errors.New("requestor cannot approve their own request")
)

type Status string

const (
	StatusCreated  Status = "created"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
	// StatusDeleted is reserved: requests are never physically removed.
	StatusDeleted Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusApproved, StatusDeclined, StatusDeleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusDeclined
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type OperationalRequestType string

const (
	TypeResetConsumerOffsets OperationalRequestType = "RESET_CONSUMER_OFFSETS"
)

func (t OperationalRequestType) String() string {
	return string(t)
}

type OffsetResetType string

const (
	ResetToEarliest OffsetResetType = "EARLIEST"
	ResetToLatest   OffsetResetType = "LATEST"
	ResetToDateTime OffsetResetType = "TO_DATE_TIME"
)

func (t OffsetResetType) String() string {
	return string(t)
}

func NewOffsetResetType(s string) (OffsetResetType, error) {
	t := OffsetResetType(s)
	switch t {
	case ResetToEarliest, ResetToLatest, ResetToDateTime:
		return t, nil
	default:
		return "", ErrInvalidResetType
	}
}

// RequiresTimestamp reports whether the reset targets an explicit point in
// time rather than a log extremity.
func (t OffsetResetType) RequiresTimestamp() bool {
	return t == ResetToDateTime
}

// ResetTimestampLayout is the only accepted wire format for explicit reset
// timestamps: ISO-8601 with milliseconds and a numeric zone offset.
const ResetTimestampLayout = "2006-01-02T15:04:05.000-0700"
