//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/request"
	reqdto "github.com/Pruthvi98/klaw/internal/handler/dto/request"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"

	"github.com/google/uuid"
)

// RequestBuilder assembles offset reset requests in their various shapes:
// command input, domain entity and read-side record.
type RequestBuilder struct {
	ID            uuid.UUID
	Status        request.Status
	Requestor     string
	TeamID        int32
	Approver      string
	TenantID      int32
	Environment   string
	TopicName     string
	ConsumerGroup string
	ResetType     request.OffsetResetType
	Timestamp     *time.Time
	Remarks       string
	RequestTime   time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:            uuid.New(),
		Status:        request.StatusCreated,
		Requestor:     "alice",
		TeamID:        8,
		TenantID:      101,
		Environment:   "DEV",
		TopicName:     "payments.events",
		ConsumerGroup: "payments-consumer",
		ResetType:     request.ResetToEarliest,
		RequestTime:   time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) WithStatus(status request.Status) *RequestBuilder {
	b.Status = status
	return b
}

func (b *RequestBuilder) WithRequestor(requestor string) *RequestBuilder {
	b.Requestor = requestor
	return b
}

func (b *RequestBuilder) WithEnvironment(env string) *RequestBuilder {
	b.Environment = env
	return b
}

func (b *RequestBuilder) WithConsumerGroup(group string) *RequestBuilder {
	b.ConsumerGroup = group
	return b
}

func (b *RequestBuilder) WithRequestTime(t time.Time) *RequestBuilder {
	b.RequestTime = t
	return b
}

func (b *RequestBuilder) BuildInput() commands.CreateOffsetResetInput {
	return commands.CreateOffsetResetInput{
		Environment:     b.Environment,
		TopicName:       b.TopicName,
		ConsumerGroup:   b.ConsumerGroup,
		OffsetResetType: b.ResetType,
		Remarks:         b.Remarks,
	}
}

func (b *RequestBuilder) BuildDTO() reqdto.CreateOffsetResetRequest {
	return reqdto.CreateOffsetResetRequest{
		Environment:     b.Environment,
		TopicName:       b.TopicName,
		ConsumerGroup:   b.ConsumerGroup,
		OffsetResetType: string(b.ResetType),
		Remarks:         b.Remarks,
	}
}

func (b *RequestBuilder) BuildDomain() *request.OffsetResetRequest {
	return request.ReconstructOffsetResetRequest(
		b.ID, b.Status, b.Requestor, b.TeamID, b.Approver, b.TenantID,
		b.Environment, b.TopicName, b.ConsumerGroup,
		b.ResetType, b.Timestamp, b.Remarks, b.RequestTime,
	)
}

func (b *RequestBuilder) BuildRecord() *queries.RequestRecord {
	return &queries.RequestRecord{
		ID:               b.ID,
		RequestType:      request.TypeResetConsumerOffsets,
		Status:           b.Status,
		Requestor:        b.Requestor,
		RequestingTeamID: b.TeamID,
		Approver:         b.Approver,
		Environment:      b.Environment,
		TopicName:        b.TopicName,
		ConsumerGroup:    b.ConsumerGroup,
		OffsetResetType:  b.ResetType,
		ResetTimestamp:   b.Timestamp,
		Remarks:          b.Remarks,
		RequestTime:      b.RequestTime,
	}
}
