//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Pruthvi98/klaw/internal/domain/connector"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	reqdto "github.com/Pruthvi98/klaw/internal/handler/dto/request"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConnectorBuilder struct {
	ID              uuid.UUID
	Status          request.Status
	Requestor       string
	TeamID          int32
	TenantID        int32
	Environment     string
	ConnectorName   string
	ConnectorConfig string
	Description     string
	RequestTime     time.Time
}

func NewConnectorBuilder() *ConnectorBuilder {
	return &ConnectorBuilder{
		ID:              uuid.New(),
		Status:          request.StatusCreated,
		Requestor:       "alice",
		TeamID:          8,
		TenantID:        101,
		Environment:     "DEV",
		ConnectorName:   "payments-sink",
		ConnectorConfig: `{"connector.class":"io.confluent.connect.jdbc.JdbcSinkConnector","tasks.max":"1"}`,
		Description:     "sinks payment events into the reporting database",
		RequestTime:     time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ConnectorBuilder) WithStatus(status request.Status) *ConnectorBuilder {
	b.Status = status
	return b
}

func (b *ConnectorBuilder) WithRequestor(requestor string) *ConnectorBuilder {
	b.Requestor = requestor
	return b
}

func (b *ConnectorBuilder) WithEnvironment(env string) *ConnectorBuilder {
	b.Environment = env
	return b
}

func (b *ConnectorBuilder) WithConnectorName(name string) *ConnectorBuilder {
	b.ConnectorName = name
	return b
}

func (b *ConnectorBuilder) BuildInput() commands.CreateConnectorInput {
	return commands.CreateConnectorInput{
		Environment:     b.Environment,
		ConnectorName:   b.ConnectorName,
		ConnectorConfig: b.ConnectorConfig,
		Description:     b.Description,
	}
}

func (b *ConnectorBuilder) BuildDTO() reqdto.CreateConnectorRequest {
	return reqdto.CreateConnectorRequest{
		Environment:     b.Environment,
		ConnectorName:   b.ConnectorName,
		ConnectorConfig: b.ConnectorConfig,
		Description:     b.Description,
	}
}

func (b *ConnectorBuilder) BuildDomain() *connector.Request {
	return connector.ReconstructRequest(
		b.ID,
		b.Status,
		b.Requestor,
		b.TeamID,
		"",
		b.TenantID,
		b.Environment,
		b.ConnectorName,
		b.ConnectorConfig,
		b.Description,
		b.RequestTime,
	)
}

func (b *ConnectorBuilder) BuildRecord() *queries.ConnectorRecord {
	return &queries.ConnectorRecord{
		ID:               b.ID,
		Status:           b.Status,
		Requestor:        b.Requestor,
		RequestingTeamID: b.TeamID,
		Environment:      b.Environment,
		ConnectorName:    b.ConnectorName,
		ConnectorConfig:  b.ConnectorConfig,
		Description:      b.Description,
		RequestTime:      b.RequestTime,
	}
}
