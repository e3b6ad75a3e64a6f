package request

import (
	"strings"

	"github.com/Pruthvi98/klaw/internal/usecase/commands"
)

type CreateConnectorRequest struct {
	Environment     string `json:"environment" binding:"required"`
	ConnectorName   string `json:"connectorName" binding:"required"`
	ConnectorConfig string `json:"connectorConfig" binding:"required"`
	Description     string `json:"description" binding:"required"`
}

func (r CreateConnectorRequest) ToInput() commands.CreateConnectorInput {
	return commands.CreateConnectorInput{
		Environment:     r.Environment,
		ConnectorName:   strings.TrimSpace(r.ConnectorName),
		ConnectorConfig: r.ConnectorConfig,
		Description:     strings.TrimSpace(r.Description),
	}
}
