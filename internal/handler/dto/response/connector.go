package response

import (
	"time"

	"github.com/Pruthvi98/klaw/internal/usecase/queries"

	"github.com/google/uuid"
)

type ConnectorRequestResponse struct {
	ID               uuid.UUID `json:"id"`
	Status           string    `json:"requestStatus"`
	Requestor        string    `json:"requestor"`
	RequestingTeamID int32     `json:"requestingTeamId"`
	TeamName         string    `json:"teamName"`
	Approver         string    `json:"approver,omitempty"`
	Environment      string    `json:"environment"`
	EnvironmentName  string    `json:"environmentName"`
	ConnectorName    string    `json:"connectorName"`
	ConnectorConfig  string    `json:"connectorConfig"`
	Description      string    `json:"description"`
	RequestTime      time.Time `json:"requestTime"`
	ApproverInfo     string    `json:"approverInfo,omitempty"`
	Editable         bool      `json:"editable"`
	Deletable        bool      `json:"deletable"`
	CurrentPage      int       `json:"currentPage"`
	TotalPages       int       `json:"totalNoPages"`
	AllPageNos       []int     `json:"allPageNos"`
}

func FromConnectorRequestView(v *queries.ConnectorRequestView) *ConnectorRequestResponse {
	return &ConnectorRequestResponse{
		ID:               v.ID,
		Status:           string(v.Status),
		Requestor:        v.Requestor,
		RequestingTeamID: v.RequestingTeamID,
		TeamName:         v.TeamName,
		Approver:         v.Approver,
		Environment:      v.Environment,
		EnvironmentName:  v.EnvironmentName,
		ConnectorName:    v.ConnectorName,
		ConnectorConfig:  v.ConnectorConfig,
		Description:      v.Description,
		RequestTime:      v.RequestTime,
		ApproverInfo:     v.ApproverInfo,
		Editable:         v.Editable,
		Deletable:        v.Deletable,
		CurrentPage:      v.CurrentPage,
		TotalPages:       v.TotalPages,
		AllPageNos:       v.AllPageNos,
	}
}

func FromConnectorRequestViews(views []*queries.ConnectorRequestView) []*ConnectorRequestResponse {
	out := make([]*ConnectorRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromConnectorRequestView(v))
	}
	return out
}
