package response

import (
	"time"

	"github.com/Pruthvi98/klaw/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateRequestResponse struct {
	RequestID uuid.UUID `json:"requestId"`
}

type OperationalRequestResponse struct {
	ID               uuid.UUID  `json:"id"`
	RequestType      string     `json:"requestType"`
	Status           string     `json:"requestStatus"`
	Requestor        string     `json:"requestor"`
	RequestingTeamID int32      `json:"requestingTeamId"`
	TeamName         string     `json:"teamName"`
	Approver         string     `json:"approver,omitempty"`
	Environment      string     `json:"environment"`
	EnvironmentName  string     `json:"environmentName"`
	TopicName        string     `json:"topicName"`
	ConsumerGroup    string     `json:"consumerGroup"`
	OffsetResetType  string     `json:"offsetResetType"`
	ResetTimestamp   *time.Time `json:"resetTimestamp,omitempty"`
	Remarks          string     `json:"remarks,omitempty"`
	RequestTime      time.Time  `json:"requestTime"`
	ApproverInfo     string     `json:"approverInfo,omitempty"`
	Editable         bool       `json:"editable"`
	Deletable        bool       `json:"deletable"`
	CurrentPage      int        `json:"currentPage"`
	TotalPages       int        `json:"totalNoPages"`
	AllPageNos       []int      `json:"allPageNos"`
}

func FromOperationalRequestView(v *queries.OperationalRequestView) *OperationalRequestResponse {
	return &OperationalRequestResponse{
		ID:               v.ID,
		RequestType:      string(v.RequestType),
		Status:           string(v.Status),
		Requestor:        v.Requestor,
		RequestingTeamID: v.RequestingTeamID,
		TeamName:         v.TeamName,
		Approver:         v.Approver,
		Environment:      v.Environment,
		EnvironmentName:  v.EnvironmentName,
		TopicName:        v.TopicName,
		ConsumerGroup:    v.ConsumerGroup,
		OffsetResetType:  string(v.OffsetResetType),
		ResetTimestamp:   v.ResetTimestamp,
		Remarks:          v.Remarks,
		RequestTime:      v.RequestTime,
		ApproverInfo:     v.ApproverInfo,
		Editable:         v.Editable,
		Deletable:        v.Deletable,
		CurrentPage:      v.CurrentPage,
		TotalPages:       v.TotalPages,
		AllPageNos:       v.AllPageNos,
	}
}

func FromOperationalRequestViews(views []*queries.OperationalRequestView) []*OperationalRequestResponse {
	out := make([]*OperationalRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOperationalRequestView(v))
	}
	return out
}
