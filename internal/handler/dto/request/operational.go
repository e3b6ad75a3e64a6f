package request

import (
	"errors"
	"strings"

	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"
)

var ErrInvalidSortOrder = errors.New("invalid sort order")

// CreateOffsetResetRequest is the wire shape for a new offset reset
// request. ConsumerGroup has no binding tag: ownership of an absent group is
// rejected in the usecase with a semantically richer error than a 400.
type CreateOffsetResetRequest struct {
	Environment     string `json:"environment" binding:"required"`
	TopicName       string `json:"topicName" binding:"required"`
	ConsumerGroup   string `json:"consumerGroup"`
	OffsetResetType string `json:"offsetResetType" binding:"required"`
	ResetTimestamp  string `json:"resetTimestamp,omitempty"`
	Remarks         string `json:"remarks,omitempty"`
}

func (r CreateOffsetResetRequest) ToInput() (commands.CreateOffsetResetInput, error) {
	resetType, err := request.NewOffsetResetType(r.OffsetResetType)
	if err != nil {
		return commands.CreateOffsetResetInput{}, err
	}
	return commands.CreateOffsetResetInput{
		Environment:       r.Environment,
		TopicName:         r.TopicName,
		ConsumerGroup:     strings.TrimSpace(r.ConsumerGroup),
		OffsetResetType:   resetType,
		ResetTimestampStr: strings.TrimSpace(r.ResetTimestamp),
		Remarks:           r.Remarks,
	}, nil
}

type DeclineRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ListRequestsQuery carries the listing filters as query parameters.
type ListRequestsQuery struct {
	RequestType   string `form:"requestType"`
	RequestStatus string `form:"requestStatus"`
	Environment   string `form:"env"`
	TopicName     string `form:"topic"`
	ConsumerGroup string `form:"consumerGroup"`
	Search        string `form:"search"`
	IsMyRequest   bool   `form:"isMyRequest"`
	Order         string `form:"order"`
	PageNo        int    `form:"pageNo"`
}

func (q ListRequestsQuery) ToFilter() (queries.RequestFilter, queries.SortOrder, int, error) {
	filter := queries.RequestFilter{MineOnly: q.IsMyRequest}

	if q.RequestType != "" {
		t := request.OperationalRequestType(q.RequestType)
		filter.RequestType = &t
	}
	if q.RequestStatus != "" {
		status, err := request.NewStatus(q.RequestStatus)
		if err != nil {
			return queries.RequestFilter{}, "", 0, err
		}
		filter.Status = &status
	}
	if q.Environment != "" {
		filter.Environment = &q.Environment
	}
	if q.TopicName != "" {
		filter.TopicName = &q.TopicName
	}
	if q.ConsumerGroup != "" {
		filter.ConsumerGroup = &q.ConsumerGroup
	}
	if q.Search != "" {
		filter.Wildcard = &q.Search
	}

	order := queries.OrderDescRequestedTime
	switch q.Order {
	case "", string(queries.OrderDescRequestedTime):
	case string(queries.OrderAscRequestedTime):
		order = queries.OrderAscRequestedTime
	default:
		return queries.RequestFilter{}, "", 0, ErrInvalidSortOrder
	}

	pageNo := q.PageNo
	if pageNo <= 0 {
		pageNo = 1
	}
	return filter, order, pageNo, nil
}
