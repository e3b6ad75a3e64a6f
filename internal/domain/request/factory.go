package request

import (
	"github.com/Pruthvi98/klaw/internal/pkg/clock"
)

type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clock: clk}
}

// NewOffsetResetRequest stamps the requestor's team and tenant and the
// creation time onto the new request.
func (f *Factory) NewOffsetResetRequest(
	requestor string,
	requestingTeamID int32,
	tenantID int32,
	environment string,
	topicName string,
	consumerGroup string,
	resetType OffsetResetType,
	resetTimestampStr string,
	remarks string,
) (*OffsetResetRequest, error) {
	return newOffsetResetRequest(
		requestor,
		requestingTeamID,
		tenantID,
		environment,
		topicName,
		consumerGroup,
		resetType,
		resetTimestampStr,
		remarks,
		f.clock.Now(),
	)
}
