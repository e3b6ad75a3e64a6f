package cluster

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/cenkalti/backoff/v4"

	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/pkg/config"
	"github.com/Pruthvi98/klaw/internal/pkg/errs"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
)

// OffsetResetExecutor performs consumer-group offset resets against the
// broker cluster registered for the request's environment. Offsets are
// captured before and after the reset so the outcome can be reported.
type OffsetResetExecutor struct {
	cfg     config.KafkaConfig
	brokers map[string][]string
}

func NewOffsetResetExecutor(cfg config.KafkaConfig) *OffsetResetExecutor {
	return &OffsetResetExecutor{
		cfg:     cfg,
		brokers: cfg.BootstrapServers(),
	}
}

func (e *OffsetResetExecutor) Execute(ctx context.Context, params commands.OffsetResetParams, environment string, tenantID int32) (*commands.ResetOutcome, error) {
	brokers, ok := e.brokers[environment]
	if !ok {
		return nil, errs.New(fmt.Sprintf("no cluster registered for environment %q", environment))
	}

	client, err := e.dial(ctx, brokers)
	if err != nil {
		return nil, errs.Wrap(err, "connect to cluster")
	}
	defer client.Close()

	before, err := committedOffsets(client, params.ConsumerGroup, params.TopicName)
	if err != nil {
		return nil, errs.Wrap(err, "fetch committed offsets")
	}

	targets, err := e.targetOffsets(client, params)
	if err != nil {
		return nil, errs.Wrap(err, "resolve target offsets")
	}

	if err := commitOffsets(client, params.ConsumerGroup, params.TopicName, targets); err != nil {
		return nil, errs.Wrap(err, "commit offsets")
	}

	after, err := committedOffsets(client, params.ConsumerGroup, params.TopicName)
	if err != nil {
		return nil, errs.Wrap(err, "fetch offsets after reset")
	}

	return &commands.ResetOutcome{Before: before, After: after}, nil
}

func (e *OffsetResetExecutor) dial(ctx context.Context, brokers []string) (sarama.Client, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = e.cfg.ClientID
	cfg.Net.DialTimeout = e.cfg.DialTimeout
	cfg.Consumer.Offsets.AutoCommit.Enable = false

	var client sarama.Client
	op := func() error {
		var err error
		client, err = sarama.NewClient(brokers, cfg)
		return err
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return client, nil
}

// targetOffsets resolves the desired offset per partition according to the
// reset type.
func (e *OffsetResetExecutor) targetOffsets(client sarama.Client, params commands.OffsetResetParams) (map[int32]int64, error) {
	partitions, err := client.Partitions(params.TopicName)
	if err != nil {
		return nil, err
	}

	targets := make(map[int32]int64, len(partitions))
	for _, p := range partitions {
		var target int64
		switch {
		case params.ResetType.RequiresTimestamp():
			target, err = client.GetOffset(params.TopicName, p, params.Timestamp.UnixMilli())
			if err != nil {
				return nil, err
			}
			// No message at or after the timestamp on this partition.
			if target < 0 {
				target, err = client.GetOffset(params.TopicName, p, sarama.OffsetNewest)
				if err != nil {
					return nil, err
				}
			}
		case params.ResetType == request.ResetToLatest:
			target, err = client.GetOffset(params.TopicName, p, sarama.OffsetNewest)
			if err != nil {
				return nil, err
			}
		default:
			target, err = client.GetOffset(params.TopicName, p, sarama.OffsetOldest)
			if err != nil {
				return nil, err
			}
		}
		targets[p] = target
	}
	return targets, nil
}

func commitOffsets(client sarama.Client, group, topic string, targets map[int32]int64) error {
	om, err := sarama.NewOffsetManagerFromClient(group, client)
	if err != nil {
		return err
	}
	defer om.Close()

	poms := make([]sarama.PartitionOffsetManager, 0, len(targets))
	for p, target := range targets {
		pom, err := om.ManagePartition(topic, p)
		if err != nil {
			return err
		}
		poms = append(poms, pom)
		pom.ResetOffset(target, "")
	}
	om.Commit()
	for _, pom := range poms {
		if err := pom.Close(); err != nil {
			return err
		}
	}
	return nil
}

func committedOffsets(client sarama.Client, group, topic string) (map[string]int64, error) {
	admin, err := sarama.NewClusterAdminFromClient(client)
	if err != nil {
		return nil, err
	}

	partitions, err := client.Partitions(topic)
	if err != nil {
		return nil, err
	}

	resp, err := admin.ListConsumerGroupOffsets(group, map[string][]int32{topic: partitions})
	if err != nil {
		return nil, err
	}

	offsets := map[string]int64{}
	for respTopic, blocks := range resp.Blocks {
		for partition, block := range blocks {
			if block.Offset < 0 {
				continue
			}
			offsets[fmt.Sprintf("%s-%d", respTopic, partition)] = block.Offset
		}
	}
	return offsets, nil
}
