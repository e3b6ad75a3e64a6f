package bootstrap

import (
	"github.com/Pruthvi98/klaw/internal/infra/cluster"
	"github.com/Pruthvi98/klaw/internal/pkg/config"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			func(cfg config.Config) *cluster.OffsetResetExecutor {
				return cluster.NewOffsetResetExecutor(cfg.Kafka)
			},
			fx.As(new(commands.OffsetResetExecutor)),
		),
		fx.Annotate(
			func(cfg config.Config) *cluster.ConnectClient {
				return cluster.NewConnectClient(cfg.Connect)
			},
			fx.As(new(commands.ConnectorExecutor)),
		),
	),
)
