package components

import (
	"github.com/Pruthvi98/klaw/internal/domain/auth"
	"github.com/Pruthvi98/klaw/internal/domain/request"
	"github.com/Pruthvi98/klaw/internal/pkg/clock"
	"github.com/Pruthvi98/klaw/internal/pkg/config"
	"github.com/Pruthvi98/klaw/internal/usecase"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	request.NewFactory,
	fx.Annotate(
		auth.NewChecker,
		fx.As(new(commands.Authorizer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewAuthUseCase,
		func(
			authorizer commands.Authorizer,
			requestRepo commands.RequestRepository,
			aclReads commands.AclReadStore,
			notifier commands.Notifier,
			executor commands.OffsetResetExecutor,
			factory *request.Factory,
			cfg config.Config,
		) commands.OperationalCommands {
			return commands.NewOperationalUseCase(
				authorizer, requestRepo, aclReads, notifier, executor, factory, cfg.App.LoginURL,
			)
		},
		func(
			authorizer commands.Authorizer,
			connectorRepo commands.ConnectorRepository,
			notifier commands.Notifier,
			executor commands.ConnectorExecutor,
			clk clock.Clock,
			cfg config.Config,
		) commands.ConnectorCommands {
			return commands.NewConnectorUseCase(
				authorizer, connectorRepo, notifier, executor, clk, cfg.App.LoginURL,
			)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOperationalQueries,
		queries.NewConnectorQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
