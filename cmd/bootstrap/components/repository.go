package components

import (
	"github.com/Pruthvi98/klaw/internal/infra/mail"
	"github.com/Pruthvi98/klaw/internal/infra/repository"
	"github.com/Pruthvi98/klaw/internal/pkg/config"
	"github.com/Pruthvi98/klaw/internal/usecase"
	"github.com/Pruthvi98/klaw/internal/usecase/commands"
	"github.com/Pruthvi98/klaw/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestRepository)),
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			repository.NewConnectorRepository,
			fx.As(new(commands.ConnectorRepository)),
			fx.As(new(queries.ConnectorReadStore)),
		),
		fx.Annotate(
			repository.NewAclStore,
			fx.As(new(commands.AclReadStore)),
		),
		fx.Annotate(
			repository.NewDirectoryStore,
			fx.As(new(queries.DirectoryReadStore)),
		),
		func(cfg config.Config, pool *pgxpool.Pool) commands.Notifier {
			return mail.NewNotifier(cfg.SMTP, cfg.App, pool)
		},
	),
)
