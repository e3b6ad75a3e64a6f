package components

import (
	"github.com/Pruthvi98/klaw/internal/handler"
	"github.com/Pruthvi98/klaw/internal/handler/api"
	"github.com/Pruthvi98/klaw/internal/handler/middleware"
	"github.com/Pruthvi98/klaw/internal/pkg/config"
	"github.com/Pruthvi98/klaw/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(authUseCase usecase.AuthUseCase, cfg config.Config) *api.AuthHandler {
			return api.NewAuthHandler(authUseCase, cfg.Cookie, cfg.JWT)
		},
		api.NewOperationalHandler,
		api.NewConnectorHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
