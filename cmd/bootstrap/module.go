package bootstrap

import (
	"github.com/Pruthvi98/klaw/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	KafkaModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
