package bootstrap

import (
	"fleet-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MessagingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	JobsModule,
)
