package bootstrap

import (
	"spa-pos/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	JWTModule,
	components.StoreModule,
	components.BackendModule,
	components.UseCaseModule,
	components.HandlerModule,
)
