package bootstrap

import (
	"manga-cafe-billing/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	components.UseCaseModule,
	components.HandlerModule,
)
