package bootstrap

import (
	"brewzzy/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	SessionModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
