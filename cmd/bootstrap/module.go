package bootstrap

import (
	"turnos-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	BackendModule,
	JWTModule,
	TelemetryModule,
	components.ClientsModule,
	components.UseCaseModule,
	PollerModule,
	components.HandlerModule,
)
