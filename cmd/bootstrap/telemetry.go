package bootstrap

import (
	"context"

	"turnos-gateway/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

func SetupTelemetry(lc fx.Lifecycle) {
	shutdown := telemetry.Setup("turnos-gateway")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
}
