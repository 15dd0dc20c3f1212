package bootstrap

import (
	"context"
	"log/slog"

	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/pkg/clock"
	"turnos-gateway/internal/pkg/config"
	"turnos-gateway/internal/poller"

	"go.uber.org/fx"
)

var PollerModule = fx.Module("poller",
	fx.Provide(
		backend.NewFetcherFactory,
		NewPollerManager,
	),
)

func NewPollerManager(lc fx.Lifecycle, factory poller.FetcherFactory, cfg config.Config, clk clock.Clock, logger *slog.Logger) *poller.Manager {
	manager := poller.NewManager(factory, cfg.Poller.Interval, clk, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			manager.StopAll()
			return nil
		},
	})

	return manager
}
