package bootstrap

import (
	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/pkg/config"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBackendClient,
	),
)

func NewBackendClient(cfg config.Config) *backend.Client {
	return backend.NewClient(cfg.Backend)
}
