package components

import (
	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/usecase/commands"
	"turnos-gateway/internal/usecase/queries"

	"go.uber.org/fx"
)

// ClientsModule binds the per-resource backend clients to the usecase ports.
// The same client backs every port it structurally satisfies.
var ClientsModule = fx.Module("clients",
	fx.Provide(
		backend.NewTurnosClient,

		fx.Annotate(
			backend.NewUsuariosClient,
			fx.As(new(commands.UsuariosPort)),
		),
		fx.Annotate(
			backend.NewUsuariosClient,
			fx.As(new(commands.UsuariosAdminPort)),
		),
		fx.Annotate(
			backend.NewUsuariosClient,
			fx.As(new(queries.UsuariosReadPort)),
		),

		fx.Annotate(
			backend.NewTurnosClient,
			fx.As(new(commands.TurnosPort)),
		),
		fx.Annotate(
			backend.NewTurnosClient,
			fx.As(new(queries.TurnosReadPort)),
		),
		fx.Annotate(
			backend.NewTurnosClient,
			fx.As(new(queries.TurnosListPort)),
		),

		fx.Annotate(
			backend.NewProductosClient,
			fx.As(new(commands.ProductosPort)),
		),
		fx.Annotate(
			backend.NewProductosClient,
			fx.As(new(commands.ProductosAdminPort)),
		),
		fx.Annotate(
			backend.NewProductosClient,
			fx.As(new(queries.ProductosReadPort)),
		),

		fx.Annotate(
			backend.NewServiciosClient,
			fx.As(new(commands.ServiciosAdminPort)),
		),
		fx.Annotate(
			backend.NewServiciosClient,
			fx.As(new(queries.ServiciosReadPort)),
		),

		fx.Annotate(
			backend.NewCajasClient,
			fx.As(new(commands.CajasAdminPort)),
		),
		fx.Annotate(
			backend.NewCajasClient,
			fx.As(new(queries.CajasReadPort)),
		),

		fx.Annotate(
			backend.NewFacturasClient,
			fx.As(new(commands.FacturasPort)),
		),
		fx.Annotate(
			backend.NewFacturasClient,
			fx.As(new(queries.FacturasReadPort)),
		),
	),
)
