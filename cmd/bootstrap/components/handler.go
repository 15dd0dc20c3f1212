package components

import (
	"turnos-gateway/internal/handler"
	"turnos-gateway/internal/handler/api"
	"turnos-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewClienteHandler,
		api.NewTurnoHandler,
		api.NewCajeroHandler,
		api.NewCatalogoHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	cliente *api.ClienteHandler,
	turno *api.TurnoHandler,
	cajero *api.CajeroHandler,
	catalogo *api.CatalogoHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Cliente:  cliente,
		Turno:    turno,
		Cajero:   cajero,
		Catalogo: catalogo,
		Admin:    admin,
	}
}
