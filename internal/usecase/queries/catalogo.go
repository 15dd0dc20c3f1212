package queries

import (
	"context"

	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/pkg/errs"
)

type ProductosReadPort interface {
	Listar(ctx context.Context, token string) ([]ProductoView, error)
}

type ServiciosReadPort interface {
	Listar(ctx context.Context, token string) ([]ServicioView, error)
}

type CajasReadPort interface {
	Listar(ctx context.Context, token string) ([]CajaView, error)
}

type UsuariosReadPort interface {
	Listar(ctx context.Context, token string) ([]UsuarioView, error)
}

// CatalogoQueries exposes the backend listings behind the selection screens.
// Usuarios is admin-only; the rest only need a session.
type CatalogoQueries interface {
	Productos(ctx context.Context, sess session.Session) ([]ProductoView, error)
	Servicios(ctx context.Context, sess session.Session) ([]ServicioView, error)
	Cajas(ctx context.Context, sess session.Session) ([]CajaView, error)
	Usuarios(ctx context.Context, sess session.Session) ([]UsuarioView, error)
}

type catalogoQueriesImpl struct {
	productos ProductosReadPort
	servicios ServiciosReadPort
	cajas     CajasReadPort
	usuarios  UsuariosReadPort
}

func NewCatalogoQueries(
	productos ProductosReadPort,
	servicios ServiciosReadPort,
	cajas CajasReadPort,
	usuarios UsuariosReadPort,
) CatalogoQueries {
	return &catalogoQueriesImpl{
		productos: productos,
		servicios: servicios,
		cajas:     cajas,
		usuarios:  usuarios,
	}
}

func (q *catalogoQueriesImpl) Productos(ctx context.Context, sess session.Session) ([]ProductoView, error) {
	return q.productos.Listar(ctx, sess.BackendToken)
}

func (q *catalogoQueriesImpl) Servicios(ctx context.Context, sess session.Session) ([]ServicioView, error) {
	return q.servicios.Listar(ctx, sess.BackendToken)
}

func (q *catalogoQueriesImpl) Cajas(ctx context.Context, sess session.Session) ([]CajaView, error) {
	return q.cajas.Listar(ctx, sess.BackendToken)
}

func (q *catalogoQueriesImpl) Usuarios(ctx context.Context, sess session.Session) ([]UsuarioView, error) {
	if !sess.EsAdministrador() {
		return nil, errs.ErrRolInsuficiente
	}
	return q.usuarios.Listar(ctx, sess.BackendToken)
}
