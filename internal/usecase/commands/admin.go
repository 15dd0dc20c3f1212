package commands

import (
	"context"

	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/infra"
	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/pkg/patch"
	"turnos-gateway/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// Per-resource write ports for the admin screens. The backend clients satisfy
// these directly.
type UsuariosAdminPort interface {
	Crear(ctx context.Context, token string, params backend.UsuarioParams) (*queries.UsuarioView, error)
	Actualizar(ctx context.Context, token string, id int64, params backend.UsuarioParams) (*queries.UsuarioView, error)
	Eliminar(ctx context.Context, token string, id int64) error
}

type ProductosAdminPort interface {
	Listar(ctx context.Context, token string) ([]queries.ProductoView, error)
	Crear(ctx context.Context, token string, params backend.ProductoParams) (*queries.ProductoView, error)
	Actualizar(ctx context.Context, token string, id int64, params backend.ProductoParams) (*queries.ProductoView, error)
	Eliminar(ctx context.Context, token string, id int64) error
}

type ServiciosAdminPort interface {
	Crear(ctx context.Context, token string, params backend.ServicioParams) (*queries.ServicioView, error)
	Actualizar(ctx context.Context, token string, id int64, params backend.ServicioParams) (*queries.ServicioView, error)
	Eliminar(ctx context.Context, token string, id int64) error
}

type CajasAdminPort interface {
	Crear(ctx context.Context, token string, params backend.CajaParams) (*queries.CajaView, error)
	Actualizar(ctx context.Context, token string, id int64, params backend.CajaParams) (*queries.CajaView, error)
	Eliminar(ctx context.Context, token string, id int64) error
}

// ProductoPatch uses pointers so a PATCH can touch a subset of fields; the
// missing ones keep their current backend value.
type ProductoPatch struct {
	Nombre      *string
	Descripcion *string
	Precio      *decimal.Decimal
	Stock       *int
}

type AdminCommands interface {
	CrearUsuario(ctx context.Context, sess session.Session, params backend.UsuarioParams) (*queries.UsuarioView, error)
	ActualizarUsuario(ctx context.Context, sess session.Session, id int64, params backend.UsuarioParams) (*queries.UsuarioView, error)
	EliminarUsuario(ctx context.Context, sess session.Session, id int64) error

	CrearProducto(ctx context.Context, sess session.Session, params backend.ProductoParams) (*queries.ProductoView, error)
	ActualizarProducto(ctx context.Context, sess session.Session, id int64, p ProductoPatch) (*queries.ProductoView, error)
	EliminarProducto(ctx context.Context, sess session.Session, id int64) error

	CrearServicio(ctx context.Context, sess session.Session, params backend.ServicioParams) (*queries.ServicioView, error)
	ActualizarServicio(ctx context.Context, sess session.Session, id int64, params backend.ServicioParams) (*queries.ServicioView, error)
	EliminarServicio(ctx context.Context, sess session.Session, id int64) error

	CrearCaja(ctx context.Context, sess session.Session, params backend.CajaParams) (*queries.CajaView, error)
	ActualizarCaja(ctx context.Context, sess session.Session, id int64, params backend.CajaParams) (*queries.CajaView, error)
	EliminarCaja(ctx context.Context, sess session.Session, id int64) error
}

type adminCommandsImpl struct {
	usuarios  UsuariosAdminPort
	productos ProductosAdminPort
	servicios ServiciosAdminPort
	cajas     CajasAdminPort
}

func NewAdminCommands(
	usuarios UsuariosAdminPort,
	productos ProductosAdminPort,
	servicios ServiciosAdminPort,
	cajas CajasAdminPort,
) AdminCommands {
	return &adminCommandsImpl{
		usuarios:  usuarios,
		productos: productos,
		servicios: servicios,
		cajas:     cajas,
	}
}

func guardAdmin(sess session.Session) error {
	if !sess.EsAdministrador() {
		return errs.ErrRolInsuficiente
	}
	return nil
}

func (a *adminCommandsImpl) CrearUsuario(ctx context.Context, sess session.Session, params backend.UsuarioParams) (*queries.UsuarioView, error) {
	if err := guardAdmin(sess); err != nil {
		return nil, err
	}
	return a.usuarios.Crear(ctx, sess.BackendToken, params)
}

func (a *adminCommandsImpl) ActualizarUsuario(ctx context.Context, sess session.Session, id int64, params backend.UsuarioParams) (*queries.UsuarioView, error) {
	if err := guardAdmin(sess); err != nil {
		return nil, err
	}
	view, err := a.usuarios.Actualizar(ctx, sess.BackendToken, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUsuarioNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (a *adminCommandsImpl) EliminarUsuario(ctx context.Context, sess session.Session, id int64) error {
	if err := guardAdmin(sess); err != nil {
		return err
	}
	if err := a.usuarios.Eliminar(ctx, sess.BackendToken, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrUsuarioNotFound)
		}
		return err
	}
	return nil
}

func (a *adminCommandsImpl) CrearProducto(ctx context.Context, sess session.Session, params backend.ProductoParams) (*queries.ProductoView, error) {
	if err := guardAdmin(sess); err != nil {
		return nil, err
	}
	return a.productos.Crear(ctx, sess.BackendToken, params)
}

// ActualizarProducto merges the patch onto the current backend state so a
// partial update does not blank out untouched fields.
func (a *adminCommandsImpl) ActualizarProducto(ctx context.Context, sess session.Session, id int64, p ProductoPatch) (*queries.ProductoView, error) {
	if err := guardAdmin(sess); err != nil {
		return nil, err
	}

	actual, err := a.buscarProducto(ctx, sess.BackendToken, id)
	if err != nil {
		return nil, err
	}

	params := backend.ProductoParams{
		Nombre:      patch.Coalesce(p.Nombre, actual.Nombre),
		Descripcion: patch.Coalesce(p.Descripcion, actual.Descripcion),
		Precio:      patch.Coalesce(p.Precio, actual.Precio),
		Stock:       patch.Coalesce(p.Stock, actual.Stock),
	}
	return a.productos.Actualizar(ctx, sess.BackendToken, id, params)
}

func (a *adminCommandsImpl) EliminarProducto(ctx context.Context, sess session.Session, id int64) error {
	if err := guardAdmin(sess); err != nil {
		return err
	}
	if err := a.productos.Eliminar(ctx, sess.BackendToken, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrProductoNotFound)
		}
		return err
	}
	return nil
}

func (a *adminCommandsImpl) CrearServicio(ctx context.Context, sess session.Session, params backend.ServicioParams) (*queries.ServicioView, error) {
	if err := guardAdmin(sess); err != nil {
		return nil, err
	}
	return a.servicios.Crear(ctx, sess.BackendToken, params)
}

func (a *adminCommandsImpl) ActualizarServicio(ctx context.Context, sess session.Session, id int64, params backend.ServicioParams) (*queries.ServicioView, error) {
	if err := guardAdmin(sess); err != nil {
		return nil, err
	}
	view, err := a.servicios.Actualizar(ctx, sess.BackendToken, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServicioNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (a *adminCommandsImpl) EliminarServicio(ctx context.Context, sess session.Session, id int64) error {
	if err := guardAdmin(sess); err != nil {
		return err
	}
	if err := a.servicios.Eliminar(ctx, sess.BackendToken, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrServicioNotFound)
		}
		return err
	}
	return nil
}

func (a *adminCommandsImpl) CrearCaja(ctx context.Context, sess session.Session, params backend.CajaParams) (*queries.CajaView, error) {
	if err := guardAdmin(sess); err != nil {
		return nil, err
	}
	return a.cajas.Crear(ctx, sess.BackendToken, params)
}

func (a *adminCommandsImpl) ActualizarCaja(ctx context.Context, sess session.Session, id int64, params backend.CajaParams) (*queries.CajaView, error) {
	if err := guardAdmin(sess); err != nil {
		return nil, err
	}
	view, err := a.cajas.Actualizar(ctx, sess.BackendToken, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCajaNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (a *adminCommandsImpl) EliminarCaja(ctx context.Context, sess session.Session, id int64) error {
	if err := guardAdmin(sess); err != nil {
		return err
	}
	if err := a.cajas.Eliminar(ctx, sess.BackendToken, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrCajaNotFound)
		}
		return err
	}
	return nil
}

func (a *adminCommandsImpl) buscarProducto(ctx context.Context, token string, id int64) (*queries.ProductoView, error) {
	productos, err := a.productos.Listar(ctx, token)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load productos")
	}
	for i := range productos {
		if productos[i].ID == id {
			return &productos[i], nil
		}
	}
	return nil, errs.Mark(infra.WrapBackendErr(infra.KindNotFound, "producto not found", nil), errs.ErrProductoNotFound)
}
