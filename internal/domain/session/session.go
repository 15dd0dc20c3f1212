package session

import (
	"errors"

	"turnos-gateway/internal/domain/usuario"
)

var ErrIncompleta = errors.New("incomplete session")

// Session is the explicit session object threaded through usecases instead of
// ambient key-value lookups. Populated at login, carried inside the gateway
// JWT, cleared at logout. BackendToken is the bearer token the backend issued;
// expiry is the backend's responsibility via token rejection.
type Session struct {
	Cedula       string
	Nombre       string
	Rol          usuario.Rol
	BackendToken string
}

func New(cedula, nombre string, rol usuario.Rol, backendToken string) (Session, error) {
	if cedula == "" || backendToken == "" {
		return Session{}, ErrIncompleta
	}
	return Session{
		Cedula:       cedula,
		Nombre:       nombre,
		Rol:          rol,
		BackendToken: backendToken,
	}, nil
}

func (s Session) EsCliente() bool       { return s.Rol == usuario.RolCliente }
func (s Session) EsCajero() bool        { return s.Rol == usuario.RolCajero }
func (s Session) EsAdministrador() bool { return s.Rol == usuario.RolAdministrador }
