//go:build unit || e2e

package builder

import (
	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/domain/usuario"
)

type SessionBuilder struct {
	Cedula       string
	Nombre       string
	Rol          usuario.Rol
	BackendToken string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		Cedula:       "1712345678",
		Nombre:       "Maria Gonzalez",
		Rol:          usuario.RolCliente,
		BackendToken: "backend-bearer-token",
	}
}

func (b *SessionBuilder) WithRol(rol usuario.Rol) *SessionBuilder {
	b.Rol = rol
	return b
}

func (b *SessionBuilder) WithCedula(cedula string) *SessionBuilder {
	b.Cedula = cedula
	return b
}

func (b *SessionBuilder) Build() session.Session {
	return session.Session{
		Cedula:       b.Cedula,
		Nombre:       b.Nombre,
		Rol:          b.Rol,
		BackendToken: b.BackendToken,
	}
}
