package usecase

import (
	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/pkg/jwt"
)

// TokenValidator rebuilds the session from a gateway token for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (session.Session, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (session.Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		if errs.Is(err, jwt.ErrExpiredToken) {
			return session.Session{}, errs.Mark(err, errs.ErrSesionExpirada)
		}
		return session.Session{}, errs.Mark(err, errs.ErrSesionInvalida)
	}

	rol, err := usuario.NewRol(claims.Rol)
	if err != nil {
		return session.Session{}, errs.Mark(err, errs.ErrSesionInvalida)
	}

	return session.New(claims.Cedula, claims.Nombre, rol, claims.BackendToken)
}
