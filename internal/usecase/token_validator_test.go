//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/pkg/jwt"
	"turnos-gateway/internal/usecase"
	"turnos-gateway/tests/common/builder"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestValidateToken(t *testing.T) {
	sess := builder.NewSessionBuilder().Build()

	t.Run("valid token rebuilds the session", func(t *testing.T) {
		svc := jwt.NewService(testSecret, time.Hour)
		token, err := svc.GenerateToken(sess)
		require.NoError(t, err)

		validator := usecase.NewTokenValidator(svc)
		got, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, sess.Cedula, got.Cedula)
		assert.Equal(t, sess.Rol, got.Rol)
		assert.Equal(t, sess.BackendToken, got.BackendToken)
	})

	t.Run("expired token marks ErrSesionExpirada", func(t *testing.T) {
		svc := jwt.NewService(testSecret, -time.Minute)
		token, err := svc.GenerateToken(sess)
		require.NoError(t, err)

		validator := usecase.NewTokenValidator(svc)
		_, err = validator.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSesionExpirada))
		assert.False(t, errs.Is(err, errs.ErrSesionInvalida))
	})

	t.Run("garbage token marks ErrSesionInvalida", func(t *testing.T) {
		validator := usecase.NewTokenValidator(jwt.NewService(testSecret, time.Hour))
		_, err := validator.ValidateToken("not-a-jwt")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSesionInvalida))
	})

	t.Run("token signed with another secret marks ErrSesionInvalida", func(t *testing.T) {
		other := jwt.NewService("some-other-secret", time.Hour)
		token, err := other.GenerateToken(sess)
		require.NoError(t, err)

		validator := usecase.NewTokenValidator(jwt.NewService(testSecret, time.Hour))
		_, err = validator.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSesionInvalida))
	})

	t.Run("unknown rol claim marks ErrSesionInvalida", func(t *testing.T) {
		now := time.Now()
		claims := jwt.Claims{
			Cedula: sess.Cedula,
			Nombre: sess.Nombre,
			Rol:    "superusuario",
			RegisteredClaims: jwtlib.RegisteredClaims{
				IssuedAt:  jwtlib.NewNumericDate(now),
				ExpiresAt: jwtlib.NewNumericDate(now.Add(time.Hour)),
			},
		}
		token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		validator := usecase.NewTokenValidator(jwt.NewService(testSecret, time.Hour))
		_, err = validator.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrSesionInvalida))
		_, rolErr := usuario.NewRol("superusuario")
		assert.Error(t, rolErr)
	})
}
