package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/pkg/cookie"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxSessionKey = "session"

var rolHierarchy = map[usuario.Rol]int{
	usuario.RolCliente:       1,
	usuario.RolCajero:        2,
	usuario.RolAdministrador: 3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session token required",
			})
			c.Abort()
			return
		}

		sess, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			msg := "Invalid session"
			if errs.Is(err, errs.ErrSesionExpirada) {
				msg = "Session expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": msg,
			})
			c.Abort()
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

func hasMinimumRol(rol, minRol usuario.Rol) bool {
	level, ok := rolHierarchy[rol]
	minLevel, minOK := rolHierarchy[minRol]
	return ok && minOK && level >= minLevel
}

func (m *AuthMiddleware) RequireRolAtLeast(minRol usuario.Rol) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRol(sess.Rol, minRol) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetSession(c *gin.Context) (session.Session, bool) {
	value, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}

	sess, ok := value.(session.Session)
	return sess, ok
}
