package api

import (
	"net/http"

	reqdto "turnos-gateway/internal/handler/dto/request"
	resdto "turnos-gateway/internal/handler/dto/response"
	"turnos-gateway/internal/handler/middleware"
	"turnos-gateway/internal/pkg/config"
	"turnos-gateway/internal/pkg/cookie"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cfg:          cfg,
	}
}

// @Summary User login
// @Description Login with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credenciales, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), credenciales)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCredencialesInvalidas):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid username or password",
			})
		case errs.Is(err, commands.ErrRolDesconocido):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account has no recognized role",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cfg.Cookie, result.Token, h.cfg.JWT.Duration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		Usuario:     resdto.FromSession(result.Sesion),
	})
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// The session lives entirely in the cookie; clearing it is the logout.
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current session
// @Description Get the authenticated user's identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UsuarioInfo
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSession(sess))
}
