package api

import (
	"net/http"

	reqdto "turnos-gateway/internal/handler/dto/request"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ClienteHandler struct {
	clienteCommands commands.ClienteCommands
}

func NewClienteHandler(clienteCommands commands.ClienteCommands) *ClienteHandler {
	return &ClienteHandler{
		clienteCommands: clienteCommands,
	}
}

// @Summary Register client
// @Description Self-service client account registration
// @Tags clientes
// @Accept json
// @Produce json
// @Param request body reqdto.RegistrarClienteRequest true "Registration request"
// @Success 201 {object} queries.UsuarioView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clientes [post]
func (h *ClienteHandler) Registrar(c *gin.Context) {
	var req reqdto.RegistrarClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.clienteCommands.Registrar(c.Request.Context(), commands.RegistrarClienteInput{
		Cedula:   req.Cedula,
		Nombre:   req.Nombre,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCedulaYaRegistrada):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Cedula or username already registered",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid registration data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}
