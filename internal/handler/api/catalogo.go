package api

import (
	"net/http"

	"turnos-gateway/internal/handler/middleware"
	"turnos-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct {
	catalogoQueries queries.CatalogoQueries
}

func NewCatalogoHandler(catalogoQueries queries.CatalogoQueries) *CatalogoHandler {
	return &CatalogoHandler{
		catalogoQueries: catalogoQueries,
	}
}

// @Summary List servicios
// @Description Services available for turno requests
// @Tags catalogo
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ServicioView
// @Failure 401 {object} map[string]string
// @Router /servicios [get]
func (h *CatalogoHandler) Servicios(c *gin.Context) {
	h.listar(c, func(c *gin.Context) (any, error) {
		sess, _ := middleware.GetSession(c)
		return h.catalogoQueries.Servicios(c.Request.Context(), sess)
	})
}

// @Summary List productos
// @Description Product catalog for the cashier screen
// @Tags catalogo
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ProductoView
// @Failure 401 {object} map[string]string
// @Router /productos [get]
func (h *CatalogoHandler) Productos(c *gin.Context) {
	h.listar(c, func(c *gin.Context) (any, error) {
		sess, _ := middleware.GetSession(c)
		return h.catalogoQueries.Productos(c.Request.Context(), sess)
	})
}

// @Summary List cajas
// @Description Registers and their assigned cashiers
// @Tags catalogo
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CajaView
// @Failure 401 {object} map[string]string
// @Router /cajas [get]
func (h *CatalogoHandler) Cajas(c *gin.Context) {
	h.listar(c, func(c *gin.Context) (any, error) {
		sess, _ := middleware.GetSession(c)
		return h.catalogoQueries.Cajas(c.Request.Context(), sess)
	})
}

func (h *CatalogoHandler) listar(c *gin.Context, fetch func(c *gin.Context) (any, error)) {
	if _, ok := middleware.GetSession(c); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := fetch(c)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Backend unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}
