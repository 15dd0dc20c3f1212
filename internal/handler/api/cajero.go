package api

import (
	"net/http"
	"time"

	reqdto "turnos-gateway/internal/handler/dto/request"
	resdto "turnos-gateway/internal/handler/dto/response"
	"turnos-gateway/internal/handler/middleware"
	"turnos-gateway/internal/pkg/clock"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/commands"
	"turnos-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CajeroHandler struct {
	checkoutCommands commands.CheckoutCommands
	facturaQueries   queries.FacturaQueries
	clock            clock.Clock
	loc              *time.Location
}

func NewCajeroHandler(checkoutCommands commands.CheckoutCommands, facturaQueries queries.FacturaQueries, clk clock.Clock, loc *time.Location) *CajeroHandler {
	return &CajeroHandler{
		checkoutCommands: checkoutCommands,
		facturaQueries:   facturaQueries,
		clock:            clk,
		loc:              loc,
	}
}

// @Summary Create invoice
// @Description Submit the cashier cart as a new invoice
// @Tags cajero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CrearFacturaRequest true "Invoice request"
// @Success 201 {object} resdto.FacturaCreadaResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cajero/facturas [post]
func (h *CajeroHandler) CrearFactura(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CrearFacturaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input := commands.CheckoutInput{
		CedulaCliente: req.CedulaCliente,
		TurnoID:       req.TurnoID,
	}
	for _, item := range req.Items {
		input.Lineas = append(input.Lineas, commands.LineaCarrito{
			ProductoID: item.ProductoID,
			Cantidad:   item.Cantidad,
		})
	}

	result, err := h.checkoutCommands.CrearFactura(c.Request.Context(), sess, input)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrCarritoVacio):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errs.Is(err, errs.ErrProductoNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown producto in cart",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid cart data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromFacturaCreada(result.Factura, result.TotalEstimado)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// @Summary List invoices by day
// @Description List the invoices issued on a calendar day (defaults to today)
// @Tags cajero
// @Produce json
// @Security BearerAuth
// @Param dia query string false "Day, YYYY-MM-DD"
// @Success 200 {array} queries.FacturaView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cajero/facturas [get]
func (h *CajeroHandler) FacturasPorDia(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	dia, err := h.parseDia(c.Query("dia"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dia format, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.facturaQueries.ListarPorDia(c.Request.Context(), sess, dia)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrRolInsuficiente):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errs.Is(err, errs.ErrNoAutorizado):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Backend unavailable",
			})
		}
		return
	}

	c.JSON(http.StatusOK, views)
}

func (h *CajeroHandler) parseDia(raw string) (time.Time, error) {
	if raw == "" {
		return h.clock.Now().In(h.loc), nil
	}
	return time.ParseInLocation("2006-01-02", raw, h.loc)
}
