package api

import (
	"net/http"
	"strconv"
	"time"

	"turnos-gateway/internal/domain/session"
	reqdto "turnos-gateway/internal/handler/dto/request"
	"turnos-gateway/internal/handler/httperr"
	"turnos-gateway/internal/handler/middleware"
	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/pkg/clock"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/commands"
	"turnos-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminCommands       commands.AdminCommands
	catalogoQueries     queries.CatalogoQueries
	estadisticasQueries queries.EstadisticasQueries
	clock               clock.Clock
	loc                 *time.Location
}

func NewAdminHandler(
	adminCommands commands.AdminCommands,
	catalogoQueries queries.CatalogoQueries,
	estadisticasQueries queries.EstadisticasQueries,
	clk clock.Clock,
	loc *time.Location,
) *AdminHandler {
	return &AdminHandler{
		adminCommands:       adminCommands,
		catalogoQueries:     catalogoQueries,
		estadisticasQueries: estadisticasQueries,
		clock:               clk,
		loc:                 loc,
	}
}

// @Summary List usuarios
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UsuarioView
// @Failure 403 {object} map[string]string
// @Router /admin/usuarios [get]
func (h *AdminHandler) ListarUsuarios(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		abortInternal(c)
		return
	}

	views, err := h.catalogoQueries.Usuarios(c.Request.Context(), sess)
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create usuario
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UsuarioRequest true "Usuario"
// @Success 201 {object} queries.UsuarioView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/usuarios [post]
func (h *AdminHandler) CrearUsuario(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		abortInternal(c)
		return
	}

	var req reqdto.UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	view, err := h.adminCommands.CrearUsuario(c.Request.Context(), sess, usuarioParams(req))
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update usuario
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Param request body reqdto.UsuarioRequest true "Usuario"
// @Success 200 {object} queries.UsuarioView
// @Failure 404 {object} map[string]string
// @Router /admin/usuarios/{id} [put]
func (h *AdminHandler) ActualizarUsuario(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	var req reqdto.UsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	view, err := h.adminCommands.ActualizarUsuario(c.Request.Context(), sess, id, usuarioParams(req))
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete usuario
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/usuarios/{id} [delete]
func (h *AdminHandler) EliminarUsuario(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	if err := h.adminCommands.EliminarUsuario(c.Request.Context(), sess, id); err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create producto
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductoRequest true "Producto"
// @Success 201 {object} queries.ProductoView
// @Failure 400 {object} map[string]string
// @Router /admin/productos [post]
func (h *AdminHandler) CrearProducto(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		abortInternal(c)
		return
	}

	var req reqdto.ProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	view, err := h.adminCommands.CrearProducto(c.Request.Context(), sess, backend.ProductoParams{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
	})
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update producto
// @Description Partial update; omitted fields keep their current value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Producto ID"
// @Param request body reqdto.ProductoPatchRequest true "Fields to change"
// @Success 200 {object} queries.ProductoView
// @Failure 404 {object} map[string]string
// @Router /admin/productos/{id} [patch]
func (h *AdminHandler) ActualizarProducto(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	var req reqdto.ProductoPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	view, err := h.adminCommands.ActualizarProducto(c.Request.Context(), sess, id, commands.ProductoPatch{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Precio:      req.Precio,
		Stock:       req.Stock,
	})
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete producto
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Producto ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/productos/{id} [delete]
func (h *AdminHandler) EliminarProducto(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	if err := h.adminCommands.EliminarProducto(c.Request.Context(), sess, id); err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create servicio
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ServicioRequest true "Servicio"
// @Success 201 {object} queries.ServicioView
// @Failure 400 {object} map[string]string
// @Router /admin/servicios [post]
func (h *AdminHandler) CrearServicio(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		abortInternal(c)
		return
	}

	var req reqdto.ServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	view, err := h.adminCommands.CrearServicio(c.Request.Context(), sess, servicioParams(req))
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update servicio
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Servicio ID"
// @Param request body reqdto.ServicioRequest true "Servicio"
// @Success 200 {object} queries.ServicioView
// @Failure 404 {object} map[string]string
// @Router /admin/servicios/{id} [put]
func (h *AdminHandler) ActualizarServicio(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	var req reqdto.ServicioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	view, err := h.adminCommands.ActualizarServicio(c.Request.Context(), sess, id, servicioParams(req))
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete servicio
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Servicio ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/servicios/{id} [delete]
func (h *AdminHandler) EliminarServicio(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	if err := h.adminCommands.EliminarServicio(c.Request.Context(), sess, id); err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create caja
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CajaRequest true "Caja"
// @Success 201 {object} queries.CajaView
// @Failure 400 {object} map[string]string
// @Router /admin/cajas [post]
func (h *AdminHandler) CrearCaja(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		abortInternal(c)
		return
	}

	var req reqdto.CajaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	view, err := h.adminCommands.CrearCaja(c.Request.Context(), sess, cajaParams(req))
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update caja
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Caja ID"
// @Param request body reqdto.CajaRequest true "Caja"
// @Success 200 {object} queries.CajaView
// @Failure 404 {object} map[string]string
// @Router /admin/cajas/{id} [put]
func (h *AdminHandler) ActualizarCaja(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	var req reqdto.CajaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c)
		return
	}

	view, err := h.adminCommands.ActualizarCaja(c.Request.Context(), sess, id, cajaParams(req))
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete caja
// @Tags admin
// @Security BearerAuth
// @Param id path int true "Caja ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/cajas/{id} [delete]
func (h *AdminHandler) EliminarCaja(c *gin.Context) {
	sess, id, ok := h.sessionAndID(c)
	if !ok {
		return
	}

	if err := h.adminCommands.EliminarCaja(c.Request.Context(), sess, id); err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Daily statistics
// @Description Sales totals, per-cashier breakdown and turno counts for one day
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param dia query string false "Day, YYYY-MM-DD"
// @Success 200 {object} queries.EstadisticasView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/estadisticas [get]
func (h *AdminHandler) Estadisticas(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		abortInternal(c)
		return
	}

	dia := h.clock.Now().In(h.loc)
	if raw := c.Query("dia"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, h.loc)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid dia format, expected YYYY-MM-DD",
			})
			return
		}
		dia = parsed
	}

	view, err := h.estadisticasQueries.Resumen(c.Request.Context(), sess, dia)
	if err != nil {
		h.writeCRUDError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AdminHandler) sessionAndID(c *gin.Context) (session.Session, int64, bool) {
	sess, found := middleware.GetSession(c)
	if !found {
		abortInternal(c)
		return session.Session{}, 0, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return session.Session{}, 0, false
	}
	return sess, id, true
}

func (h *AdminHandler) writeCRUDError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrRolInsuficiente):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errs.Is(err, errs.ErrUsuarioNotFound),
		errs.Is(err, errs.ErrProductoNotFound),
		errs.Is(err, errs.ErrServicioNotFound),
		errs.Is(err, errs.ErrCajaNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Backend unavailable", nil)
	}
}

func usuarioParams(req reqdto.UsuarioRequest) backend.UsuarioParams {
	return backend.UsuarioParams{
		Cedula:   req.Cedula,
		Nombre:   req.Nombre,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Rol:      req.Rol,
		Activo:   req.Activo,
	}
}

func servicioParams(req reqdto.ServicioRequest) backend.ServicioParams {
	return backend.ServicioParams{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Activo:      req.Activo,
	}
}

func cajaParams(req reqdto.CajaRequest) backend.CajaParams {
	return backend.CajaParams{
		Nombre: req.Nombre,
		Activa: req.Activa,
		Cajero: req.Cajero,
	}
}

func abortInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}

func abortBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid request format",
	})
}
