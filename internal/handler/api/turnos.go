package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "turnos-gateway/internal/handler/dto/request"
	resdto "turnos-gateway/internal/handler/dto/response"
	"turnos-gateway/internal/handler/middleware"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/poller"
	"turnos-gateway/internal/usecase/commands"
	"turnos-gateway/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const streamHeartbeat = 15 * time.Second

type TurnoHandler struct {
	turnoCommands commands.TurnoCommands
	turnoQueries  queries.TurnoQueries
	pollers       *poller.Manager
}

func NewTurnoHandler(turnoCommands commands.TurnoCommands, turnoQueries queries.TurnoQueries, pollers *poller.Manager) *TurnoHandler {
	return &TurnoHandler{
		turnoCommands: turnoCommands,
		turnoQueries:  turnoQueries,
		pollers:       pollers,
	}
}

// @Summary Request turno
// @Description Request a new queue turn for the authenticated client
// @Tags turnos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SolicitarTurnoRequest true "Turno request"
// @Success 201 {object} resdto.TurnoResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /turnos [post]
func (h *TurnoHandler) Solicitar(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SolicitarTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	nuevo, err := h.turnoCommands.Solicitar(c.Request.Context(), sess, commands.SolicitarTurnoInput{
		Servicio:    req.Servicio,
		Prioritario: req.Prioritario,
	})
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrTurnoYaSolicitado):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Client already has an active turno",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Servicio is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTurno(nuevo))
}

// @Summary Current turno state
// @Description One fresh observation of the client's turno, queue position and the globally served turn
// @Tags turnos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.SeguimientoView
// @Failure 401 {object} map[string]string
// @Router /turnos/mi-turno [get]
func (h *TurnoHandler) MiTurno(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.turnoQueries.EstadoTurno(c.Request.Context(), sess)
	if err != nil {
		if errs.Is(err, errs.ErrNoAutorizado) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Backend unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Turno event stream
// @Description SSE stream of turno snapshots and avisos, refreshed on the polling cadence
// @Tags turnos
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200
// @Failure 401 {object} map[string]string
// @Router /turnos/mi-turno/stream [get]
func (h *TurnoHandler) Stream(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	pol, release := h.pollers.Acquire(sess.Cedula, sess.BackendToken)
	defer release()

	events, cancel := pol.Subscribe()
	defer cancel()
	pol.RefreshOnce()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// Last committed snapshot first so the client renders immediately
	inicial := queries.NewSeguimientoView(pol.CurrentSnapshot(), nil)
	inicial.Stale = !pol.LastCycleOK()
	c.SSEvent("estado", inicial)
	c.Writer.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	for {
		select {
		case <-clientGone:
			return
		case ev, open := <-events:
			if !open {
				return
			}
			c.SSEvent("estado", queries.NewSeguimientoView(ev.Snapshot, ev.Avisos))
			c.Writer.Flush()
			if ev.Snapshot.Finalizado() {
				return
			}
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"stale": !pol.LastCycleOK()})
			c.Writer.Flush()
		}
	}
}

// @Summary Waiting queue
// @Description The ordered waiting queue as the backend ranks it
// @Tags turnos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ColaEntradaView
// @Failure 401 {object} map[string]string
// @Router /turnos/cola [get]
func (h *TurnoHandler) Cola(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cola, err := h.turnoQueries.Cola(c.Request.Context(), sess)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Backend unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, cola)
}

// @Summary Cancel turno
// @Description Cancel a turno. Cancelling one that is already gone is a success.
// @Tags turnos
// @Security BearerAuth
// @Param id path int true "Turno ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /turnos/{id}/cancelar [post]
func (h *TurnoHandler) Cancelar(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid turno ID format",
		})
		return
	}

	if err := h.turnoCommands.Cancelar(c.Request.Context(), sess, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
