package queries

import (
	"context"
	"time"

	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/pkg/clock"
)

// TurnosReadPort covers the three backend reads a tracking cycle combines.
type TurnosReadPort interface {
	TurnoActivoCliente(ctx context.Context, token, cedula string) (bool, *turno.Turno, error)
	TurnoActualGlobal(ctx context.Context, token string) (*turno.TurnoActual, error)
	ColaTurnos(ctx context.Context, token string) (turno.Cola, error)
}

type TurnoActualView struct {
	ID     int64  `json:"id"`
	Codigo string `json:"codigo"`
	Caja   string `json:"caja,omitempty"`
}

type ColaEntradaView struct {
	Posicion    int    `json:"posicion"`
	Codigo      string `json:"codigo"`
	Servicio    string `json:"servicio,omitempty"`
	Prioritario bool   `json:"prioritario"`
}

// SeguimientoView is the wire shape for both the one-shot estado endpoint and
// the SSE stream. Avisos is only populated on stream events that carry one.
type SeguimientoView struct {
	TieneTurno bool              `json:"tiene_turno"`
	TurnoID    int64             `json:"turno_id,omitempty"`
	Codigo     string            `json:"codigo,omitempty"`
	Servicio   string            `json:"servicio,omitempty"`
	Fase       string            `json:"fase"`
	Posicion   int               `json:"posicion"`
	Actual     *TurnoActualView  `json:"turno_actual,omitempty"`
	Cola       []ColaEntradaView `json:"cola"`
	Avisos     []string          `json:"avisos,omitempty"`
	// Stale marks a snapshot whose most recent refresh attempt failed; the
	// data shown is the last one that committed.
	Stale    bool      `json:"stale,omitempty"`
	TomadoEn time.Time `json:"tomado_en"`
}

func NewSeguimientoView(s turno.Snapshot, avisos []turno.Aviso) SeguimientoView {
	view := SeguimientoView{
		TieneTurno: !s.Finalizado(),
		TurnoID:    s.TurnoID,
		Codigo:     s.Codigo,
		Servicio:   s.Servicio,
		Fase:       string(s.Fase),
		Posicion:   s.Posicion,
		Cola:       NewColaView(s.Cola),
		TomadoEn:   s.TomadoEn,
	}
	if s.Actual != nil {
		view.Actual = &TurnoActualView{ID: s.Actual.ID, Codigo: s.Actual.Codigo, Caja: s.Actual.Caja}
	}
	for _, a := range avisos {
		view.Avisos = append(view.Avisos, string(a))
	}
	return view
}

func NewColaView(cola turno.Cola) []ColaEntradaView {
	entradas := make([]ColaEntradaView, 0, len(cola.Turnos))
	for i, t := range cola.Turnos {
		entradas = append(entradas, ColaEntradaView{
			Posicion:    i,
			Codigo:      t.Codigo,
			Servicio:    t.Servicio,
			Prioritario: t.Prioritario,
		})
	}
	return entradas
}

type TurnoQueries interface {
	// EstadoTurno performs one fresh observation of the client's turno. It is
	// the same read-and-fold the background tracker runs, minus the avisos.
	EstadoTurno(ctx context.Context, sess session.Session) (*SeguimientoView, error)
	Cola(ctx context.Context, sess session.Session) ([]ColaEntradaView, error)
}

type turnoQueriesImpl struct {
	port  TurnosReadPort
	clock clock.Clock
}

func NewTurnoQueries(port TurnosReadPort, clk clock.Clock) TurnoQueries {
	return &turnoQueriesImpl{port: port, clock: clk}
}

func (q *turnoQueriesImpl) EstadoTurno(ctx context.Context, sess session.Session) (*SeguimientoView, error) {
	token := sess.BackendToken

	tiene, propio, err := q.port.TurnoActivoCliente(ctx, token, sess.Cedula)
	if err != nil {
		return nil, err
	}

	obs := turno.Observacion{TieneTurno: tiene, Turno: propio}
	if tiene {
		if obs.Actual, err = q.port.TurnoActualGlobal(ctx, token); err != nil {
			return nil, err
		}
		if obs.Cola, err = q.port.ColaTurnos(ctx, token); err != nil {
			return nil, err
		}
	}

	snapshot, _ := turno.Avanzar(turno.Snapshot{}, obs, q.clock.Now())
	view := NewSeguimientoView(snapshot, nil)
	return &view, nil
}

func (q *turnoQueriesImpl) Cola(ctx context.Context, sess session.Session) ([]ColaEntradaView, error) {
	cola, err := q.port.ColaTurnos(ctx, sess.BackendToken)
	if err != nil {
		return nil, err
	}
	return NewColaView(cola), nil
}
