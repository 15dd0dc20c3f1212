package queries

import (
	"context"
	"time"

	"turnos-gateway/internal/domain/factura"
	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type TurnosListPort interface {
	Listar(ctx context.Context, token string) ([]turno.Turno, error)
}

// EstadisticasQueries aggregates the admin dashboard numbers from the raw
// backend listings. All day-bucketing happens gateway-side in loc.
type EstadisticasQueries interface {
	Resumen(ctx context.Context, sess session.Session, dia time.Time) (*EstadisticasView, error)
}

type estadisticasQueriesImpl struct {
	facturas FacturasReadPort
	turnos   TurnosListPort
	loc      *time.Location
}

func NewEstadisticasQueries(facturas FacturasReadPort, turnos TurnosListPort, loc *time.Location) EstadisticasQueries {
	return &estadisticasQueriesImpl{facturas: facturas, turnos: turnos, loc: loc}
}

func (q *estadisticasQueriesImpl) Resumen(ctx context.Context, sess session.Session, dia time.Time) (*EstadisticasView, error) {
	if !sess.EsAdministrador() {
		return nil, errs.ErrRolInsuficiente
	}
	token := sess.BackendToken

	facturas, err := q.facturas.Listar(ctx, token)
	if err != nil {
		return nil, err
	}
	turnos, err := q.turnos.Listar(ctx, token)
	if err != nil {
		return nil, err
	}

	view := &EstadisticasView{Dia: dia}
	view.TotalVentas, view.NumeroFacturas = factura.SumarDia(facturas, dia, q.loc)

	porCajero := make(map[string]decimal.Decimal)
	for _, f := range facturas {
		if f.Cajero == "" || !factura.MatchesDay(f.Fecha, dia, q.loc) {
			continue
		}
		porCajero[f.Cajero] = porCajero[f.Cajero].Add(f.Total)
	}
	if len(porCajero) > 0 {
		view.VentasPorCajero = porCajero
	}

	porServicio := make(map[string]int)
	y, m, d := dia.In(q.loc).Date()
	for _, t := range turnos {
		if t.CreadoEn.IsZero() {
			continue
		}
		ty, tm, td := t.CreadoEn.In(q.loc).Date()
		if ty != y || tm != m || td != d {
			continue
		}
		if t.Servicio != "" {
			porServicio[t.Servicio]++
		}
		switch t.Estado {
		case turno.EstadoAtendido:
			view.TurnosAtendidos++
		case turno.EstadoCancelado:
			view.TurnosCancelados++
		}
	}
	if len(porServicio) > 0 {
		view.TurnosPorServicio = porServicio
	}
	return view, nil
}
