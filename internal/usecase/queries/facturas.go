package queries

import (
	"context"
	"time"

	"turnos-gateway/internal/domain/factura"
	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type FacturasReadPort interface {
	Listar(ctx context.Context, token string) ([]factura.Factura, error)
}

type FacturaQueries interface {
	// ListarPorDia returns the invoices issued on dia, as seen from the
	// gateway's timezone. Invoices with unparseable fechas are skipped, not
	// errored, so one bad row never blanks the cashier's daily report.
	ListarPorDia(ctx context.Context, sess session.Session, dia time.Time) ([]FacturaView, error)
}

type facturaQueriesImpl struct {
	port FacturasReadPort
	loc  *time.Location
}

func NewFacturaQueries(port FacturasReadPort, loc *time.Location) FacturaQueries {
	return &facturaQueriesImpl{port: port, loc: loc}
}

func (q *facturaQueriesImpl) ListarPorDia(ctx context.Context, sess session.Session, dia time.Time) ([]FacturaView, error) {
	if !sess.EsCajero() && !sess.EsAdministrador() {
		return nil, errs.ErrRolInsuficiente
	}

	facturas, err := q.port.Listar(ctx, sess.BackendToken)
	if err != nil {
		return nil, err
	}

	views := make([]FacturaView, 0, len(facturas))
	for _, f := range facturas {
		if !factura.MatchesDay(f.Fecha, dia, q.loc) {
			continue
		}
		var view FacturaView
		if err := copier.Copy(&view, &f); err != nil {
			return nil, errs.Wrap(err, "failed to map factura")
		}
		views = append(views, view)
	}
	return views, nil
}
