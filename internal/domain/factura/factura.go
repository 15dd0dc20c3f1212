package factura

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factura mirrors one invoice as listed by the backend. Fecha keeps the raw
// wire string because the backend emits two different formats; use MatchesDay
// for any calendar comparison instead of parsing it ad hoc.
type Factura struct {
	ID            int64
	Codigo        string
	CedulaCliente string
	NombreCliente string
	Cajero        string
	Items         []Item
	Total         decimal.Decimal
	Fecha         string
}

type Item struct {
	Producto       string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
}

// TotalItems recomputes the invoice total from its lines. Display only; the
// backend total is authoritative.
func TotalItems(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	return total
}

// SumarDia adds up the totals of the facturas whose fecha falls on dia in loc.
func SumarDia(facturas []Factura, dia time.Time, loc *time.Location) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for _, f := range facturas {
		if MatchesDay(f.Fecha, dia, loc) {
			total = total.Add(f.Total)
			count++
		}
	}
	return total, count
}
