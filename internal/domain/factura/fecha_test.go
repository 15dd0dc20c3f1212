//go:build unit

package factura_test

import (
	"testing"
	"time"

	"turnos-gateway/internal/domain/factura"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// UTC-5, no DST, matches the deployment timezone
var guayaquil = time.FixedZone("America/Guayaquil", -5*60*60)

func dia(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, guayaquil)
}

func TestMatchesDay(t *testing.T) {
	type testCase struct {
		name  string
		fecha string
		dia   time.Time
		want  bool
	}

	cases := []testCase{
		{
			// 23:50 UTC is 18:50 local on the same day; a UTC-day comparison
			// would also pass here, the next case is the discriminating one
			name:  "ISO cerca de medianoche local cae en el dia local",
			fecha: "2025-07-22T23:50:00.000000Z",
			dia:   dia(2025, 7, 22),
			want:  true,
		},
		{
			// 02:30 UTC on the 23rd is 21:30 local on the 22nd
			name:  "ISO del dia siguiente en UTC pertenece al dia local anterior",
			fecha: "2025-07-23T02:30:00Z",
			dia:   dia(2025, 7, 22),
			want:  true,
		},
		{
			name:  "ISO del dia siguiente en UTC no coincide con su dia UTC",
			fecha: "2025-07-23T02:30:00Z",
			dia:   dia(2025, 7, 23),
			want:  false,
		},
		{
			name:  "ISO sin fraccion de segundo",
			fecha: "2025-07-22T10:00:00Z",
			dia:   dia(2025, 7, 22),
			want:  true,
		},
		{
			name:  "formato localizado con p. m. espaciado",
			fecha: "22/07/2025 11:05:15 p. m.",
			dia:   dia(2025, 7, 22),
			want:  true,
		},
		{
			name:  "formato localizado con a.m. compacto",
			fecha: "22/07/2025 08:15:00 a.m.",
			dia:   dia(2025, 7, 22),
			want:  true,
		},
		{
			name:  "formato localizado en mayusculas",
			fecha: "22/07/2025 11:05:15 PM",
			dia:   dia(2025, 7, 22),
			want:  true,
		},
		{
			name:  "formato localizado sin meridiano usa 24 horas",
			fecha: "22/07/2025 23:05:15",
			dia:   dia(2025, 7, 22),
			want:  true,
		},
		{
			name:  "dia distinto no coincide",
			fecha: "21/07/2025 11:05:15 p. m.",
			dia:   dia(2025, 7, 22),
			want:  false,
		},
		{
			name:  "texto arbitrario no coincide y no lanza",
			fecha: "not-a-date",
			dia:   dia(2025, 7, 22),
			want:  false,
		},
		{
			name:  "cadena vacia no coincide",
			fecha: "",
			dia:   dia(2025, 7, 22),
			want:  false,
		},
		{
			name:  "fecha con barras pero malformada no coincide",
			fecha: "99/99/2025 11:05:15 p. m.",
			dia:   dia(2025, 7, 22),
			want:  false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, factura.MatchesDay(tc.fecha, tc.dia, guayaquil))
		})
	}
}

func TestSumarDia(t *testing.T) {
	facturas := []factura.Factura{
		{Total: decimal.RequireFromString("10.50"), Fecha: "2025-07-22T20:00:00Z"},
		{Total: decimal.RequireFromString("4.25"), Fecha: "22/07/2025 09:30:00 a. m."},
		{Total: decimal.RequireFromString("99.99"), Fecha: "2025-07-21T12:00:00Z"},
		{Total: decimal.RequireFromString("1.00"), Fecha: "garbage"},
	}

	total, count := factura.SumarDia(facturas, dia(2025, 7, 22), guayaquil)

	assert.Equal(t, 2, count)
	assert.True(t, total.Equal(decimal.RequireFromString("14.75")), "got %s", total)
}

func TestTotalItems(t *testing.T) {
	items := []factura.Item{
		{Producto: "Paracetamol", Cantidad: 2, PrecioUnitario: decimal.RequireFromString("1.50"), Subtotal: decimal.RequireFromString("3.00")},
		{Producto: "Ibuprofeno", Cantidad: 1, PrecioUnitario: decimal.RequireFromString("2.75"), Subtotal: decimal.RequireFromString("2.75")},
	}

	total := factura.TotalItems(items)
	require.True(t, total.Equal(decimal.RequireFromString("5.75")), "got %s", total)

	assert.True(t, factura.TotalItems(nil).IsZero())
}
