//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"turnos-gateway/internal/domain/factura"
	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/queries"
	"turnos-gateway/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFacturasLister struct {
	mock.Mock
}

func (m *MockFacturasLister) Listar(ctx context.Context, token string) ([]factura.Factura, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]factura.Factura), args.Error(1)
}

type MockTurnosLister struct {
	mock.Mock
}

func (m *MockTurnosLister) Listar(ctx context.Context, token string) ([]turno.Turno, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]turno.Turno), args.Error(1)
}

func TestResumen(t *testing.T) {
	loc := time.FixedZone("America/Guayaquil", -5*60*60)
	dia := time.Date(2025, 6, 15, 0, 0, 0, 0, loc)
	admin := builder.NewSessionBuilder().WithRol(usuario.RolAdministrador).Build()

	facturas := []factura.Factura{
		builderFactura("FAC-0001", "jperez", "2025-06-15T09:30:00", 12.50),
		builderFactura("FAC-0002", "jperez", "15/06/2025 10:00:00 a. m.", 7.25),
		builderFactura("FAC-0003", "lmora", "2025-06-15T16:45:00", 3.00),
		builderFactura("FAC-0004", "jperez", "2025-06-14T23:00:00", 99.99), // previous day
		builderFactura("FAC-0005", "", "2025-06-15T11:00:00", 5.00),        // no cajero attribution
	}
	turnos := []turno.Turno{
		builderTurno(1, turno.EstadoAtendido, time.Date(2025, 6, 15, 9, 0, 0, 0, loc)),
		builderTurno(2, turno.EstadoAtendido, time.Date(2025, 6, 15, 10, 0, 0, 0, loc)),
		builderTurno(3, turno.EstadoCancelado, time.Date(2025, 6, 15, 11, 0, 0, 0, loc)),
		builderTurno(4, turno.EstadoAtendido, time.Date(2025, 6, 14, 9, 0, 0, 0, loc)),
		builderTurno(5, turno.EstadoEsperaAtencion, time.Date(2025, 6, 15, 12, 0, 0, 0, loc)),
		builderTurno(6, turno.EstadoAtendido, time.Time{}), // backend row without a timestamp
	}

	t.Run("success: aggregates ventas and turnos for the day", func(t *testing.T) {
		mockFacturas := new(MockFacturasLister)
		mockTurnos := new(MockTurnosLister)
		mockFacturas.On("Listar", mock.Anything, admin.BackendToken).Return(facturas, nil)
		mockTurnos.On("Listar", mock.Anything, admin.BackendToken).Return(turnos, nil)

		q := queries.NewEstadisticasQueries(mockFacturas, mockTurnos, loc)
		view, err := q.Resumen(context.Background(), admin, dia)

		require.NoError(t, err)
		assert.True(t, view.TotalVentas.Equal(decimal.NewFromFloat(27.75)),
			"total %s != 27.75", view.TotalVentas)
		assert.Equal(t, 4, view.NumeroFacturas)
		assert.Equal(t, 2, view.TurnosAtendidos)
		assert.Equal(t, 1, view.TurnosCancelados)
		assert.Equal(t, map[string]int{"farmacia": 4}, view.TurnosPorServicio)

		require.Len(t, view.VentasPorCajero, 2)
		assert.True(t, view.VentasPorCajero["jperez"].Equal(decimal.NewFromFloat(19.75)))
		assert.True(t, view.VentasPorCajero["lmora"].Equal(decimal.NewFromFloat(3.00)))
	})

	t.Run("error: non-admin gets rol insuficiente", func(t *testing.T) {
		q := queries.NewEstadisticasQueries(new(MockFacturasLister), new(MockTurnosLister), loc)
		_, err := q.Resumen(context.Background(), builder.NewSessionBuilder().Build(), dia)

		assert.ErrorIs(t, err, errs.ErrRolInsuficiente)
	})
}

func builderFactura(codigo, cajero, fecha string, total float64) factura.Factura {
	f := builder.NewFacturaBuilder().WithCajero(cajero).WithFecha(fecha).Build()
	f.Codigo = codigo
	f.Total = decimal.NewFromFloat(total)
	return f
}

func builderTurno(id int64, estado turno.Estado, creado time.Time) turno.Turno {
	t := builder.NewTurnoBuilder().WithEstado(estado).Build()
	t.ID = id
	t.CreadoEn = creado
	return t
}
