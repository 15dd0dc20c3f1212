//go:build unit

package turno_test

import (
	"testing"
	"time"

	"turnos-gateway/internal/domain/turno"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func turnoEnEspera(id int64) *turno.Turno {
	return &turno.Turno{
		ID:       id,
		Cedula:   "0912345678",
		Servicio: "farmacia",
		Codigo:   "F-042",
		Estado:   turno.EstadoEsperaAtencion,
	}
}

func colaCon(ids ...int64) turno.Cola {
	c := turno.Cola{}
	for _, id := range ids {
		c.Turnos = append(c.Turnos, turno.ResumenTurno{ID: id})
	}
	return c
}

func observacion(t *turno.Turno, actual *turno.TurnoActual, cola turno.Cola) turno.Observacion {
	return turno.Observacion{TieneTurno: t != nil, Turno: t, Actual: actual, Cola: cola}
}

func TestAvanzar(t *testing.T) {
	ahora := time.Date(2025, 7, 22, 10, 0, 0, 0, time.UTC)

	t.Run("turno avanza por la cola sin avisos", func(t *testing.T) {
		prev := turno.Snapshot{}
		snap, avisos := turno.Avanzar(prev, observacion(turnoEnEspera(1), nil, colaCon(7, 8, 1)), ahora)

		require.Empty(t, avisos)
		assert.Equal(t, turno.FaseEnEspera, snap.Fase)
		assert.Equal(t, 2, snap.Posicion)

		snap, avisos = turno.Avanzar(snap, observacion(turnoEnEspera(1), nil, colaCon(8, 1)), ahora)
		require.Empty(t, avisos)
		assert.Equal(t, 1, snap.Posicion)
	})

	t.Run("la observacion se vuelca completa al snapshot", func(t *testing.T) {
		actual := &turno.TurnoActual{ID: 9, Codigo: "F-039", Caja: "caja-2"}
		cola := colaCon(9, 7, 1)

		snap, _ := turno.Avanzar(turno.Snapshot{}, observacion(turnoEnEspera(1), actual, cola), ahora)

		expected := turno.Snapshot{
			TurnoID:  1,
			Codigo:   "F-042",
			Servicio: "farmacia",
			Fase:     turno.FaseEnEspera,
			Posicion: 2,
			Actual:   actual,
			Cola:     cola,
			TomadoEn: ahora,
		}
		if diff := cmp.Diff(expected, snap); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("posicion cero emite aviso proximo exactamente una vez", func(t *testing.T) {
		prev := turno.Snapshot{TurnoID: 1, Fase: turno.FaseEnEspera, Posicion: 1}
		actual := &turno.TurnoActual{ID: 2, Codigo: "F-041", Caja: "caja-1"}

		snap, avisos := turno.Avanzar(prev, observacion(turnoEnEspera(1), actual, colaCon(1)), ahora)
		require.Equal(t, []turno.Aviso{turno.AvisoProximo}, avisos)
		assert.Equal(t, turno.FaseProximo, snap.Fase)

		// Re-observing the same state is a no-op
		for i := 0; i < 3; i++ {
			snap, avisos = turno.Avanzar(snap, observacion(turnoEnEspera(1), actual, colaCon(1)), ahora)
			require.Empty(t, avisos)
			assert.Equal(t, turno.FaseProximo, snap.Fase)
		}
	})

	t.Run("escenario completo: proximo y luego en atencion", func(t *testing.T) {
		snap := turno.Snapshot{TurnoID: 1, Fase: turno.FaseEnEspera, Posicion: 2}

		// poll 1: baja a posicion 1, sin aviso
		snap, avisos := turno.Avanzar(snap, observacion(turnoEnEspera(1), nil, colaCon(9, 1)), ahora)
		require.Empty(t, avisos)
		assert.Equal(t, 1, snap.Posicion)

		// poll 2: posicion 0 con otro turno en atencion -> aviso proximo
		otro := &turno.TurnoActual{ID: 2, Codigo: "F-041", Caja: "caja-1"}
		snap, avisos = turno.Avanzar(snap, observacion(turnoEnEspera(1), otro, colaCon(1)), ahora)
		require.Equal(t, []turno.Aviso{turno.AvisoProximo}, avisos)

		// poll 3: el turno propio pasa a ser el actual -> aviso en atencion
		propio := &turno.TurnoActual{ID: 1, Codigo: "F-042", Caja: "caja-1"}
		snap, avisos = turno.Avanzar(snap, observacion(turnoEnEspera(1), propio, colaCon()), ahora)
		require.Equal(t, []turno.Aviso{turno.AvisoEnAtencion}, avisos)
		assert.Equal(t, turno.FaseEnAtencion, snap.Fase)

		// poll 4: mismo estado, sin aviso adicional
		_, avisos = turno.Avanzar(snap, observacion(turnoEnEspera(1), propio, colaCon()), ahora)
		require.Empty(t, avisos)
	})

	t.Run("salto directo de espera a atencion emite solo un aviso", func(t *testing.T) {
		prev := turno.Snapshot{TurnoID: 1, Fase: turno.FaseEnEspera, Posicion: 1}
		propio := &turno.TurnoActual{ID: 1, Codigo: "F-042", Caja: "caja-2"}

		_, avisos := turno.Avanzar(prev, observacion(turnoEnEspera(1), propio, colaCon()), ahora)
		require.Equal(t, []turno.Aviso{turno.AvisoEnAtencion}, avisos)
	})

	t.Run("sin turno activo pasa a finalizado sin aviso", func(t *testing.T) {
		prev := turno.Snapshot{TurnoID: 1, Fase: turno.FaseEnEspera, Posicion: 0}

		snap, avisos := turno.Avanzar(prev, turno.Observacion{TieneTurno: false}, ahora)
		require.Empty(t, avisos)
		assert.True(t, snap.Finalizado())
	})

	t.Run("turno cancelado pasa a finalizado", func(t *testing.T) {
		cancelado := turnoEnEspera(1)
		cancelado.Estado = turno.EstadoCancelado

		snap, avisos := turno.Avanzar(turno.Snapshot{}, observacion(cancelado, nil, colaCon()), ahora)
		require.Empty(t, avisos)
		assert.True(t, snap.Finalizado())
		assert.Equal(t, "F-042", snap.Codigo)
	})

	t.Run("cambio de turno reinicia el historial de avisos", func(t *testing.T) {
		// prev tracked turno 1 already past proximo; a fresh turno 5 at
		// position 0 must still get its own aviso.
		prev := turno.Snapshot{TurnoID: 1, Fase: turno.FaseEnAtencion}

		_, avisos := turno.Avanzar(prev, observacion(turnoEnEspera(5), nil, colaCon(5)), time.Now())
		require.Equal(t, []turno.Aviso{turno.AvisoProximo}, avisos)
	})
}

func TestColaPosicion(t *testing.T) {
	cola := colaCon(3, 1, 7)

	assert.Equal(t, 0, cola.Posicion(3))
	assert.Equal(t, 2, cola.Posicion(7))
	assert.Equal(t, -1, cola.Posicion(42))
	assert.Equal(t, -1, turno.Cola{}.Posicion(1))
}

func TestNewEstado(t *testing.T) {
	for _, valido := range []string{"espera_atencion", "en_atencion", "atendido", "cancelado"} {
		e, err := turno.NewEstado(valido)
		require.NoError(t, err)
		assert.Equal(t, valido, e.String())
	}

	_, err := turno.NewEstado("pendiente")
	assert.ErrorIs(t, err, turno.ErrEstadoInvalido)

	assert.True(t, turno.EstadoAtendido.Terminal())
	assert.True(t, turno.EstadoCancelado.Terminal())
	assert.False(t, turno.EstadoEsperaAtencion.Terminal())
	assert.True(t, turno.EstadoEsperaAtencion.EnCola())
}
