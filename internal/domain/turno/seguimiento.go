package turno

import "time"

// Fase is the client-side view of where a tracked turno stands. It is derived
// purely from observed backend state; transitions between fases are what
// trigger user-facing avisos.
type Fase string

const (
	FaseDesconocida Fase = "desconocida"
	FaseEnEspera    Fase = "en_espera"
	FaseProximo     Fase = "proximo"
	FaseEnAtencion  Fase = "en_atencion"
	FaseFinalizada  Fase = "finalizada"
)

type Aviso string

const (
	AvisoProximo    Aviso = "turno_proximo"
	AvisoEnAtencion Aviso = "turno_en_atencion"
)

// Observacion is the combined result of one refresh cycle's three reads.
// It is only ever built whole; a cycle that cannot fill every field fails.
type Observacion struct {
	TieneTurno bool
	Turno      *Turno
	Actual     *TurnoActual
	Cola       Cola
}

// Snapshot is the immutable state published to subscribers after each
// successful cycle.
type Snapshot struct {
	TurnoID  int64
	Codigo   string
	Servicio string
	Fase     Fase
	Posicion int // -1 when not applicable
	Actual   *TurnoActual
	Cola     Cola
	TomadoEn time.Time
}

func (s Snapshot) Finalizado() bool { return s.Fase == FaseFinalizada }

// Avanzar folds a fresh observation into the previous snapshot and returns
// the avisos owed for the transition. It is pure: calling it again with the
// same observation yields the same snapshot and no avisos, which is what
// makes notification delivery at-most-once across polls.
func Avanzar(prev Snapshot, obs Observacion, ahora time.Time) (Snapshot, []Aviso) {
	if !obs.TieneTurno || obs.Turno == nil || obs.Turno.Estado.Terminal() {
		next := Snapshot{Fase: FaseFinalizada, Posicion: -1, TomadoEn: ahora}
		if obs.Turno != nil {
			next.TurnoID = obs.Turno.ID
			next.Codigo = obs.Turno.Codigo
			next.Servicio = obs.Turno.Servicio
		}
		return next, nil
	}

	t := obs.Turno
	next := Snapshot{
		TurnoID:  t.ID,
		Codigo:   t.Codigo,
		Servicio: t.Servicio,
		Posicion: obs.Cola.Posicion(t.ID),
		Actual:   obs.Actual,
		Cola:     obs.Cola,
		TomadoEn: ahora,
	}

	enAtencion := t.Estado == EstadoEnAtencion ||
		(obs.Actual != nil && obs.Actual.ID == t.ID)

	switch {
	case enAtencion:
		next.Fase = FaseEnAtencion
	case next.Posicion == 0:
		next.Fase = FaseProximo
	default:
		next.Fase = FaseEnEspera
	}

	// A different turno id means the previous snapshot tracked another turno;
	// its fase history must not suppress avisos for this one.
	prevFase := prev.Fase
	if prev.TurnoID != t.ID {
		prevFase = FaseDesconocida
	}

	var avisos []Aviso
	if next.Fase == FaseProximo && prevFase != FaseProximo && prevFase != FaseEnAtencion {
		avisos = append(avisos, AvisoProximo)
	}
	if next.Fase == FaseEnAtencion && prevFase != FaseEnAtencion {
		avisos = append(avisos, AvisoEnAtencion)
	}
	return next, avisos
}
