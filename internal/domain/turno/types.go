package turno

import (
	"errors"
	"time"
)

var (
	ErrEstadoInvalido = errors.New("invalid turno estado")
	ErrCedulaInvalida = errors.New("invalid cedula")
)

type Estado string

const (
	EstadoEsperaAtencion Estado = "espera_atencion"
	EstadoEnAtencion     Estado = "en_atencion"
	EstadoAtendido       Estado = "atendido"
	EstadoCancelado      Estado = "cancelado"
)

func NewEstado(s string) (Estado, error) {
	switch Estado(s) {
	case EstadoEsperaAtencion, EstadoEnAtencion, EstadoAtendido, EstadoCancelado:
		return Estado(s), nil
	}
	return "", ErrEstadoInvalido
}

func (e Estado) String() string { return string(e) }

// EnCola reports whether the turno is still waiting to be dispatched.
func (e Estado) EnCola() bool { return e == EstadoEsperaAtencion }

// Terminal reports whether the turno left the queue for good. A terminal
// turno is dropped by the poller and the client is sent back to request a
// new one.
func (e Estado) Terminal() bool {
	return e == EstadoAtendido || e == EstadoCancelado
}

// Turno is the local mirror of one queued service request. The backend owns
// its lifecycle; this side only observes it.
type Turno struct {
	ID          int64
	Cedula      string
	Servicio    string
	Caja        *string // nil until dispatched to a register
	Codigo      string  // display code, e.g. "F-042"
	Estado      Estado
	Prioritario bool
	CreadoEn    time.Time
}

// ResumenTurno is the slim shape the cola listing returns per entry.
type ResumenTurno struct {
	ID          int64
	Codigo      string
	Servicio    string
	Prioritario bool
}

// Cola is one poll's view of every waiting turno, already ranked by the
// backend. Rebuilt wholesale on each cycle, never merged incrementally.
type Cola struct {
	Turnos []ResumenTurno
}

// Posicion returns the number of still-waiting turnos ranked ahead of id,
// or -1 when id is not in the queue.
func (c Cola) Posicion(id int64) int {
	for i, t := range c.Turnos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// TurnoActual is the turno currently being served by some caja, if any.
type TurnoActual struct {
	ID     int64
	Codigo string
	Caja   string
}
