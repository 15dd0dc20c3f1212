package commands

import (
	"context"

	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/infra"
	"turnos-gateway/internal/pkg/errs"
)

// TurnosPort covers the mutating /turnos endpoints.
type TurnosPort interface {
	Solicitar(ctx context.Context, token, cedula, servicio string, prioritario bool) (*turno.Turno, error)
	Cancelar(ctx context.Context, token string, id int64) error
}

type SolicitarTurnoInput struct {
	Servicio    string
	Prioritario bool
}

type TurnoCommands interface {
	Solicitar(ctx context.Context, sess session.Session, input SolicitarTurnoInput) (*turno.Turno, error)
	Cancelar(ctx context.Context, sess session.Session, id int64) error
}

type turnoCommandsImpl struct {
	turnos TurnosPort
}

func NewTurnoCommands(turnos TurnosPort) TurnoCommands {
	return &turnoCommandsImpl{turnos: turnos}
}

func (t *turnoCommandsImpl) Solicitar(ctx context.Context, sess session.Session, input SolicitarTurnoInput) (*turno.Turno, error) {
	if input.Servicio == "" {
		return nil, errs.Mark(errs.New("servicio required"), errs.ErrDomainValidation)
	}

	nuevo, err := t.turnos.Solicitar(ctx, sess.BackendToken, sess.Cedula, input.Servicio, input.Prioritario)
	if err != nil {
		if infra.IsKind(err, infra.KindRejected) {
			// The backend enforces a single active turno per client
			return nil, errs.Mark(err, errs.ErrTurnoYaSolicitado)
		}
		return nil, errs.Wrap(err, "solicitar turno failed")
	}
	return nuevo, nil
}

// Cancelar is idempotent end to end: the backend client already treats an
// already-cancelled turno as success.
func (t *turnoCommandsImpl) Cancelar(ctx context.Context, sess session.Session, id int64) error {
	if err := t.turnos.Cancelar(ctx, sess.BackendToken, id); err != nil {
		return errs.Wrap(err, "cancelar turno failed")
	}
	return nil
}
