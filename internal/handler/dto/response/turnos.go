package response

import (
	"time"

	"turnos-gateway/internal/domain/turno"
)

type TurnoResponse struct {
	ID          int64     `json:"id"`
	Codigo      string    `json:"codigo"`
	Servicio    string    `json:"servicio"`
	Caja        *string   `json:"caja,omitempty"`
	Estado      string    `json:"estado"`
	Prioritario bool      `json:"prioritario"`
	CreadoEn    time.Time `json:"creado_en,omitempty"`
}

func FromTurno(t *turno.Turno) *TurnoResponse {
	return &TurnoResponse{
		ID:          t.ID,
		Codigo:      t.Codigo,
		Servicio:    t.Servicio,
		Caja:        t.Caja,
		Estado:      t.Estado.String(),
		Prioritario: t.Prioritario,
		CreadoEn:    t.CreadoEn,
	}
}
