//go:build unit || e2e

package builder

import (
	"time"

	"turnos-gateway/internal/domain/turno"
	reqdto "turnos-gateway/internal/handler/dto/request"
)

type TurnoBuilder struct {
	ID          int64
	Cedula      string
	Servicio    string
	Caja        *string
	Codigo      string
	Estado      turno.Estado
	Prioritario bool
	CreadoEn    time.Time
}

func NewTurnoBuilder() *TurnoBuilder {
	return &TurnoBuilder{
		ID:          42,
		Cedula:      "1712345678",
		Servicio:    "farmacia",
		Codigo:      "F-042",
		Estado:      turno.EstadoEsperaAtencion,
		Prioritario: false,
		CreadoEn:    time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC),
	}
}

func (b *TurnoBuilder) WithEstado(estado turno.Estado) *TurnoBuilder {
	b.Estado = estado
	return b
}

func (b *TurnoBuilder) WithCaja(caja string) *TurnoBuilder {
	b.Caja = &caja
	return b
}

func (b *TurnoBuilder) Build() turno.Turno {
	return turno.Turno{
		ID:          b.ID,
		Cedula:      b.Cedula,
		Servicio:    b.Servicio,
		Caja:        b.Caja,
		Codigo:      b.Codigo,
		Estado:      b.Estado,
		Prioritario: b.Prioritario,
		CreadoEn:    b.CreadoEn,
	}
}

func (b *TurnoBuilder) BuildSolicitudDTO() reqdto.SolicitarTurnoRequest {
	return reqdto.SolicitarTurnoRequest{
		Servicio:    b.Servicio,
		Prioritario: b.Prioritario,
	}
}
