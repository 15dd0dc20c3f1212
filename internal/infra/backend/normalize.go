package backend

import (
	"encoding/json"
	"time"

	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/infra"
)

// The backend exposes the same concepts under different key casings depending
// on the endpoint (codigo vs codigo_turno, prioritario vs es_prioritario).
// Everything coming off the wire passes through these payload types exactly
// once and is normalized to the domain types, failing closed on shapes we do
// not recognize.

type turnoPayload struct {
	ID             *int64  `json:"id"`
	Cedula         string  `json:"cedula"`
	CedulaCliente  string  `json:"cedula_cliente"`
	Servicio       string  `json:"servicio"`
	NombreServicio string  `json:"nombre_servicio"`
	Caja           *string `json:"caja"`
	CajaAsignada   *string `json:"caja_asignada"`
	Codigo         string  `json:"codigo"`
	CodigoTurno    string  `json:"codigo_turno"`
	Estado         string  `json:"estado"`
	Prioritario    *bool   `json:"prioritario"`
	EsPrioritario  *bool   `json:"es_prioritario"`
	FechaCreacion  string  `json:"fecha_creacion"`
}

var estadoAliases = map[string]turno.Estado{
	"espera_atencion": turno.EstadoEsperaAtencion,
	"en_espera":       turno.EstadoEsperaAtencion,
	"en_atencion":     turno.EstadoEnAtencion,
	"atendido":        turno.EstadoAtendido,
	"finalizado":      turno.EstadoAtendido,
	"cancelado":       turno.EstadoCancelado,
}

func (p turnoPayload) normalizar() (*turno.Turno, error) {
	if p.ID == nil {
		return nil, infra.WrapBackendErr(infra.KindBadPayload, "turno payload missing id", nil)
	}

	estado, ok := estadoAliases[p.Estado]
	if !ok {
		return nil, infra.WrapBackendErr(infra.KindBadPayload, "turno payload has unknown estado "+p.Estado, nil)
	}

	t := &turno.Turno{
		ID:       *p.ID,
		Cedula:   firstNonEmpty(p.Cedula, p.CedulaCliente),
		Servicio: firstNonEmpty(p.Servicio, p.NombreServicio),
		Codigo:   firstNonEmpty(p.Codigo, p.CodigoTurno),
		Estado:   estado,
	}
	if t.Codigo == "" {
		return nil, infra.WrapBackendErr(infra.KindBadPayload, "turno payload missing codigo", nil)
	}

	if p.Caja != nil {
		t.Caja = p.Caja
	} else if p.CajaAsignada != nil {
		t.Caja = p.CajaAsignada
	}

	switch {
	case p.Prioritario != nil:
		t.Prioritario = *p.Prioritario
	case p.EsPrioritario != nil:
		t.Prioritario = *p.EsPrioritario
	}

	// Creation time is informational only; a bad value is not fatal
	if p.FechaCreacion != "" {
		if parsed, err := time.Parse(time.RFC3339, p.FechaCreacion); err == nil {
			t.CreadoEn = parsed
		}
	}

	return t, nil
}

type turnoActualPayload struct {
	ID          *int64 `json:"id"`
	Codigo      string `json:"codigo"`
	CodigoTurno string `json:"codigo_turno"`
	Caja        string `json:"caja"`
	NombreCaja  string `json:"nombre_caja"`
}

func (p turnoActualPayload) normalizar() (*turno.TurnoActual, error) {
	if p.ID == nil {
		return nil, infra.WrapBackendErr(infra.KindBadPayload, "turno actual payload missing id", nil)
	}
	return &turno.TurnoActual{
		ID:     *p.ID,
		Codigo: firstNonEmpty(p.Codigo, p.CodigoTurno),
		Caja:   firstNonEmpty(p.Caja, p.NombreCaja),
	}, nil
}

type resumenTurnoPayload struct {
	ID            *int64 `json:"id"`
	Codigo        string `json:"codigo"`
	CodigoTurno   string `json:"codigo_turno"`
	Servicio      string `json:"servicio"`
	Prioritario   *bool  `json:"prioritario"`
	EsPrioritario *bool  `json:"es_prioritario"`
}

func normalizarCola(payloads []resumenTurnoPayload) (turno.Cola, error) {
	cola := turno.Cola{Turnos: make([]turno.ResumenTurno, 0, len(payloads))}
	for _, p := range payloads {
		if p.ID == nil {
			return turno.Cola{}, infra.WrapBackendErr(infra.KindBadPayload, "cola entry missing id", nil)
		}
		r := turno.ResumenTurno{
			ID:       *p.ID,
			Codigo:   firstNonEmpty(p.Codigo, p.CodigoTurno),
			Servicio: p.Servicio,
		}
		switch {
		case p.Prioritario != nil:
			r.Prioritario = *p.Prioritario
		case p.EsPrioritario != nil:
			r.Prioritario = *p.EsPrioritario
		}
		cola.Turnos = append(cola.Turnos, r)
	}
	return cola, nil
}

// decodeLoose re-decodes an already-unmarshalled fragment into a typed
// payload. Used where an endpoint nests the interesting object under a
// wrapper whose other keys vary.
func decodeLoose(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return infra.WrapBackendErr(infra.KindBadPayload, "unrecognized payload shape", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
