package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/infra"
)

// TurnosClient wraps the /turnos endpoints of the backend.
type TurnosClient struct {
	c *Client
}

func NewTurnosClient(c *Client) *TurnosClient {
	return &TurnosClient{c: c}
}

// TurnoActivoCliente returns the client's current turno, or (false, nil, nil)
// when the client has none.
func (t *TurnosClient) TurnoActivoCliente(ctx context.Context, token, cedula string) (bool, *turno.Turno, error) {
	var resp struct {
		TieneTurno bool            `json:"tiene_turno"`
		Turno      json.RawMessage `json:"turno"`
	}
	path := "/turnos/turno_activo_cliente/?cedula=" + url.QueryEscape(cedula)
	if err := t.c.get(ctx, path, token, &resp); err != nil {
		return false, nil, err
	}
	if !resp.TieneTurno {
		return false, nil, nil
	}
	if len(resp.Turno) == 0 {
		return false, nil, infra.WrapBackendErr(infra.KindBadPayload, "tiene_turno set but turno missing", nil)
	}

	var payload turnoPayload
	if err := decodeLoose(resp.Turno, &payload); err != nil {
		return false, nil, err
	}
	normalizado, err := payload.normalizar()
	if err != nil {
		return false, nil, err
	}
	return true, normalizado, nil
}

// TurnoActualGlobal returns the turno being served system-wide, or nil when
// no caja is serving anyone.
func (t *TurnosClient) TurnoActualGlobal(ctx context.Context, token string) (*turno.TurnoActual, error) {
	var resp struct {
		HayTurnoActual bool            `json:"hay_turno_actual"`
		TurnoActual    json.RawMessage `json:"turno_actual"`
	}
	if err := t.c.get(ctx, "/turnos/turno_actual_global/", token, &resp); err != nil {
		return nil, err
	}
	if !resp.HayTurnoActual {
		return nil, nil
	}
	if len(resp.TurnoActual) == 0 {
		return nil, infra.WrapBackendErr(infra.KindBadPayload, "hay_turno_actual set but turno_actual missing", nil)
	}

	var payload turnoActualPayload
	if err := decodeLoose(resp.TurnoActual, &payload); err != nil {
		return nil, err
	}
	return payload.normalizar()
}

// ColaTurnos returns the ordered waiting queue as the backend ranks it.
func (t *TurnosClient) ColaTurnos(ctx context.Context, token string) (turno.Cola, error) {
	var payloads []resumenTurnoPayload
	if err := t.c.get(ctx, "/turnos/cola_turnos/", token, &payloads); err != nil {
		return turno.Cola{}, err
	}
	return normalizarCola(payloads)
}

// Listar returns every turno the backend exposes to this session, regardless
// of estado. Admin statistics filter it by calendar day gateway-side.
func (t *TurnosClient) Listar(ctx context.Context, token string) ([]turno.Turno, error) {
	var payloads []turnoPayload
	if err := t.c.get(ctx, "/turnos/", token, &payloads); err != nil {
		return nil, err
	}

	turnos := make([]turno.Turno, 0, len(payloads))
	for _, p := range payloads {
		normalizado, err := p.normalizar()
		if err != nil {
			return nil, err
		}
		turnos = append(turnos, *normalizado)
	}
	return turnos, nil
}

// Solicitar creates a new turno for the client.
func (t *TurnosClient) Solicitar(ctx context.Context, token, cedula, servicio string, prioritario bool) (*turno.Turno, error) {
	body := map[string]any{
		"cedula":      cedula,
		"servicio":    servicio,
		"prioritario": prioritario,
	}
	var payload turnoPayload
	if err := t.c.post(ctx, "/turnos/", token, body, &payload); err != nil {
		return nil, err
	}
	return payload.normalizar()
}

// Cancelar cancels a turno. Cancelling one that no longer exists or is
// already cancelled is success.
func (t *TurnosClient) Cancelar(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/turnos/%d/cancelar_turno/", id)
	err := t.c.post(ctx, path, token, nil, nil)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	return nil
}
