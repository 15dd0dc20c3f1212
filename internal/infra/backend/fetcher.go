package backend

import (
	"context"

	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/poller"
)

// sessionFetcher binds one session's token and cedula scope onto the turnos
// client so the poller can read without knowing about auth.
type sessionFetcher struct {
	turnos *TurnosClient
	token  string
}

func (f *sessionFetcher) TurnoActivoCliente(ctx context.Context, cedula string) (bool, *turno.Turno, error) {
	return f.turnos.TurnoActivoCliente(ctx, f.token, cedula)
}

func (f *sessionFetcher) TurnoActualGlobal(ctx context.Context) (*turno.TurnoActual, error) {
	return f.turnos.TurnoActualGlobal(ctx, f.token)
}

func (f *sessionFetcher) ColaTurnos(ctx context.Context) (turno.Cola, error) {
	return f.turnos.ColaTurnos(ctx, f.token)
}

func NewFetcherFactory(turnos *TurnosClient) poller.FetcherFactory {
	return func(backendToken string) poller.Fetcher {
		return &sessionFetcher{turnos: turnos, token: backendToken}
	}
}
