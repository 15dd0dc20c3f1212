package poller

import (
	"log/slog"
	"sync"
	"time"

	"turnos-gateway/internal/pkg/clock"
)

// FetcherFactory binds a session's backend token into a Fetcher.
type FetcherFactory func(backendToken string) Fetcher

// Manager owns at most one running Poller per client. Multiple browser tabs
// of the same client share a poller; it stops when the last one leaves.
type Manager struct {
	factory  FetcherFactory
	interval time.Duration
	clock    clock.Clock
	logger   *slog.Logger

	mu      sync.Mutex
	pollers map[string]*managedPoller
}

type managedPoller struct {
	poller *Poller
	refs   int
}

func NewManager(factory FetcherFactory, interval time.Duration, clk clock.Clock, logger *slog.Logger) *Manager {
	return &Manager{
		factory:  factory,
		interval: interval,
		clock:    clk,
		logger:   logger,
		pollers:  make(map[string]*managedPoller),
	}
}

// Acquire returns the running poller for cedula, starting one if needed.
// The release func must be called when the caller is done; it is safe to
// call more than once.
func (m *Manager) Acquire(cedula, backendToken string) (*Poller, func()) {
	m.mu.Lock()
	mp, ok := m.pollers[cedula]
	if !ok {
		mp = &managedPoller{
			poller: New(m.factory(backendToken), cedula, m.interval, m.clock, m.logger),
		}
		m.pollers[cedula] = mp
		mp.poller.Start()
	}
	mp.refs++
	m.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			mp.refs--
			if mp.refs <= 0 {
				mp.poller.Stop()
				delete(m.pollers, cedula)
			}
		})
	}
	return mp.poller, release
}

// StopAll shuts every poller down; wired into the fx lifecycle OnStop hook.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for cedula, mp := range m.pollers {
		mp.poller.Stop()
		delete(m.pollers, cedula)
	}
}
