package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/pkg/clock"
)

// Fetcher is the read-only slice of the backend the poller needs. The three
// reads of one cycle are independent and are issued concurrently.
type Fetcher interface {
	TurnoActivoCliente(ctx context.Context, cedula string) (bool, *turno.Turno, error)
	TurnoActualGlobal(ctx context.Context) (*turno.TurnoActual, error)
	ColaTurnos(ctx context.Context) (turno.Cola, error)
}

// Event is what subscribers receive after every successful cycle: the new
// immutable snapshot plus the avisos owed for this transition (usually none).
type Event struct {
	Snapshot turno.Snapshot
	Avisos   []turno.Aviso
}

// Poller keeps a local mirror of one client's turno, the global active turno
// and the waiting queue, fresh within the polling interval, and derives
// at-most-once avisos from state transitions.
//
// All cycles run on a single goroutine, which is what serializes the periodic
// tick against manual refreshes: a refresh requested while a cycle is in
// flight is queued at most once (buffered kick channel) and coalesced.
type Poller struct {
	fetcher  Fetcher
	cedula   string
	interval time.Duration
	clock    clock.Clock
	logger   *slog.Logger

	kick chan struct{}

	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}
	snapshot turno.Snapshot
	lastOK   bool
	subs     map[int]chan Event
	nextSub  int
}

func New(fetcher Fetcher, cedula string, interval time.Duration, clk clock.Clock, logger *slog.Logger) *Poller {
	return &Poller{
		fetcher:  fetcher,
		cedula:   cedula,
		interval: interval,
		clock:    clk,
		logger:   logger.With("cedula", cedula),
		kick:     make(chan struct{}, 1),
		snapshot: turno.Snapshot{Fase: turno.FaseDesconocida, Posicion: -1},
		lastOK:   true,
		subs:     make(map[int]chan Event),
	}
}

// Start arms the recurring refresh. Idempotent: calling it while running
// never creates a second timer.
func (p *Poller) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.running = true
	p.cancel = cancel
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	// First cycle right away rather than one interval from now
	p.RefreshOnce()

	go p.loop(ctx, done)
}

// Stop cancels the recurring refresh. Safe to call repeatedly and after the
// owner went away; a cycle that completes after Stop discards its result.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel := p.cancel
	p.mu.Unlock()

	cancel()
}

// RefreshOnce requests one immediate fetch-and-diff cycle outside the
// regular cadence. Never runs concurrently with a scheduled tick; if a cycle
// is already in flight the request is queued (at most one) behind it.
func (p *Poller) RefreshOnce() {
	select {
	case p.kick <- struct{}{}:
	default:
		// one refresh already queued, coalesce
	}
}

// CurrentSnapshot returns the last committed snapshot.
func (p *Poller) CurrentSnapshot() turno.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// LastCycleOK reports whether the most recent cycle committed. The UI layer
// uses it to surface a staleness banner; the poller itself never escalates
// failures.
func (p *Poller) LastCycleOK() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastOK
}

// Subscribe registers a listener for cycle events. The returned cancel func
// is safe to call more than once.
func (p *Poller) Subscribe() (<-chan Event, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSub
	p.nextSub++
	ch := make(chan Event, 8)
	p.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if sub, ok := p.subs[id]; ok {
				delete(p.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.cycle(ctx)
		case <-p.kick:
			p.cycle(ctx)
		}
		if p.CurrentSnapshot().Finalizado() {
			// The tracked turno left the queue; the subscriber redirects the
			// client to request a new one, nothing left to poll.
			p.Stop()
			return
		}
	}
}

// cycle runs one fetch-and-diff pass. It never lets a panic or error escape:
// any failure retains the previous snapshot and the loop keeps going.
func (p *Poller) cycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic in poll cycle", "panic", r)
			p.markFailed()
		}
	}()

	obs, err := p.fetchAll(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn("poll cycle failed, keeping previous snapshot", "error", err)
		}
		p.markFailed()
		return
	}

	ahora := p.clock.Now()

	p.mu.Lock()
	if ctx.Err() != nil || !p.running {
		// Stopped while the reads were in flight: discard
		p.mu.Unlock()
		return
	}
	next, avisos := turno.Avanzar(p.snapshot, obs, ahora)
	p.snapshot = next
	p.lastOK = true
	event := Event{Snapshot: next, Avisos: avisos}
	for id, sub := range p.subs {
		select {
		case sub <- event:
		default:
			p.logger.Warn("dropping event for slow subscriber", "subscriber", id)
		}
	}
	p.mu.Unlock()
}

// fetchAll issues the three reads concurrently and combines them into one
// observation. All-or-nothing: any failed read fails the whole cycle.
func (p *Poller) fetchAll(ctx context.Context) (turno.Observacion, error) {
	var (
		wg sync.WaitGroup

		tiene    bool
		propio   *turno.Turno
		errTurno error

		actual    *turno.TurnoActual
		errActual error

		cola    turno.Cola
		errCola error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		tiene, propio, errTurno = p.fetcher.TurnoActivoCliente(ctx, p.cedula)
	}()
	go func() {
		defer wg.Done()
		actual, errActual = p.fetcher.TurnoActualGlobal(ctx)
	}()
	go func() {
		defer wg.Done()
		cola, errCola = p.fetcher.ColaTurnos(ctx)
	}()
	wg.Wait()

	for _, err := range []error{errTurno, errActual, errCola} {
		if err != nil {
			return turno.Observacion{}, err
		}
	}
	return turno.Observacion{TieneTurno: tiene, Turno: propio, Actual: actual, Cola: cola}, nil
}

func (p *Poller) markFailed() {
	p.mu.Lock()
	p.lastOK = false
	p.mu.Unlock()
}
