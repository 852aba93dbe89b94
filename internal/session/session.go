// Package session runs solvers against one shared grid on a background
// goroutine, allowing at most one search at a time and refusing grid edits
// while it runs.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazesolver/gridgraph"
	"github.com/katalvlaran/mazesolver/pathfind"
)

// ErrBusy is returned when a run is started or the grid is edited while
// another run is active.
var ErrBusy = errors.New("session: a search is already running")

// Outcome is the final state of a run.
type Outcome struct {
	Result  *pathfind.Result
	Err     error
	Elapsed time.Duration
}

// Session owns a grid and the single run allowed on it.
type Session struct {
	mu     sync.Mutex
	grid   *gridgraph.Grid
	logger *slog.Logger
	active *Run
}

// New wraps g. A nil logger falls back to slog.Default().
func New(g *gridgraph.Grid, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{grid: g, logger: logger}
}

// Run is one background search. Trace delivers visited cells in order and
// is closed when the search ends; Done delivers the Outcome once.
type Run struct {
	ID        uuid.UUID
	Algorithm pathfind.Algorithm
	Trace     <-chan gridgraph.Cell
	Done      <-chan Outcome

	cancel    context.CancelFunc
	stream    *pathfind.Stream
	discarded atomic.Bool
	finished  chan struct{}
	outcome   Outcome
}

// Run validates the request and starts algo on a background goroutine.
// The grid must stay untouched until the run ends, which the session
// enforces: a second Run or any edit returns ErrBusy meanwhile.
// Any WithOnVisit in opts still fires, before the cell is streamed.
func (s *Session) Run(ctx context.Context, algo pathfind.Algorithm, opts ...pathfind.Option) (*Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return nil, ErrBusy
	}
	if _, err := algo.Solver(); err != nil {
		return nil, err
	}
	if s.grid == nil {
		return nil, pathfind.ErrGridNil
	}
	if err := s.grid.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", pathfind.ErrInvalidGrid, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	stream := pathfind.NewStream()
	done := make(chan Outcome, 1)
	r := &Run{
		ID:        uuid.New(),
		Algorithm: algo,
		Trace:     stream.C(),
		Done:      done,
		cancel:    cancel,
		stream:    stream,
		finished:  make(chan struct{}),
	}
	s.active = r

	opts = append(opts[:len(opts):len(opts)], pathfind.WithContext(runCtx), pathfind.WithOnVisit(r.hook(userHook(opts))))
	s.logger.Debug("run started", "run_id", r.ID, "algorithm", algo)
	go s.execute(r, done, opts)
	return r, nil
}

// userHook extracts the OnVisit callback the caller supplied, if any.
func userHook(opts []pathfind.Option) func(gridgraph.Cell) error {
	o := pathfind.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o.OnVisit
}

// hook chains the caller's callback with the trace stream.
func (r *Run) hook(next func(gridgraph.Cell) error) func(gridgraph.Cell) error {
	return func(c gridgraph.Cell) error {
		if err := next(c); err != nil {
			return err
		}
		if r.discarded.Load() {
			return nil
		}
		if err := r.stream.Visit(c); err != nil && !r.discarded.Load() {
			return err
		}
		return nil
	}
}

func (s *Session) execute(r *Run, done chan<- Outcome, opts []pathfind.Option) {
	defer r.cancel()
	start := time.Now()
	res, err := pathfind.Solve(s.grid, r.Algorithm, opts...)
	r.stream.Close()

	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()

	r.outcome = Outcome{Result: res, Err: err, Elapsed: time.Since(start)}
	if err != nil {
		s.logger.Warn("run failed",
			"run_id", r.ID,
			"algorithm", r.Algorithm,
			"error", err,
			"elapsed", r.outcome.Elapsed)
	} else {
		s.logger.Info("run finished",
			"run_id", r.ID,
			"algorithm", r.Algorithm,
			"found", res.Found,
			"expanded", res.Expanded,
			"elapsed", r.outcome.Elapsed)
	}
	close(r.finished)
	done <- r.outcome
	close(done)
}

// Cancel stops the search cooperatively and drops undelivered trace cells.
// The Outcome then carries the context error.
func (r *Run) Cancel() {
	r.discarded.Store(true)
	r.cancel()
	r.stream.Stop()
}

// Discard declares that nobody will read Trace. The search keeps running.
func (r *Run) Discard() {
	r.discarded.Store(true)
	r.stream.Stop()
}

// Wait blocks until the run ends or ctx is done. It may be called any
// number of times, independently of Done.
func (r *Run) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-r.finished:
		return r.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

// Busy reports whether a run is active.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}

// Grid returns a copy of the session grid.
func (s *Session) Grid() *gridgraph.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.grid == nil {
		return nil
	}
	return s.grid.Clone()
}

// SetWall edits the grid unless a run is active.
func (s *Session) SetWall(c gridgraph.Cell, wall bool) error {
	return s.edit(func(g *gridgraph.Grid) error { return g.SetWall(c, wall) })
}

// SetStart moves the start marker unless a run is active.
func (s *Session) SetStart(c gridgraph.Cell) error {
	return s.edit(func(g *gridgraph.Grid) error { return g.SetStart(c) })
}

// SetEnd moves the end marker unless a run is active.
func (s *Session) SetEnd(c gridgraph.Cell) error {
	return s.edit(func(g *gridgraph.Grid) error { return g.SetEnd(c) })
}

func (s *Session) edit(fn func(*gridgraph.Grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return ErrBusy
	}
	if s.grid == nil {
		return pathfind.ErrGridNil
	}
	return fn(s.grid)
}
