package pathfind

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// search encapsulates the per-invocation state every solver shares: the
// grid, parsed options, and the deduplicating trace. It is discarded when the
// solver returns.
type search struct {
	algo    Algorithm
	grid    *gridgraph.Grid
	opts    Options
	ctx     context.Context
	start   gridgraph.Cell
	end     gridgraph.Cell
	settled map[gridgraph.Cell]bool
}

// newSearch applies opts, validates the grid, and prepares a search.
// Returns ErrGridNil, ErrOptionViolation or ErrInvalidGrid.
func newSearch(algo Algorithm, g *gridgraph.Grid, opts []Option) (*search, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}

	return &search{
		algo:    algo,
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		start:   g.Start,
		end:     g.End,
		settled: make(map[gridgraph.Cell]bool),
	}, nil
}

// applyOptions folds opts over DefaultOptions and surfaces the first
// recorded violation.
func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// visit reports c to OnVisit the first time it is settled. Later calls for
// the same cell are ignored so the trace never repeats a cell.
func (s *search) visit(c gridgraph.Cell) error {
	if s.settled[c] {
		return nil
	}
	s.settled[c] = true
	if err := s.opts.OnVisit(c); err != nil {
		return fmt.Errorf("pathfind: OnVisit error at %v: %w", c, err)
	}
	return nil
}

// cancelled returns ctx.Err() once the context is done, nil otherwise.
func (s *search) cancelled() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

// trivial handles start == end, which every solver answers with [start].
func (s *search) trivial() (*Result, bool, error) {
	if s.start != s.end {
		return nil, false, nil
	}
	if err := s.visit(s.start); err != nil {
		return nil, true, err
	}
	return s.found([]gridgraph.Cell{s.start}), true, nil
}

// found wraps a unit-step path into a Result.
func (s *search) found(path []gridgraph.Cell) *Result {
	return &Result{
		Algorithm: s.algo,
		Path:      path,
		Found:     true,
		Expanded:  len(s.settled),
		Cost:      float64(len(path) - 1),
	}
}

// notFound is the normal "no path" outcome.
func (s *search) notFound() *Result {
	return &Result{Algorithm: s.algo, Expanded: len(s.settled)}
}

// rng returns the injected random source or a time-seeded one.
func (s *search) rng() *rand.Rand {
	if s.opts.Rand != nil {
		return s.opts.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// reconstruct follows parent pointers from end back to start and reverses
// the result. Every cell on the chain except start must have a parent.
func reconstruct(parent map[gridgraph.Cell]gridgraph.Cell, start, end gridgraph.Cell) []gridgraph.Cell {
	path := []gridgraph.Cell{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	reverse(path)
	return path
}

func reverse(cells []gridgraph.Cell) {
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
}
