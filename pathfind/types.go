// Package pathfind provides options, results and error definitions shared by
// every solver in the suite.
package pathfind

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// Sentinel errors for solver invocation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("pathfind: grid is nil")

	// ErrInvalidGrid is returned when start or end is out of bounds or on a
	// wall. It wraps the gridgraph cause.
	ErrInvalidGrid = errors.New("pathfind: invalid grid")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Solve for names
	// outside the registry.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// DefaultMemoryLimit bounds the SMA* open list when no WithMemoryLimit is given.
const DefaultMemoryLimit = 1000

// Option configures a solver via functional arguments.
// If an Option is invalid (e.g. negative step cap), it will be recorded
// internally and surfaced as ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters and callbacks shared by all solvers. Each solver
// reads only the fields that concern it.
type Options struct {
	// Ctx allows cancellation and deadlines. Solvers poll it once per
	// expansion.
	Ctx context.Context

	// OnVisit is called once per cell, the first time the solver settles or
	// expands it. Returning an error aborts the search.
	OnVisit func(c gridgraph.Cell) error

	// Rand drives Random Walk. When nil a time-seeded source is used.
	Rand *rand.Rand

	// MemoryLimit caps the SMA* open list.
	MemoryLimit int

	// MaxSteps, if > 0, stops Random Walk after that many moves.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnVisit
//   - nil Rand (time-seeded on demand)
//   - MemoryLimit == DefaultMemoryLimit
//   - no step cap (MaxSteps == 0).
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnVisit:     func(gridgraph.Cell) error { return nil },
		MemoryLimit: DefaultMemoryLimit,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the visitation trace hook.
func WithOnVisit(fn func(c gridgraph.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithRand injects the random source used by Random Walk.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithMemoryLimit bounds the number of open nodes SMA* keeps.
//
//	n >= 1: limit to n nodes
//	n < 1:  invalid option → ErrOptionViolation
func WithMemoryLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MemoryLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MemoryLimit = n
	}
}

// WithMaxSteps caps the number of Random Walk moves.
//
//	n > 0:  stop after n moves with Found == false
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result holds the outcome of one solver invocation:
//   - Algorithm: which solver produced it.
//   - Path: start..end inclusive when Found, nil otherwise.
//   - Found: false is the normal "no path" outcome, not an error.
//   - Expanded: number of distinct cells reported to OnVisit.
//   - Cost: number of steps on Path; Euclidean length for Theta*.
type Result struct {
	Algorithm Algorithm
	Path      []gridgraph.Cell
	Found     bool
	Expanded  int
	Cost      float64
}

// Len returns the number of cells on the path.
func (r *Result) Len() int {
	return len(r.Path)
}
