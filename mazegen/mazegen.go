// Package mazegen builds random perfect mazes on a gridgraph.Grid.
//
// A maze of rows×cols rooms lives on a (2·rows+1)×(2·cols+1) block grid:
// rooms sit at odd coordinates, the cells between two rooms are passages or
// walls, and the outer frame is solid. Rooms are joined with Wilson's
// algorithm (loop-erased random walks), which samples uniformly among all
// spanning trees, so every pair of rooms is joined by exactly one route.
// WithExtraOpenings then knocks down interior walls to add loops.
//
// Start is the top-left room (1,1); End is the bottom-right room.
package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

var (
	// ErrBadSize is returned when rows or cols is not positive.
	ErrBadSize = errors.New("mazegen: rows and cols must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mazegen: invalid option supplied")
)

// Option configures Generate.
type Option func(*options)

type options struct {
	rng   *rand.Rand
	extra int
	err   error
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the random source.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithExtraOpenings removes up to n interior walls after the perfect maze is
// built, creating cycles. n < 0 is an ErrOptionViolation.
func WithExtraOpenings(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: extra openings cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.extra = n
	}
}

// room is a room index in row-major order.
type room = int

// builder owns the block grid during generation.
type builder struct {
	rows, cols int
	rng        *rand.Rand
	values     [][]int
}

// Generate builds a rows×cols perfect maze.
// Complexity: expected O(R·log R) walk steps for R = rows·cols rooms on
// typical grids; O(R) memory.
func Generate(rows, cols int, opts ...Option) (*gridgraph.Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, rows, cols)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	b := &builder{rows: rows, cols: cols, rng: o.rng}
	b.fill()
	b.wilson()
	b.openExtra(o.extra)

	start := gridgraph.Cell{Row: 1, Col: 1}
	end := gridgraph.Cell{Row: 2*rows - 1, Col: 2*cols - 1}
	return gridgraph.NewGrid(b.values, start, end)
}

// fill starts from solid walls with every room carved.
func (b *builder) fill() {
	h, w := 2*b.rows+1, 2*b.cols+1
	b.values = make([][]int, h)
	for r := range b.values {
		b.values[r] = make([]int, w)
		for c := range b.values[r] {
			if r%2 == 0 || c%2 == 0 {
				b.values[r][c] = 1
			}
		}
	}
}

func (b *builder) cell(id room) gridgraph.Cell {
	return gridgraph.Cell{Row: 2*(id/b.cols) + 1, Col: 2*(id%b.cols) + 1}
}

func (b *builder) neighbors(id room) []room {
	r, c := id/b.cols, id%b.cols
	out := make([]room, 0, 4)
	if c+1 < b.cols {
		out = append(out, id+1)
	}
	if c > 0 {
		out = append(out, id-1)
	}
	if r+1 < b.rows {
		out = append(out, id+b.cols)
	}
	if r > 0 {
		out = append(out, id-b.cols)
	}
	return out
}

// carve opens the wall between two adjacent rooms.
func (b *builder) carve(a, z room) {
	ca, cz := b.cell(a), b.cell(z)
	b.values[(ca.Row+cz.Row)/2][(ca.Col+cz.Col)/2] = 0
}

// wilson grows a uniform spanning tree. Each walk starts at a room outside
// the tree and records only the last exit taken from every room, which
// erases loops implicitly; retracing the exits from the walk's start then
// adds the loop-erased route to the tree.
func (b *builder) wilson() {
	n := b.rows * b.cols
	inTree := make([]bool, n)
	inTree[b.rng.Intn(n)] = true
	exit := make(map[room]room)

	for _, first := range b.rng.Perm(n) {
		if inTree[first] {
			continue
		}
		clear(exit)
		for cur := first; !inTree[cur]; {
			nbrs := b.neighbors(cur)
			next := nbrs[b.rng.Intn(len(nbrs))]
			exit[cur] = next
			cur = next
		}
		for cur := first; !inTree[cur]; cur = exit[cur] {
			inTree[cur] = true
			b.carve(cur, exit[cur])
		}
	}
}

// openExtra removes up to n random walls that separate two rooms.
func (b *builder) openExtra(n int) {
	if n == 0 {
		return
	}
	var walls []gridgraph.Cell
	for r := 1; r < len(b.values)-1; r++ {
		for c := 1; c < len(b.values[r])-1; c++ {
			if b.values[r][c] == 1 && (r%2 == 1) != (c%2 == 1) {
				walls = append(walls, gridgraph.Cell{Row: r, Col: c})
			}
		}
	}
	b.rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })
	if n > len(walls) {
		n = len(walls)
	}
	for _, w := range walls[:n] {
		b.values[w.Row][w.Col] = 0
	}
}
