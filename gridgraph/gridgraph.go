package gridgraph

import (
	"fmt"
	"math"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice where 0 is
// an open cell and any other value is a wall. It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
//
// Start and end are stored as given; use Validate before searching.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, start, end Cell) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]CellState, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]CellState, w)
		for c, v := range values[r] {
			if v != 0 {
				cells[r][c] = Wall
			}
		}
	}

	return &Grid{Width: w, Height: h, Start: start, End: end, cells: cells}, nil
}

// NewEmpty returns a width×height grid with every cell open.
func NewEmpty(width, height int, start, end Cell) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]CellState, height)
	for r := range cells {
		cells[r] = make([]CellState, width)
	}

	return &Grid{Width: width, Height: height, Start: start, End: end, cells: cells}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// IsWall reports whether c is out of bounds or marked Wall.
func (g *Grid) IsWall(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.cells[c.Row][c.Col] == Wall
}

// IsValid reports whether c is in bounds and open.
func (g *Grid) IsValid(c Cell) bool {
	return !g.IsWall(c)
}

// State returns the state of an in-bounds cell; out-of-bounds cells read as Wall.
func (g *Grid) State(c Cell) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row][c.Col]
}

// Neighbors returns the up to four orthogonally adjacent open cells of c,
// always in the order right, left, down, up.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(moves))
	for _, m := range moves {
		n := c.Add(m.dr, m.dc)
		if g.IsValid(n) {
			out = append(out, n)
		}
	}
	return out
}

// Heuristic is the Manhattan distance between a and b. It is admissible and
// consistent for unit-cost 4-connected movement.
func (g *Grid) Heuristic(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Euclidean is the straight-line distance between the centers of a and b.
func (g *Grid) Euclidean(a, b Cell) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// LineOfSight reports whether the segment between the centers of a and b
// crosses only open cells. The walk visits every cell the segment touches;
// where it passes exactly through a corner both side cells must be open, so
// every visible pair is also joined by a 4-connected open staircase.
// Complexity: O(|Δrow| + |Δcol|).
func (g *Grid) LineOfSight(a, b Cell) bool {
	if g.IsWall(a) || g.IsWall(b) {
		return false
	}
	dx, dy := b.Col-a.Col, b.Row-a.Row
	nx, ny := abs(dx), abs(dy)
	sx, sy := sign(dx), sign(dy)

	x, y := a.Col, a.Row
	for ix, iy := 0, 0; ix < nx || iy < ny; {
		decision := (1+2*ix)*ny - (1+2*iy)*nx
		switch {
		case decision == 0:
			if g.IsWall(Cell{Row: y, Col: x + sx}) || g.IsWall(Cell{Row: y + sy, Col: x}) {
				return false
			}
			x += sx
			y += sy
			ix++
			iy++
		case decision < 0:
			x += sx
			ix++
		default:
			y += sy
			iy++
		}
		if g.IsWall(Cell{Row: y, Col: x}) {
			return false
		}
	}
	return true
}

// OpenCells lists every open cell in row-major order.
func (g *Grid) OpenCells() []Cell {
	out := make([]Cell, 0, g.Width*g.Height)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.cells[r][c] == Open {
				out = append(out, Cell{Row: r, Col: c})
			}
		}
	}
	return out
}

// OpenCount returns the number of open cells.
func (g *Grid) OpenCount() int {
	n := 0
	for r := range g.cells {
		for _, s := range g.cells[r] {
			if s == Open {
				n++
			}
		}
	}
	return n
}

// Validate checks that start and end are open cells within bounds.
// The returned error wraps ErrInvalidEndpoint.
func (g *Grid) Validate() error {
	if !g.IsValid(g.Start) {
		return fmt.Errorf("%w: start %v", ErrInvalidEndpoint, g.Start)
	}
	if !g.IsValid(g.End) {
		return fmt.Errorf("%w: end %v", ErrInvalidEndpoint, g.End)
	}
	return nil
}

// SetWall marks c as a wall (true) or open (false).
func (g *Grid) SetWall(c Cell, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if wall {
		g.cells[c.Row][c.Col] = Wall
	} else {
		g.cells[c.Row][c.Col] = Open
	}
	return nil
}

// SetStart moves the start marker.
func (g *Grid) SetStart(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.Start = c
	return nil
}

// SetEnd moves the end marker.
func (g *Grid) SetEnd(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.End = c
	return nil
}

// Clone returns a deep copy that can be mutated independently.
func (g *Grid) Clone() *Grid {
	cells := make([][]CellState, g.Height)
	for r := range g.cells {
		cells[r] = make([]CellState, g.Width)
		copy(cells[r], g.cells[r])
	}
	return &Grid{Width: g.Width, Height: g.Height, Start: g.Start, End: g.End, cells: cells}
}

// Values exports the occupancy as 0 (open) / 1 (wall) rows, the same shape
// NewGrid accepts.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.Height)
	for r := range g.cells {
		out[r] = make([]int, g.Width)
		for c, s := range g.cells[r] {
			if s == Wall {
				out[r][c] = 1
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
