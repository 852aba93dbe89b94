// Package gridgraph defines the cell, state and grid types shared by every
// search in this module.
package gridgraph

import "fmt"

// CellState marks a grid position as walkable or blocked.
type CellState uint8

const (
	// Open cells can be entered.
	Open CellState = iota
	// Wall cells block movement and line of sight.
	Wall
)

// Cell is a (row, col) coordinate. Two cells with equal coordinates are the
// same cell, so Cell is safe to use as a map key.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by (dr, dc).
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// direction is a (dRow, dCol) unit offset.
type direction struct{ dr, dc int }

// moves fixes the neighbor enumeration order: right, left, down, up.
// Several searches rely on this order as an implicit tie-break.
var moves = [4]direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Grid is a rectangular occupancy matrix with a designated start and end.
// It is read-only while a search runs; only the authoring methods
// (SetWall, SetStart, SetEnd) mutate it.
type Grid struct {
	Width, Height int
	Start, End    Cell
	cells         [][]CellState
}
