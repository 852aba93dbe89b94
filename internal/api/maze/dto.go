// Package mazeapi provides the maze and solve endpoints with their request
// and response structures.
package mazeapi

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// CellDTO is a cell on the wire.
type CellDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func toCell(c CellDTO) gridgraph.Cell {
	return gridgraph.Cell{Row: c.Row, Col: c.Col}
}

func fromCells(cells []gridgraph.Cell) []CellDTO {
	out := make([]CellDTO, len(cells))
	for i, c := range cells {
		out[i] = CellDTO{Row: c.Row, Col: c.Col}
	}
	return out
}

// MazeResponse describes one built-in maze.
type MazeResponse struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Start  CellDTO `json:"start"`
	End    CellDTO `json:"end"`
	Cells  [][]int `json:"cells"`
}

// AlgorithmResponse describes one solver.
type AlgorithmResponse struct {
	Name    string `json:"name"`
	Optimal bool   `json:"optimal"`
}

// SolveRequest selects a grid and a solver. Either Maze names a built-in
// maze or Grid carries explicit 0/1 rows; Start and End override the
// endpoints in both cases.
type SolveRequest struct {
	Maze      string   `json:"maze"`
	Grid      [][]int  `json:"grid"`
	Start     *CellDTO `json:"start"`
	End       *CellDTO `json:"end"`
	Algorithm string   `json:"algorithm" binding:"required"`
	Trace     bool     `json:"trace"`
	Seed      *int64   `json:"seed"`
}

// SolveResponse reports one solver run.
type SolveResponse struct {
	RunID     uuid.UUID `json:"run_id"`
	Algorithm string    `json:"algorithm"`
	Found     bool      `json:"found"`
	Path      []CellDTO `json:"path"`
	Visited   []CellDTO `json:"visited,omitempty"`
	Expanded  int       `json:"expanded"`
	Cost      float64   `json:"cost"`
	ElapsedMS int64     `json:"elapsed_ms"`
	// WallsToRemove is set when Found is false: the fewest walls whose
	// removal would connect start and end.
	WallsToRemove []CellDTO `json:"walls_to_remove,omitempty"`
}
