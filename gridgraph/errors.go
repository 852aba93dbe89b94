package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrInvalidEndpoint indicates start or end lies outside the grid or on a wall.
	ErrInvalidEndpoint = errors.New("gridgraph: start and end must be open cells within bounds")
	// ErrUnknownMaze indicates a built-in maze name that does not exist.
	ErrUnknownMaze = errors.New("gridgraph: unknown maze")
	// ErrNoPath indicates no wall-breaking route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
