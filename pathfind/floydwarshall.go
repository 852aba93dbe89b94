package pathfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// MaxAllPairsCells bounds the open-cell count NewAllPairs accepts; the two
// V×V tables grow quadratically.
const MaxAllPairsCells = 4096

// ErrGridTooLarge is returned by NewAllPairs when the grid has more than
// MaxAllPairsCells open cells.
var ErrGridTooLarge = errors.New("pathfind: grid too large for all-pairs table")

const noNext = -1

// AllPairs is a Floyd-Warshall table over every open cell of a grid.
// Once built, Distance and Path answer any pair by table lookup.
// It is immutable and safe for concurrent readers.
type AllPairs struct {
	cells []gridgraph.Cell
	index map[gridgraph.Cell]int
	dist  [][]int32
	next  [][]int32
}

// NewAllPairs computes all-pairs shortest paths over g's open cells.
// Honors WithContext (checked once per intermediate cell) and WithOnVisit
// (each cell is reported when it becomes the intermediate k).
// Start and End are not consulted.
//
// Complexity: O(V³) time, O(V²) memory.
func NewAllPairs(g *gridgraph.Grid, opts ...Option) (*AllPairs, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	s := &search{grid: g, opts: o, ctx: o.Ctx, settled: make(map[gridgraph.Cell]bool)}
	return s.allPairs()
}

func (s *search) allPairs() (*AllPairs, error) {
	cells := s.grid.OpenCells()
	n := len(cells)
	if n > MaxAllPairsCells {
		return nil, fmt.Errorf("%w: %d open cells (max %d)", ErrGridTooLarge, n, MaxAllPairsCells)
	}
	ap := &AllPairs{
		cells: cells,
		index: make(map[gridgraph.Cell]int, n),
		dist:  make([][]int32, n),
		next:  make([][]int32, n),
	}
	for i, c := range cells {
		ap.index[c] = i
	}
	inf := int32(n + 1)
	for i, c := range cells {
		ap.dist[i] = make([]int32, n)
		ap.next[i] = make([]int32, n)
		for j := range ap.dist[i] {
			ap.dist[i][j] = inf
			ap.next[i][j] = noNext
		}
		ap.dist[i][i] = 0
		ap.next[i][i] = int32(i)
		for _, nb := range s.grid.Neighbors(c) {
			j := ap.index[nb]
			ap.dist[i][j] = 1
			ap.next[i][j] = int32(j)
		}
	}

	for k := 0; k < n; k++ {
		if err := s.cancelled(); err != nil {
			return nil, err
		}
		if err := s.visit(cells[k]); err != nil {
			return nil, err
		}
		dk := ap.dist[k]
		for i := 0; i < n; i++ {
			dik := ap.dist[i][k]
			if dik == inf {
				continue
			}
			di, ni := ap.dist[i], ap.next[i]
			for j := 0; j < n; j++ {
				if d := dik + dk[j]; d < di[j] {
					di[j] = d
					ni[j] = ni[k]
				}
			}
		}
	}
	return ap, nil
}

// Distance returns the number of steps between a and b, or false when b is
// unreachable from a or either cell is not an open cell of the grid.
func (ap *AllPairs) Distance(a, b gridgraph.Cell) (int, bool) {
	i, okA := ap.index[a]
	j, okB := ap.index[b]
	if !okA || !okB || ap.next[i][j] == noNext {
		return 0, false
	}
	return int(ap.dist[i][j]), true
}

// Path returns the shortest path a..b inclusive by walking the next table,
// or nil when no path exists.
func (ap *AllPairs) Path(a, b gridgraph.Cell) []gridgraph.Cell {
	i, okA := ap.index[a]
	j, okB := ap.index[b]
	if !okA || !okB || ap.next[i][j] == noNext {
		return nil
	}
	path := []gridgraph.Cell{a}
	for i != j {
		i = int(ap.next[i][j])
		path = append(path, ap.cells[i])
	}
	return path
}

// Len returns the number of open cells indexed by the table.
func (ap *AllPairs) Len() int {
	return len(ap.cells)
}

// FloydWarshall builds the full all-pairs table for g and then answers the
// single Start→End query from it, which makes it the most expensive solver
// in the suite.
//
// Complexity: O(V³) time, O(V²) memory. Returns ErrGridTooLarge above
// MaxAllPairsCells open cells.
func FloydWarshall(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoFloydWarshall, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	ap, err := s.allPairs()
	if err != nil {
		return nil, err
	}
	path := ap.Path(s.start, s.end)
	if path == nil {
		return s.notFound(), nil
	}
	return s.found(path), nil
}
