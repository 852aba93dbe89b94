package pathfind

import (
	"math"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// idaWalker owns the state of one IDA* iteration. The path slice doubles as
// the recursion stack; visited is shared by the whole iteration and reset
// when the bound grows.
type idaWalker struct {
	*search
	bound   float64
	visited map[gridgraph.Cell]bool
	path    []gridgraph.Cell
}

// descend explores depth-first from cur with cost g. It returns whether End
// was reached and otherwise the smallest f that exceeded the bound.
func (w *idaWalker) descend(cur gridgraph.Cell, g float64) (bool, float64, error) {
	if err := w.cancelled(); err != nil {
		return false, 0, err
	}
	f := g + float64(w.grid.Heuristic(cur, w.end))
	if f > w.bound {
		return false, f, nil
	}
	if err := w.visit(cur); err != nil {
		return false, 0, err
	}
	if cur == w.end {
		return true, f, nil
	}

	next := math.Inf(1)
	for _, n := range w.grid.Neighbors(cur) {
		if w.visited[n] {
			continue
		}
		w.visited[n] = true
		w.path = append(w.path, n)
		ok, t, err := w.descend(n, g+1)
		if err != nil || ok {
			return ok, t, err
		}
		w.path = w.path[:len(w.path)-1]
		if t < next {
			next = t
		}
	}
	return false, next, nil
}

// IDAStar runs iterative-deepening A*. The first bound is h(Start); each
// iteration is a depth-first descent that prunes at f > bound, and the next
// bound is the smallest f that was pruned. An infinite next bound means no
// cell was pruned and End is unreachable.
//
// Cells are marked visited per iteration rather than per branch, which keeps
// each iteration linear but can settle on a longer route than A*.
//
// Complexity: O(k·V) time over k iterations, O(V) memory.
func IDAStar(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoIDAStar, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	w := &idaWalker{search: s, bound: float64(g.Heuristic(s.start, s.end))}
	for {
		w.visited = map[gridgraph.Cell]bool{s.start: true}
		w.path = append(w.path[:0], s.start)
		ok, next, err := w.descend(s.start, 0)
		if err != nil {
			return nil, err
		}
		if ok {
			path := make([]gridgraph.Cell, len(w.path))
			copy(path, w.path)
			return s.found(path), nil
		}
		if math.IsInf(next, 1) {
			return s.notFound(), nil
		}
		w.bound = next
	}
}
