package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// priorityFn computes the frontier key of cell c reached with cost g.
type priorityFn func(c gridgraph.Cell, g float64) float64

// bestFirst is the uniform-cost engine behind A*, D* and Dijkstra.
// It pops the lowest key (ties in insertion order), skips entries that are
// already closed or whose g is stale, and re-pushes a neighbor whenever its g
// improves. Returns the parent map and whether to was reached.
func (s *search) bestFirst(from, to gridgraph.Cell, key priorityFn) (map[gridgraph.Cell]gridgraph.Cell, bool, error) {
	gScore := map[gridgraph.Cell]float64{from: 0}
	parent := make(map[gridgraph.Cell]gridgraph.Cell)
	closed := make(map[gridgraph.Cell]bool)

	var open frontier
	open.push(from, key(from, 0), 0)

	for open.Len() > 0 {
		if err := s.cancelled(); err != nil {
			return nil, false, err
		}
		it := open.pop()
		if closed[it.cell] || it.g > gScore[it.cell] {
			continue
		}
		closed[it.cell] = true
		if err := s.visit(it.cell); err != nil {
			return nil, false, err
		}
		if it.cell == to {
			return parent, true, nil
		}

		for _, n := range s.grid.Neighbors(it.cell) {
			if closed[n] {
				continue
			}
			ng := it.g + 1
			if old, seen := gScore[n]; !seen || ng < old {
				gScore[n] = ng
				parent[n] = it.cell
				open.push(n, key(n, ng), ng)
			}
		}
	}
	return parent, false, nil
}

// AStar runs A* with f = g + h, h being the Manhattan distance to g.End.
// Ties on f pop in insertion order. Because h is consistent, the first time
// End is popped its path is optimal.
//
// Complexity: O(V log V) time, O(V) memory, V = open cells.
func AStar(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoAStar, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	parent, ok, err := s.bestFirst(s.start, s.end, func(c gridgraph.Cell, cost float64) float64 {
		return cost + float64(g.Heuristic(c, s.end))
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.notFound(), nil
	}
	return s.found(reconstruct(parent, s.start, s.end)), nil
}

// DStar is a static, one-shot variant of D*: like D* it plans backwards from
// End towards Start with f = g + h, but it never replans. The result equals
// an A* search run in the opposite direction and is optimal.
//
// The backward search is deliberate: the visit trace grows outward from End,
// while the returned Path still runs Start to End.
//
// Complexity: O(V log V) time, O(V) memory.
func DStar(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoDStar, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	parent, ok, err := s.bestFirst(s.end, s.start, func(c gridgraph.Cell, cost float64) float64 {
		return cost + float64(g.Heuristic(c, s.start))
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.notFound(), nil
	}
	// parent links point towards End: reconstruct yields End..Start.
	path := reconstruct(parent, s.end, s.start)
	reverse(path)
	return s.found(path), nil
}
