package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// GreedyBestFirst always expands the frontier cell closest to End by
// Manhattan distance, ignoring the cost already paid. Cells are marked when
// pushed and never reopened, so it is fast but not optimal.
//
// Complexity: O(V log V) time, O(V) memory.
func GreedyBestFirst(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoGreedy, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	seen := map[gridgraph.Cell]bool{s.start: true}
	parent := make(map[gridgraph.Cell]gridgraph.Cell)
	var open frontier
	open.push(s.start, float64(g.Heuristic(s.start, s.end)), 0)

	for open.Len() > 0 {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		cur := open.pop().cell
		if err = s.visit(cur); err != nil {
			return nil, err
		}
		if cur == s.end {
			return s.found(reconstruct(parent, s.start, s.end)), nil
		}
		for _, n := range g.Neighbors(cur) {
			if seen[n] {
				continue
			}
			seen[n] = true
			parent[n] = cur
			open.push(n, float64(g.Heuristic(n, s.end)), 0)
		}
	}
	return s.notFound(), nil
}
