package pathfind

import (
	"math"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// BellmanFord relaxes every edge of the open-cell graph in row-major sweeps,
// at most |V|-1 times, stopping early once a sweep changes nothing. A cell
// is reported to OnVisit the first time a sweep relaxes its edges with a
// finite distance. Unit costs mean no negative cycles can exist.
//
// Complexity: O(V·E) time, O(V) memory.
func BellmanFord(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoBellmanFord, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	cells := g.OpenCells()
	dist := make(map[gridgraph.Cell]int, len(cells))
	for _, c := range cells {
		dist[c] = math.MaxInt
	}
	dist[s.start] = 0
	parent := make(map[gridgraph.Cell]gridgraph.Cell)

	for pass := 0; pass < len(cells)-1; pass++ {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		changed := false
		for _, u := range cells {
			du := dist[u]
			if du == math.MaxInt {
				continue
			}
			if err = s.visit(u); err != nil {
				return nil, err
			}
			for _, v := range g.Neighbors(u) {
				if du+1 < dist[v] {
					dist[v] = du + 1
					parent[v] = u
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	if dist[s.end] == math.MaxInt {
		return s.notFound(), nil
	}
	return s.found(reconstruct(parent, s.start, s.end)), nil
}
