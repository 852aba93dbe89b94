package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// epsilon absorbs floating-point noise when comparing Euclidean costs.
const epsilon = 1e-9

// ThetaStar is any-angle A*. Expansion uses the four grid neighbors, but
// when the current cell's parent can see a neighbor in a straight line the
// neighbor is attached to that parent directly, skipping the corner. Costs
// and the heuristic are Euclidean, so Result.Cost is the geometric length of
// the returned path. Consecutive path cells are mutually visible but need not
// be adjacent.
//
// Complexity: O(V log V · L) time where L is the line-of-sight walk length,
// O(V) memory.
func ThetaStar(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoThetaStar, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	gScore := map[gridgraph.Cell]float64{s.start: 0}
	parent := map[gridgraph.Cell]gridgraph.Cell{s.start: s.start}
	closed := make(map[gridgraph.Cell]bool)

	var open frontier
	open.push(s.start, g.Euclidean(s.start, s.end), 0)

	for open.Len() > 0 {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		it := open.pop()
		cur := it.cell
		if closed[cur] || it.g > gScore[cur] {
			continue
		}
		closed[cur] = true
		if err = s.visit(cur); err != nil {
			return nil, err
		}
		if cur == s.end {
			res := s.found(reconstruct(parent, s.start, s.end))
			res.Cost = gScore[s.end]
			return res, nil
		}

		for _, n := range g.Neighbors(cur) {
			if closed[n] {
				continue
			}
			from, ng := cur, gScore[cur]+1
			if p := parent[cur]; g.LineOfSight(p, n) {
				from, ng = p, gScore[p]+g.Euclidean(p, n)
			}
			if old, seen := gScore[n]; !seen || ng < old-epsilon {
				gScore[n] = ng
				parent[n] = from
				open.push(n, ng+g.Euclidean(n, s.end), ng)
			}
		}
	}
	return s.notFound(), nil
}
