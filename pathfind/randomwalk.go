package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// RandomWalk wanders from Start, moving to a uniformly random unvisited
// neighbor when one exists and to a uniformly random neighbor otherwise.
// A cell's parent is the cell the walk came from on its first visit, so the
// parent links form a tree and the reconstructed path is loop-free.
//
// The walk stops with Found == false when:
//   - the current cell has no open neighbor at all;
//   - every cell of Start's component has been visited (End is unreachable);
//   - WithMaxSteps is set and that many moves have been made.
//
// Randomness comes from WithRand / WithSeed; results are reproducible for a
// fixed seed. Expected time is polynomial in W×H; worst case is unbounded.
func RandomWalk(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoRandomWalk, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	rng := s.rng()
	component := len(g.Reachable(s.start))
	visited := map[gridgraph.Cell]bool{s.start: true}
	parent := make(map[gridgraph.Cell]gridgraph.Cell)
	if err = s.visit(s.start); err != nil {
		return nil, err
	}

	fresh := make([]gridgraph.Cell, 0, 4)
	for cur, steps := s.start, 0; ; steps++ {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		if cur == s.end {
			return s.found(reconstruct(parent, s.start, s.end)), nil
		}
		nbrs := g.Neighbors(cur)
		if len(nbrs) == 0 || len(visited) == component {
			return s.notFound(), nil
		}
		if s.opts.MaxSteps > 0 && steps >= s.opts.MaxSteps {
			return s.notFound(), nil
		}

		fresh = fresh[:0]
		for _, n := range nbrs {
			if !visited[n] {
				fresh = append(fresh, n)
			}
		}
		var next gridgraph.Cell
		if len(fresh) > 0 {
			next = fresh[rng.Intn(len(fresh))]
		} else {
			next = nbrs[rng.Intn(len(nbrs))]
		}
		if !visited[next] {
			visited[next] = true
			parent[next] = cur
			if err = s.visit(next); err != nil {
				return nil, err
			}
		}
		cur = next
	}
}
