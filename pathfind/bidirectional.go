package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// side is one half of a bidirectional search.
type side struct {
	queue   []gridgraph.Cell
	visited map[gridgraph.Cell]bool
	parent  map[gridgraph.Cell]gridgraph.Cell
}

func newSide(root gridgraph.Cell) *side {
	return &side{
		queue:   []gridgraph.Cell{root},
		visited: map[gridgraph.Cell]bool{root: true},
		parent:  make(map[gridgraph.Cell]gridgraph.Cell),
	}
}

// step dequeues one cell, reports it, and enqueues its unseen neighbors.
// It returns the first discovered neighbor already seen by other.
func (sd *side) step(s *search, other *side) (gridgraph.Cell, bool, error) {
	cur := sd.queue[0]
	sd.queue = sd.queue[1:]
	if err := s.visit(cur); err != nil {
		return gridgraph.Cell{}, false, err
	}
	for _, n := range s.grid.Neighbors(cur) {
		if sd.visited[n] {
			continue
		}
		sd.visited[n] = true
		sd.parent[n] = cur
		if other.visited[n] {
			return n, true, nil
		}
		sd.queue = append(sd.queue, n)
	}
	return gridgraph.Cell{}, false, nil
}

// Bidirectional runs two breadth-first searches, one from Start and one from
// End, alternating a single dequeue on each side. The forward and backward
// parent maps are kept apart; when a side discovers a cell the other side has
// already seen, the path is the forward prefix up to that meeting cell
// followed by the backward chain down to End. If either queue empties first,
// the two endpoints lie in different components.
//
// Complexity: O(W×H) time and memory.
func Bidirectional(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoBidirectional, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	fwd, bwd := newSide(s.start), newSide(s.end)
	for len(fwd.queue) > 0 && len(bwd.queue) > 0 {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		meet, ok, err := fwd.step(s, bwd)
		if err != nil {
			return nil, err
		}
		if !ok {
			if meet, ok, err = bwd.step(s, fwd); err != nil {
				return nil, err
			}
		}
		if ok {
			return s.found(joinAt(fwd.parent, bwd.parent, s.start, s.end, meet)), nil
		}
	}
	return s.notFound(), nil
}

// joinAt stitches the forward chain start..meet to the backward chain
// meet..end.
func joinAt(fwd, bwd map[gridgraph.Cell]gridgraph.Cell, start, end, meet gridgraph.Cell) []gridgraph.Cell {
	path := reconstruct(fwd, start, meet)
	for cur := meet; cur != end; {
		cur = bwd[cur]
		path = append(path, cur)
	}
	return path
}
