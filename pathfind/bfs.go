package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// BFS runs breadth-first search from g.Start to g.End.
// Cells are marked visited when enqueued and reported to OnVisit when
// dequeued; neighbors are enqueued in grid order, so the result is the
// shortest path with ties broken right, left, down, up.
//
// Complexity: O(W×H) time and memory.
func BFS(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoBFS, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	visited := map[gridgraph.Cell]bool{s.start: true}
	parent := make(map[gridgraph.Cell]gridgraph.Cell)
	queue := []gridgraph.Cell{s.start}

	for len(queue) > 0 {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		if err = s.visit(cur); err != nil {
			return nil, err
		}
		if cur == s.end {
			return s.found(reconstruct(parent, s.start, s.end)), nil
		}
		for _, n := range g.Neighbors(cur) {
			if !visited[n] {
				visited[n] = true
				parent[n] = cur
				queue = append(queue, n)
			}
		}
	}
	return s.notFound(), nil
}
