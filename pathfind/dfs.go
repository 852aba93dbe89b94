package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// DFS runs an iterative depth-first search with an explicit stack. A cell is
// marked visited when pushed, so each cell enters the stack at most once and
// the parent links form a tree. The last neighbor pushed is explored first.
// The returned path is valid but usually not the shortest.
//
// Complexity: O(W×H) time and memory.
func DFS(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoDFS, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	visited := map[gridgraph.Cell]bool{s.start: true}
	parent := make(map[gridgraph.Cell]gridgraph.Cell)
	stack := []gridgraph.Cell{s.start}

	for len(stack) > 0 {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
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
				stack = append(stack, n)
			}
		}
	}
	return s.notFound(), nil
}
