package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// jumpDirs lists the eight jump directions: orthogonal first, then diagonal.
var jumpDirs = [8][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// canStep reports whether moving from c by (dr, dc) stays on open cells.
// A diagonal step needs both orthogonal cells it squeezes between open.
func canStep(g *gridgraph.Grid, c gridgraph.Cell, dr, dc int) bool {
	if !g.IsValid(c.Add(dr, dc)) {
		return false
	}
	if dr != 0 && dc != 0 {
		return g.IsValid(c.Add(dr, 0)) && g.IsValid(c.Add(0, dc))
	}
	return true
}

// forced reports whether a straight move into c by (dr, dc) exposes a
// neighbor that was hidden behind a wall one cell back.
func forced(g *gridgraph.Grid, c gridgraph.Cell, dr, dc int) bool {
	if dr == 0 {
		return (g.IsValid(c.Add(-1, 0)) && !g.IsValid(c.Add(-1, -dc))) ||
			(g.IsValid(c.Add(1, 0)) && !g.IsValid(c.Add(1, -dc)))
	}
	return (g.IsValid(c.Add(0, -1)) && !g.IsValid(c.Add(-dr, -1))) ||
		(g.IsValid(c.Add(0, 1)) && !g.IsValid(c.Add(-dr, 1)))
}

// jump follows (dr, dc) from c until it hits End, a cell with a forced
// neighbor, or (for diagonals) a cell whose straight sub-jumps find one.
// Returns false when the direction runs into a wall.
func jump(g *gridgraph.Grid, c gridgraph.Cell, dr, dc int) (gridgraph.Cell, bool) {
	for {
		if !canStep(g, c, dr, dc) {
			return gridgraph.Cell{}, false
		}
		c = c.Add(dr, dc)
		if c == g.End {
			return c, true
		}
		if dr != 0 && dc != 0 {
			if _, ok := jump(g, c, dr, 0); ok {
				return c, true
			}
			if _, ok := jump(g, c, 0, dc); ok {
				return c, true
			}
		} else if forced(g, c, dr, dc) {
			return c, true
		}
	}
}

// JumpPointSearch is a simplified jump point search. From each jump point it
// tries all eight directions, jumping along each until a forced neighbor or
// End appears; the resulting jump points are kept in an open list scanned for
// the smallest Manhattan distance to End (ties in insertion order). It does
// not prune symmetric paths and is not guaranteed optimal.
//
// Diagonal jumps never cut corners. The returned path is expanded back to
// 4-adjacent cells, each diagonal step becoming a vertical then a horizontal
// move. Only jump points are reported to OnVisit.
//
// Complexity: O(V) jump points, O(W+H) per jump.
func JumpPointSearch(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoJPS, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	open := []gridgraph.Cell{s.start}
	inOpen := map[gridgraph.Cell]bool{s.start: true}
	closed := make(map[gridgraph.Cell]bool)
	parent := make(map[gridgraph.Cell]gridgraph.Cell)

	for len(open) > 0 {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		best := 0
		for i := 1; i < len(open); i++ {
			if g.Heuristic(open[i], s.end) < g.Heuristic(open[best], s.end) {
				best = i
			}
		}
		cur := open[best]
		open = append(open[:best], open[best+1:]...)
		delete(inOpen, cur)

		closed[cur] = true
		if err = s.visit(cur); err != nil {
			return nil, err
		}
		if cur == s.end {
			return s.found(unfoldJumps(reconstruct(parent, s.start, s.end))), nil
		}
		for _, d := range jumpDirs {
			jp, ok := jump(g, cur, d[0], d[1])
			if !ok || closed[jp] || inOpen[jp] {
				continue
			}
			parent[jp] = cur
			open = append(open, jp)
			inOpen[jp] = true
		}
	}
	return s.notFound(), nil
}

// unfoldJumps expands consecutive jump points, which lie on a common row,
// column or diagonal, into 4-adjacent steps.
func unfoldJumps(points []gridgraph.Cell) []gridgraph.Cell {
	path := []gridgraph.Cell{points[0]}
	for i := 1; i < len(points); i++ {
		cur, to := points[i-1], points[i]
		dr, dc := sign(to.Row-cur.Row), sign(to.Col-cur.Col)
		for cur != to {
			if dr != 0 && dc != 0 {
				path = append(path, cur.Add(dr, 0))
			}
			cur = cur.Add(dr, dc)
			path = append(path, cur)
		}
	}
	return path
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
