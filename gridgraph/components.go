package gridgraph

// ConnectedComponents finds all 4-connected regions of open cells.
// Returns a slice of components; each component lists its cells in the order
// the flood fill discovered them, seeded in row-major order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([][]bool, g.Height)
	for r := range seen {
		seen[r] = make([]bool, g.Width)
	}
	var comps [][]Cell

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.cells[r][c] == Wall || seen[r][c] {
				continue
			}
			seen[r][c] = true
			queue := []Cell{{Row: r, Col: c}}
			for qi := 0; qi < len(queue); qi++ {
				for _, n := range g.Neighbors(queue[qi]) {
					if !seen[n.Row][n.Col] {
						seen[n.Row][n.Col] = true
						queue = append(queue, n)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Reachable returns the set of open cells 4-connected to from, including
// from itself. A wall or out-of-bounds cell yields an empty set.
// Complexity: O(W·H).
func (g *Grid) Reachable(from Cell) map[Cell]bool {
	seen := make(map[Cell]bool)
	if !g.IsValid(from) {
		return seen
	}
	seen[from] = true
	queue := []Cell{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return seen
}

// Connected reports whether a route of open cells joins a and b.
func (g *Grid) Connected(a, b Cell) bool {
	return g.Reachable(a)[b]
}
