package gridgraph

import "container/list"

// WallsToBreak finds a route from src to dst that crosses the fewest walls
// and returns it together with the wall cells on it. Authoring tools
// use it to suggest which walls to remove when a maze has no solution.
//
// Behavior:
//  1. Validate that both cells are in bounds.
//  2. 0–1 BFS from src:
//     • moving into an open cell → cost 0
//     • moving into a wall cell  → cost 1
//  3. Stop when dst is dequeued.
//  4. Reconstruct the route via predecessors.
//
// The returned route includes src and dst. No walls means the cells are
// already connected.
//
// Complexity: O(W·H) time and memory.
func (g *Grid) WallsToBreak(src, dst Cell) (route []Cell, walls []Cell, err error) {
	if !g.InBounds(src) || !g.InBounds(dst) {
		return nil, nil, ErrOutOfBounds
	}

	const inf = int(^uint(0) >> 1)
	dist := make(map[Cell]int, g.Width*g.Height)
	prev := make(map[Cell]Cell, g.Width*g.Height)
	dist[src] = 0

	// 0–1 BFS: deque processes cost0 at front, cost1 at back
	dq := list.New()
	dq.PushFront(src)
	found := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(Cell)
		if u == dst {
			found = true
			break
		}
		for _, m := range moves {
			v := u.Add(m.dr, m.dc)
			if !g.InBounds(v) {
				continue
			}
			step := 0
			if g.cells[v.Row][v.Col] == Wall {
				step = 1
			}
			nd := dist[u] + step
			cur, ok := dist[v]
			if !ok {
				cur = inf
			}
			if nd < cur {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !found {
		return nil, nil, ErrNoPath
	}
	for at := dst; ; at = prev[at] {
		route = append([]Cell{at}, route...)
		if at == src {
			break
		}
	}
	for _, c := range route {
		if g.cells[c.Row][c.Col] == Wall {
			walls = append(walls, c)
		}
	}
	return route, walls, nil
}
