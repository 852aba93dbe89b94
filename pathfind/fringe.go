package pathfind

import (
	"container/list"
	"math"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// fringeEntry caches the best known cost and predecessor of a cell.
type fringeEntry struct {
	g      int
	parent gridgraph.Cell
	root   bool
}

// FringeSearch keeps a single ordered fringe list and a threshold on
// f = g + h. Each round walks the list front to back: cells over the
// threshold are deferred, the rest are expanded in place, their children
// inserted right after them so they are handled in the same round. When a
// round ends, the threshold is raised to the smallest deferred f.
// Rounds stop when End is expanded or the fringe is empty.
//
// With the Manhattan heuristic the first expansion of End is optimal.
//
// Complexity: O(k·V) time over k rounds, O(V) memory.
func FringeSearch(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoFringe, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	fringe := list.New()
	elems := map[gridgraph.Cell]*list.Element{s.start: fringe.PushBack(s.start)}
	cache := map[gridgraph.Cell]fringeEntry{s.start: {root: true}}
	limit := g.Heuristic(s.start, s.end)

	for fringe.Len() > 0 {
		fmin := math.MaxInt
		for e := fringe.Front(); e != nil; {
			if err = s.cancelled(); err != nil {
				return nil, err
			}
			cur := e.Value.(gridgraph.Cell)
			gc := cache[cur].g
			if f := gc + g.Heuristic(cur, s.end); f > limit {
				fmin = min(fmin, f)
				e = e.Next()
				continue
			}
			if err = s.visit(cur); err != nil {
				return nil, err
			}
			if cur == s.end {
				return s.found(fringePath(cache, s.end)), nil
			}

			nbrs := g.Neighbors(cur)
			for i := len(nbrs) - 1; i >= 0; i-- {
				n := nbrs[i]
				if c, seen := cache[n]; seen && gc+1 >= c.g {
					continue
				}
				if old, ok := elems[n]; ok {
					fringe.Remove(old)
				}
				elems[n] = fringe.InsertAfter(n, e)
				cache[n] = fringeEntry{g: gc + 1, parent: cur}
			}

			next := e.Next()
			fringe.Remove(e)
			delete(elems, cur)
			e = next
		}
		limit = fmin
	}
	return s.notFound(), nil
}

// fringePath walks cached predecessors from end back to the root.
func fringePath(cache map[gridgraph.Cell]fringeEntry, end gridgraph.Cell) []gridgraph.Cell {
	path := []gridgraph.Cell{end}
	for cur := end; !cache[cur].root; {
		cur = cache[cur].parent
		path = append(path, cur)
	}
	reverse(path)
	return path
}
