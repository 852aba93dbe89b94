package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// smaEntry is one open node; seq orders ties.
type smaEntry struct {
	g, f int
	seq  int
}

// smaWalker owns the bounded open list and the bookkeeping that lets an
// evicted subtree be regenerated from its parent.
type smaWalker struct {
	*search
	limit    int
	seq      int
	open     map[gridgraph.Cell]*smaEntry
	gScore   map[gridgraph.Cell]int
	parent   map[gridgraph.Cell]gridgraph.Cell
	children map[gridgraph.Cell]int  // open children per cell
	reopened map[gridgraph.Cell]int  // parent re-insertions per cell
	forgot   map[gridgraph.Cell]bool // evicted and not yet regenerated
}

func (w *smaWalker) push(c gridgraph.Cell, g int) {
	if _, ok := w.open[c]; !ok && c != w.start {
		w.children[w.parent[c]]++
	}
	w.open[c] = &smaEntry{g: g, f: g + w.grid.Heuristic(c, w.end), seq: w.seq}
	w.seq++
}

func (w *smaWalker) remove(c gridgraph.Cell) {
	delete(w.open, c)
	if c != w.start {
		w.children[w.parent[c]]--
	}
}

// best returns the open cell with the lowest f, ties to the oldest entry.
func (w *smaWalker) best() gridgraph.Cell {
	var pick gridgraph.Cell
	var top *smaEntry
	for c, e := range w.open {
		if top == nil || e.f < top.f || (e.f == top.f && e.seq < top.seq) {
			pick, top = c, e
		}
	}
	return pick
}

// worst returns the open cell with the highest f, ties to the newest entry.
func (w *smaWalker) worst() gridgraph.Cell {
	var pick gridgraph.Cell
	var top *smaEntry
	for c, e := range w.open {
		if top == nil || e.f > top.f || (e.f == top.f && e.seq > top.seq) {
			pick, top = c, e
		}
	}
	return pick
}

// expand relaxes the neighbors of cur. A neighbor is (re)opened when its
// cost improves, or when it was evicted earlier and cur regenerates it at
// the same cost.
func (w *smaWalker) expand(cur gridgraph.Cell) {
	ng := w.gScore[cur] + 1
	for _, n := range w.grid.Neighbors(cur) {
		old, seen := w.gScore[n]
		if seen && !(ng < old || (w.forgot[n] && ng == old)) {
			continue
		}
		if _, ok := w.open[n]; ok {
			w.remove(n)
		}
		w.gScore[n] = ng
		w.parent[n] = cur
		delete(w.forgot, n)
		w.push(n, ng)
	}
}

// shrink evicts the worst open nodes until the list fits the limit. When an
// eviction leaves a parent with no open children, the parent is put back on
// the open list, at most once per neighbor, so the forgotten branch can be
// regenerated later.
func (w *smaWalker) shrink() {
	for len(w.open) > w.limit {
		c := w.worst()
		w.remove(c)
		w.forgot[c] = true
		if c == w.start {
			continue
		}
		p := w.parent[c]
		if _, ok := w.open[p]; ok || w.children[p] > 0 {
			continue
		}
		if w.reopened[p] >= len(w.grid.Neighbors(p)) {
			continue
		}
		w.reopened[p]++
		delete(w.forgot, p)
		w.push(p, w.gScore[p])
	}
}

// SMAStar is a simplified memory-bounded A*. It behaves like A* (f = g + h,
// ties to the oldest entry) but keeps at most WithMemoryLimit open nodes
// (default DefaultMemoryLimit). When the list overflows, the node with the
// worst f is evicted, ties to the newest; a parent left without open
// children is re-opened so the evicted branch can be regenerated.
//
// Best costs survive eviction and only ever decrease, so parent links stay
// acyclic and every path is valid. Each cell is re-opened at most once per
// neighbor, which bounds the work. With a tight limit the search may give
// up and report Found == false even when End is reachable.
//
// Complexity: O(V·M) time for open-list scans of size M, O(V) memory for
// cost bookkeeping.
func SMAStar(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoSMAStar, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	w := &smaWalker{
		search:   s,
		limit:    s.opts.MemoryLimit,
		open:     make(map[gridgraph.Cell]*smaEntry),
		gScore:   map[gridgraph.Cell]int{s.start: 0},
		parent:   make(map[gridgraph.Cell]gridgraph.Cell),
		children: make(map[gridgraph.Cell]int),
		reopened: make(map[gridgraph.Cell]int),
		forgot:   make(map[gridgraph.Cell]bool),
	}
	w.push(s.start, 0)

	for len(w.open) > 0 {
		if err = s.cancelled(); err != nil {
			return nil, err
		}
		cur := w.best()
		w.remove(cur)
		if err = s.visit(cur); err != nil {
			return nil, err
		}
		if cur == s.end {
			return s.found(reconstruct(w.parent, s.start, s.end)), nil
		}
		w.expand(cur)
		w.shrink()
	}
	return s.notFound(), nil
}
