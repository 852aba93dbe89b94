package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// pqItem is one frontier entry. Duplicates of the same cell are allowed;
// solvers discard stale ones on pop (lazy decrease-key).
type pqItem struct {
	cell     gridgraph.Cell
	priority float64
	g        float64
	seq      int
}

// cellPQ implements heap.Interface ordered by priority ascending, then by
// insertion order.
type cellPQ []pqItem

func (pq cellPQ) Len() int { return len(pq) }
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }
func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// frontier wraps cellPQ with an insertion counter so equal priorities pop
// in FIFO order.
type frontier struct {
	items cellPQ
	seq   int
}

func (f *frontier) push(c gridgraph.Cell, priority, g float64) {
	heap.Push(&f.items, pqItem{cell: c, priority: priority, g: g, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() pqItem {
	return heap.Pop(&f.items).(pqItem)
}

func (f *frontier) Len() int { return f.items.Len() }
