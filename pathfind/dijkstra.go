package pathfind

import "github.com/katalvlaran/mazesolver/gridgraph"

// Dijkstra runs uniform-cost search keyed by g alone. With unit edges it
// settles cells in the same layers as BFS but through a min-heap; stale heap
// entries (popped g greater than the recorded distance) are skipped.
//
// Complexity: O(V log V) time, O(V) memory.
func Dijkstra(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	s, err := newSearch(AlgoDijkstra, g, opts)
	if err != nil {
		return nil, err
	}
	if res, ok, err := s.trivial(); ok {
		return res, err
	}

	parent, ok, err := s.bestFirst(s.start, s.end, func(_ gridgraph.Cell, cost float64) float64 {
		return cost
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.notFound(), nil
	}
	return s.found(reconstruct(parent, s.start, s.end)), nil
}
