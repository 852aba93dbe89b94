package pathfind

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mazesolver/gridgraph"
)

// Algorithm names a solver. The value is its display name.
type Algorithm string

// The fifteen solvers, in menu order.
const (
	AlgoBFS           Algorithm = "BFS"
	AlgoDFS           Algorithm = "DFS"
	AlgoAStar         Algorithm = "A*"
	AlgoDijkstra      Algorithm = "Dijkstra"
	AlgoGreedy        Algorithm = "Greedy Best-First"
	AlgoBidirectional Algorithm = "Bidirectional"
	AlgoRandomWalk    Algorithm = "Random Walk"
	AlgoIDAStar       Algorithm = "IDA*"
	AlgoJPS           Algorithm = "Jump Point Search"
	AlgoBellmanFord   Algorithm = "Bellman-Ford"
	AlgoFloydWarshall Algorithm = "Floyd-Warshall"
	AlgoDStar         Algorithm = "D*"
	AlgoThetaStar     Algorithm = "Theta*"
	AlgoFringe        Algorithm = "Fringe Search"
	AlgoSMAStar       Algorithm = "SMA*"
)

// SolverFunc is the shape every solver shares.
type SolverFunc func(g *gridgraph.Grid, opts ...Option) (*Result, error)

type entry struct {
	algo    Algorithm
	solve   SolverFunc
	optimal bool
	aliases []string
}

var registry = []entry{
	{AlgoBFS, BFS, true, []string{"bfs", "breadth-first"}},
	{AlgoDFS, DFS, false, []string{"dfs", "depth-first"}},
	{AlgoAStar, AStar, true, []string{"astar", "a-star"}},
	{AlgoDijkstra, Dijkstra, true, []string{"dijkstra"}},
	{AlgoGreedy, GreedyBestFirst, false, []string{"greedy", "gbfs", "best-first"}},
	{AlgoBidirectional, Bidirectional, false, []string{"bidirectional", "bidi"}},
	{AlgoRandomWalk, RandomWalk, false, []string{"random", "random-walk", "randomwalk"}},
	{AlgoIDAStar, IDAStar, false, []string{"ida", "idastar", "ida-star"}},
	{AlgoJPS, JumpPointSearch, false, []string{"jps", "jump-point"}},
	{AlgoBellmanFord, BellmanFord, true, []string{"bellman-ford", "bellmanford", "bf"}},
	{AlgoFloydWarshall, FloydWarshall, true, []string{"floyd-warshall", "floydwarshall", "fw"}},
	{AlgoDStar, DStar, true, []string{"dstar", "d-star"}},
	{AlgoThetaStar, ThetaStar, true, []string{"theta", "thetastar", "theta-star"}},
	{AlgoFringe, FringeSearch, true, []string{"fringe", "fringe-search"}},
	{AlgoSMAStar, SMAStar, false, []string{"sma", "smastar", "sma-star"}},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(registry)*4)
	for i, e := range registry {
		m[strings.ToLower(string(e.algo))] = i
		for _, a := range e.aliases {
			m[a] = i
		}
	}
	return m
}()

// Algorithms returns all solvers in menu order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(registry))
	for i, e := range registry {
		out[i] = e.algo
	}
	return out
}

// ParseAlgorithm resolves a display name or alias, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	if i, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return registry[i].algo, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) lookup() (entry, bool) {
	i, ok := byName[strings.ToLower(string(a))]
	if !ok {
		return entry{}, false
	}
	return registry[i], true
}

// Optimal reports whether the solver always returns a shortest path. For
// Theta* that means a path no longer than the shortest grid path.
func (a Algorithm) Optimal() bool {
	e, ok := a.lookup()
	return ok && e.optimal
}

// Solver returns the function implementing a.
func (a Algorithm) Solver() (SolverFunc, error) {
	e, ok := a.lookup()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
	return e.solve, nil
}

func (a Algorithm) String() string {
	return string(a)
}

// Solve validates g once and dispatches to the named solver.
// Returns ErrGridNil, ErrInvalidGrid or ErrUnknownAlgorithm before any
// search runs; otherwise whatever the solver returns.
func Solve(g *gridgraph.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	solve, err := algo.Solver()
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGridNil
	}
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, err)
	}
	return solve(g, opts...)
}
