// Package pathfind implements fifteen grid search algorithms over a shared
// contract: each takes a *gridgraph.Grid and returns a *Result holding the
// path from Start to End, or Found == false.
//
// What
//
//   - Uninformed: BFS, DFS, Bidirectional, Random Walk.
//   - Uniform cost: Dijkstra, Bellman-Ford, Floyd-Warshall (all pairs).
//   - Heuristic: A*, D* (static, backwards), Greedy Best-First, IDA*,
//     Fringe Search, SMA* (memory bounded), Jump Point Search, Theta*
//     (any-angle).
//   - Solve dispatches by Algorithm; ParseAlgorithm accepts display names
//     and short aliases ("astar", "jps", "theta", ...).
//   - AllPairs exposes the Floyd-Warshall table for repeated queries.
//
// Why
//
//   - Compare exploration order and path quality of classic searches on the
//     same maze.
//   - Drive a visualizer through a visitation trace without coupling the
//     searches to any rendering code.
//
// Contract
//
//   - Every step costs 1. Theta* alone measures Euclidean length.
//   - A Path starts at Start, ends at End, and consecutive cells are
//     4-adjacent (Theta*: mutually visible).
//   - If Start == End every solver returns [Start].
//   - "No path" is Result.Found == false with a nil error. Errors are
//     reserved for bad input (ErrGridNil, ErrInvalidGrid,
//     ErrOptionViolation, ErrUnknownAlgorithm), cancellation (ctx.Err())
//     and trace hook failures.
//   - Frontier ties break on insertion order, and grid neighbors come in the
//     fixed order right, left, down, up, so every solver except Random Walk
//     is deterministic.
//
// Optimal (shortest path): BFS, Dijkstra, A*, D*, Bellman-Ford,
// Floyd-Warshall, Fringe Search; Theta* never exceeds the shortest grid
// length. DFS, Greedy, Bidirectional, Random Walk, IDA*, JPS and SMA* return
// valid but possibly longer paths.
//
// Visitation trace
//
//	WithOnVisit(fn) calls fn once per cell the first time a solver settles
//	or expands it. Recorder collects the trace into a slice; Stream exposes
//	it as a channel whose producer side never blocks. A hook error aborts
//	the search and is returned wrapped:
//
//	    pathfind: OnVisit error at (r,c): <cause>
//
// Options
//
//   - WithContext(ctx)     cooperative cancellation, polled per expansion
//   - WithOnVisit(fn)      trace hook
//   - WithRand(r), WithSeed(n)  Random Walk source
//   - WithMaxSteps(n)      Random Walk move cap (0 = none)
//   - WithMemoryLimit(n)   SMA* open-list bound (default 1000)
//
// Complexity (V = open cells)
//
//   - BFS, DFS, Bidirectional: O(V)
//   - A*, D*, Dijkstra, Greedy, Theta*: O(V log V)
//   - IDA*, Fringe: O(k·V) for k threshold rounds
//   - Bellman-Ford: O(V²); Floyd-Warshall: O(V³) time, O(V²) memory
//
// Concurrency
//
//	Solvers never mutate the grid and keep all state per call, so distinct
//	calls may run concurrently as long as nobody edits the grid meanwhile.
//
// Usage
//
//	g, _ := gridgraph.Maze("Maze 1")
//	res, err := pathfind.Solve(g, pathfind.AlgoAStar)
//	if err != nil {
//	    // ErrInvalidGrid, ErrUnknownAlgorithm, ...
//	}
//	if res.Found {
//	    fmt.Println(g.Render(res.Path, nil))
//	}
package pathfind
