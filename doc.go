// Package mazesolver solves 4-connected grid mazes with fifteen pathfinding
// algorithms and reports both the path found and the order in which cells
// were explored.
//
// The module is organized into three library packages and an application
// layer:
//
//	gridgraph/   Grid, Cell, neighbors, heuristics, line of sight,
//	             components, rendering, built-in mazes
//	pathfind/    BFS, DFS, A*, Dijkstra, Greedy Best-First, Bidirectional,
//	             Random Walk, IDA*, Jump Point Search, Bellman-Ford,
//	             Floyd-Warshall, D*, Theta*, Fringe Search, SMA*;
//	             registry, options, visitation trace
//	mazegen/     random perfect mazes (Wilson's algorithm) with optional loops
//	internal/    config, session, HTTP API, CLI
//	cmd/         the mazesolver binary
//
// Quick start:
//
//	g, _ := gridgraph.Maze("Maze 1")
//	res, err := pathfind.Solve(g, pathfind.AlgoAStar)
//	if err != nil {
//		// invalid grid, unknown algorithm, cancellation
//	}
//	fmt.Println(res.Found, res.Path)
//
// A search that finds no route is not an error: Result.Found is false and
// Result.Path is empty.
package mazesolver
