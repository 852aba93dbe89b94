// Package gridgraph models a maze as a 2D occupancy grid and exposes the
// queries every search in this module is written against.
//
// What:
//
//   - Grid wraps a rectangular matrix of Open/Wall cells plus a start and end.
//   - Neighbors enumerates open orthogonal cells in a fixed order
//     (right, left, down, up) so searches tie-break deterministically.
//   - Heuristic (Manhattan) and Euclidean estimate remaining distance.
//   - LineOfSight walks every cell a straight segment touches.
//   - ConnectedComponents / Reachable flood-fill open regions.
//   - WallsToBreak finds the fewest walls separating two cells (0-1 BFS).
//   - Maze, Mazes, MazeNames serve the four built-in 9×10 mazes.
//
// Why:
//
//   - One shared contract lets fifteen search strategies be compared cell
//     for cell on identical input.
//
// Complexity:
//
//   - Neighbors, IsWall, IsValid, Heuristic: O(1).
//   - LineOfSight: O(|Δrow| + |Δcol|).
//   - ConnectedComponents, Reachable, WallsToBreak: O(W×H), Memory O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: an authoring call addressed a cell outside the grid.
//   - ErrInvalidEndpoint: start or end is out of bounds or on a wall.
//   - ErrUnknownMaze: Maze was asked for a name it does not know.
//
// Concurrency:
//
//	A Grid is not synchronized. Searches only read it; callers must not
//	mutate a grid while a search over it is running.
package gridgraph
