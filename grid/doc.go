// Package grid provides the octile grid pathfinding domain: a 2D map
// of passable and blocked cells with 4- or 8-connected moves, the
// HOG2-style .map and .scen file loaders, and the octile distance
// heuristic.
//
// Overview:
//
//   - Map is the immutable obstacle grid; Env wraps it into the
//     Domain/Heuristic pair the search engines consume.
//   - Straight moves cost 1; diagonal moves cost DiagonalCost (1.5 in
//     the reference experiments, making the cost quantum 0.5).
//     Diagonal moves never cut corners: both adjacent cardinal cells
//     must be passable.
//   - The heuristic is the octile distance under the same move costs
//     for Conn8, and the Manhattan distance for Conn4; both are
//     admissible and consistent.
//
// File formats:
//
//	type octile          version 1
//	height 3             0 maze.map 512 512 1 2 3 4 7.5
//	width 3              ...
//	map                  (bucket, map, size, start, goal, optimal)
//	.@.
//	...
//
// Cells '.', 'G', and 'S' are passable; every other character blocks.
package grid
