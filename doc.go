// Package bihs implements bidirectional heuristic search algorithms
// that return provably shortest paths when both forward and backward
// heuristics are available.
//
// 🚀 What is bihs?
//
//	A library and benchmark harness for meet-in-the-middle search:
//
//	  • DBBS — dynamic bidirectional bucket search with a fixed-point
//	    six-limit frontier pruning over (g, h, h_reverse) buckets
//	  • TwoLevelBAE — a two-heap (ready/waiting) front-to-end engine
//	    driven by the B = 2g + h − h_reverse bound
//	  • A reference A* for cross-checking and baselines
//
// ✨ Why choose bihs?
//
//   - Provably optimal    — every returned path is shortest, given
//     admissible heuristics
//   - Domain-agnostic     — plug in successors, edge costs, a hash,
//     and a heuristic; grids, pancakes, and sliding tiles ship in-tree
//   - Reproducible        — deterministic tie-breaking and instance
//     generation; one report line per run
//
// Package map:
//
//	core/         — domain contract, ε-tolerant float ordering, Solution
//	bucket/       — (g, h, h_reverse) bucket open list + best-bucket cache
//	twoqueue/     — two-heap open/closed store (B-ordered and F-ordered)
//	dbbs/         — the DBBS engine
//	twolevelbae/  — the TwoLevelBAE engine
//	astar/        — reference unidirectional A*
//	grid/         — octile grid domain with .map/.scen loaders
//	pancake/      — pancake puzzle domain with GAP-k
//	stp/          — 4×4 sliding-tile domain with Manhattan distance
//	driver/       — benchmark CLI wiring
//	cmd/bihs/     — the binary
//
// Quick example:
//
//	m, _ := grid.NewMap(3, 3)
//	env := grid.NewEnv(m)
//	engine := dbbs.New[grid.Coord](dbbs.WithGCD(grid.DefaultGCD))
//	sol, _ := engine.FindPath(env, grid.Coord{}, grid.Coord{X: 2, Y: 2}, env, env)
//	fmt.Println(sol.Cost) // 3
package bihs
