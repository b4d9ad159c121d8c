// Package astar provides the reference unidirectional A* search the
// bidirectional engines are cross-checked against.
//
// Overview:
//
//   - Classic f = g + h best-first search with a lazy decrease-key
//     strategy: improvements push duplicate heap entries and stale
//     entries are skipped on pop.
//   - With an admissible heuristic the returned cost is optimal, which
//     makes the engine the ground truth for the equivalence tests and
//     a baseline in the benchmark driver.
//
// Statistics:
//
//   - The solution carries expansion and generation counts; the engine
//     additionally reports the "fabove" surplus — closed nodes whose f
//     exceeded the optimal cost — matching the bidirectional reports.
//
// Complexity: O((V + E) log V) time with a binary heap, O(V + E)
// space.
package astar
