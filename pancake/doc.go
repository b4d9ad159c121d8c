// Package pancake provides the pancake puzzle domain: permutations
// sorted by prefix reversals, with the GAP-k family of admissible
// heuristics.
//
// Overview:
//
//   - A state is a stack of up to 16 pancakes; a move reverses a
//     prefix of length 2..N at unit cost.
//   - The GAP heuristic counts adjacent stack positions (including the
//     plate below the largest position) whose pancake sizes differ by
//     more than one. Each flip changes exactly one such adjacency, so
//     the count is an admissible and consistent lower bound. GAP-k
//     ignores gaps involving any of the k smallest pancakes, trading
//     accuracy for a weaker but faster-to-beat heuristic in
//     benchmarks.
//   - H is evaluated between two arbitrary permutations by ranking
//     one through the other, so the same Env serves both search
//     directions.
//
// Instances:
//
//   - Instance derives a deterministic permutation per (n, id) via a
//     SplitMix64-seeded Fisher–Yates shuffle: the same id yields the
//     same instance on every platform and run.
package pancake
