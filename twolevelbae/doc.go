// Package twolevelbae implements TwoLevelBAE, a bidirectional
// front-to-end search that keeps each frontier in two heaps: a ready
// heap ordered by B = 2g + h − h_reverse holding nodes already proved
// expandable, and a waiting heap ordered by F = g + h holding the
// rest.
//
// Overview:
//
//   - The heads of the two ready heaps imply a lower bound
//     bLB = ⌈(B_fw + B_bw) / (2·gcd)⌉ · gcd on the optimal cost.
//   - Before every expansion the engine pumps waiting nodes whose f
//     equals the working lower bound into ready, raising the bound one
//     f layer at a time while it stays within bLB. With both waitings
//     empty the bound jumps to bLB directly.
//   - Expansion alternates sides. Successors are pruned against the
//     best known solution, matched against the opposite frontier for
//     collisions, and placed into ready or waiting by comparing their
//     f with the current bound.
//   - The search ends when the best solution cost is within the lower
//     bound, or when a side's whole open set drains while a solution
//     exists.
//
// Reopening a closed node with a strictly better g is impossible under
// a consistent heuristic; the engine preserves the original reopen
// semantics for robustness but surfaces the event as a glog warning.
//
// Single-threaded; a TwoLevelBAE value may be reused for successive
// queries but not concurrently.
package twolevelbae
