// Package dbbs implements DBBS (Dynamic Bidirectional Bucket Search),
// a front-to-end bidirectional heuristic search that returns provably
// shortest paths for admissible heuristics.
//
// Overview:
//
//   - Both frontiers live in bucket.BestList open lists keyed by
//     (g, h, h_reverse). The engine maintains a proved lower bound C on
//     the optimal cost and only expands nodes from buckets that could
//     still participate in a solution of cost C.
//   - Which buckets qualify is decided by a fixed-point computation
//     that tightens six scalar limits (g, f, d, b, rf, rd) across the
//     two frontiers: the forward side's minima constrain the backward
//     query and vice versa, until the forward minima stabilize.
//   - When no bucket survives on some side, C is raised to the
//     smallest admissible lower bound implied by the frontier contents
//     (pairwise g, KK, B, and RC bound formulas), and the fixed point
//     reruns.
//   - A collision — generating a successor the opposite frontier
//     already knows — yields a candidate solution; the search ends as
//     soon as C reaches the best candidate, which proves optimality.
//
// Side selection alternates strictly or picks the side with the fewest
// expandable nodes (forward on ties), per WithAlternating /
// WithFewestNodes.
//
// Termination:
//
//   - currentCost ≤ C + ε at exit; a run that ends with C beyond the
//     best solution reports ErrInconsistentBound, which indicates an
//     inadmissible heuristic or an engine bug.
//
// The search is single-threaded and owns all per-query state; a DBBS
// value may be reused for successive queries but not concurrently.
package dbbs
