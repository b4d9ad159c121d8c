// Package core provides the shared primitives of the bihs module:
// the domain contract every search environment implements, the
// ε-tolerant floating-point ordering used for all cost comparisons,
// and the Solution type returned by every engine.
//
// Overview:
//
//   - Domain[S] is the pluggable capability set {successors, edge cost,
//     state hash} a search engine needs. States are plain comparable
//     values; the core never inspects them beyond equality and hashing.
//   - Heuristic[S] estimates the remaining cost between two states.
//     Engines require admissible (never overestimating) heuristics for
//     optimality; meeting-in-the-middle pruning additionally assumes
//     consistency.
//   - Fequal/Fless/Fgreater/Flesseq/Fgreatereq absorb floating-point
//     drift in cost arithmetic (e.g. diagonal grid moves of cost 1.5)
//     with a fixed tolerance of 1e-6.
//
// When to use:
//
//   - Implement Domain and Heuristic for your state space, then run
//     dbbs, twolevelbae, or astar over it.
//
// Concurrency:
//
//   - All types in this package are immutable or value-like and safe to
//     share; engines themselves are single-threaded per search.
package core
