// Package bucket implements the multi-dimensional open list behind the
// DBBS engine: nodes keyed by the triple (g, h, h_reverse), grouped
// into dense buckets, with a cached "best bucket" selected under six
// simultaneous upper-bound limits.
//
// Overview:
//
//   - List[S] stores one search side's frontier. The three key layers
//     are ordered B-trees: g ascending, then h ascending, then
//     h_reverse descending, so a fixed (g, h) layer is visited by
//     ascending depth bound d = g − h_reverse and a d limit
//     short-circuits early.
//   - Each bucket is a dense slice of node pointers. Improving a
//     node's g does not move the old slot: it is tombstoned (set to
//     nil) and the node re-inserted under its new key. Tombstones are
//     physically removed only when popped from a bucket's tail.
//   - BestList[S] layers the six-limit query on top: ComputeBestBucket
//     scans the survivor set, maintains the running minima of
//     g, f, d, b, rf, rd, and caches the bucket minimizing the
//     configured criterion. Pop serves from the cache and invalidates
//     it the moment its bucket drains.
//
// Derived per-bucket quantities:
//
//	f  = g + h
//	d  = g − h_reverse
//	b  = f + d = 2g + h − h_reverse
//	rf = g − h
//	rd = g + h_reverse
//
// Error handling:
//
//   - Reopening an already expanded node (Add on a node whose bucket
//     slot was consumed) is an internal invariant violation and panics
//     with ErrReopenedExpanded.
//   - Reading BestList minima without a cached best bucket panics with
//     ErrNoBestBucket; callers gate on IsBestBucketComputed.
//
// Complexity:
//
//   - Add / PopBucket / RemoveIfEmpty: O(log V) tree navigation plus
//     O(1) bucket work.
//   - ComputeBestBucket / CountExpandableNodes: linear in the buckets
//     that survive the limit pruning, not in the node count.
package bucket
