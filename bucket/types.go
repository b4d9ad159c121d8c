// Package bucket - core types, options, and sentinel errors for the
// (g, h, h_reverse) bucket-based open lists.
package bucket

import (
	"errors"
	"math"
)

// Sentinel errors. Both mark internal invariant violations: they are
// raised via panic because they indicate a bug in the caller, not a
// recoverable condition.
var (
	// ErrReopenedExpanded indicates Add was asked to improve a node that
	// has already been expanded. With an admissible heuristic a closed
	// node's g is optimal, so this must never happen.
	ErrReopenedExpanded = errors.New("bucket: reopening an already expanded node")

	// ErrNoBestBucket indicates a BestList minimum getter was read while
	// no best bucket is cached. Callers must gate on
	// IsBestBucketComputed.
	ErrNoBestBucket = errors.New("bucket: no cached best bucket")
)

// expandedIndex marks a node whose bucket slot has been consumed by
// expansion; such a node's g is final for its side.
const expandedIndex = -1

// btreeDegree is the branching factor of the key-layer B-trees.
const btreeDegree = 32

// Node is one search node owned by a side's table. Buckets hold
// pointers to Nodes; a nil slot is a tombstone left behind when the
// node moved to a smaller-g bucket.
type Node[S comparable] struct {
	// State is the domain state this node wraps.
	State S
	// G is the best-known cost from this side's root.
	G float64
	// H and RH are the heuristic estimates to the target and back to
	// the source, fixed per state for a deterministic heuristic.
	H, RH float64
	// Parent is the predecessor state on the best-known path.
	// HasParent is false only for the root.
	Parent    S
	HasParent bool

	// bucketIndex is the node's slot in its bucket, or expandedIndex
	// once the node has been expanded.
	bucketIndex int
}

// Expanded reports whether the node has been expanded (closed) on its
// side, which makes its G provably optimal for that side.
func (n *Node[S]) Expanded() bool { return n.bucketIndex == expandedIndex }

// BucketInfo describes one non-empty bucket key and its slot count
// (tombstones included).
type BucketInfo struct {
	G, H, RH float64
	Nodes    int
}

// F returns g + h for the bucket.
func (b BucketInfo) F() float64 { return b.G + b.H }

// D returns g − h_reverse for the bucket.
func (b BucketInfo) D() float64 { return b.G - b.RH }

// NodeValues lists the distinct derived values present in a list, each
// slice sorted ascending. The DBBS engine combines the two sides'
// values into candidate lower bounds when raising C.
type NodeValues struct {
	G, F, D, B, RF, RD []float64
}

// MinCriterion selects which derived quantity the best-bucket cache
// minimizes. It is a plain tag: the traversal is identical for all
// four, only the bucket recorded as "best" differs.
type MinCriterion int

const (
	// MinG prefers the bucket realizing the minimum g.
	MinG MinCriterion = iota
	// MinF prefers the bucket realizing the minimum f = g + h.
	MinF
	// MinD prefers the bucket realizing the minimum d = g − h_reverse.
	MinD
	// MinB prefers the bucket realizing the minimum b = f + d.
	MinB
)

// String implements fmt.Stringer.
func (c MinCriterion) String() string {
	switch c {
	case MinG:
		return "MinG"
	case MinF:
		return "MinF"
	case MinD:
		return "MinD"
	case MinB:
		return "MinB"
	default:
		return "MinCriterion(?)"
	}
}

// Options configures a BestList.
type Options struct {
	// Criterion picks the bucket cached as best among the survivors.
	Criterion MinCriterion
	// UseB includes the b = 2g + h − h_reverse limit in queries and in
	// the cache-invalidation test.
	UseB bool
	// UseRC includes the reverse-consistency limits rf and rd.
	UseRC bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the configuration used by the reference
// experiments: MinB criterion with both the b and rc limits active.
func DefaultOptions() Options {
	return Options{Criterion: MinB, UseB: true, UseRC: true}
}

// WithCriterion selects the best-bucket criterion.
func WithCriterion(c MinCriterion) Option {
	if c < MinG || c > MinB {
		panic("bucket: unknown MinCriterion")
	}

	return func(o *Options) { o.Criterion = c }
}

// WithUseB toggles the b limit.
func WithUseB(use bool) Option { return func(o *Options) { o.UseB = use } }

// WithUseRC toggles the rf/rd limits.
func WithUseRC(use bool) Option { return func(o *Options) { o.UseRC = use } }

// unlimited is the neutral upper bound for limit parameters.
var unlimited = math.Inf(1)
