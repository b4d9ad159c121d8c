// Package dbbs - configuration options and sentinel errors for the
// DBBS engine.
package dbbs

import (
	"errors"

	"github.com/katalvlaran/bihs/bucket"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilDomain indicates a nil Domain was supplied.
	ErrNilDomain = errors.New("dbbs: domain is nil")

	// ErrNilHeuristic indicates a nil forward or backward heuristic.
	ErrNilHeuristic = errors.New("dbbs: heuristic is nil")

	// ErrInconsistentBound indicates the search loop terminated with
	// the lower bound C strictly above the best solution cost. For
	// admissible heuristics this must never happen; it marks either an
	// inadmissible heuristic or an engine bug.
	ErrInconsistentBound = errors.New("dbbs: lower bound exceeded best solution at termination")
)

// Options configures a DBBS engine.
type Options struct {
	// Alternating toggles strict side alternation. When false the
	// engine expands the side with fewer expandable nodes under the
	// current limits, forward on ties.
	Alternating bool

	// UseB includes the b-limit in the fixed point and the B bound in
	// the next-C candidates.
	UseB bool

	// UseRC includes the reverse-consistency rf/rd limits and bounds.
	UseRC bool

	// Epsilon is the minimum positive edge cost of the domain; it
	// floors heuristic values and pads the pairwise g bound.
	Epsilon float64

	// GCD is the cost quantum used to round the B bound upward
	// (e.g. 0.5 on octile grids).
	GCD float64

	// Criterion selects the bucket expanded among the survivors.
	Criterion bucket.MinCriterion
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions matches the reference experiments: strict
// alternation, both extra bound families active, unit epsilon and
// quantum, MinB criterion.
func DefaultOptions() Options {
	return Options{
		Alternating: true,
		UseB:        true,
		UseRC:       true,
		Epsilon:     1.0,
		GCD:         1.0,
		Criterion:   bucket.MinB,
	}
}

// WithAlternating selects strict side alternation.
func WithAlternating() Option { return func(o *Options) { o.Alternating = true } }

// WithFewestNodes selects the fewest-expandable-nodes side policy.
func WithFewestNodes() Option { return func(o *Options) { o.Alternating = false } }

// WithUseB toggles the b limit and B bound.
func WithUseB(use bool) Option { return func(o *Options) { o.UseB = use } }

// WithUseRC toggles the rf/rd limits and RC bounds.
func WithUseRC(use bool) Option { return func(o *Options) { o.UseRC = use } }

// WithEpsilon sets the minimum positive edge cost. Panics if e ≤ 0:
// a zero epsilon would stall the g bound.
func WithEpsilon(e float64) Option {
	if e <= 0 {
		panic("dbbs: Epsilon must be positive")
	}

	return func(o *Options) { o.Epsilon = e }
}

// WithGCD sets the cost quantum. Panics if q ≤ 0.
func WithGCD(q float64) Option {
	if q <= 0 {
		panic("dbbs: GCD must be positive")
	}

	return func(o *Options) { o.GCD = q }
}

// WithCriterion selects the expansion criterion.
func WithCriterion(c bucket.MinCriterion) Option {
	return func(o *Options) { o.Criterion = c }
}
