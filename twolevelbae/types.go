// Package twolevelbae - configuration options and sentinel errors.
package twolevelbae

import "errors"

// Sentinel errors returned by FindPath.
var (
	// ErrNilDomain indicates a nil Domain was supplied.
	ErrNilDomain = errors.New("twolevelbae: domain is nil")

	// ErrNilHeuristic indicates a nil forward or backward heuristic.
	ErrNilHeuristic = errors.New("twolevelbae: heuristic is nil")
)

// Options configures a TwoLevelBAE engine.
type Options struct {
	// GCD is the cost quantum the B lower bound is rounded up to.
	GCD float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses a unit cost quantum.
func DefaultOptions() Options { return Options{GCD: 1.0} }

// WithGCD sets the cost quantum. Panics if q ≤ 0.
func WithGCD(q float64) Option {
	if q <= 0 {
		panic("twolevelbae: GCD must be positive")
	}

	return func(o *Options) { o.GCD = q }
}
