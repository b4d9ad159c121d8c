// Package astar - sentinel errors for the reference search.
package astar

import "errors"

// Sentinel errors returned by FindPath.
var (
	// ErrNilDomain indicates a nil Domain was passed.
	ErrNilDomain = errors.New("astar: domain is nil")

	// ErrNilHeuristic indicates a nil heuristic was passed.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)
