// Package grid - core types, options, and sentinel errors for the
// grid pathfinding domain.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a map with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all map rows must have the same length")
	// ErrBadMapHeader indicates a malformed .map header.
	ErrBadMapHeader = errors.New("grid: malformed map header")
	// ErrBadScenario indicates a malformed .scen line.
	ErrBadScenario = errors.New("grid: malformed scenario line")
	// ErrOutOfBounds indicates coordinates outside the map.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals, subject to the corner-cutting
	// rule.
	Conn8
)

// DefaultDiagonalCost is the diagonal move cost of the reference
// experiments.
const DefaultDiagonalCost = 1.5

// DefaultGCD is the cost quantum implied by straight cost 1 and
// diagonal cost 1.5.
const DefaultGCD = 0.5

// Coord is one grid cell; the search state of the domain.
type Coord struct {
	X, Y int32
}

// Options contains tunable parameters for an Env.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// DiagonalCost is the cost of a diagonal move under Conn8.
	DiagonalCost float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Conn8 with the reference diagonal cost.
func DefaultOptions() Options {
	return Options{Conn: Conn8, DiagonalCost: DefaultDiagonalCost}
}

// WithConn selects the connectivity.
func WithConn(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic("grid: unknown Connectivity")
	}

	return func(o *Options) { o.Conn = c }
}

// WithDiagonalCost sets the diagonal move cost. Panics if d < 1: a
// diagonal cheaper than a straight move breaks the octile heuristic.
func WithDiagonalCost(d float64) Option {
	if d < 1 {
		panic("grid: DiagonalCost must be at least 1")
	}

	return func(o *Options) { o.DiagonalCost = d }
}
