// Package core - ε-tolerant floating-point ordering.
//
// Every cost comparison in bihs goes through these helpers so that
// accumulated IEEE-754 drift (diagonal moves of 1.5, repeated ½
// quanta) cannot split logically equal bucket keys or flip a
// termination check.
package core

import "math"

// Tolerance is the absolute slack applied by all comparisons below.
// Costs in supported domains are multiples of 0.5, so drift is many
// orders of magnitude smaller than this.
const Tolerance = 1e-6

// Fequal reports a ≈ b within Tolerance.
func Fequal(a, b float64) bool { return math.Abs(a-b) < Tolerance }

// Fless reports a < b beyond Tolerance.
func Fless(a, b float64) bool { return a < b-Tolerance }

// Fgreater reports a > b beyond Tolerance.
func Fgreater(a, b float64) bool { return a > b+Tolerance }

// Flesseq reports a ≤ b within Tolerance.
func Flesseq(a, b float64) bool { return !Fgreater(a, b) }

// Fgreatereq reports a ≥ b within Tolerance.
func Fgreatereq(a, b float64) bool { return !Fless(a, b) }

// CeilQuantum rounds x up to the next multiple of the quantum q,
// treating values within Tolerance of a multiple as exact so that
// drift cannot push a bound one whole quantum too high.
func CeilQuantum(x, q float64) float64 { return q * math.Ceil(x/q-Tolerance) }
