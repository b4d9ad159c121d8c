// Package dbbs - the DBBS engine proper: the fixed-point limit
// computation, the next-C bound candidates, and the search loop.
package dbbs

import (
	"math"

	"github.com/katalvlaran/bihs/bucket"
	"github.com/katalvlaran/bihs/core"
)

// DBBS is the Dynamic Bidirectional Bucket Search engine. Construct
// with New, then call FindPath per query; the engine may be reused
// sequentially.
type DBBS[S comparable] struct {
	frontToEnd[S]

	opts Options

	expandForward bool
}

// New returns a DBBS engine configured by opts.
func New[S comparable](opts ...Option) *DBBS[S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &DBBS[S]{opts: cfg}
	d.epsilon = cfg.Epsilon
	listOpts := []bucket.Option{
		bucket.WithCriterion(cfg.Criterion),
		bucket.WithUseB(cfg.UseB),
		bucket.WithUseRC(cfg.UseRC),
	}
	d.fw = bucket.NewBestList[S](listOpts...)
	d.bw = bucket.NewBestList[S](listOpts...)

	return d
}

// Name returns the engine name for reports.
func (d *DBBS[S]) Name() string { return "DBBS" }

// FindPath runs one shortest-path query from from to to. forward
// estimates cost towards to, backward towards from; both must be
// admissible for the optimality guarantee.
//
// A disconnected instance yields a Solution with Cost = +Inf and no
// error; Found() distinguishes the two outcomes.
func (d *DBBS[S]) FindPath(env core.Domain[S], from, to S, forward, backward core.Heuristic[S]) (core.Solution[S], error) {
	trivial, err := d.initialize(env, from, to, forward, backward)
	if err != nil {
		return core.Solution[S]{}, err
	}
	if trivial {
		return core.Solution[S]{Path: []S{from}, Cost: 0}, nil
	}

	d.expandForward = true
	d.runAlgorithm()

	if core.Fgreater(d.C, d.currentCost) {
		return core.Solution[S]{}, ErrInconsistentBound
	}

	sol := core.Solution[S]{
		Cost:     d.currentCost,
		Expanded: d.nodesExpanded,
		Touched:  d.nodesTouched,
	}
	if d.hasMiddle {
		sol.Path = d.reconstruct()
	}

	return sol, nil
}

// runAlgorithm is the DBBS search loop: recompute limits, terminate if
// the bound proves the best solution, otherwise expand one node on the
// chosen side.
func (d *DBBS[S]) runAlgorithm() {
	for !d.fw.IsEmpty() && !d.bw.IsEmpty() {
		if d.updateC() && d.checkSolution() {
			break // optimality proven after raising C
		}

		if d.opts.Alternating {
			if d.expandForward {
				d.expandFromBestBucket(d.fw, d.bw, d.fh, d.bh, d.goal, d.start)
				d.expandForward = false
			} else {
				d.expandFromBestBucket(d.bw, d.fw, d.bh, d.fh, d.start, d.goal)
				d.expandForward = true
			}
		} else {
			// Fewest expandable nodes under the just-computed limits,
			// forward on ties.
			if d.fw.ExpandableNodes() <= d.bw.ExpandableNodes() {
				d.expandFromBestBucket(d.fw, d.bw, d.fh, d.bh, d.goal, d.start)
			} else {
				d.expandFromBestBucket(d.bw, d.fw, d.bh, d.fh, d.start, d.goal)
			}
		}

		if d.checkSolution() {
			break // a collision during expansion may prove optimality
		}
	}
}

// expandFromBestBucket pops one node from the side's cached best
// bucket and expands it. A nil pop (the cache died on tombstones) just
// returns: the next updateC either finds fresh work or raises C.
func (d *DBBS[S]) expandFromBestBucket(current, opposite *bucket.BestList[S],
	heuristic, reverseHeuristic core.Heuristic[S], target, source S) {
	s, g, ok := current.Pop()
	if !ok {
		return
	}

	d.expand(s, g, current, opposite, heuristic, reverseHeuristic, target, source)
}

// updateC re-establishes expandable buckets on both sides, raising C
// as often as needed. Reports whether C increased.
//
// One pass bootstraps the forward side under the loose limits
// (C, C, C, 2C, ∞, ∞), propagates its six minima into the backward
// query, feeds the backward minima back into the forward query, and
// repeats until the forward minima stabilize. If either side still has
// no expandable bucket after a pass, C rises to the next admissible
// bound and the whole procedure reruns.
func (d *DBBS[S]) updateC() bool {
	if d.fw.IsBestBucketComputed() && d.bw.IsBestBucketComputed() {
		return false // nothing to recompute, no reason to raise C
	}

	incremented := false
	inf := math.Inf(1)

	for core.Fless(d.C, d.currentCost) && (!d.fw.IsBestBucketComputed() || !d.bw.IsBestBucketComputed()) {
		// Bootstrap the forward side.
		d.fw.ComputeBestBucket(d.C, d.C, d.C, 2*d.C, inf, inf)

		gMinF, fMinF, dMinF, bMinF, rfMinF, rdMinF := d.C, d.C, d.C, 2*d.C, d.C, d.C
		if d.fw.IsBestBucketComputed() {
			gMinF, fMinF, dMinF = d.fw.MinG(), d.fw.MinF(), d.fw.MinD()
			bMinF, rfMinF, rdMinF = d.fw.MinB(), d.fw.MinRF(), d.fw.MinRD()
		}

		for limitsChanged := true; limitsChanged; {
			limitsChanged = false

			d.bw.ComputeBestBucket(d.C-(gMinF+d.epsilon), d.C-dMinF, d.C-fMinF,
				2*d.C-bMinF, d.C-rdMinF, d.C-rfMinF)
			if !d.bw.IsBestBucketComputed() {
				break
			}
			gMinB, fMinB, dMinB := d.bw.MinG(), d.bw.MinF(), d.bw.MinD()
			bMinB, rfMinB, rdMinB := d.bw.MinB(), d.bw.MinRF(), d.bw.MinRD()

			d.fw.ComputeBestBucket(d.C-(gMinB+d.epsilon), d.C-dMinB, d.C-fMinB,
				2*d.C-bMinB, d.C-rdMinB, d.C-rfMinB)
			if !d.fw.IsBestBucketComputed() {
				break
			}
			gNew, fNew, dNew := d.fw.MinG(), d.fw.MinF(), d.fw.MinD()
			bNew, rfNew, rdNew := d.fw.MinB(), d.fw.MinRF(), d.fw.MinRD()

			limitsChanged = !core.Fequal(gMinF, gNew) || !core.Fequal(fMinF, fNew) ||
				!core.Fequal(dMinF, dNew) || !core.Fequal(bMinF, bNew) ||
				!core.Fequal(rfMinF, rfNew) || !core.Fequal(rdMinF, rdNew)

			gMinF, fMinF, dMinF, bMinF, rfMinF, rdMinF = gNew, fNew, dNew, bNew, rfNew, rdNew
		}

		if !d.fw.IsBestBucketComputed() || !d.bw.IsBestBucketComputed() {
			d.C = d.getNextC()
			incremented = true
		}
	}

	if !d.opts.Alternating && d.fw.IsBestBucketComputed() && d.bw.IsBestBucketComputed() {
		d.fw.CountExpandableNodes()
		d.bw.CountExpandableNodes()
	}

	return incremented
}

// getNextC returns the smallest admissible lower bound above the
// current C implied by the frontier contents: pairwise g sums, the two
// KK bounds, the quantized B bound, and the two RC bounds.
func (d *DBBS[S]) getNextC() float64 {
	result := math.Inf(1)
	forward, backward := d.fw.NodeValues(), d.bw.NodeValues()

	consider := func(candidate float64) {
		if core.Fgreater(candidate, d.C) && core.Fless(candidate, result) {
			result = candidate
		}
	}

	// g bound: any forward/backward pair still needs one more edge.
	for _, fg := range forward.G {
		for _, bg := range backward.G {
			consider(fg + bg + d.epsilon)
		}
	}

	// forward and backward KK bounds.
	for _, ff := range forward.F {
		for _, bd := range backward.D {
			consider(ff + bd)
		}
	}
	for _, bf := range backward.F {
		for _, fd := range forward.D {
			consider(bf + fd)
		}
	}

	// B bound, rounded up to the cost quantum.
	if d.opts.UseB {
		for _, fb := range forward.B {
			for _, bb := range backward.B {
				consider(core.CeilQuantum((fb+bb)/2, d.opts.GCD))
			}
		}
	}

	// RC bounds.
	if d.opts.UseRC {
		for _, frf := range forward.RF {
			for _, brd := range backward.RD {
				consider(frf + brd)
			}
		}
		for _, brf := range backward.RF {
			for _, frd := range forward.RD {
				consider(brf + frd)
			}
		}
	}

	return result
}
