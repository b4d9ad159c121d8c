// Package bucket - BestList, the six-limit best-bucket cache layered
// on List.
package bucket

import (
	"math"

	"github.com/katalvlaran/bihs/core"
)

// BestList extends List with a cached "best bucket" computed under six
// simultaneous upper-bound limits (g, f, d, b, rf, rd). The DBBS
// engine recomputes the limits in a fixed-point loop and then expands
// exclusively from the cached bucket until it drains.
type BestList[S comparable] struct {
	List[S]

	opts Options

	best       *nodeBucket[S]
	expandable int

	minG, minF, minD, minB, minRF, minRD float64
	gLim, fLim, dLim, bLim, rfLim, rdLim float64
}

// NewBestList returns an empty BestList configured by opts.
func NewBestList[S comparable](opts ...Option) *BestList[S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &BestList[S]{opts: cfg}
	l.List.init()
	l.invalidate()

	return l
}

// Reset drops all nodes and the cached query state.
func (l *BestList[S]) Reset() {
	l.List.Reset()
	l.invalidate()
}

// AddRoot inserts the side's root state, which has no parent.
func (l *BestList[S]) AddRoot(s S, g, h, rh float64) bool {
	var none S

	return l.addBest(s, g, h, rh, none, false)
}

// Add behaves like List.Add and additionally drops the cached best
// bucket whenever the insertion improves any minimum the active limits
// track, forcing the engine to recompute before the next pop.
func (l *BestList[S]) Add(s S, g, h, rh float64, parent S) bool {
	return l.addBest(s, g, h, rh, parent, true)
}

func (l *BestList[S]) addBest(s S, g, h, rh float64, parent S, hasParent bool) bool {
	added := l.List.add(s, g, h, rh, parent, hasParent)

	f, d := g+h, g-rh
	if added &&
		(core.Fless(g, l.minG) || core.Fless(f, l.minF) || core.Fless(d, l.minD) ||
			(l.opts.UseB && core.Fless(f+d, l.minB)) ||
			(l.opts.UseRC && core.Fless(g-h, l.minRF)) ||
			(l.opts.UseRC && core.Fless(g+rh, l.minRD))) {
		l.invalidate()
	}

	return added
}

// IsBestBucketComputed reports whether a best bucket is cached for the
// stored limits.
func (l *BestList[S]) IsBestBucketComputed() bool { return l.best != nil }

// MinG returns the minimum g among buckets satisfying the stored
// limits. It panics with ErrNoBestBucket when nothing is cached; the
// same holds for the other five getters.
func (l *BestList[S]) MinG() float64 { return l.checked(l.minG) }

// MinF returns the minimum f = g + h among the survivors.
func (l *BestList[S]) MinF() float64 { return l.checked(l.minF) }

// MinD returns the minimum d = g − h_reverse among the survivors.
func (l *BestList[S]) MinD() float64 { return l.checked(l.minD) }

// MinB returns the minimum b = f + d among the survivors.
func (l *BestList[S]) MinB() float64 { return l.checked(l.minB) }

// MinRF returns the minimum rf = g − h among the survivors.
func (l *BestList[S]) MinRF() float64 { return l.checked(l.minRF) }

// MinRD returns the minimum rd = g + h_reverse among the survivors.
func (l *BestList[S]) MinRD() float64 { return l.checked(l.minRD) }

// ExpandableNodes returns the survivor slot count established by the
// last CountExpandableNodes call.
func (l *BestList[S]) ExpandableNodes() int { return l.expandable }

func (l *BestList[S]) checked(v float64) float64 {
	if l.best == nil {
		panic(ErrNoBestBucket)
	}

	return v
}

func (l *BestList[S]) invalidate() {
	l.best = nil
	l.expandable = math.MaxInt
	l.minG, l.minF, l.minD = unlimited, unlimited, unlimited
	l.minB, l.minRF, l.minRD = unlimited, unlimited, unlimited
}

// ComputeBestBucket scans the buckets satisfying all six limits,
// records the running minima of g, f, d, b, rf, rd over the survivor
// set, and caches the bucket realizing the minimum of the configured
// criterion. Empty buckets and key layers met along the way are erased
// in place. When no bucket survives, the cache stays empty and the
// caller reacts by raising its bound.
//
// The walk exploits the key order: g and f violations terminate their
// level, a d or b violation terminates the (g, h) layer (d grows as
// h_reverse shrinks), while rf and rd violations only skip the current
// entry because those quantities decrease along the iteration order.
func (l *BestList[S]) ComputeBestBucket(gLim, fLim, dLim, bLim, rfLim, rdLim float64) {
	l.invalidate()
	l.gLim, l.fLim, l.dLim = gLim, fLim, dLim
	l.bLim, l.rfLim, l.rdLim = bLim, rfLim, rdLim

	var emptyG []*gLayer[S]
	l.layers.Ascend(func(gl *gLayer[S]) bool {
		g := gl.g
		if core.Fgreater(g, gLim) {
			return false
		}
		if gl.hs.Len() == 0 {
			emptyG = append(emptyG, gl)

			return true
		}

		var emptyH []*hLayer[S]
		gl.hs.Ascend(func(hl *hLayer[S]) bool {
			h := hl.h
			f := g + h
			if core.Fgreater(f, fLim) {
				return false
			}
			rf := g - h
			if l.opts.UseRC && core.Fgreater(rf, rfLim) {
				return true // rf decreases with growing h; later layers may pass
			}
			if hl.rhs.Len() == 0 {
				emptyH = append(emptyH, hl)

				return true
			}

			var emptyRH []*nodeBucket[S]
			hl.rhs.Ascend(func(b *nodeBucket[S]) bool {
				if len(b.nodes) == 0 {
					emptyRH = append(emptyRH, b)

					return true
				}

				d := g - b.rh
				if core.Fgreater(d, dLim) {
					return false
				}
				bv := f + d
				if l.opts.UseB && core.Fgreater(bv, bLim) {
					return false
				}
				rd := g + b.rh
				if l.opts.UseRC && core.Fgreater(rd, rdLim) {
					return true // rd decreases with shrinking h_reverse
				}

				if core.Fless(g, l.minG) {
					l.minG = g
					if l.opts.Criterion == MinG {
						l.best = b
					}
				}
				if core.Fless(f, l.minF) {
					l.minF = f
					if l.opts.Criterion == MinF {
						l.best = b
					}
				}
				if core.Fless(d, l.minD) {
					l.minD = d
					if l.opts.Criterion == MinD {
						l.best = b
					}
				}
				if core.Fless(bv, l.minB) {
					l.minB = bv
					if l.opts.Criterion == MinB {
						l.best = b
					}
				}
				if core.Fless(rf, l.minRF) {
					l.minRF = rf
				}
				if core.Fless(rd, l.minRD) {
					l.minRD = rd
				}

				return true
			})
			for _, b := range emptyRH {
				hl.rhs.Delete(b)
			}

			return true
		})
		for _, hl := range emptyH {
			gl.hs.Delete(hl)
		}

		return true
	})
	for _, gl := range emptyG {
		l.layers.Delete(gl)
	}
}

// Pop serves one state from the cached best bucket, skipping any
// tombstones at its tail. Draining the bucket invalidates the cache,
// so the engine recomputes limits before the next pop. ok is false
// when no best bucket is cached (or the cache died on a tombstone
// drain), which the engine treats as "recompute or raise C".
func (l *BestList[S]) Pop() (s S, g float64, ok bool) {
	for {
		if l.best == nil {
			var zero S

			return zero, 0, false
		}

		b := l.best
		n := b.nodes[len(b.nodes)-1]
		b.nodes = b.nodes[:len(b.nodes)-1]
		l.expandable--
		if len(b.nodes) == 0 {
			l.invalidate()
		}
		if n == nil {
			continue // tombstone; keep draining
		}

		n.bucketIndex = expandedIndex

		return n.State, n.G, true
	}
}

// CountExpandableNodes re-walks the buckets under the stored limits
// with the same pruning rules and records the total slot count, used
// by the fewest-expandable-nodes side-selection policy.
func (l *BestList[S]) CountExpandableNodes() {
	total := 0
	l.layers.Ascend(func(gl *gLayer[S]) bool {
		g := gl.g
		if core.Fgreater(g, l.gLim) {
			return false
		}
		gl.hs.Ascend(func(hl *hLayer[S]) bool {
			h := hl.h
			f := g + h
			if core.Fgreater(f, l.fLim) {
				return false
			}
			if l.opts.UseRC && core.Fgreater(g-h, l.rfLim) {
				return true
			}
			hl.rhs.Ascend(func(b *nodeBucket[S]) bool {
				d := g - b.rh
				if core.Fgreater(d, l.dLim) {
					return false
				}
				if l.opts.UseB && core.Fgreater(f+d, l.bLim) {
					return false
				}
				if l.opts.UseRC && core.Fgreater(g+b.rh, l.rdLim) {
					return true
				}
				total += len(b.nodes)

				return true
			})

			return true
		})

		return true
	})

	l.expandable = total
}
