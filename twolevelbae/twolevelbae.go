// Package twolevelbae - the TwoLevelBAE engine implementation.
package twolevelbae

import (
	"math"

	"github.com/aristanetworks/glog"

	"github.com/katalvlaran/bihs/core"
	"github.com/katalvlaran/bihs/twoqueue"
)

// TwoLevelBAE is the two-level (ready/waiting) bidirectional engine.
// Construct with New, then call FindPath per query; the engine may be
// reused sequentially.
type TwoLevelBAE[S comparable] struct {
	opts Options

	fw, bw *twoqueue.Store[S]

	env    core.Domain[S]
	fh, bh core.Heuristic[S]

	start, goal S

	// cLowerBound is the working lower bound nodes are admitted to
	// ready under; currentCost the best solution found so far.
	cLowerBound float64
	currentCost float64

	middleNode S
	hasMiddle  bool

	expandForward bool

	nodesExpanded  uint64
	nodesTouched   uint64
	uniqueExpanded uint64

	succBuf []S
}

// New returns a TwoLevelBAE engine configured by opts.
func New[S comparable](opts ...Option) *TwoLevelBAE[S] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &TwoLevelBAE[S]{
		opts: cfg,
		fw:   twoqueue.NewStore[S](),
		bw:   twoqueue.NewStore[S](),
	}
}

// Name returns the engine name for reports.
func (t *TwoLevelBAE[S]) Name() string { return "TLBAE" }

// FindPath runs one shortest-path query. forward estimates cost
// towards to, backward towards from; both must be admissible for the
// optimality guarantee. A disconnected instance yields Cost = +Inf and
// no error.
func (t *TwoLevelBAE[S]) FindPath(env core.Domain[S], from, to S, forward, backward core.Heuristic[S]) (core.Solution[S], error) {
	if env == nil {
		return core.Solution[S]{}, ErrNilDomain
	}
	if forward == nil || backward == nil {
		return core.Solution[S]{}, ErrNilHeuristic
	}

	t.env, t.fh, t.bh = env, forward, backward
	t.reset()
	t.start, t.goal = from, to
	if from == to {
		return core.Solution[S]{Path: []S{from}, Cost: 0}, nil
	}

	forwardH := forward.H(from, to)
	backwardH := backward.H(to, from)

	t.fw.AddOpenNode(from, env.Hash(from), 0, forwardH, 0, twoqueue.NoNode, twoqueue.OpenReady)
	t.bw.AddOpenNode(to, env.Hash(to), 0, backwardH, 0, twoqueue.NoNode, twoqueue.OpenReady)
	t.cLowerBound = math.Max(forwardH, backwardH)

	for !t.step() {
	}

	sol := core.Solution[S]{
		Cost:     t.currentCost,
		Expanded: t.nodesExpanded,
		Touched:  t.nodesTouched,
	}
	if t.hasMiddle {
		sol.Path = t.reconstruct()
	}

	return sol, nil
}

func (t *TwoLevelBAE[S]) reset() {
	t.fw.Reset()
	t.bw.Reset()
	t.cLowerBound = 0
	t.currentCost = math.Inf(1)
	t.hasMiddle = false
	t.expandForward = true
	t.nodesExpanded, t.nodesTouched, t.uniqueExpanded = 0, 0, 0
}

// step performs one promote-then-expand iteration and reports whether
// the search is over.
func (t *TwoLevelBAE[S]) step() bool {
	t.updateReadyQueue()

	if core.Flesseq(t.currentCost, t.cLowerBound) {
		return true // best solution proved optimal
	}
	if t.fw.OpenSize() == 0 || t.bw.OpenSize() == 0 {
		return true // a frontier drained: no (better) solution exists
	}

	if t.expandForward {
		t.expandSide(t.fw, t.bw, t.fh, t.bh, t.goal, t.start)
		t.expandForward = false
	} else {
		t.expandSide(t.bw, t.fw, t.bh, t.fh, t.start, t.goal)
		t.expandForward = true
	}

	// A solution that emptied one side's open set cannot be improved.
	if !math.IsInf(t.currentCost, 1) && (t.fw.OpenSize() == 0 || t.bw.OpenSize() == 0) {
		return true
	}

	return false
}

// currentBBound is the lower bound implied by the two ready heads,
// rounded up to the cost quantum; +Inf while a ready heap is empty.
func (t *TwoLevelBAE[S]) currentBBound() float64 {
	if t.fw.OpenReadySize() == 0 || t.bw.OpenReadySize() == 0 {
		return math.Inf(1)
	}

	n1 := t.fw.At(t.fw.Peek(twoqueue.OpenReady))
	n2 := t.bw.At(t.bw.Peek(twoqueue.OpenReady))

	return core.CeilQuantum((n1.B()+n2.B())/2, t.opts.GCD)
}

// updateReadyQueue pumps waiting nodes into ready one f layer at a
// time while the layer's f stays within the B bound, raising the
// working lower bound to each admitted layer. With both waiting heaps
// empty the bound raises to the B bound directly.
func (t *TwoLevelBAE[S]) updateReadyQueue() {
	minF := t.minWaitingF()
	for !math.IsInf(minF, 1) && core.Flesseq(minF, t.currentBBound()) {
		t.cLowerBound = minF

		for t.fw.OpenWaitingSize() > 0 &&
			core.Fequal(t.fw.At(t.fw.Peek(twoqueue.OpenWaiting)).F(), t.cLowerBound) {
			t.fw.PutToReady()
		}
		for t.bw.OpenWaitingSize() > 0 &&
			core.Fequal(t.bw.At(t.bw.Peek(twoqueue.OpenWaiting)).F(), t.cLowerBound) {
			t.bw.PutToReady()
		}

		minF = t.minWaitingF()
	}

	if math.IsInf(minF, 1) {
		t.cLowerBound = math.Max(t.cLowerBound, t.currentBBound())
	}
}

// minWaitingF is the smaller waiting-top f of the two sides, +Inf for
// empty heaps.
func (t *TwoLevelBAE[S]) minWaitingF() float64 {
	ff, fb := math.Inf(1), math.Inf(1)
	if t.fw.OpenWaitingSize() > 0 {
		ff = t.fw.At(t.fw.Peek(twoqueue.OpenWaiting)).F()
	}
	if t.bw.OpenWaitingSize() > 0 {
		fb = t.bw.At(t.bw.Peek(twoqueue.OpenWaiting)).F()
	}

	return math.Min(ff, fb)
}

// expandSide closes the ready top of the current side and processes
// its successors per their location on this side, checking the
// opposite frontier for collisions.
func (t *TwoLevelBAE[S]) expandSide(current, opposite *twoqueue.Store[S],
	heuristic, revHeuristic core.Heuristic[S], target, source S) {
	nextID := current.Close()
	t.nodesExpanded++
	if !current.At(nextID).Reopened {
		t.uniqueExpanded++
	}

	// Admissions below may grow the table; keep plain values, not
	// pointers, across them.
	parentState := current.At(nextID).State
	parentG := current.At(nextID).G

	t.succBuf = t.env.AppendSuccessors(parentState, t.succBuf[:0])
	for _, succ := range t.succBuf {
		t.nodesTouched++

		hash := t.env.Hash(succ)
		loc, childID := current.Lookup(hash)
		edgeCost := t.env.Cost(parentState, succ)
		succG := parentG + edgeCost

		// Bounded by the best solution found so far.
		if core.Fgreatereq(succG+heuristic.H(succ, target), t.currentCost) {
			continue
		}

		switch loc {
		case twoqueue.Closed:
			// A strictly better path into a closed node: impossible for
			// consistent heuristics, preserved for robustness.
			oppLoc, _ := opposite.Lookup(hash)
			if core.Fless(succG, current.At(childID).G) && oppLoc != twoqueue.Closed {
				glog.Warningf("twolevelbae: reopening closed node with non-optimal g; heuristic likely inconsistent")
				child := current.At(childID)
				child.ParentID = nextID
				child.G = succG
				if core.Flesseq(child.F(), t.cLowerBound) {
					current.Reopen(childID, twoqueue.OpenReady)
				} else {
					current.Reopen(childID, twoqueue.OpenWaiting)
				}
			}

		case twoqueue.OpenReady, twoqueue.OpenWaiting:
			if core.Fless(succG, current.At(childID).G) {
				child := current.At(childID)
				child.ParentID = nextID
				child.G = succG
				current.KeyChanged(childID)

				// The improvement may have made the waiting top
				// admissible; promote one node now rather than waiting
				// for the next cycle.
				if loc == twoqueue.OpenWaiting &&
					core.Flesseq(current.At(current.Peek(twoqueue.OpenWaiting)).F(), t.cLowerBound) {
					current.PutToReady()
				}

				oppLoc, oppID := opposite.Lookup(hash)
				if (oppLoc == twoqueue.OpenReady || oppLoc == twoqueue.OpenWaiting) &&
					core.Fless(succG+opposite.At(oppID).G, t.currentCost) {
					t.currentCost = succG + opposite.At(oppID).G
					t.middleNode = succ
					t.hasMiddle = true
				} else if oppLoc == twoqueue.Closed {
					// Expanded in the opposite direction: prunable by
					// symmetry.
					current.Remove(childID)
				}
			}

		case twoqueue.Unseen:
			oppLoc, oppID := opposite.Lookup(hash)
			if oppLoc == twoqueue.Closed {
				continue // already expanded in the opposite direction
			}

			h := heuristic.H(succ, target)
			which := twoqueue.OpenWaiting
			if core.Flesseq(succG+h, t.cLowerBound) {
				which = twoqueue.OpenReady
			}
			current.AddOpenNode(succ, hash, succG, h, revHeuristic.H(succ, source), nextID, which)

			if (oppLoc == twoqueue.OpenReady || oppLoc == twoqueue.OpenWaiting) &&
				core.Fless(succG+opposite.At(oppID).G, t.currentCost) {
				t.currentCost = succG + opposite.At(oppID).G
				t.middleNode = succ
				t.hasMiddle = true
			}
		}
	}
}

// reconstruct splices the two parentID walks at middleNode.
func (t *TwoLevelBAE[S]) reconstruct() []S {
	forward := t.extractPath(t.fw, t.middleNode)
	backward := t.extractPath(t.bw, t.middleNode)

	for i, j := 0, len(forward)-1; i < j; i, j = i+1, j-1 {
		forward[i], forward[j] = forward[j], forward[i]
	}

	return append(forward, backward[1:]...)
}

func (t *TwoLevelBAE[S]) extractPath(q *twoqueue.Store[S], from S) []S {
	loc, id := q.Lookup(t.env.Hash(from))
	if loc == twoqueue.Unseen {
		return nil
	}

	path := []S{q.At(id).State}
	for q.At(id).ParentID != id {
		id = q.At(id).ParentID
		path = append(path, q.At(id).State)
	}

	return path
}

// LowerBound returns the working lower bound reached by the last
// query.
func (t *TwoLevelBAE[S]) LowerBound() float64 { return t.cLowerBound }

// NodesExpanded returns the expansion count of the last query.
func (t *TwoLevelBAE[S]) NodesExpanded() uint64 { return t.nodesExpanded }

// NodesTouched returns the generated-successor count of the last
// query.
func (t *TwoLevelBAE[S]) NodesTouched() uint64 { return t.nodesTouched }

// UniqueNodesExpanded counts first-time expansions (reopened nodes
// excluded).
func (t *TwoLevelBAE[S]) UniqueNodesExpanded() uint64 { return t.uniqueExpanded }

// ExpandedWithFAbove counts closed nodes on either side whose f under
// that side's heuristic exceeds cstar; with cstar the optimal cost
// this is the classical "fabove" surplus statistic.
func (t *TwoLevelBAE[S]) ExpandedWithFAbove(cstar float64) int {
	count := 0
	for i := 0; i < t.fw.Size(); i++ {
		n := t.fw.At(uint64(i))
		if n.Where == twoqueue.Closed && core.Fgreater(n.G+t.fh.H(n.State, t.goal), cstar) {
			count++
		}
	}
	for i := 0; i < t.bw.Size(); i++ {
		n := t.bw.At(uint64(i))
		if n.Where == twoqueue.Closed && core.Fgreater(n.G+t.bh.H(n.State, t.start), cstar) {
			count++
		}
	}

	return count
}
