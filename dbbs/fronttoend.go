// Package dbbs - frontToEnd, the shared bidirectional engine state:
// initialization, successor expansion with collision detection, and
// path reconstruction. The DBBS type layers the limit machinery and
// the search loop on top.
package dbbs

import (
	"math"

	"github.com/katalvlaran/bihs/bucket"
	"github.com/katalvlaran/bihs/core"
)

// frontToEnd holds both sides' open lists and everything a
// front-to-end bidirectional search shares regardless of the expansion
// policy driving it.
type frontToEnd[S comparable] struct {
	fw, bw *bucket.BestList[S]

	env    core.Domain[S]
	fh, bh core.Heuristic[S]

	start, goal S

	epsilon float64

	// currentCost is the best solution discovered so far (+Inf until a
	// collision); middleNode is where the frontiers met.
	currentCost float64
	middleNode  S
	hasMiddle   bool

	// C is the proved lower bound on the optimal cost; it never
	// decreases within one search.
	C float64

	// counts tracks expansions per C value for the necessary-expansion
	// statistic.
	counts map[float64]uint64

	nodesExpanded uint64
	nodesTouched  uint64

	succBuf []S
}

// initialize resets all per-query state and seeds both frontiers.
// It reports trivial == true when start equals goal, in which case no
// search is needed.
func (e *frontToEnd[S]) initialize(env core.Domain[S], from, to S, forward, backward core.Heuristic[S]) (trivial bool, err error) {
	if env == nil {
		return false, ErrNilDomain
	}
	if forward == nil || backward == nil {
		return false, ErrNilHeuristic
	}

	e.env, e.fh, e.bh = env, forward, backward
	e.reset()
	e.start, e.goal = from, to
	if from == to {
		return true, nil
	}

	forwardH := math.Max(forward.H(from, to), e.epsilon)
	backwardH := math.Max(backward.H(to, from), e.epsilon)

	e.fw.AddRoot(from, 0, forwardH, 0)
	e.bw.AddRoot(to, 0, backwardH, 0)

	e.C = math.Max(math.Max(forwardH, backwardH), e.epsilon)

	return false, nil
}

func (e *frontToEnd[S]) reset() {
	e.currentCost = math.Inf(1)
	e.hasMiddle = false
	e.C = 0
	e.fw.Reset()
	e.bw.Reset()
	e.counts = make(map[float64]uint64)
	e.nodesExpanded, e.nodesTouched = 0, 0
}

// checkSolution reports whether the best known solution is proved
// optimal: the lower bound has caught up with it.
func (e *frontToEnd[S]) checkSolution() bool { return core.Fgreatereq(e.C, e.currentCost) }

// expand generates the successors of one node of the current side,
// pruning against the best known solution, detecting collisions with
// the opposite frontier, and inserting the survivors into the current
// open list.
func (e *frontToEnd[S]) expand(cur S, g float64, current, opposite *bucket.BestList[S],
	heuristic, reverseHeuristic core.Heuristic[S], target, source S) {
	e.nodesExpanded++
	e.counts[e.C]++

	e.succBuf = e.env.AppendSuccessors(cur, e.succBuf[:0])
	for _, succ := range e.succBuf {
		e.nodesTouched++

		succG := g + e.env.Cost(cur, succ)
		h := math.Max(heuristic.H(succ, target), e.epsilon)

		// Bounded by the best solution found so far.
		if core.Fgreatereq(succG+h, e.currentCost) {
			continue
		}

		hNx := reverseHeuristic.H(succ, source)

		if found, optimal, oppG := opposite.LookupG(succ); found {
			collisionCost := succG + oppG
			if core.Fless(collisionCost, e.currentCost) {
				e.currentCost = collisionCost
				e.middleNode = succ
				e.hasMiddle = true

				if core.Fgreatereq(e.C, e.currentCost) {
					// Still record the parent link so the plan can be
					// extracted, then stop generating successors.
					current.Add(succ, succG, h, hNx, cur)

					break
				}
			} else if optimal {
				continue // opposite g is final and the meeting is no better
			}
		}

		current.Add(succ, succG, h, hNx, cur)
	}
}

// reconstruct splices the two parent walks at middleNode into a
// start→goal path.
func (e *frontToEnd[S]) reconstruct() []S {
	forward := e.extractPath(&e.fw.List, e.middleNode)
	backward := e.extractPath(&e.bw.List, e.middleNode)

	// forward comes out middle→start; flip it, then append the
	// backward walk minus the duplicated middle.
	for i, j := 0, len(forward)-1; i < j; i, j = i+1, j-1 {
		forward[i], forward[j] = forward[j], forward[i]
	}

	return append(forward, backward[1:]...)
}

func (e *frontToEnd[S]) extractPath(list *bucket.List[S], from S) []S {
	path := []S{from}
	n, ok := list.Lookup(from)
	for ok && n.HasParent {
		path = append(path, n.Parent)
		n, ok = list.Lookup(n.Parent)
	}

	return path
}

// LowerBound returns the proved lower bound C reached by the last
// query; at a solved termination currentCost ≤ C + ε.
func (e *frontToEnd[S]) LowerBound() float64 { return e.C }

// NodesExpanded returns the expansion count of the last query.
func (e *frontToEnd[S]) NodesExpanded() uint64 { return e.nodesExpanded }

// NodesTouched returns the generated-successor count of the last
// query.
func (e *frontToEnd[S]) NodesTouched() uint64 { return e.nodesTouched }

// NecessaryExpansions counts expansions performed while C was still
// below the final solution cost; those are unavoidable for any
// algorithm proving optimality with the same information.
func (e *frontToEnd[S]) NecessaryExpansions() uint64 {
	var necessary uint64
	for c, n := range e.counts {
		if core.Fless(c, e.currentCost) {
			necessary += n
		}
	}

	return necessary
}
