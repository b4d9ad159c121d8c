// Package astar implements the reference unidirectional A* search.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/bihs/core"
)

// Engine runs unidirectional A* queries. Construct with New; the
// engine may be reused sequentially.
type Engine[S comparable] struct {
	env core.Domain[S]
	h   core.Heuristic[S]

	goal S

	// closed holds the final g of every expanded state.
	closed map[S]float64
	open   openHeap[S]
	best   map[S]*record[S]

	nodesExpanded uint64
	nodesTouched  uint64

	succBuf []S
}

// record is one discovered state with its best-known g and parent.
type record[S comparable] struct {
	state     S
	g, f      float64
	parent    S
	hasParent bool
}

// openHeap is a lazy-decrease-key binary heap of records ordered by f,
// ties broken towards the larger g (deeper nodes first), matching the
// bidirectional engines' tie policy.
type openHeap[S comparable] []*record[S]

func (h openHeap[S]) Len() int { return len(h) }

func (h openHeap[S]) Less(i, j int) bool {
	if core.Fequal(h[i].f, h[j].f) {
		return core.Fgreater(h[i].g, h[j].g)
	}

	return core.Fless(h[i].f, h[j].f)
}

func (h openHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap[S]) Push(x any) { *h = append(*h, x.(*record[S])) }

func (h *openHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// New returns an A* engine.
func New[S comparable]() *Engine[S] { return &Engine[S]{} }

// Name returns the engine name for reports.
func (e *Engine[S]) Name() string { return "A*" }

// FindPath runs one query from from to to under the given admissible
// heuristic. A disconnected instance yields Cost = +Inf and no error.
func (e *Engine[S]) FindPath(env core.Domain[S], from, to S, heuristic core.Heuristic[S]) (core.Solution[S], error) {
	if env == nil {
		return core.Solution[S]{}, ErrNilDomain
	}
	if heuristic == nil {
		return core.Solution[S]{}, ErrNilHeuristic
	}

	e.env, e.h, e.goal = env, heuristic, to
	e.closed = make(map[S]float64)
	e.best = make(map[S]*record[S])
	e.open = e.open[:0]
	e.nodesExpanded, e.nodesTouched = 0, 0

	if from == to {
		return core.Solution[S]{Path: []S{from}, Cost: 0}, nil
	}

	root := &record[S]{state: from, g: 0, f: heuristic.H(from, to)}
	e.best[from] = root
	heap.Push(&e.open, root)

	for e.open.Len() > 0 {
		cur := heap.Pop(&e.open).(*record[S])

		// Skip stale duplicates left behind by lazy decrease-key.
		if known, ok := e.best[cur.state]; !ok || known != cur {
			continue
		}
		if _, done := e.closed[cur.state]; done {
			continue
		}
		e.closed[cur.state] = cur.g

		if cur.state == to {
			return core.Solution[S]{
				Path:     e.extractPath(cur),
				Cost:     cur.g,
				Expanded: e.nodesExpanded,
				Touched:  e.nodesTouched,
			}, nil
		}

		e.expand(cur, to)
	}

	return core.Solution[S]{
		Cost:     math.Inf(1),
		Expanded: e.nodesExpanded,
		Touched:  e.nodesTouched,
	}, nil
}

func (e *Engine[S]) expand(cur *record[S], to S) {
	e.nodesExpanded++

	e.succBuf = e.env.AppendSuccessors(cur.state, e.succBuf[:0])
	for _, succ := range e.succBuf {
		e.nodesTouched++

		if _, done := e.closed[succ]; done {
			continue // consistent heuristic: closed g is final
		}

		succG := cur.g + e.env.Cost(cur.state, succ)
		if known, ok := e.best[succ]; ok && core.Flesseq(known.g, succG) {
			continue
		}

		next := &record[S]{
			state: succ, g: succG, f: succG + e.h.H(succ, to),
			parent: cur.state, hasParent: true,
		}
		e.best[succ] = next
		heap.Push(&e.open, next)
	}
}

func (e *Engine[S]) extractPath(end *record[S]) []S {
	var reversed []S
	for n := end; ; {
		reversed = append(reversed, n.state)
		if !n.hasParent {
			break
		}
		n = e.best[n.parent]
	}

	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return reversed
}

// NodesExpanded returns the expansion count of the last query.
func (e *Engine[S]) NodesExpanded() uint64 { return e.nodesExpanded }

// NodesTouched returns the generated-successor count of the last
// query.
func (e *Engine[S]) NodesTouched() uint64 { return e.nodesTouched }

// ExpandedWithFAbove counts closed states whose f exceeds cstar.
func (e *Engine[S]) ExpandedWithFAbove(cstar float64) int {
	count := 0
	for s, g := range e.closed {
		if core.Fgreater(g+e.h.H(s, e.goal), cstar) {
			count++
		}
	}

	return count
}
