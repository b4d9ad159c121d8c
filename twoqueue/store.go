// Package twoqueue - the Store implementation: one element table, two
// id-heaps with independent comparators, and the location bookkeeping
// tying them together.
package twoqueue

import "github.com/katalvlaran/bihs/core"

// Store is the open/closed structure for one search side.
type Store[S comparable] struct {
	elements []Node[S]
	table    map[uint64]uint64 // state hash → element id
	queues   [2][]uint64       // [OpenReady], [OpenWaiting]
}

// NewStore returns an empty Store.
func NewStore[S comparable]() *Store[S] {
	q := &Store[S]{}
	q.Reset()

	return q
}

// Reset removes every node from the table and both heaps.
func (q *Store[S]) Reset() {
	q.elements = q.elements[:0]
	q.table = make(map[uint64]uint64)
	q.queues[OpenReady] = q.queues[OpenReady][:0]
	q.queues[OpenWaiting] = q.queues[OpenWaiting][:0]
}

// AddOpenNode admits a new state into the chosen heap and returns its
// id. The hash must be unseen; a duplicate panics with
// ErrDuplicateHash. A parent of NoNode makes the node a root pointing
// at itself.
func (q *Store[S]) AddOpenNode(s S, hash uint64, g, h, rh float64, parent uint64, which Location) uint64 {
	if which != OpenReady && which != OpenWaiting {
		panic("twoqueue: AddOpenNode requires an open location")
	}
	if _, dup := q.table[hash]; dup {
		panic(ErrDuplicateHash)
	}

	id := uint64(len(q.elements))
	q.elements = append(q.elements, Node[S]{
		State: s, G: g, H: h, RH: rh,
		ParentID:     parent,
		Where:        which,
		openLocation: len(q.queues[which]),
	})
	if parent == NoNode {
		q.elements[id].ParentID = id
	}
	q.table[hash] = id

	q.queues[which] = append(q.queues[which], id)
	q.siftUp(len(q.queues[which])-1, which)

	return id
}

// AddClosedNode admits a state directly into the closed set.
func (q *Store[S]) AddClosedNode(s S, hash uint64, g, h, rh float64, parent uint64) uint64 {
	if _, dup := q.table[hash]; dup {
		panic(ErrDuplicateHash)
	}

	id := uint64(len(q.elements))
	q.elements = append(q.elements, Node[S]{
		State: s, G: g, H: h, RH: rh,
		ParentID: parent,
		Where:    Closed,
	})
	if parent == NoNode {
		q.elements[id].ParentID = id
	}
	q.table[hash] = id

	return id
}

// Lookup resolves a state hash to its location and id. Unknown hashes
// yield (Unseen, 0).
func (q *Store[S]) Lookup(hash uint64) (Location, uint64) {
	id, ok := q.table[hash]
	if !ok {
		return Unseen, 0
	}

	return q.elements[id].Where, id
}

// At returns the table entry for id. The pointer is valid until the
// next admission, which may grow the table; callers re-fetch after
// adding nodes.
func (q *Store[S]) At(id uint64) *Node[S] { return &q.elements[id] }

// Peek returns the id at the top of the chosen heap.
func (q *Store[S]) Peek(which Location) uint64 {
	if len(q.queues[which]) == 0 {
		panic(ErrEmptyQueue)
	}

	return q.queues[which][0]
}

// Close pops the ready top, marks it closed, and returns its id.
func (q *Store[S]) Close() uint64 {
	ready := q.queues[OpenReady]
	if len(ready) == 0 {
		panic(ErrEmptyQueue)
	}

	id := ready[0]
	q.elements[id].Where = Closed

	last := ready[len(ready)-1]
	ready[0] = last
	q.elements[last].openLocation = 0
	q.queues[OpenReady] = ready[:len(ready)-1]

	q.siftDown(0, OpenReady)

	return id
}

// PutToReady moves the waiting top into the ready heap and returns its
// id.
func (q *Store[S]) PutToReady() uint64 {
	waiting := q.queues[OpenWaiting]
	if len(waiting) == 0 {
		panic(ErrEmptyQueue)
	}

	id := waiting[0]
	last := waiting[len(waiting)-1]
	waiting[0] = last
	q.elements[last].openLocation = 0
	q.queues[OpenWaiting] = waiting[:len(waiting)-1]
	q.siftDown(0, OpenWaiting)

	q.elements[id].Where = OpenReady
	q.elements[id].openLocation = len(q.queues[OpenReady])
	q.queues[OpenReady] = append(q.queues[OpenReady], id)
	q.siftUp(len(q.queues[OpenReady])-1, OpenReady)

	return id
}

// Reopen pushes a closed node back into the chosen heap, marking it
// reopened. The node must currently be closed.
func (q *Store[S]) Reopen(id uint64, which Location) {
	if q.elements[id].Where != Closed {
		panic(ErrNotClosed)
	}

	q.elements[id].Reopened = true
	q.elements[id].Where = which
	q.elements[id].openLocation = len(q.queues[which])
	q.queues[which] = append(q.queues[which], id)
	q.siftUp(len(q.queues[which])-1, which)
}

// Remove takes an open node out of its heap and marks it closed
// (pruned nodes are indistinguishable from expanded ones afterwards).
func (q *Store[S]) Remove(id uint64) {
	index := q.elements[id].openLocation
	which := q.elements[id].Where
	q.elements[id].Where = Closed

	queue := q.queues[which]
	last := queue[len(queue)-1]
	queue[index] = last
	q.elements[last].openLocation = index
	q.queues[which] = queue[:len(queue)-1]

	if index < len(q.queues[which]) {
		if !q.siftUp(index, which) {
			q.siftDown(index, which)
		}
	}
}

// KeyChanged restores heap order around id after its G was improved in
// place: sift up, and if that was a no-op, sift down.
func (q *Store[S]) KeyChanged(id uint64) {
	which := q.elements[id].Where
	if which != OpenReady && which != OpenWaiting {
		return
	}
	if !q.siftUp(q.elements[id].openLocation, which) {
		q.siftDown(q.elements[id].openLocation, which)
	}
}

// OpenReadySize returns the ready heap size.
func (q *Store[S]) OpenReadySize() int { return len(q.queues[OpenReady]) }

// OpenWaitingSize returns the waiting heap size.
func (q *Store[S]) OpenWaitingSize() int { return len(q.queues[OpenWaiting]) }

// OpenSize returns the total open node count.
func (q *Store[S]) OpenSize() int { return q.OpenReadySize() + q.OpenWaitingSize() }

// ClosedSize returns the closed node count.
func (q *Store[S]) ClosedSize() int { return q.Size() - q.OpenSize() }

// Size returns the number of admitted nodes, open or closed.
func (q *Store[S]) Size() int { return len(q.elements) }

// worse reports whether element b is preferred over element a under
// the heap order of which: B = 2g + h − rh for ready, F = g + h for
// waiting, both breaking ties towards the larger g.
func (q *Store[S]) worse(a, b uint64, which Location) bool {
	na, nb := &q.elements[a], &q.elements[b]

	var pa, pb float64
	if which == OpenReady {
		pa, pb = na.B(), nb.B()
	} else {
		pa, pb = na.F(), nb.F()
	}

	if core.Fequal(pa, pb) {
		return core.Fless(na.G, nb.G) // prefer the larger g
	}

	return core.Fgreater(pa, pb)
}

// siftUp moves the node at index towards the root while it beats its
// parent. Reports whether any move happened.
func (q *Store[S]) siftUp(index int, which Location) bool {
	queue := q.queues[which]
	moved := false
	for index > 0 {
		parent := (index - 1) / 2
		if !q.worse(queue[parent], queue[index], which) {
			break
		}
		queue[parent], queue[index] = queue[index], queue[parent]
		q.elements[queue[parent]].openLocation = parent
		q.elements[queue[index]].openLocation = index
		index = parent
		moved = true
	}

	return moved
}

// siftDown moves the node at index towards the leaves while a child
// beats it.
func (q *Store[S]) siftDown(index int, which Location) {
	queue := q.queues[which]
	count := len(queue)
	for {
		child1, child2 := index*2+1, index*2+2
		if child1 >= count {
			return
		}

		which2 := child1
		if child2 < count && q.worse(queue[child1], queue[child2], which) {
			which2 = child2
		}

		if !q.worse(queue[index], queue[which2], which) {
			return
		}
		queue[index], queue[which2] = queue[which2], queue[index]
		q.elements[queue[index]].openLocation = index
		q.elements[queue[which2]].openLocation = which2
		index = which2
	}
}
