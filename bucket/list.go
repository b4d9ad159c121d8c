// Package bucket - List, the (g, h, h_reverse)-keyed open list for one
// search side.
package bucket

import (
	"sort"

	"github.com/google/btree"

	"github.com/katalvlaran/bihs/core"
)

// gLayer groups all h layers sharing one g value.
type gLayer[S comparable] struct {
	g  float64
	hs *btree.BTreeG[*hLayer[S]]
}

// hLayer groups all buckets sharing one (g, h) pair.
type hLayer[S comparable] struct {
	h   float64
	rhs *btree.BTreeG[*nodeBucket[S]]
}

// nodeBucket is the dense leaf holding the nodes of one
// (g, h, h_reverse) key. nil slots are tombstones.
type nodeBucket[S comparable] struct {
	rh    float64
	nodes []*Node[S]
}

// List is the bucket-based open list of one search side. The node
// table owns the Node records; buckets borrow pointers into it, so
// entries stay valid for the lifetime of the search.
type List[S comparable] struct {
	table  map[S]*Node[S]
	layers *btree.BTreeG[*gLayer[S]]
}

// NewList returns an empty List.
func NewList[S comparable]() *List[S] {
	l := &List[S]{}
	l.init()

	return l
}

func (l *List[S]) init() {
	l.table = make(map[S]*Node[S])
	l.layers = btree.NewG(btreeDegree, func(a, b *gLayer[S]) bool {
		return core.Fless(a.g, b.g)
	})
}

// Reset drops every node and bucket, returning the list to its
// post-construction state.
func (l *List[S]) Reset() { l.init() }

// IsEmpty reports whether no bucket keys remain. Buckets holding only
// tombstones still count as present until they are swept.
func (l *List[S]) IsEmpty() bool { return l.layers.Len() == 0 }

// Size returns the number of states ever admitted and still tracked
// (open or expanded).
func (l *List[S]) Size() int { return len(l.table) }

// Lookup returns the node record for s, if any. The record stays owned
// by the list; callers use it to walk parent links during path
// reconstruction.
func (l *List[S]) Lookup(s S) (*Node[S], bool) {
	n, ok := l.table[s]

	return n, ok
}

// LookupG reports whether s is known on this side, whether its g is
// provably side-optimal (the node has been expanded), and the g value
// itself.
func (l *List[S]) LookupG(s S) (found, optimal bool, g float64) {
	n, ok := l.table[s]
	if !ok {
		return false, false, unlimited
	}

	return true, n.Expanded(), n.G
}

// AddRoot inserts the side's root state, which has no parent.
func (l *List[S]) AddRoot(s S, g, h, rh float64) bool {
	var none S

	return l.add(s, g, h, rh, none, false)
}

// Add inserts s with the given key and parent, or improves an existing
// entry.
//
// Returns false when s is already known with a no-worse g. When the
// existing g is strictly larger, the old bucket slot is tombstoned and
// the node re-inserted under the new key. Improving a node that has
// already been expanded panics with ErrReopenedExpanded: with an
// admissible heuristic a closed node's g is final.
func (l *List[S]) Add(s S, g, h, rh float64, parent S) bool {
	return l.add(s, g, h, rh, parent, true)
}

func (l *List[S]) add(s S, g, h, rh float64, parent S, hasParent bool) bool {
	if n, ok := l.table[s]; ok {
		if core.Flesseq(n.G, g) {
			return false // existing entry is no worse
		}
		if n.Expanded() {
			panic(ErrReopenedExpanded)
		}

		// Tombstone the superseded slot; it is swept lazily from the
		// bucket tail.
		if old := l.findBucket(n.G, n.H, n.RH); old != nil {
			old.nodes[n.bucketIndex] = nil
		}

		b := l.ensureBucket(g, h, rh)
		n.G, n.H, n.RH = g, h, rh
		n.Parent, n.HasParent = parent, hasParent
		n.bucketIndex = len(b.nodes)
		b.nodes = append(b.nodes, n)

		return true
	}

	b := l.ensureBucket(g, h, rh)
	n := &Node[S]{
		State: s, G: g, H: h, RH: rh,
		Parent: parent, HasParent: hasParent,
		bucketIndex: len(b.nodes),
	}
	b.nodes = append(b.nodes, n)
	l.table[s] = n

	return true
}

// PopBucket pops the tail of the named bucket, marks the node
// expanded, and returns its state. The caller must have established
// via RemoveIfEmpty that the bucket's tail is a live node.
func (l *List[S]) PopBucket(g, h, rh float64) S {
	b := l.findBucket(g, h, rh)
	n := b.nodes[len(b.nodes)-1]
	b.nodes = b.nodes[:len(b.nodes)-1]
	l.RemoveIfEmpty(g, h, rh)

	n.bucketIndex = expandedIndex

	return n.State
}

// RemoveIfEmpty strips trailing tombstones from the named bucket and,
// if nothing remains, erases the bucket together with any key layers
// it leaves empty. Reports whether an erasure occurred (or the bucket
// was already gone).
func (l *List[S]) RemoveIfEmpty(g, h, rh float64) bool {
	gl, ok := l.layers.Get(&gLayer[S]{g: g})
	if !ok {
		return true
	}
	hl, ok := gl.hs.Get(&hLayer[S]{h: h})
	if !ok {
		return true
	}
	b, ok := hl.rhs.Get(&nodeBucket[S]{rh: rh})
	if !ok {
		return true
	}

	for len(b.nodes) > 0 && b.nodes[len(b.nodes)-1] == nil {
		b.nodes = b.nodes[:len(b.nodes)-1]
	}
	if len(b.nodes) > 0 {
		return false
	}

	hl.rhs.Delete(b)
	if hl.rhs.Len() == 0 {
		gl.hs.Delete(hl)
		if gl.hs.Len() == 0 {
			l.layers.Delete(gl)
		}
	}

	return true
}

// BucketInfos enumerates every bucket key currently present, in
// traversal order (g asc, h asc, h_reverse desc), with slot counts.
func (l *List[S]) BucketInfos() []BucketInfo {
	var infos []BucketInfo
	l.layers.Ascend(func(gl *gLayer[S]) bool {
		gl.hs.Ascend(func(hl *hLayer[S]) bool {
			hl.rhs.Ascend(func(b *nodeBucket[S]) bool {
				infos = append(infos, BucketInfo{G: gl.g, H: hl.h, RH: b.rh, Nodes: len(b.nodes)})

				return true
			})

			return true
		})

		return true
	})

	return infos
}

// NodeValues collects the distinct g, f, d, b, rf, rd values realized
// by the current bucket keys, each sorted ascending.
func (l *List[S]) NodeValues() NodeValues {
	gSet := map[float64]struct{}{}
	fSet := map[float64]struct{}{}
	dSet := map[float64]struct{}{}
	bSet := map[float64]struct{}{}
	rfSet := map[float64]struct{}{}
	rdSet := map[float64]struct{}{}

	l.layers.Ascend(func(gl *gLayer[S]) bool {
		g := gl.g
		gSet[g] = struct{}{}
		gl.hs.Ascend(func(hl *hLayer[S]) bool {
			h := hl.h
			fSet[g+h] = struct{}{}
			rfSet[g-h] = struct{}{}
			hl.rhs.Ascend(func(b *nodeBucket[S]) bool {
				dSet[g-b.rh] = struct{}{}
				rdSet[g+b.rh] = struct{}{}
				bSet[g+h+g-b.rh] = struct{}{}

				return true
			})

			return true
		})

		return true
	})

	return NodeValues{
		G:  sortedKeys(gSet),
		F:  sortedKeys(fSet),
		D:  sortedKeys(dSet),
		B:  sortedKeys(bSet),
		RF: sortedKeys(rfSet),
		RD: sortedKeys(rdSet),
	}
}

// findBucket returns the bucket at the exact key, or nil.
func (l *List[S]) findBucket(g, h, rh float64) *nodeBucket[S] {
	gl, ok := l.layers.Get(&gLayer[S]{g: g})
	if !ok {
		return nil
	}
	hl, ok := gl.hs.Get(&hLayer[S]{h: h})
	if !ok {
		return nil
	}
	b, ok := hl.rhs.Get(&nodeBucket[S]{rh: rh})
	if !ok {
		return nil
	}

	return b
}

// ensureBucket returns the bucket at the key, creating layers on
// demand.
func (l *List[S]) ensureBucket(g, h, rh float64) *nodeBucket[S] {
	gl, ok := l.layers.Get(&gLayer[S]{g: g})
	if !ok {
		gl = &gLayer[S]{g: g, hs: btree.NewG(btreeDegree, func(a, b *hLayer[S]) bool {
			return core.Fless(a.h, b.h)
		})}
		l.layers.ReplaceOrInsert(gl)
	}

	hl, ok := gl.hs.Get(&hLayer[S]{h: h})
	if !ok {
		// h_reverse is kept descending so a (g, h) layer is walked by
		// ascending d = g − h_reverse.
		hl = &hLayer[S]{h: h, rhs: btree.NewG(btreeDegree, func(a, b *nodeBucket[S]) bool {
			return core.Fgreater(a.rh, b.rh)
		})}
		gl.hs.ReplaceOrInsert(hl)
	}

	b, ok := hl.rhs.Get(&nodeBucket[S]{rh: rh})
	if !ok {
		b = &nodeBucket[S]{rh: rh}
		hl.rhs.ReplaceOrInsert(b)
	}

	return b
}

func sortedKeys(set map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)

	return out
}
