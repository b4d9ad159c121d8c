// Package twoqueue implements the open/closed structure behind the
// TwoLevelBAE engine: a single dense node table shared by two binary
// heaps — a ready heap ordered by B = 2g + h − h_reverse and a waiting
// heap ordered by F = g + h — plus the closed set implied by node
// location.
//
// Overview:
//
//   - Every admitted state receives a densely assigned 64-bit id; the
//     table entry at that id lives for the whole search. A separate
//     hash→id map resolves domain state hashes.
//   - Each node carries its location (OpenReady, OpenWaiting, Closed)
//     and its slot in the owning heap. The structure maintains
//     elements[i].openLocation == j ⇔ queues[where][j] == i for every
//     open node.
//   - Both heap orders break ties by preferring the larger g, which
//     drives the frontier outward first.
//
// Operations mirror the engine's needs: AddOpenNode, AddClosedNode,
// Lookup by hash, Peek/Close on ready, PutToReady pumping the waiting
// top across, Reopen for the diagnosed reopen path, Remove for
// symmetry pruning, and KeyChanged (sift up, and if that was a no-op,
// sift down) after an in-place g improvement.
//
// Error handling:
//
//   - Adding a state whose hash is already present, or peeking/closing
//     an empty heap, is a precondition failure and panics; these mark
//     engine bugs, not runtime conditions.
//
// Complexity: O(log n) per heap mutation, O(1) lookups.
package twoqueue
