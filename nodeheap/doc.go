// Package nodeheap implements the indexed binary min-heap that drives both
// search algorithms: a fixed-capacity, array-backed priority queue over node
// ids, ordered by (total cost, heuristic cost), with O(1) membership checks
// through a back-pointer stored on each node.
//
// Overview:
//
//   - The heap stores ids, not node pointers, and resolves them through the
//     owning core.Graph on every comparison. Node storage therefore never
//     aliases heap slots.
//   - Every resident node carries its slot in Node.HeapIndex; the swap
//     primitive keeps both back-pointers current, and PopMin clears the
//     leaving node's back-pointer to core.NoSlot.
//   - Slot arithmetic is the classic layout: parent(i) = (i-1)/2,
//     children 2i+1 and 2i+2.
//   - Ordering: slot a precedes slot b when TotalCost(a) < TotalCost(b), or
//     on equal totals when Heuristic(a) < Heuristic(b). The tie-break pulls
//     nodes closer to the target first during heuristic search and is inert
//     when all heuristics are zero.
//
// Contracts (documented, not runtime-checked):
//
//   - Capacity equals the graph's node count at construction. Push beyond
//     capacity, or PopMin on an empty heap, is undefined behavior; callers
//     check Len/Empty first, exactly as the search loops do.
//   - Update is a decrease-key notification: the caller guarantees the
//     node's key has not increased since its last placement. The heap only
//     sifts up; violating the contract silently corrupts extraction order.
//   - One live heap per graph at a time. Back-pointers are per-node fields,
//     so two heaps over one graph would fight for them.
//
// Complexity: Push, PopMin and Update are O(log n); Contains, Len and Empty
// are O(1).
package nodeheap
