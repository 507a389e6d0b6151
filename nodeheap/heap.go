package nodeheap

import (
	"fmt"
	"strings"

	"github.com/ItamiOfficial/BytesPathfinder/core"
)

// Heap is an indexed binary min-heap of node ids resolved through one graph.
// Construct with New; the zero value is not usable.
type Heap struct {
	g     *core.Graph
	items []int
	size  int
}

// New returns an empty heap sized to g's current node count. g must be
// non-nil; the heap keeps the reference for key resolution and back-pointer
// maintenance.
func New(g *core.Graph) *Heap {
	return &Heap{
		g:     g,
		items: make([]int, g.NodeCount()),
	}
}

// Len reports the number of resident nodes.
func (h *Heap) Len() int { return h.size }

// Empty reports whether no node is resident.
func (h *Heap) Empty() bool { return h.size == 0 }

// Push inserts id at the next free slot and sifts it up. Precondition: the
// heap is not full and id is not already resident.
func (h *Heap) Push(id int) {
	slot := h.size
	h.items[slot] = id
	h.g.Node(id).HeapIndex = slot
	h.size++
	h.siftUp(slot)
}

// PopMin removes and returns the id with the smallest (total, heuristic)
// key. The last occupant moves to the root and sifts down. Precondition:
// the heap is non-empty.
func (h *Heap) PopMin() int {
	root := h.items[0]
	h.g.Node(root).HeapIndex = core.NoSlot
	h.size--
	if h.size > 0 {
		moved := h.items[h.size]
		h.items[0] = moved
		h.g.Node(moved).HeapIndex = 0
		h.siftDown(0)
	}

	return root
}

// Update restores heap order after id's key decreased. Only an upward sift
// is performed, because relaxation never raises a key. A non-resident id is
// ignored.
func (h *Heap) Update(id int) {
	if !h.Contains(id) {
		return
	}
	h.siftUp(h.g.Node(id).HeapIndex)
}

// Contains reports whether id currently occupies a heap slot. O(1): the
// node's back-pointer is validated against the occupied prefix.
func (h *Heap) Contains(id int) bool {
	if !h.g.HasNode(id) {
		return false
	}
	slot := h.g.Node(id).HeapIndex

	return slot >= 0 && slot < h.size && h.items[slot] == id
}

// String renders the occupied slots in array order as id:cost+heuristic
// triples. Debug helper, not part of the ordering contract.
func (h *Heap) String() string {
	var sb strings.Builder
	sb.WriteString("nodeheap[")
	for i := 0; i < h.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		n := h.g.Node(h.items[i])
		fmt.Fprintf(&sb, "%d:%d+%d", n.ID, n.Cost, n.Heuristic)
	}
	sb.WriteByte(']')

	return sb.String()
}

// less orders occupied slots i, j by (total cost, heuristic cost).
func (h *Heap) less(i, j int) bool {
	a, b := h.g.Node(h.items[i]), h.g.Node(h.items[j])
	at, bt := a.TotalCost(), b.TotalCost()
	if at != bt {
		return at < bt
	}

	return a.Heuristic < b.Heuristic
}

// swap exchanges two occupied slots and fixes both back-pointers.
func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.g.Node(h.items[i]).HeapIndex = i
	h.g.Node(h.items[j]).HeapIndex = j
}

func (h *Heap) siftUp(slot int) {
	for slot > 0 {
		parent := (slot - 1) / 2
		if !h.less(slot, parent) {
			break
		}
		h.swap(slot, parent)
		slot = parent
	}
}

func (h *Heap) siftDown(slot int) {
	for {
		left, right := 2*slot+1, 2*slot+2
		smallest := slot
		if left < h.size && h.less(left, smallest) {
			smallest = left
		}
		if right < h.size && h.less(right, smallest) {
			smallest = right
		}
		if smallest == slot {
			return
		}
		h.swap(slot, smallest)
		slot = smallest
	}
}
