package roadmap

import "github.com/RoaringBitmap/roaring/v2"

// Component returns the ids of every waypoint reachable from id over roadmap
// edges, id included, in ascending order. An unknown id yields nil. The sweep
// ignores edge weights; use it to tell islands apart before paying for a
// search, or to audit what an Attach call actually joined.
func (r *Roadmap) Component(id int) []int {
	if !r.g.HasNode(id) {
		return nil
	}

	seen := r.sweep(id)
	ids := make([]int, 0, seen.GetCardinality())
	it := seen.Iterator()
	for it.HasNext() {
		ids = append(ids, int(it.Next()))
	}
	return ids
}

// Connected reports whether a and b lie in the same component. Unknown ids
// are connected to nothing, and a waypoint is always connected to itself.
func (r *Roadmap) Connected(a, b int) bool {
	if !r.g.HasNode(a) || !r.g.HasNode(b) {
		return false
	}
	if a == b {
		return true
	}
	return r.sweep(a).Contains(uint32(b))
}

// sweep runs a breadth-first flood from id and returns the visited set.
func (r *Roadmap) sweep(id int) *roaring.Bitmap {
	seen := roaring.New()
	seen.Add(uint32(id))
	queue := []int{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range r.g.Neighbors(cur) {
			if seen.CheckedAdd(uint32(e.To)) {
				queue = append(queue, e.To)
			}
		}
	}
	return seen
}
