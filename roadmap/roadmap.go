package roadmap

import (
	"math"
	"math/rand"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/ItamiOfficial/BytesPathfinder/core"
)

// Build samples cfg.Samples waypoints uniformly over cfg.Bounds and connects
// every pair closer than cfg.Radius. The result is deterministic for equal
// configurations, Seed included.
func Build(cfg Config) (*Roadmap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Roadmap{
		g:      core.NewGraph(core.WithCapacity(cfg.Samples)),
		tree:   rtreego.NewTree(2, 25, 50),
		radius: cfg.Radius,
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	spanX := cfg.Bounds.MaxX - cfg.Bounds.MinX
	spanY := cfg.Bounds.MaxY - cfg.Bounds.MinY
	for i := 0; i < cfg.Samples; i++ {
		pos := orb.Point{
			cfg.Bounds.MinX + rng.Float64()*spanX,
			cfg.Bounds.MinY + rng.Float64()*spanY,
		}
		// the tree only holds earlier samples here, so every pair is
		// considered exactly once
		e := r.insert(pos)
		r.link(e.id)
	}

	r.g.Logger().Debug("roadmap built",
		"nodes", r.g.NodeCount(), "edges", r.g.EdgeCount(), "radius", cfg.Radius)
	return r, nil
}

// Attach inserts a waypoint at pos and wires it to every node within the
// connection radius. Returns the new node id and the number of links made;
// a waypoint with zero links stays in the roadmap but is unreachable.
func (r *Roadmap) Attach(pos orb.Point) (id, links int) {
	e := r.insert(pos)
	return e.id, r.link(e.id)
}

// Nearest returns the id of the waypoint closest to pos. The second return
// is false only when the roadmap is empty.
func (r *Roadmap) Nearest(pos orb.Point) (int, bool) {
	hit := r.tree.NearestNeighbor(rtreego.Point{pos[0], pos[1]})
	if hit == nil {
		return core.NoSlot, false
	}
	return hit.(*nodeEntry).id, true
}

// Within returns the ids of all waypoints inside the axis-aligned box
// spanned by lo and hi, in ascending order. A degenerate or inverted box
// yields nil.
func (r *Roadmap) Within(lo, hi orb.Point) []int {
	box, err := rtreego.NewRect(
		rtreego.Point{lo[0], lo[1]},
		[]float64{hi[0] - lo[0], hi[1] - lo[1]},
	)
	if err != nil {
		return nil
	}

	hits := r.tree.SearchIntersect(box)
	ids := make([]int, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.(*nodeEntry).id)
	}
	sort.Ints(ids)
	return ids
}

// Graph returns the shared waypoint graph. Searches mutate its per-node
// state in place.
func (r *Roadmap) Graph() *core.Graph { return r.g }

// insert adds pos as a graph node and an index entry, without wiring edges.
func (r *Roadmap) insert(pos orb.Point) *nodeEntry {
	e := &nodeEntry{
		id:  r.g.AddNode(pos),
		loc: rtreego.Point{pos[0], pos[1]},
	}
	r.tree.Insert(e)
	return e
}

// link connects id to every other indexed waypoint within the connection
// radius, weighting each edge with the rounded-up distance. Returns the
// number of edges added.
func (r *Roadmap) link(id int) int {
	pos := r.g.Node(id).Pos
	box, err := rtreego.NewRect(
		rtreego.Point{pos[0] - r.radius, pos[1] - r.radius},
		[]float64{2 * r.radius, 2 * r.radius},
	)
	if err != nil {
		return 0
	}

	links := 0
	for _, hit := range r.tree.SearchIntersect(box) {
		e := hit.(*nodeEntry)
		if e.id == id {
			continue
		}
		d := planar.Distance(pos, r.g.Node(e.id).Pos)
		if d > r.radius {
			// box corners overshoot the radius circle
			continue
		}
		r.g.AddOrSetEdge(id, e.id, int(math.Ceil(d)))
		links++
	}
	return links
}
