package roadmap

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/ItamiOfficial/BytesPathfinder/core"
)

// FromGeoJSON builds a roadmap from a GeoJSON feature collection instead of
// random sampling. Point features become standalone waypoints; LineString
// and MultiLineString features become chains of waypoints connected hop by
// hop. Identical coordinates are merged, so chains sharing a vertex join
// into a network. Other geometry types are ignored; a collection without any
// usable geometry yields ErrNoGeometry.
//
// radius only governs later Attach calls, not the surveyed edges.
func FromGeoJSON(data []byte, radius float64) (*Roadmap, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("radius %v: %w", radius, ErrBadRadius)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("roadmap: parse geojson: %w", err)
	}

	r := &Roadmap{
		g:      core.NewGraph(),
		tree:   rtreego.NewTree(2, 25, 50),
		radius: radius,
	}
	seen := make(map[orb.Point]int)
	node := func(p orb.Point) int {
		if id, ok := seen[p]; ok {
			return id
		}
		e := r.insert(p)
		seen[p] = e.id
		return e.id
	}
	chain := func(ls orb.LineString) {
		for i := 1; i < len(ls); i++ {
			a, b := node(ls[i-1]), node(ls[i])
			if a == b {
				continue
			}
			r.g.AddOrSetEdge(a, b, int(math.Ceil(planar.Distance(ls[i-1], ls[i]))))
		}
	}

	usable := 0
	for _, f := range fc.Features {
		switch geo := f.Geometry.(type) {
		case orb.Point:
			node(geo)
			usable++
		case orb.LineString:
			if len(geo) == 0 {
				continue
			}
			node(geo[0])
			chain(geo)
			usable++
		case orb.MultiLineString:
			for _, ls := range geo {
				if len(ls) == 0 {
					continue
				}
				node(ls[0])
				chain(ls)
				usable++
			}
		}
	}
	if usable == 0 {
		return nil, ErrNoGeometry
	}

	r.g.Logger().Debug("roadmap parsed from geojson",
		"features", len(fc.Features), "nodes", r.g.NodeCount(), "edges", r.g.EdgeCount())
	return r, nil
}

// GeoJSON renders the roadmap as a feature collection for inspection on a
// map: one Point feature per waypoint carrying its id, one LineString
// feature per edge carrying its weight. Feeding the output back into
// FromGeoJSON reproduces the same network, with weights recomputed from the
// coordinates.
func (r *Roadmap) GeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for id := 0; id < r.g.NodeCount(); id++ {
		f := geojson.NewFeature(r.g.Node(id).Pos)
		f.Properties["id"] = id
		fc.Append(f)
	}
	for id := 0; id < r.g.NodeCount(); id++ {
		for _, e := range r.g.Neighbors(id) {
			if e.To < id {
				// the mirror entry already emitted this edge
				continue
			}
			f := geojson.NewFeature(orb.LineString{r.g.Node(id).Pos, r.g.Node(e.To).Pos})
			f.Properties["weight"] = e.Weight
			fc.Append(f)
		}
	}
	return fc.MarshalJSON()
}
