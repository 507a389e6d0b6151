package roadmap

import (
	"errors"

	"github.com/dhconnelly/rtreego"

	"github.com/ItamiOfficial/BytesPathfinder/core"
)

// ErrNoSamples indicates that Config.Samples is below 1.
var ErrNoSamples = errors.New("roadmap: sample count must be at least 1")

// ErrBadRadius indicates a zero or negative connection radius.
var ErrBadRadius = errors.New("roadmap: connection radius must be positive")

// ErrBadBounds indicates bounds that do not span a positive area.
var ErrBadBounds = errors.New("roadmap: bounds must span a positive area")

// ErrNoGeometry indicates a feature collection without any usable
// Point or LineString geometry.
var ErrNoGeometry = errors.New("roadmap: no usable geometry in feature collection")

// pointTol pads waypoint rectangles so box queries catch exact boundary hits.
const pointTol = 1e-6

// nodeEntry ties a graph node id to its location inside the R-tree.
type nodeEntry struct {
	id  int
	loc rtreego.Point
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.loc.ToRect(pointTol)
}

// Roadmap is a waypoint graph plus the spatial index over its nodes.
type Roadmap struct {
	g      *core.Graph
	tree   *rtreego.Rtree
	radius float64
}
