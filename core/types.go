package core

import (
	"io"
	"log/slog"

	"github.com/paulmach/orb"
)

// Search-state sentinels shared by the whole engine.
const (
	// UnreachedCost marks a node no search has reached yet. It is chosen to be
	// far above any realistic path cost while still leaving headroom so that
	// UnreachedCost + weight cannot overflow during relaxation.
	UnreachedCost = 2_000_000

	// NoParent marks a node without a predecessor on any discovered path.
	NoParent = -1

	// NoSlot marks a node that is not resident in a heap.
	NoSlot = -1
)

// Node is one vertex of the graph together with its mutable search state.
// ID, Pos and the adjacency list are structural and never change after
// construction; Cost, Parent, Heuristic and HeapIndex are working fields
// overwritten by every search run.
type Node struct {
	// ID is the dense identifier, equal to the node's index in the graph.
	ID int

	// Parent is the predecessor on the best known path, NoParent when none.
	Parent int

	// Cost is the accumulated path cost from the most recent search's start.
	Cost int

	// Heuristic is the estimated remaining cost to the current target.
	// Always 0 outside heuristic search.
	Heuristic int

	// Pos is the node's 2D position, consumed only by the distance heuristic
	// and the spatial construction helpers.
	Pos orb.Point

	// HeapIndex is the node's slot in the active heap's backing array,
	// NoSlot when the node is not enqueued. Maintained by package nodeheap.
	HeapIndex int
}

// TotalCost is the heap ordering key: accumulated cost plus heuristic estimate.
func (n *Node) TotalCost() int { return n.Cost + n.Heuristic }

// Edge is one half of a symmetric connection: the neighbor id and the
// non-negative traversal cost.
type Edge struct {
	To     int
	Weight int
}

// Graph stores nodes and their adjacency lists in parallel dense slices.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	nodes []Node
	adj   [][]Edge
	log   *slog.Logger
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLogger routes the graph's diagnostics (invalid ids, rejected weights,
// search outcomes) to l. The default logger discards everything.
func WithLogger(l *slog.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// WithCapacity pre-allocates storage for n nodes. Purely an allocation hint;
// the graph still grows past n if more nodes are added.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make([]Node, 0, n)
			g.adj = make([][]Edge, 0, n)
		}
	}
}

// NewGraph returns an empty graph ready for AddNode / AddOrSetEdge.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Logger exposes the configured diagnostics logger so that packages building
// on the graph (search, reconstruction) report through the same sink.
func (g *Graph) Logger() *slog.Logger { return g.log }
