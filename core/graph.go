package core

import "github.com/paulmach/orb"

// AddNode appends a node at position pos and returns its id. Ids are dense:
// the first node gets 0, the next 1, and so on. The new node starts in the
// reset state (unreached cost, no parent, no heap slot) and with an empty
// adjacency slot.
func (g *Graph) AddNode(pos orb.Point) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{
		ID:        id,
		Parent:    NoParent,
		Cost:      UnreachedCost,
		Pos:       pos,
		HeapIndex: NoSlot,
	})
	g.adj = append(g.adj, nil)

	return id
}

// AddOrSetEdge connects a and b with a symmetric edge of the given weight.
// If the pair is already connected the weight is overwritten on both
// directions; duplicate entries are never created. Invalid ids, negative
// weights and self-edges are reported through the logger and leave the graph
// untouched.
func (g *Graph) AddOrSetEdge(a, b, weight int) {
	if !g.HasNode(a) || !g.HasNode(b) {
		g.log.Warn("edge endpoints out of range", "a", a, "b", b, "nodes", len(g.nodes))
		return
	}
	if a == b {
		g.log.Warn("self-edge rejected", "id", a)
		return
	}
	if weight < 0 {
		g.log.Warn("negative edge weight rejected", "a", a, "b", b, "weight", weight)
		return
	}

	if g.setWeight(a, b, weight) {
		g.setWeight(b, a, weight)
		g.log.Debug("edge weight overwritten", "a", a, "b", b, "weight", weight)
		return
	}

	g.adj[a] = append(g.adj[a], Edge{To: b, Weight: weight})
	g.adj[b] = append(g.adj[b], Edge{To: a, Weight: weight})
}

// setWeight updates the weight of the from→to entry if it exists.
func (g *Graph) setWeight(from, to, weight int) bool {
	list := g.adj[from]
	for i := range list {
		if list[i].To == to {
			list[i].Weight = weight
			return true
		}
	}

	return false
}

// NodeCount reports the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of undirected edges (each symmetric pair
// counts once).
func (g *Graph) EdgeCount() int {
	var half int
	for _, list := range g.adj {
		half += len(list)
	}

	return half / 2
}

// HasNode reports whether id names a node of this graph.
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < len(g.nodes) }

// Node returns a pointer into the node storage. No bounds check: callers on
// the search hot path hold ids handed out by the graph itself. Guard foreign
// input with HasNode first.
func (g *Graph) Node(id int) *Node { return &g.nodes[id] }

// Neighbors returns the live adjacency list of id. The slice aliases graph
// storage and must be treated as read-only; mutate edges through
// AddOrSetEdge. Same bounds contract as Node.
func (g *Graph) Neighbors(id int) []Edge { return g.adj[id] }

// ResetSearchState returns every node to the untouched state: unreached
// cost, zero heuristic, no parent, no heap slot. Both search algorithms run
// it as their pre-pass; exported so callers can scrub stale results
// explicitly.
func (g *Graph) ResetSearchState() {
	for i := range g.nodes {
		n := &g.nodes[i]
		n.Cost = UnreachedCost
		n.Heuristic = 0
		n.Parent = NoParent
		n.HeapIndex = NoSlot
	}
}

// Clone returns a deep copy sharing no mutable state with g. The copy keeps
// the same logger. Working fields are copied as they are, so a clone taken
// after a search still carries that search's results.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}

	c := &Graph{
		nodes: make([]Node, len(g.nodes)),
		adj:   make([][]Edge, len(g.adj)),
		log:   g.log,
	}
	copy(c.nodes, g.nodes)
	for i, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		dup := make([]Edge, len(list))
		copy(dup, list)
		c.adj[i] = dup
	}

	return c
}

// Positions returns a copy of all node positions indexed by id. Convenience
// for spatial indexing and snapshot encoding.
func (g *Graph) Positions() []orb.Point {
	ps := make([]orb.Point, len(g.nodes))
	for i := range g.nodes {
		ps[i] = g.nodes[i].Pos
	}

	return ps
}
