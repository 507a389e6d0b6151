package pathfind

import (
	"fmt"
	"time"

	"github.com/ItamiOfficial/BytesPathfinder/core"
	"github.com/ItamiOfficial/BytesPathfinder/nodeheap"
)

// ShortestPaths computes, for every node reachable from source, the minimal
// total edge weight and a predecessor chain realizing it. Results land on
// the nodes themselves: Cost, Parent. Unreached nodes keep
// core.UnreachedCost and core.NoParent.
//
// The run begins with a full working-state reset, so earlier results never
// leak into the sweep. Weights are non-negative by the graph's construction
// contract, so each node settles the moment it leaves the heap.
func ShortestPaths(g *core.Graph, source int, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(source) {
		return fmt.Errorf("source %d: %w", source, ErrNodeNotFound)
	}
	o := buildOptions(opts)
	began := time.Now()

	// 1. Reset working state and seed the source.
	g.ResetSearchState()
	g.Node(source).Cost = 0

	// 2. Bulk-load every node; the source sifts to the root on its own.
	open := nodeheap.New(g)
	for id, n := 0, g.NodeCount(); id < n; id++ {
		open.Push(id)
	}

	// 3. Settle nodes in cost order, relaxing strictly cheaper routes.
	var st Stats
	for !open.Empty() {
		u := open.PopMin()
		st.Extracted++

		uCost := g.Node(u).Cost
		for _, e := range g.Neighbors(u) {
			candidate := uCost + e.Weight
			v := g.Node(e.To)
			if candidate < v.Cost {
				v.Cost = candidate
				v.Parent = u
				open.Update(e.To)
				st.Relaxed++
			}
		}
	}

	st.Found = true
	st.Duration = time.Since(began)
	o.observe(AlgorithmDijkstra, st)
	g.Logger().Debug("single-source sweep complete",
		"source", source, "extracted", st.Extracted, "relaxed", st.Relaxed)

	return nil
}
