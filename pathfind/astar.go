package pathfind

import (
	"fmt"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/paulmach/orb/planar"

	"github.com/ItamiOfficial/BytesPathfinder/core"
	"github.com/ItamiOfficial/BytesPathfinder/nodeheap"
)

// FindPath runs an A* search from start to target, guided by the straight-
// line distance between node positions. On success the predecessor chain
// from target back to start is valid and the target's Cost holds the
// minimal path cost.
//
// A missing route is not an error: the search just drains the open set and
// leaves the target's Parent at core.NoParent. Callers check that field (or
// use Path, which does). The error return fires only for invalid input.
func FindPath(g *core.Graph, start, target int, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(start) {
		return fmt.Errorf("start %d: %w", start, ErrNodeNotFound)
	}
	if !g.HasNode(target) {
		return fmt.Errorf("target %d: %w", target, ErrNodeNotFound)
	}
	o := buildOptions(opts)
	began := time.Now()

	// 1. Fresh working state; seed the start node.
	g.ResetSearchState()
	s := g.Node(start)
	s.Cost = 0
	s.Heuristic = heuristicBetween(g, start, target)

	open := nodeheap.New(g)
	open.Push(start)
	closed := roaring.New()

	// 2. Expand in (cost + estimate) order until the target settles.
	var st Stats
	for !open.Empty() {
		cur := open.PopMin()
		st.Extracted++
		closed.Add(uint32(cur))

		if cur == target {
			st.Found = true
			break
		}

		curCost := g.Node(cur).Cost
		for _, e := range g.Neighbors(cur) {
			if closed.Contains(uint32(e.To)) {
				continue
			}

			candidate := curCost + e.Weight
			inOpen := open.Contains(e.To)
			nb := g.Node(e.To)
			// Keep an open entry only while it is strictly better; equal
			// candidates are re-processed, which is redundant but harmless.
			if inOpen && nb.Cost < candidate {
				continue
			}

			nb.Parent = cur
			nb.Cost = candidate
			nb.Heuristic = heuristicBetween(g, e.To, target)
			st.Relaxed++

			if inOpen {
				open.Update(e.To)
			} else {
				open.Push(e.To)
			}
		}
	}

	st.Duration = time.Since(began)
	o.observe(AlgorithmAStar, st)
	if st.Found {
		g.Logger().Debug("path found",
			"start", start, "target", target, "cost", g.Node(target).Cost)
	} else {
		g.Logger().Debug("no path found", "start", start, "target", target)
	}

	return nil
}

// heuristicBetween estimates the remaining cost between two nodes as the
// floor of their straight-line distance. With edge weights at or above the
// distances they span, the estimate never overshoots the true cost.
func heuristicBetween(g *core.Graph, from, to int) int {
	return int(math.Floor(planar.Distance(g.Node(from).Pos, g.Node(to).Pos)))
}
