package pathfind

import "github.com/ItamiOfficial/BytesPathfinder/core"

// Path reconstructs the most recent search's route from start to target as
// an ordered id sequence: start excluded, target included. Path(s, s, ...)
// is empty by construction.
//
// Order of checks, fixed by contract: invalid ids yield a diagnostic and an
// empty result; a target without a predecessor yields an empty result
// BEFORE the recalculate flag is consulted; only then, when recalculate is
// set, a fresh FindPath(start, target) runs and its outcome is walked.
func Path(g *core.Graph, start, target int, recalculate bool, opts ...Option) []int {
	if g == nil {
		return nil
	}
	if !g.HasNode(start) || !g.HasNode(target) {
		g.Logger().Warn("path endpoints out of range", "start", start, "target", target)
		return nil
	}
	if g.Node(target).Parent == core.NoParent {
		g.Logger().Debug("target has no predecessor, nothing to reconstruct",
			"start", start, "target", target)
		return nil
	}
	if recalculate {
		_ = FindPath(g, start, target, opts...)
	}

	ids := make([]int, 0, 8)
	for cur := target; cur != start; {
		ids = append(ids, cur)
		cur = g.Node(cur).Parent
		if cur == core.NoParent {
			// Chain never reaches start: a failed recalculation or working
			// state scribbled over since the last search.
			g.Logger().Debug("predecessor chain ends before start",
				"start", start, "target", target)
			return nil
		}
	}

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids
}

// NodesInRange returns the ids of all nodes whose cached cost from the most
// recent search is at most maxCost, in ascending id order. Nodes no search
// has reached sit at core.UnreachedCost and only appear once the budget
// reaches that sentinel.
func NodesInRange(g *core.Graph, maxCost int) []int {
	if g == nil {
		return nil
	}

	ids := make([]int, 0)
	for id, n := 0, g.NodeCount(); id < n; id++ {
		if g.Node(id).Cost <= maxCost {
			ids = append(ids, id)
		}
	}

	return ids
}
