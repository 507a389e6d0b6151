package pathfind_test

import (
	"sync"

	"github.com/paulmach/orb"

	"github.com/ItamiOfficial/BytesPathfinder/core"
	"github.com/ItamiOfficial/BytesPathfinder/pathfind"
)

// lineGraph returns n nodes on the x axis chained by unit edges, the layout
// from the package documentation examples.
func lineGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(orb.Point{float64(i), 0})
	}
	for i := 0; i+1 < n; i++ {
		g.AddOrSetEdge(i, i+1, 1)
	}

	return g
}

// parents snapshots every node's predecessor, id order.
func parents(g *core.Graph) []int {
	ps := make([]int, g.NodeCount())
	for i := range ps {
		ps[i] = g.Node(i).Parent
	}

	return ps
}

// recordingObserver captures observer callbacks; safe for Batch use.
type recordingObserver struct {
	mu         sync.Mutex
	algorithms []string
	last       pathfind.Stats
}

func (r *recordingObserver) ObserveSearch(algorithm string, st pathfind.Stats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.algorithms = append(r.algorithms, algorithm)
	r.last = st
}

func (r *recordingObserver) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.algorithms)
}
