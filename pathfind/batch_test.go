package pathfind_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItamiOfficial/BytesPathfinder/core"
	"github.com/ItamiOfficial/BytesPathfinder/pathfind"
)

func TestBatch_SolvesAllRequestsInOrder(t *testing.T) {
	g := lineGraph(4)
	reqs := []pathfind.Request{
		{Start: 0, Target: 3},
		{Start: 3, Target: 0},
		{Start: 1, Target: 1},
		{Start: 0, Target: 2},
	}

	res, err := pathfind.Batch(context.Background(), g, reqs)

	require.NoError(t, err)
	require.Len(t, res, 4)
	assert.Equal(t, []int{1, 2, 3}, res[0])
	assert.Equal(t, []int{2, 1, 0}, res[1])
	assert.Empty(t, res[2])
	assert.Equal(t, []int{1, 2}, res[3])

	// Requests ran on clones; the shared graph never saw a search.
	for id := 0; id < 4; id++ {
		assert.Equal(t, core.UnreachedCost, g.Node(id).Cost, "node %d was mutated", id)
	}
}

func TestBatch_InvalidRequestAborts(t *testing.T) {
	g := lineGraph(3)
	reqs := []pathfind.Request{
		{Start: 0, Target: 2},
		{Start: 0, Target: 9},
	}

	res, err := pathfind.Batch(context.Background(), g, reqs)

	require.ErrorIs(t, err, pathfind.ErrNodeNotFound)
	assert.Nil(t, res)
}

func TestBatch_NilGraph(t *testing.T) {
	_, err := pathfind.Batch(context.Background(), nil, nil)
	require.ErrorIs(t, err, pathfind.ErrNilGraph)
}

func TestBatch_CancelledContext(t *testing.T) {
	g := lineGraph(3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pathfind.Batch(ctx, g, []pathfind.Request{{Start: 0, Target: 2}})

	require.ErrorIs(t, err, context.Canceled)
}

func TestBatch_ObserverSeesEveryRun(t *testing.T) {
	g := lineGraph(4)
	obs := &recordingObserver{}
	reqs := []pathfind.Request{
		{Start: 0, Target: 3},
		{Start: 1, Target: 3},
		{Start: 2, Target: 0},
	}

	_, err := pathfind.Batch(context.Background(), g, reqs,
		pathfind.WithObserver(obs), pathfind.WithWorkers(2))

	require.NoError(t, err)
	assert.Equal(t, 3, obs.calls())
}

func TestBatch_ManyRequestsBoundedWorkers(t *testing.T) {
	g := lineGraph(16)
	reqs := make([]pathfind.Request, 0, 32)
	for i := 0; i < 32; i++ {
		reqs = append(reqs, pathfind.Request{Start: i % 16, Target: 15 - i%16})
	}

	res, err := pathfind.Batch(context.Background(), g, reqs, pathfind.WithWorkers(3))

	require.NoError(t, err)
	require.Len(t, res, 32)
	for i, route := range res {
		req := reqs[i]
		if req.Start == req.Target {
			assert.Empty(t, route, "request %d", i)
			continue
		}
		want := req.Target - req.Start
		if want < 0 {
			want = -want
		}
		assert.Len(t, route, want, "request %d hop count", i)
		assert.Equal(t, req.Target, route[len(route)-1], "request %d endpoint", i)
	}
}
