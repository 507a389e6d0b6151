package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItamiOfficial/BytesPathfinder/core"
	"github.com/ItamiOfficial/BytesPathfinder/gridgraph"
	"github.com/ItamiOfficial/BytesPathfinder/pathfind"
)

func TestNew_AssignsIDsRowMajorToPassableCells(t *testing.T) {
	gr, err := gridgraph.New([][]int{
		{1, 0, 1},
		{1, 1, 1},
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, gr.Width())
	assert.Equal(t, 2, gr.Height())
	assert.Equal(t, gridgraph.Conn4, gr.Connectivity())
	assert.Equal(t, 5, gr.Graph().NodeCount(), "blocked cell gets no node")

	// ids run row-major over passable cells only
	wantCells := [][2]int{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	for id, cell := range wantCells {
		gotID, ok := gr.NodeID(cell[0], cell[1])
		require.True(t, ok)
		assert.Equal(t, id, gotID)

		x, y, ok := gr.CellOf(id)
		require.True(t, ok)
		assert.Equal(t, cell, [2]int{x, y})
	}

	_, ok := gr.NodeID(1, 0)
	assert.False(t, ok, "blocked cell has no id")
	_, ok = gr.NodeID(3, 0)
	assert.False(t, ok, "out of bounds has no id")
	_, _, ok = gr.CellOf(5)
	assert.False(t, ok)
	_, _, ok = gr.CellOf(core.NoSlot)
	assert.False(t, ok)
}

func TestNew_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]int
		opts  gridgraph.Options
		want  error
	}{
		{
			name:  "no rows",
			cells: [][]int{},
			opts:  gridgraph.DefaultOptions(),
			want:  gridgraph.ErrEmptyGrid,
		},
		{
			name:  "empty first row",
			cells: [][]int{{}},
			opts:  gridgraph.DefaultOptions(),
			want:  gridgraph.ErrEmptyGrid,
		},
		{
			name:  "ragged rows",
			cells: [][]int{{1, 1}, {1}},
			opts:  gridgraph.DefaultOptions(),
			want:  gridgraph.ErrNonRectangular,
		},
		{
			name:  "zero step cost",
			cells: [][]int{{1}},
			opts:  gridgraph.Options{Conn: gridgraph.Conn4, StepCost: 0, DiagonalCost: 15},
			want:  gridgraph.ErrBadStepCost,
		},
		{
			name:  "diagonal shorter than the diagonal span",
			cells: [][]int{{1}},
			opts:  gridgraph.Options{Conn: gridgraph.Conn8, StepCost: 10, DiagonalCost: 14},
			want:  gridgraph.ErrBadDiagonalCost,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.cells, tc.opts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNew_DiagonalCostIgnoredUnderConn4(t *testing.T) {
	// a Conn4 grid never takes diagonal steps, so a too-small DiagonalCost
	// must not be rejected
	_, err := gridgraph.New([][]int{{1, 1}}, gridgraph.Options{
		Conn:         gridgraph.Conn4,
		StepCost:     10,
		DiagonalCost: 0,
	})
	require.NoError(t, err)
}

func TestNew_WiresOrthogonalNeighbours(t *testing.T) {
	gr, err := gridgraph.New([][]int{
		{1, 1},
		{1, 1},
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	g := gr.Graph()
	assert.Equal(t, 4, g.EdgeCount())

	a, _ := gr.NodeID(0, 0)
	b, _ := gr.NodeID(1, 0)
	for _, e := range g.Neighbors(a) {
		assert.Equal(t, 10, e.Weight)
	}
	assert.Len(t, g.Neighbors(a), 2)
	assert.Len(t, g.Neighbors(b), 2)
}

func TestNew_Conn8AddsDiagonalEdges(t *testing.T) {
	gr, err := gridgraph.New([][]int{
		{1, 1},
		{1, 1},
	}, gridgraph.Options{Conn: gridgraph.Conn8, StepCost: 10, DiagonalCost: 15})
	require.NoError(t, err)
	require.Equal(t, gridgraph.Conn8, gr.Connectivity())

	g := gr.Graph()
	assert.Equal(t, 6, g.EdgeCount(), "four orthogonal plus two diagonal edges")

	a, _ := gr.NodeID(0, 0)
	d, _ := gr.NodeID(1, 1)
	var diag int
	for _, e := range g.Neighbors(a) {
		if e.To == d {
			diag = e.Weight
		}
	}
	assert.Equal(t, 15, diag)
}

func TestNew_RoughTerrainRaisesEdgeWeight(t *testing.T) {
	gr, err := gridgraph.New([][]int{{1, 3, 1}}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	g := gr.Graph()
	plain, _ := gr.NodeID(0, 0)
	rough, _ := gr.NodeID(1, 0)

	// both edges touch the value-3 cell, so both cost 3x the base step
	require.Len(t, g.Neighbors(plain), 1)
	assert.Equal(t, 30, g.Neighbors(plain)[0].Weight)
	require.Len(t, g.Neighbors(rough), 2)
	for _, e := range g.Neighbors(rough) {
		assert.Equal(t, 30, e.Weight)
	}
}

func TestNew_CopiesInputGrid(t *testing.T) {
	cells := [][]int{{1, 1}}
	gr, err := gridgraph.New(cells, gridgraph.DefaultOptions())
	require.NoError(t, err)

	cells[0][1] = 0
	assert.True(t, gr.Passable(1, 0), "mutating the caller's slice must not reach the grid")
}

func TestGrid_RouteDetoursAroundWall(t *testing.T) {
	// wall at x=1 with a gap in the bottom row
	gr, err := gridgraph.New([][]int{
		{1, 0, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 1, 1},
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	start, _ := gr.NodeID(0, 0)
	target, _ := gr.NodeID(2, 0)
	g := gr.Graph()
	require.NoError(t, pathfind.FindPath(g, start, target))

	assert.Equal(t, 60, g.Node(target).Cost, "six steps through the gap")

	var route [][2]int
	for _, id := range pathfind.Path(g, start, target, false) {
		x, y, ok := gr.CellOf(id)
		require.True(t, ok)
		route = append(route, [2]int{x, y})
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}}, route)
}

func TestGrid_DiagonalsShortenRoutesUnderConn8(t *testing.T) {
	cells := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}

	conn4, err := gridgraph.New(cells, gridgraph.DefaultOptions())
	require.NoError(t, err)
	conn8, err := gridgraph.New(cells, gridgraph.Options{
		Conn:         gridgraph.Conn8,
		StepCost:     10,
		DiagonalCost: 15,
	})
	require.NoError(t, err)

	for _, tc := range []struct {
		grid     *gridgraph.Grid
		wantCost int
		wantHops int
	}{
		{grid: conn4, wantCost: 40, wantHops: 4},
		{grid: conn8, wantCost: 30, wantHops: 2},
	} {
		start, _ := tc.grid.NodeID(0, 0)
		target, _ := tc.grid.NodeID(2, 2)
		g := tc.grid.Graph()
		require.NoError(t, pathfind.FindPath(g, start, target))
		assert.Equal(t, tc.wantCost, g.Node(target).Cost)
		assert.Len(t, pathfind.Path(g, start, target, false), tc.wantHops)
	}
}

func TestGrid_Neighbours(t *testing.T) {
	gr, err := gridgraph.New([][]int{
		{1, 0, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, gridgraph.Options{Conn: gridgraph.Conn8, StepCost: 10, DiagonalCost: 15})
	require.NoError(t, err)

	// clockwise from north, with the blocked (1, 0) filtered out
	assert.Equal(t, [][2]int{
		{2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}, {0, 0},
	}, gr.Neighbours(1, 1))

	assert.Nil(t, gr.Neighbours(1, 0), "blocked origin")
	assert.Nil(t, gr.Neighbours(-1, 0), "out of bounds origin")

	corner, err := gridgraph.New([][]int{{1, 1}, {1, 1}}, gridgraph.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 0}, {0, 1}}, corner.Neighbours(0, 0))
}
