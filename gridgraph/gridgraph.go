package gridgraph

import (
	"github.com/paulmach/orb"

	"github.com/ItamiOfficial/BytesPathfinder/core"
)

// New validates cells, deep-copies it and builds the weighted graph of its
// passable cells under opts. Cells holding a value below 1 are blocked and
// receive no node. Returns ErrEmptyGrid or ErrNonRectangular for malformed
// grids and ErrBadStepCost or ErrBadDiagonalCost for unusable options.
func New(cells [][]int, opts Options) (*Grid, error) {
	// 1. Validate shape and options.
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height, width := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	if opts.StepCost < 1 {
		return nil, ErrBadStepCost
	}
	if opts.Conn == Conn8 && opts.DiagonalCost*opts.DiagonalCost < 2*opts.StepCost*opts.StepCost {
		return nil, ErrBadDiagonalCost
	}

	gr := &Grid{
		width:      width,
		height:     height,
		cells:      make([][]int, height),
		ids:        make([][]int, height),
		g:          core.NewGraph(core.WithCapacity(width * height)),
		conn:       opts.Conn,
		forward:    forwardOffsets(opts),
		neighbours: neighbourOffsets(opts),
	}

	// 2. Copy the grid and assign node ids row-major, skipping blocked cells.
	for y := 0; y < height; y++ {
		gr.cells[y] = make([]int, width)
		copy(gr.cells[y], cells[y])
		gr.ids[y] = make([]int, width)
		for x := 0; x < width; x++ {
			if gr.cells[y][x] < 1 {
				gr.ids[y][x] = core.NoSlot
				continue
			}
			id := gr.g.AddNode(orb.Point{float64(x * opts.StepCost), float64(y * opts.StepCost)})
			gr.ids[y][x] = id
			gr.cellOf = append(gr.cellOf, [2]int{x, y})
		}
	}

	// 3. Connect neighbouring passable cells. Each forward offset points to a
	// cell later in row-major order, so every pair is added exactly once.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a := gr.ids[y][x]
			if a == core.NoSlot {
				continue
			}
			for _, off := range gr.forward {
				nx, ny := x+off.dx, y+off.dy
				if !gr.InBounds(nx, ny) {
					continue
				}
				b := gr.ids[ny][nx]
				if b == core.NoSlot {
					continue
				}
				// terrain = max(value(a), value(b)): stepping into or out of
				// rough ground costs the rough rate
				terrain := gr.cells[y][x]
				if gr.cells[ny][nx] > terrain {
					terrain = gr.cells[ny][nx]
				}
				gr.g.AddOrSetEdge(a, b, off.cost*terrain)
			}
		}
	}
	return gr, nil
}

// forwardOffsets lists the directions used while wiring edges: only
// neighbours that come later in row-major order.
func forwardOffsets(opts Options) []offset {
	fwd := []offset{
		{dx: 1, dy: 0, cost: opts.StepCost},
		{dx: 0, dy: 1, cost: opts.StepCost},
	}
	if opts.Conn == Conn8 {
		fwd = append(fwd,
			offset{dx: 1, dy: 1, cost: opts.DiagonalCost},
			offset{dx: -1, dy: 1, cost: opts.DiagonalCost},
		)
	}
	return fwd
}

// neighbourOffsets lists every direction reachable under opts.Conn,
// clockwise from north.
func neighbourOffsets(opts Options) []offset {
	if opts.Conn == Conn4 {
		return []offset{
			{dx: 0, dy: -1, cost: opts.StepCost},
			{dx: 1, dy: 0, cost: opts.StepCost},
			{dx: 0, dy: 1, cost: opts.StepCost},
			{dx: -1, dy: 0, cost: opts.StepCost},
		}
	}
	return []offset{
		{dx: 0, dy: -1, cost: opts.StepCost},
		{dx: 1, dy: -1, cost: opts.DiagonalCost},
		{dx: 1, dy: 0, cost: opts.StepCost},
		{dx: 1, dy: 1, cost: opts.DiagonalCost},
		{dx: 0, dy: 1, cost: opts.StepCost},
		{dx: -1, dy: 1, cost: opts.DiagonalCost},
		{dx: -1, dy: 0, cost: opts.StepCost},
		{dx: -1, dy: -1, cost: opts.DiagonalCost},
	}
}

// Width returns the number of columns.
func (gr *Grid) Width() int { return gr.width }

// Height returns the number of rows.
func (gr *Grid) Height() int { return gr.height }

// Connectivity returns the neighbour scheme the grid was built with.
func (gr *Grid) Connectivity() Connectivity { return gr.conn }

// InBounds reports whether (x, y) lies inside the grid.
func (gr *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gr.width && y >= 0 && y < gr.height
}

// Passable reports whether (x, y) is inside the grid and holds a node.
func (gr *Grid) Passable(x, y int) bool {
	return gr.InBounds(x, y) && gr.ids[y][x] != core.NoSlot
}

// NodeID returns the node id of the cell at (x, y). The second return is
// false when the cell is out of bounds or blocked.
func (gr *Grid) NodeID(x, y int) (int, bool) {
	if !gr.Passable(x, y) {
		return core.NoSlot, false
	}
	return gr.ids[y][x], true
}

// CellOf returns the grid coordinates of a node id, mapping search results
// back onto the grid. The third return is false for unknown ids.
func (gr *Grid) CellOf(id int) (x, y int, ok bool) {
	if id < 0 || id >= len(gr.cellOf) {
		return 0, 0, false
	}
	return gr.cellOf[id][0], gr.cellOf[id][1], true
}

// Neighbours returns the passable cells adjacent to (x, y) under the grid's
// connectivity, clockwise from north. Returns nil when (x, y) itself is
// blocked or out of bounds.
func (gr *Grid) Neighbours(x, y int) [][2]int {
	if !gr.Passable(x, y) {
		return nil
	}
	out := make([][2]int, 0, len(gr.neighbours))
	for _, off := range gr.neighbours {
		nx, ny := x+off.dx, y+off.dy
		if gr.Passable(nx, ny) {
			out = append(out, [2]int{nx, ny})
		}
	}
	return out
}

// Graph returns the graph built at construction time. Callers run searches
// directly against it; per-node search state mutates in place.
func (gr *Grid) Graph() *core.Graph { return gr.g }
