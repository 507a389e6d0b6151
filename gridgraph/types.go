package gridgraph

import (
	"errors"

	"github.com/ItamiOfficial/BytesPathfinder/core"
)

// ErrEmptyGrid indicates that the supplied grid has no rows or no columns.
var ErrEmptyGrid = errors.New("gridgraph: empty grid")

// ErrNonRectangular indicates that the rows of the supplied grid differ in length.
var ErrNonRectangular = errors.New("gridgraph: non-rectangular grid")

// ErrBadStepCost indicates that Options.StepCost is below 1.
var ErrBadStepCost = errors.New("gridgraph: step cost must be at least 1")

// ErrBadDiagonalCost indicates that Options.DiagonalCost is too small to
// cover the diagonal span implied by StepCost.
var ErrBadDiagonalCost = errors.New("gridgraph: diagonal cost must satisfy diag² ≥ 2·step²")

// Connectivity selects which neighbours of a cell are connected.
type Connectivity int

const (
	// Conn4 connects the four orthogonal neighbours.
	Conn4 Connectivity = iota
	// Conn8 additionally connects the four diagonal neighbours.
	Conn8
)

// Options configures grid conversion.
type Options struct {
	// Conn selects 4- or 8-neighbour connectivity. Default: Conn4.
	Conn Connectivity
	// StepCost is the base cost of an orthogonal step between two plain
	// cells, and the coordinate scale of node positions. Default: 10.
	StepCost int
	// DiagonalCost is the base cost of a diagonal step under Conn8.
	// Default: 15, the smallest integer whose square is ≥ 2·10².
	DiagonalCost int
}

// DefaultOptions returns the conversion defaults: 4-connectivity,
// orthogonal steps of 10 and diagonal steps of 15.
func DefaultOptions() Options {
	return Options{
		Conn:         Conn4,
		StepCost:     10,
		DiagonalCost: 15,
	}
}

// offset is one neighbour direction together with its base step cost.
type offset struct {
	dx, dy int
	cost   int
}

// Grid is a validated terrain grid and the graph built from it.
type Grid struct {
	width  int
	height int
	cells  [][]int // deep copy of the input values
	ids    [][]int // node id per cell, core.NoSlot for blocked cells
	cellOf [][2]int
	g      *core.Graph
	conn   Connectivity
	// forward covers each neighbour pair exactly once during construction;
	// neighbours covers all directions for queries.
	forward    []offset
	neighbours []offset
}
