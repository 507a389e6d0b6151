// Package gridgraph converts 2-D terrain grids into weighted graphs that the
// pathfind package can search.
//
// # Overview
//
// A grid is a rectangular [][]int of cell values. A cell value below 1 marks
// the cell as blocked; values of 1 and above are terrain multipliers (1 for
// plain ground, higher for swamps, rubble, slow roads). New validates the
// grid, assigns a node id to every passable cell and materializes a
// *core.Graph in which neighbouring passable cells are connected.
//
// # Cost model
//
// An orthogonal step costs StepCost × max(value(a), value(b)); a diagonal
// step uses DiagonalCost instead of StepCost. Node positions are the cell
// coordinates scaled by StepCost, so straight-line distance between
// positions never exceeds true travel cost and the pathfind heuristic stays
// admissible. DiagonalCost must satisfy DiagonalCost² ≥ 2 × StepCost² for
// the same reason; New rejects options that break it.
//
// # Contracts
//
//   - New deep-copies the input grid; later mutation of the caller's slices
//     does not affect the Grid.
//   - Graph returns the one graph built at construction time. Searches
//     mutate its per-node state, so share a Grid across goroutines only
//     behind external synchronization.
//   - NodeID and CellOf translate between grid coordinates and node ids;
//     blocked cells have no id.
//
// # Complexity
//
// New runs in O(W × H) time and memory for a W×H grid. NodeID, CellOf,
// InBounds and Passable are O(1).
package gridgraph
