// Package bytespathfinder is a weighted-graph pathfinding engine for game
// worlds: tile grids, waypoint roadmaps and hand-built node meshes, searched
// with Dijkstra and A*.
//
// 🚀 What is BytesPathfinder?
//
//	A deterministic engine built around integer edge costs and reusable
//	per-node search state:
//		• core:      position-aware nodes, symmetric weighted edges, search state
//		• nodeheap:  indexed binary min-heap with O(1) membership & decrease-key
//		• pathfind:  single-source sweeps, A*, route reconstruction, range
//		             and concurrent batch queries
//		• gridgraph: tile maps to graphs with terrain multipliers
//		• roadmap:   sampled waypoint networks over open space, GeoJSON in/out
//		• graphio:   crash-safe, optionally zstd-compressed structure snapshots
//		• metrics:   Prometheus collector for search statistics
//
// ✨ Why BytesPathfinder?
//
//   - Deterministic: integer costs, fixed tie-breaks and seedable builders
//   - Allocation-shy: searches write into per-node fields instead of maps
//   - Honest results: a missing route is data to inspect, not an error
//
// Quick ASCII example:
//
//	A────B
//	│    │
//	C────D
//
//	Four rooms on unit edges: FindPath(A, D) settles a corner, Path returns
//	the route without the start node, NodesInRange answers "what can I
//	reach on this budget?".
//
// Dive into the per-package docs for contracts, edge cases and complexity
// notes.
package bytespathfinder
