// Package roadmap builds sparse waypoint graphs over continuous 2-D space,
// the free-movement counterpart to gridgraph's rasters.
//
// # Overview
//
// Build scatters a configured number of waypoints uniformly over an area and
// connects every pair closer than the connection radius, producing a
// *core.Graph ready for the pathfind package. An R-tree over the waypoints
// answers nearest-waypoint and region queries and keeps radius connection
// near linear instead of quadratic. FromGeoJSON builds the same structure
// from surveyed data: Point features become waypoints, LineString features
// become connected chains, and shared coordinates merge into junctions.
// Component and Connected sweep the edge structure to tell islands apart
// without running a weighted search.
//
// # Cost model
//
// Edge weights are the straight-line distance between endpoints rounded up
// to the next integer, so the search heuristic never overestimates.
// Coordinates are treated as planar; scale inputs so typical hop lengths sit
// comfortably above 1 or rounding will flatten them into unit steps.
//
// # Contracts
//
//   - Build is deterministic: equal Config values, including Seed, rebuild
//     an identical roadmap.
//   - Attach keeps a waypoint even when nothing lies within the radius; the
//     zero link count tells the caller it is unreachable.
//   - The graph returned by Graph is shared, and searches mutate its
//     per-node state. Synchronize externally or search on a Clone.
//
// # Complexity
//
// Build runs in O(n·(log n + k)) for n samples with k neighbours inside the
// radius box. Nearest and Within are R-tree queries, O(log n) plus output.
// Component and Connected visit each edge of the component once.
package roadmap
