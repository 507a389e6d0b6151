// Package pathfind implements the search engine on top of the core graph:
// a single-source sweep (Dijkstra), a point-to-point heuristic search (A*),
// predecessor-chain reconstruction, cost-budget range queries, and a batch
// solver for many point-to-point requests.
//
// Overview:
//
//   - ShortestPaths relaxes every node reachable from one source and leaves
//     minimal costs plus predecessor links on the graph.
//   - FindPath runs A* between two nodes using the floor of the Euclidean
//     distance between node positions as its admissible heuristic.
//   - Path walks predecessor links into a start→target id sequence; the
//     start node is excluded, the target included.
//   - NodesInRange lists every node whose cached cost fits a budget.
//   - Batch fans point-to-point requests out over per-request graph clones
//     with a bounded worker pool.
//
// Result model:
//
// Both searches write their results into the nodes' working fields (cost,
// parent, heuristic) and return an error only for invalid input. A missing
// route is NOT an error: after FindPath the target's Parent simply remains
// core.NoParent, and Path returns an empty sequence. Each run first resets
// all working state, so the graph always carries exactly one search's
// outcome.
//
// Concurrency: one graph, one caller at a time. Batch obeys the rule by
// cloning the graph per request. An Observer passed to Batch must be safe
// for concurrent use.
//
// Complexity:
//
//	ShortestPaths  O((V + E) log V)
//	FindPath       O((V + E) log V) worst case, usually far less
//	Path           O(path length)
//	NodesInRange   O(V)
package pathfind
