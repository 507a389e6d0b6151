// Package core provides the graph substrate for the BytesPathfinder search
// engine: densely indexed nodes with 2D positions, symmetric weighted
// adjacency lists, and the per-node working state (cost, predecessor,
// heuristic, heap slot) that the search algorithms mutate in place.
//
// Overview:
//
//   - Node ids are dense integers equal to their storage index. Ids are
//     assigned by AddNode in insertion order and are never reused or removed.
//   - Edges are undirected and symmetric by construction: AddOrSetEdge always
//     inserts or overwrites the pair (a→b, b→a) with one non-negative weight.
//   - Cost, Parent and Heuristic form a single-slot memo of the most recent
//     search. A later search overwrites them; readers such as path
//     reconstruction and range queries observe only the latest run.
//
// Contracts:
//
//   - All operations are single-threaded. Callers that share one Graph across
//     goroutines must serialize access; Clone gives each worker its own copy.
//   - Mutators never panic on bad input: an invalid node id (or a negative
//     weight) is reported through the configured slog.Logger and the call is
//     a no-op.
//   - Node and Neighbors skip bounds checks. They sit on the hot search path
//     and their callers obtain ids from the graph itself; use HasNode at the
//     public rim.
//
// Complexity:
//
//	AddNode           O(1) amortized
//	AddOrSetEdge      O(deg) scan of the two endpoint lists
//	ResetSearchState  O(V)
//	Clone             O(V + E)
package core
