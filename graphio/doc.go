// Package graphio saves and restores graph structure.
//
// # Overview
//
// A snapshot records the things that define a graph: node positions and
// weighted edges. Per-node search state (costs, parents, heuristics) is
// deliberately not part of the format; a loaded graph always starts in the
// reset state, ready for fresh searches.
//
// Save and Load work on io.Writer and io.Reader. SaveFile and LoadFile add
// crash-safe file handling: the snapshot is written to a temp file in the
// target directory, synced and renamed into place, so readers never observe
// a half-written snapshot. Paths ending in ".zst" are transparently
// compressed and decompressed with zstandard.
//
// # Format
//
// Snapshots are versioned JSON. Nodes appear in id order; every edge appears
// once with its lower endpoint first. Load parses strictly: unknown fields,
// out-of-order ids, dangling endpoints, self-edges and negative weights all
// reject the snapshot.
package graphio
