package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/paulmach/orb"

	"github.com/ItamiOfficial/BytesPathfinder/core"
)

// ErrNilGraph indicates that Save was handed a nil graph.
var ErrNilGraph = errors.New("graphio: graph is nil")

// ErrBadSnapshot indicates a snapshot that parsed as JSON but violates the
// format: wrong version, out-of-order ids, dangling or negative edges.
var ErrBadSnapshot = errors.New("graphio: malformed snapshot")

// snapshotVersion guards format evolution; bump on incompatible changes.
const snapshotVersion = 1

// zstExt marks file paths that get zstandard framing.
const zstExt = ".zst"

type snapshot struct {
	Version int            `json:"version"`
	Nodes   []snapshotNode `json:"nodes"`
	Edges   []snapshotEdge `json:"edges"`
}

type snapshotNode struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// snapshotEdge stores each undirected edge once, lower endpoint in A.
type snapshotEdge struct {
	A int `json:"a"`
	B int `json:"b"`
	W int `json:"w"`
}

// Save writes g's structure to w as indented JSON. Search state is not part
// of the snapshot.
func Save(g *core.Graph, w io.Writer) error {
	if g == nil {
		return ErrNilGraph
	}

	snap := snapshot{
		Version: snapshotVersion,
		Nodes:   make([]snapshotNode, g.NodeCount()),
		Edges:   make([]snapshotEdge, 0, g.EdgeCount()),
	}
	for id := 0; id < g.NodeCount(); id++ {
		pos := g.Node(id).Pos
		snap.Nodes[id] = snapshotNode{ID: id, X: pos[0], Y: pos[1]}
		for _, e := range g.Neighbors(id) {
			if id < e.To {
				snap.Edges = append(snap.Edges, snapshotEdge{A: id, B: e.To, W: e.Weight})
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("graphio: encode snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot from r and rebuilds the graph in reset state.
// Parsing is strict; anything the format does not promise is rejected.
func Load(r io.Reader) (*core.Graph, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var snap snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("graphio: decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("version %d: %w", snap.Version, ErrBadSnapshot)
	}

	g := core.NewGraph(core.WithCapacity(len(snap.Nodes)))
	for i, n := range snap.Nodes {
		if n.ID != i {
			return nil, fmt.Errorf("node %d out of order at index %d: %w", n.ID, i, ErrBadSnapshot)
		}
		g.AddNode(orb.Point{n.X, n.Y})
	}
	for _, e := range snap.Edges {
		switch {
		case e.A < 0 || e.A >= len(snap.Nodes) || e.B < 0 || e.B >= len(snap.Nodes):
			return nil, fmt.Errorf("edge %d-%d out of range: %w", e.A, e.B, ErrBadSnapshot)
		case e.A == e.B:
			return nil, fmt.Errorf("self-edge on node %d: %w", e.A, ErrBadSnapshot)
		case e.W < 0:
			return nil, fmt.Errorf("edge %d-%d weight %d: %w", e.A, e.B, e.W, ErrBadSnapshot)
		}
		g.AddOrSetEdge(e.A, e.B, e.W)
	}
	return g, nil
}

// SaveFile writes the snapshot to path, compressing when the path ends in
// ".zst". The write is crash-safe: a temp file in the same directory is
// synced and then renamed over the target.
func SaveFile(g *core.Graph, path string) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return fmt.Errorf("graphio: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	var w io.Writer = tmp
	var enc *zstd.Encoder
	if strings.HasSuffix(path, zstExt) {
		enc, err = zstd.NewWriter(tmp, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return fmt.Errorf("graphio: create compressor: %w", err)
		}
		w = enc
	}

	if err = Save(g, w); err != nil {
		return err
	}
	if enc != nil {
		// flush the zstd frame before syncing the file
		if err = enc.Close(); err != nil {
			return fmt.Errorf("graphio: close compressor: %w", err)
		}
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("graphio: sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("graphio: close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("graphio: rename into place: %w", err)
	}
	return nil
}

// LoadFile reads a snapshot from path, decompressing when the path ends in
// ".zst".
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open snapshot: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, zstExt) {
		return Load(f)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("graphio: create decompressor: %w", err)
	}
	defer dec.Close()
	return Load(dec)
}
