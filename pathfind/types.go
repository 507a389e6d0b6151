package pathfind

import (
	"errors"
	"runtime"
	"time"
)

// Sentinel errors reported for invalid input. "No path exists" is never an
// error; see the package documentation.
var (
	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrNodeNotFound indicates an id outside the graph's node range.
	ErrNodeNotFound = errors.New("pathfind: node id out of range")
)

// Algorithm labels handed to the Observer.
const (
	AlgorithmDijkstra = "dijkstra"
	AlgorithmAStar    = "astar"
)

// Stats summarizes one search run.
type Stats struct {
	// Extracted counts heap extractions (settled nodes).
	Extracted int

	// Relaxed counts accepted cost improvements.
	Relaxed int

	// Found reports whether the target was reached. Always true for
	// single-source runs, which have no target.
	Found bool

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Observer receives per-run statistics. Implementations must be cheap; the
// engine calls ObserveSearch once per search, after the run finishes.
type Observer interface {
	ObserveSearch(algorithm string, st Stats)
}

// Option tunes the engine entry points.
type Option func(*options)

type options struct {
	obs     Observer
	workers int
}

// WithObserver attaches an Observer to the run. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.obs = obs }
}

// WithWorkers caps Batch's concurrent solvers. Values below 1 keep the
// default (runtime.NumCPU). Search entry points ignore this option.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.workers = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{workers: runtime.NumCPU()}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// observe forwards stats to the configured observer, if any.
func (o *options) observe(algorithm string, st Stats) {
	if o.obs != nil {
		o.obs.ObserveSearch(algorithm, st)
	}
}
