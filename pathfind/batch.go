package pathfind

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ItamiOfficial/BytesPathfinder/core"
)

// Request names one point-to-point query for Batch.
type Request struct {
	Start  int
	Target int
}

// Batch solves every request with its own clone of g, so the shared graph is
// never mutated and the per-graph serialization contract holds. Results keep
// request order; a request with no route yields an empty path, exactly like
// Path. The first invalid request aborts the batch.
//
// Worker count defaults to runtime.NumCPU and is tuned with WithWorkers. An
// attached Observer sees every run and must tolerate concurrent calls.
func Batch(ctx context.Context, g *core.Graph, reqs []Request, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := buildOptions(opts)

	results := make([][]int, len(reqs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)

	for i, req := range reqs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			clone := g.Clone()
			if err := FindPath(clone, req.Start, req.Target, opts...); err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = Path(clone, req.Start, req.Target, false)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
