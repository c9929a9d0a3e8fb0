// SPDX-License-Identifier: MIT

package resample

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Jason-buaa/AxisInterp/grid"
)

// Request is one independent unit of work for ResampleBatch.
type Request struct {
	Source  *grid.Grid
	TargetX []float64
	TargetY []float64
}

// ResampleBatch resamples every request and returns the results in request
// order. At most Concurrency() requests run at once (see WithConcurrency).
//
// The context is checked before each request starts; a running request is
// never interrupted. On the first failure, or once ctx is done, requests that
// have not started are skipped and the error is returned with no results.
//
// Errors: ctx.Err(), or the first Resample error wrapped with its request index.
func ResampleBatch(ctx context.Context, reqs []Request, opts ...Option) ([]*grid.Grid, error) {
	o := gatherOptions(opts...)
	out := make([]*grid.Grid, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency())
	for i := range reqs {
		req := reqs[i]
		idx := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := resample(req.Source, req.TargetX, req.TargetY, o)
			if err != nil {
				return fmt.Errorf("request %d: %w", idx, err)
			}
			out[idx] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resample.ResampleBatch: %w", err)
	}

	return out, nil
}
