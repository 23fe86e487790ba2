// SPDX-License-Identifier: MIT
// Package logratio: bounded-parallel batch runner.
//
// Bootstrap resampling produces many independent tables that all go through
// the same pipeline. TransformBatch fans them out over a fixed number of
// goroutines; tables share nothing, so no locking is needed.

package logratio

import (
	"context"
	"runtime"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// TransformBatch runs Transform on every table with at most workers calls in
// flight (workers <= 0 means GOMAXPROCS).
//
// Returns:
//   - results[i] corresponds to tables[i].
//
// Errors:
//   - the first failing table's error, tagged with its index; the remaining
//     tables are skipped. ctx.Err() when ctx is cancelled first.
func TransformBatch(ctx context.Context, tables []*Table, workers int, opts ...Option) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	// Fail fast on bad options before spawning anything.
	if _, err := gatherOptions(opts...).resolve(); err != nil {
		return nil, err
	}

	results := make([]*Result, len(tables))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, t := range tables {
		if gctx.Err() != nil {
			break
		}
		i, t := i, t // per-iteration copies (go 1.21 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Transform(t, opts...)
			if err != nil {
				return errors.Wrapf(err, "%s: table %d", stageBatch, i)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
