package pipeline

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/speedo/pkg/observability"
)

// BatchResult is the outcome of one gauge in a batch.
type BatchResult struct {
	Index   int
	Options Options
	Result  *Result
	Err     error
}

// BatchOption configures RenderBatch.
type BatchOption func(*batchConfig)

type batchConfig struct {
	progress func(done, total int)
}

// WithProgress calls fn after each gauge finishes, failed or not. fn may
// be called from several goroutines at once.
func WithProgress(fn func(done, total int)) BatchOption {
	return func(c *batchConfig) { c.progress = fn }
}

// RenderBatch renders independent gauges concurrently, at most GOMAXPROCS
// at a time. Results keep the input order. A failing gauge records its
// error and never stops the others; cancelling ctx stops gauges that have
// not started yet.
func (r *Runner) RenderBatch(ctx context.Context, batch []Options, options ...BatchOption) []BatchResult {
	var cfg batchConfig
	for _, opt := range options {
		opt(&cfg)
	}

	start := time.Now()
	results := make([]BatchResult, len(batch))
	var finished atomic.Int64
	report := func() {
		n := finished.Add(1)
		if cfg.progress != nil {
			cfg.progress(int(n), len(batch))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, opts := range batch {
		results[i] = BatchResult{Index: i, Options: opts}
		g.Go(func() error {
			defer report()
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			res, err := r.Execute(gctx, opts)
			results[i].Result, results[i].Err = res, err
			if err != nil {
				r.Logger.Warn("gauge failed", "gauge", opts.Name(), "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	observability.Pipeline().OnBatchComplete(ctx, len(batch), failed, time.Since(start))
	return results
}

// Failed returns the results that carry an error.
func Failed(results []BatchResult) []BatchResult {
	var out []BatchResult
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
