package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/speedo/pkg/gauge"
	"github.com/matzehuels/speedo/pkg/observability"
)

// =============================================================================
// Scene Building
// =============================================================================

// Build lays out the gauge described by opts.
// opts must have passed ValidateAndSetDefaults.
func Build(ctx context.Context, opts Options) (*gauge.Scene, error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, opts.Title, opts.Max)
	start := time.Now()

	scene, err := build(opts)
	hooks.OnBuildComplete(ctx, opts.Title, time.Since(start), err)
	return scene, err
}

func build(opts Options) (*gauge.Scene, error) {
	spec, err := opts.Spec()
	if err != nil {
		return nil, err
	}
	gopts, err := opts.GaugeOptions()
	if err != nil {
		return nil, err
	}
	return gauge.Build(spec, gopts...)
}
