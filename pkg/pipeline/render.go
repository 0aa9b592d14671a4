package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/speedo/pkg/gauge"
	"github.com/matzehuels/speedo/pkg/observability"
	"github.com/matzehuels/speedo/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, scene *gauge.Scene, formats []string) (map[string]*sink.Artifact, error) {
	artifacts := make(map[string]*sink.Artifact, len(formats))
	for _, format := range formats {
		art, err := RenderFormat(ctx, scene, format)
		if err != nil {
			return nil, err
		}
		artifacts[format] = art
	}
	return artifacts, nil
}

// RenderFormat renders one format, reporting to the pipeline hooks.
func RenderFormat(ctx context.Context, scene *gauge.Scene, format string) (*sink.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()

	art, err := sink.RenderScene(ctx, scene, format)
	size := 0
	if art != nil {
		size = len(art.Data)
	}
	hooks.OnRenderComplete(ctx, format, size, time.Since(start), err)

	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return art, nil
}
