package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/speedo/pkg/cache"
	"github.com/matzehuels/speedo/pkg/gauge"
	"github.com/matzehuels/speedo/pkg/observability"
	"github.com/matzehuels/speedo/pkg/render/sink"
)

// keyTypeArtifact labels artifact entries in cache hooks.
const keyTypeArtifact = "artifact"

// Runner encapsulates pipeline execution with caching.
// The CLI, the dashboard batch and the server all use it so caching
// behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs build → render with artifact caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string]*sink.Artifact, len(opts.Formats)),
	}

	var missing []string
	for _, format := range opts.Formats {
		if art, ok := r.lookup(ctx, opts, format); ok {
			result.Artifacts[format] = art
			result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
			continue
		}
		missing = append(missing, format)
	}
	result.CacheInfo.RenderHit = len(missing) == 0
	if len(missing) == 0 {
		r.Logger.Debug("served from cache", "gauge", opts.Name(), "formats", opts.Formats)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buildStart := time.Now()
	scene, err := Build(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Scene = scene
	result.Stats.BuildTime = time.Since(buildStart)

	renderStart := time.Now()
	for _, format := range missing {
		art, err := RenderFormat(ctx, scene, format)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = art
		r.store(ctx, opts, art)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered gauge",
		"gauge", opts.Name(),
		"angle", fmt.Sprintf("%.2f", scene.Angle),
		"formats", missing,
		"duration", result.Stats.BuildTime+result.Stats.RenderTime)

	return result, nil
}

// Scene builds the gauge without rendering or caching.
func (r *Runner) Scene(ctx context.Context, opts Options) (*gauge.Scene, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return Build(ctx, opts)
}

// lookup returns a cached artifact. Backend errors count as misses.
func (r *Runner) lookup(ctx context.Context, opts Options, format string) (*sink.Artifact, bool) {
	if opts.Refresh {
		return nil, false
	}
	hooks := observability.Cache()
	key := r.Keyer.ArtifactKey(opts.ArtifactKeyOpts(format))

	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		hooks.OnCacheError(ctx, keyTypeArtifact, err)
		return nil, false
	}
	if !hit {
		hooks.OnCacheMiss(ctx, keyTypeArtifact)
		return nil, false
	}
	hooks.OnCacheHit(ctx, keyTypeArtifact)
	return sink.NewArtifact(format, opts.Size, data), true
}

// store caches an artifact. Failures are reported, never returned.
func (r *Runner) store(ctx context.Context, opts Options, art *sink.Artifact) {
	hooks := observability.Cache()
	key := r.Keyer.ArtifactKey(opts.ArtifactKeyOpts(art.Format))
	if err := r.Cache.Set(ctx, key, art.Data, cache.ArtifactTTL); err != nil {
		hooks.OnCacheError(ctx, keyTypeArtifact, err)
		return
	}
	hooks.OnCacheSet(ctx, keyTypeArtifact, len(art.Data))
}
