package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/speedo/pkg/cache"
	"github.com/matzehuels/speedo/pkg/observability"
	"github.com/matzehuels/speedo/pkg/pipeline"
	"github.com/matzehuels/speedo/pkg/server"
)

type serveOpts struct {
	addr          string
	redisURL      string
	memoryEntries int
	timeout       time.Duration
	noCache       bool
}

// serveCommand creates the serve command running the HTTP renderer.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:          server.DefaultAddr,
		redisURL:      os.Getenv(envRedisURL),
		memoryEntries: cache.DefaultMemoryEntries,
		timeout:       server.DefaultTimeout,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Render gauges over HTTP",
		Long: `Serve gauges over HTTP.

  GET  /v1/gauge.{png,svg,pdf,json}?value=80&max=220&title=Speed&unit=km/h
  POST /v1/render   (JSON body with the render flags as fields)
  GET  /v1/palettes
  GET  /healthz

Artifacts are cached in memory, or in Redis when --redis-url (or
` + envRedisURL + `) is set so several instances share one cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", opts.redisURL, "Redis URL for a shared artifact cache (env "+envRedisURL+")")
	cmd.Flags().IntVar(&opts.memoryEntries, "cache-entries", opts.memoryEntries, "in-memory cache size when Redis is not used")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-request timeout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	store, backend, err := newServerCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	observability.SetHTTPHooks(observability.NewLogHTTPHooks(logger))

	runner := pipeline.NewRunner(store, nil, logger)
	srv := server.New(runner, server.WithLogger(logger), server.WithTimeout(opts.timeout))

	printInfo("Serving gauges on %s", StyleLink.Render("http://"+displayAddr(opts.addr)))
	printKeyValue("cache", backend)
	printKeyValue("timeout", opts.timeout.String())
	printNewline()
	if opts.noCache {
		printWarning("Artifact caching disabled; every request renders")
	}

	return srv.ListenAndServe(ctx, opts.addr)
}

func newServerCache(ctx context.Context, opts serveOpts) (cache.Cache, string, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), "disabled", nil
	case opts.redisURL != "":
		rc, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return nil, "", err
		}
		return rc, "redis", nil
	default:
		return cache.NewMemoryCache(opts.memoryEntries), "memory", nil
	}
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
