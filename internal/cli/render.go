package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/speedo/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file or base path; "-" for stdout
	formats string // comma separated output formats
	noCache bool   // bypass the artifact cache
}

// renderCommand creates the render command for drawing a single gauge.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags renderOpts
		opts  pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one gauge",
		Long: `Render one gauge to PNG, SVG, PDF or JSON.

The value is clamped to [0, max] unless --clamp overflow is given.
Several formats can be requested at once; each is written next to the
others as <output>.<format>.`,
		Example: `  speedo render --value 80 --max 220 --title Speed --unit km/h --color limegreen --gradient
  speedo render --value 3000 --max 8000 --unit RPM -f png,svg -o out/rpm
  speedo render --value 42 --max 100 -f svg -o - > gauge.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats, err := pipeline.ParseFormats(flags.formats)
			if err != nil {
				return err
			}
			opts.Formats = formats
			return c.runRender(cmd.Context(), opts, flags)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.Value, "value", 0, "gauge reading")
	f.IntVar(&opts.Max, "max", 0, "top of the scale (required, > 0)")
	f.StringVar(&opts.Title, "title", "", "title shown under the pivot")
	f.StringVar(&opts.Unit, "unit", "", "unit shown after the value")
	f.StringVar(&opts.Color, "color", pipeline.DefaultColor, "active arc color (CSS name or #rrggbb)")
	f.BoolVar(&opts.Gradient, "gradient", false, "draw the active arc as a palette gradient")
	f.StringVarP(&flags.formats, "format", "f", pipeline.DefaultFormat, "output format(s): png, svg, pdf, json (comma-separated)")
	f.StringVarP(&flags.output, "output", "o", "", "output file or base path, - for stdout (default: title slug)")
	f.IntVar(&opts.Size, "size", pipeline.DefaultSize, "image side in pixels")
	f.IntVar(&opts.Segments, "segments", pipeline.DefaultSegments, "gradient segment count")
	f.StringVar(&opts.Palette, "palette", pipeline.DefaultPalette, "gradient palette (see speedo palettes)")
	f.StringVar(&opts.Theme, "theme", pipeline.DefaultTheme, "color theme: dark, light")
	f.StringVar(&opts.Orientation, "orientation", "ccw", "sweep direction: ccw (zero on the right), cw (zero on the left)")
	f.StringVar(&opts.Clamp, "clamp", "clamp", "out-of-range values: clamp, overflow")
	f.BoolVar(&flags.noCache, "no-cache", false, "bypass the artifact cache")
	_ = cmd.MarkFlagRequired("max")

	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)
	_ = cmd.RegisterFlagCompletionFunc("palette", paletteCompletion)
	_ = cmd.RegisterFlagCompletionFunc("theme", themeCompletion)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, flags renderOpts) error {
	logger := loggerFromContext(ctx)
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	base := outputBase(flags.output, opts.Title)
	paths, err := writeArtifacts(base, opts.Formats, result.Artifacts)
	if err != nil {
		return err
	}
	if base == stdoutPath {
		return nil
	}

	logger.Debug("render stats", "build", result.Stats.BuildTime, "render", result.Stats.RenderTime, "cache_hits", result.CacheInfo.Hits)
	prog.done(fmt.Sprintf("Rendered %s", opts.Name()))
	printSuccess("Rendered %s", StyleHighlight.Render(opts.Name()))
	for _, p := range paths {
		printFile(p)
	}
	printStats(len(paths), totalBytes(result.Artifacts), result.CacheInfo.RenderHit)
	return nil
}
