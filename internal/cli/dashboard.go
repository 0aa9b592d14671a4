package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/speedo/pkg/dashboard"
	errs "github.com/matzehuels/speedo/pkg/errors"
	"github.com/matzehuels/speedo/pkg/pipeline"
)

// defaultDashboardFile is written by "dashboard init".
const defaultDashboardFile = "dashboard.toml"

type dashboardOpts struct {
	output  string // output directory
	formats string // overrides the file's format list when set
	pick    bool   // choose gauges interactively
	noCache bool
}

// dashboardCommand creates the dashboard command for batch rendering.
func (c *CLI) dashboardCommand() *cobra.Command {
	var opts dashboardOpts

	cmd := &cobra.Command{
		Use:   "dashboard [config.toml]",
		Short: "Render every gauge of a dashboard",
		Long: `Render every gauge of a TOML dashboard concurrently, one file per gauge
and format. Without a file the four car gauges (speed, RPM, temperature,
fuel) are rendered.

Run "speedo dashboard init" for a starting point.`,
		Example: `  speedo dashboard
  speedo dashboard cockpit.toml -f png,svg -o out
  speedo dashboard cockpit.toml --pick`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := dashboard.Default()
			if len(args) == 1 {
				var err error
				if cfg, err = dashboard.Load(args[0]); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("format") {
				if _, err := pipeline.ParseFormats(opts.formats); err != nil {
					return err
				}
				cfg.Format = opts.formats
			}
			if opts.output == "" {
				opts.output = cfg.Output
			}
			return c.runDashboard(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: the file's output key, else .)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s), overriding the file")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose gauges interactively")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	_ = cmd.RegisterFlagCompletionFunc("format", formatCompletion)

	cmd.AddCommand(c.dashboardInitCommand())

	return cmd
}

// dashboardInitCommand creates the "dashboard init" subcommand.
func (c *CLI) dashboardInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default dashboard to a TOML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultDashboardFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeDefaultDashboard(path, force); err != nil {
				return err
			}
			printSuccess("Wrote %s", path)
			printNextStep("Render it", "speedo dashboard "+path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func writeDefaultDashboard(path string, force bool) error {
	if err := errs.ValidateOutputPath(path); err != nil {
		return err
	}
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if errors.Is(err, os.ErrExist) {
		return errs.New(errs.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}
	if err := dashboard.Default().Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *CLI) runDashboard(ctx context.Context, cfg *dashboard.Config, opts dashboardOpts) error {
	logger := loggerFromContext(ctx)

	names := cfg.Names()
	batch := cfg.Options()
	if opts.pick {
		selected, err := pickGauges(cfg.Gauges)
		if err != nil {
			return err
		}
		if len(selected) == 0 {
			printInfo("Nothing selected")
			return nil
		}
		names, batch = subset(names, selected), subset(batch, selected)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	dir := opts.output
	if dir == "" {
		dir = "."
	}
	formats := cfg.Formats()

	prog := newProgress(logger)
	spinner := newBatchSpinner(ctx, "Rendering", len(batch))
	spinner.Start()
	results := runner.RenderBatch(ctx, batch, pipeline.WithProgress(func(int, int) { spinner.Advance() }))
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}

	written, bytes, allCached := 0, 0, true
	for _, res := range results {
		name := names[res.Index]
		if res.Err != nil {
			printError("%s: %s", name, errs.UserMessage(res.Err))
			continue
		}
		paths, err := writeArtifacts(filepath.Join(dir, name), formats, res.Result.Artifacts)
		if err != nil {
			printError("%s: %s", name, errs.UserMessage(err))
			continue
		}
		for _, p := range paths {
			printFile(p)
		}
		written += len(paths)
		bytes += totalBytes(res.Result.Artifacts)
		allCached = allCached && res.Result.CacheInfo.RenderHit
	}

	failed := pipeline.Failed(results)
	prog.done(fmt.Sprintf("Rendered %d of %d gauges", len(results)-len(failed), len(results)))
	printStats(written, bytes, allCached && written > 0)
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d gauges failed", len(failed), len(results))
	}
	printSuccess("Dashboard written to %s", StyleHighlight.Render(dir))
	return nil
}

// pickGauges runs the interactive picker and returns the chosen indices.
func pickGauges(gauges []dashboard.Gauge) ([]int, error) {
	final, err := tea.NewProgram(NewGaugePickerModel(gauges)).Run()
	if err != nil {
		return nil, fmt.Errorf("gauge picker: %w", err)
	}
	return final.(GaugePickerModel).Selected(), nil
}

func subset[T any](items []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = items[idx]
	}
	return out
}
