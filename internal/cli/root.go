package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it with os.Args.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including pipeline and cache events
//
// The logger is attached to the command context and reachable from every
// command via loggerFromContext.
func Execute(ctx context.Context) error {
	return execute(ctx, New(os.Stderr, LogInfo), os.Args[1:])
}

func execute(ctx context.Context, c *CLI, args []string) error {
	var verbose bool

	root := c.RootCommand()
	root.SetArgs(args)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	return root.ExecuteContext(ctx)
}
