package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the wayfind CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag to the log level and attaches
// the logger to the command context for subcommands to retrieve via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "wayfind",
		Short:        "wayfind finds minimum-weight paths in graph documents",
		Long:         `wayfind loads weighted graphs from TOML documents and answers shortest-path queries using relaxing DFS/BFS traversals, or renders the graph as text, DOT or SVG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPathCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newDotCmd())

	return root.ExecuteContext(context.Background())
}
