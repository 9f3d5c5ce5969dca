package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolkov/wayfind/graphfile"
	"github.com/avolkov/wayfind/render"
)

// newShowCmd builds the `wayfind show` command: print the graph's neighbor
// listing in enumeration order.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <graph.toml>",
		Short: "Print a graph document as a neighbor listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Text(g))

			return nil
		},
	}
}
