package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avolkov/wayfind/graphfile"
	"github.com/avolkov/wayfind/render"
)

// newDotCmd builds the `wayfind dot` command: emit the graph as Graphviz
// DOT, or as SVG when --svg is set.
func newDotCmd() *cobra.Command {
	var (
		output string
		asSVG  bool
	)

	cmd := &cobra.Command{
		Use:   "dot <graph.toml>",
		Short: "Render a graph document as DOT or SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			g, err := graphfile.Load(args[0])
			if err != nil {
				return err
			}
			dot := render.ToDOT(g)

			out := []byte(dot)
			if asSVG {
				prog := newProgress(logger)
				if out, err = render.SVG(dot); err != nil {
					return err
				}
				prog.done("rendered SVG")
			}

			if output == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(out))

				return nil
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("wrote rendering", "path", output, "bytes", len(out))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&asSVG, "svg", false, "render SVG via Graphviz instead of emitting DOT")

	return cmd
}
