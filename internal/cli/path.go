package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolkov/wayfind/core"
	"github.com/avolkov/wayfind/graphfile"
	"github.com/avolkov/wayfind/traverse"
)

// newPathCmd builds the `wayfind path` command: load a graph document and
// answer a shortest-path query with the chosen traversal strategy.
func newPathCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "path <graph.toml> <from> <to>",
		Short: "Find the minimum-weight path between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			file, from, to := args[0], args[1], args[2]

			g, err := graphfile.Load(file)
			if err != nil {
				return err
			}
			logger.Debug("graph loaded",
				"name", g.Name(),
				"directed", g.Directed(),
				"edges", len(g.Edges()),
			)

			relaxed := 0
			prog := newProgress(logger)
			path, err := traverse.ShortestPath(g, from, to, traverse.Strategy(strategy),
				traverse.WithOnImprove(func(v core.Vertex, old, now core.Path) {
					relaxed++
					logger.Debug("path improved", "vertex", v.Name(), "old", old.String(), "now", now.String())
				}),
			)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("traversal finished, %d relaxations", relaxed))

			if len(path) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), styleMiss.Render(fmt.Sprintf("no path from %s to %s", from, to)))

				return nil
			}
			weight, err := g.PathWeight(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				stylePath.Render(path.String()),
				styleWeight.Render(fmt.Sprintf("(weight %v)", weight)),
			)

			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(traverse.StrategyBFS),
		"traversal strategy: dfs-recursive, dfs-nonrecursive or bfs")

	return cmd
}
