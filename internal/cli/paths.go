package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialpath/bfs"
)

func (c *CLI) pathsCommand() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Populate a graph and report shortest friendship paths from one user",
		Long: `Populate a random social graph, then find the shortest chain of friends
from --root to every user in its extended network.

Reports the root's direct friends, how many users are reachable, the
average path length (in users, root included) and how many users sit at
each degree of separation.`,
		Example: `  socialpath paths
  socialpath paths -n 200 -a 3 --strategy rejection --seed 42
  socialpath paths --config socialpath.toml --root 7 --sorted`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			g, _, err := populateGraph(ctx, cfg)
			if err != nil {
				return err
			}

			opts := []bfs.Option{bfs.WithContext(ctx)}
			if cfg.Sorted {
				opts = append(opts, bfs.WithSortedNeighbors())
			}
			prog := newProgress(loggerFromContext(ctx))
			tree, err := bfs.FindAllPaths(g, cfg.Root, opts...)
			if err != nil {
				return err
			}
			prog.done("Computed paths", "root", cfg.Root)

			friends, err := g.FriendIDs(cfg.Root)
			if err != nil {
				return err
			}
			slices.Sort(friends)

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("Extended network of user %d", cfg.Root))
			printKeyValue(out, "friends", friends)
			printKeyValue(out, "reachable users", tree.Reachable())
			printKeyValue(out, "avg path length", fmt.Sprintf("%.4f", tree.AveragePathLength()))
			if cfg.Users > 0 {
				printKeyValue(out, "network coverage", fmt.Sprintf("%.1f%%", 100*float64(len(tree))/float64(cfg.Users)))
			}
			fmt.Fprintln(out)
			printTitle(out, "Degrees of separation")
			printHistogram(out, histogram(tree), 40)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

// histogram orders tree.Degrees() by degree.
func histogram(tree bfs.PathTree) []histogramRow {
	counts := tree.Degrees()
	rows := make([]histogramRow, 0, len(counts))
	for d, n := range counts {
		rows = append(rows, histogramRow{degree: d, count: n})
	}
	slices.SortFunc(rows, func(a, b histogramRow) int { return a.degree - b.degree })
	return rows
}
