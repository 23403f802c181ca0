package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialpath/bfs"
	"github.com/katalvlaran/socialpath/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

func (c *CLI) renderCommand() *cobra.Command {
	var (
		f      runFlags
		format string
		output string
		tree   bool
		labels bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Populate a graph and export it as Graphviz DOT or SVG",
		Long: `Populate a random social graph and write it as Graphviz DOT or SVG.

With --tree, the shortest-path tree from --root is rendered instead of the
full friendship graph.`,
		Example: `  socialpath render -n 30 -a 2 -o graph.dot
  socialpath render -n 30 -a 2 --tree --format svg -o tree.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}
			cfg, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			g, _, err := populateGraph(ctx, cfg)
			if err != nil {
				return err
			}

			var dot string
			if tree {
				opts := []bfs.Option{bfs.WithContext(ctx)}
				if cfg.Sorted {
					opts = append(opts, bfs.WithSortedNeighbors())
				}
				t, err := bfs.FindAllPaths(g, cfg.Root, opts...)
				if err != nil {
					return err
				}
				dot = render.TreeDOT(t, cfg.Root)
			} else {
				dot = render.GraphDOT(g, render.Options{Labels: labels, Highlight: cfg.Root})
			}

			data := []byte(dot)
			if format == formatSVG {
				prog := newProgress(loggerFromContext(ctx))
				if data, err = render.SVG(ctx, dot); err != nil {
					return err
				}
				prog.done("Rendered SVG", "bytes", len(data))
			}

			out := cmd.OutOrStdout()
			if output == "" {
				_, err = out.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printSuccess(out, "Wrote %s", format)
			printFile(out, output)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&tree, "tree", false, "render the shortest-path tree from --root")
	cmd.Flags().BoolVar(&labels, "labels", false, "label nodes with user names instead of IDs")
	return cmd
}
