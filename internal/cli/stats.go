package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) statsCommand() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Populate a graph and print degree statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			g, res, err := populateGraph(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			s := g.Stats()

			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("Graph (%s)", res.Strategy))
			printKeyValue(out, "users", s.Users)
			printKeyValue(out, "friendships", s.Friendships)
			printKeyValue(out, "requested", res.Requested)
			printKeyValue(out, "random draws", res.Draws)
			if res.Rejected > 0 {
				printKeyValue(out, "rejected draws", res.Rejected)
			}
			printKeyValue(out, "isolated users", s.Isolated)
			printKeyValue(out, "degree min/max", fmt.Sprintf("%d / %d", s.MinDegree, s.MaxDegree))
			printKeyValue(out, "degree avg", fmt.Sprintf("%.2f", s.AvgDegree))
			if res.Friendships < res.Requested {
				printWarning(out, "only %d of %d requested friendships fit among %d users",
					res.Friendships, res.Requested, s.Users)
			}
			return nil
		},
	}

	f.register(cmd)
	return cmd
}
