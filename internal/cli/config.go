package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) configCommand() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "config <file>",
		Short: "Write the effective settings to a TOML file",
		Long: `Write the settings a run would use (defaults, then --config, then flags)
to a TOML file that can be passed back with --config.`,
		Example: `  socialpath config socialpath.toml -n 500 --strategy rejection --seed 9`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.resolve(cmd, &f)
			if err != nil {
				return err
			}
			if err := cfg.Write(args[0]); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Wrote settings")
			printFile(cmd.OutOrStdout(), args[0])
			return nil
		},
	}

	f.register(cmd)
	return cmd
}
