package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Force a rebuild of the cached environment",
		Long: `Force direnv to rebuild its cached environment for the project, then
touch the marker file and copy its timestamp onto the cached profiles so
the next freshness check reads "up to date" instead of looping.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Reload(cmd.Context(), options(cmd))
		},
	}
}
