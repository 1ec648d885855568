package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the marker file and reload on changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.app.Watch(cmd.Context(), options(cmd))
			if errors.Is(err, context.Canceled) {
				// Interrupt during watch is a normal shutdown.
				return nil
			}
			return err
		},
	}
}
