package cmd

import (
	"fmt"

	gestures "github.com/ThatOtherAndrew/dollar/internal/gesture"
	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [gesture]",
		Short: "Remove a learned gesture by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := gestures.RemoveGesture(a.templatesPath, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed gesture:", args[0])
			return nil
		},
	}
}
