package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var builtin bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered gestures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.newRecognizer()
			if err != nil {
				return err
			}
			if builtin {
				r.DeleteUserTemplates()
			}

			w := cmd.OutOrStdout()
			s := newStyles(w)
			classes := r.Classes()
			if len(classes) == 0 {
				fmt.Fprintln(w, "No gestures registered")
				return nil
			}
			fmt.Fprintln(w, s.title.Render(fmt.Sprintf("Registered gestures (%d classes, %d templates):", len(classes), r.Len())))
			for _, c := range classes {
				fmt.Fprintf(w, "  %-20s %d\n", c.Name, c.Variants)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&builtin, "builtin", false, "only show the built-in gestures")
	return cmd
}
