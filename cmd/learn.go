package cmd

import (
	"fmt"

	gestures "github.com/ThatOtherAndrew/dollar/internal/gesture"
	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/recognizer"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
	"github.com/spf13/cobra"
)

func newLearnCmd(a *app) *cobra.Command {
	var command string
	cmd := &cobra.Command{
		Use:   "learn [gesture] [stroke...]",
		Short: "Save strokes as templates for a gesture",
		Long: `Save one or more strokes as the templates of a gesture in the template
library, replacing any templates it had. With --command, "recognize --exec"
runs the command whenever the gesture is recognized.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, strokes := args[0], args[1:]

			// every stroke has to survive normalization before it is saved
			r, err := recognizer.New(recognizer.WithTemplates(), recognizer.WithLogger(a.logger))
			if err != nil {
				return err
			}
			for i, s := range strokes {
				points, err := stroke.ParsePoints(s)
				if err != nil {
					return fmt.Errorf("stroke %d: %w", i+1, err)
				}
				if len(points) < a.settings.MinPoints {
					return fmt.Errorf("stroke %d: %w: got %d, need at least %d",
						i+1, ErrTooFewPoints, len(points), a.settings.MinPoints)
				}
				if _, err := r.AddTemplate(name, points); err != nil {
					return fmt.Errorf("stroke %d: %w", i+1, err)
				}
			}

			g := models.GestureConfig{Name: name, Command: command, Templates: strokes}
			if err := gestures.SaveGesture(a.templatesPath, g); err != nil {
				return fmt.Errorf("failed to save gesture: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gesture saved: %s (%d templates)\n", name, len(strokes))
			return nil
		},
	}
	cmd.Flags().StringVar(&command, "command", "", "shell command to run when the gesture is recognized")
	return cmd
}
