package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/ThatOtherAndrew/dollar/internal/execute"
	gestures "github.com/ThatOtherAndrew/dollar/internal/gesture"
	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/recognizer"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
	"github.com/spf13/cobra"
)

var (
	ErrTooFewPoints = errors.New("too few points")
	ErrNoMatch      = errors.New("no confident match")
)

type recognizeOptions struct {
	svg    string
	stdin  bool
	metric string
	exec   bool
}

func newRecognizeCmd(a *app) *cobra.Command {
	o := &recognizeOptions{}
	cmd := &cobra.Command{
		Use:   "recognize [stroke]",
		Short: "Recognize a stroke against the built-in and learned gestures",
		Example: `  dollar recognize "137,139;135,141;133,144;..."
  dollar recognize --svg gesture.svg --metric protractor
  dollar recognize --stdin --exec < samples.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.recognize(cmd, o, args)
		},
	}
	cmd.Flags().StringVar(&o.svg, "svg", "", "read the stroke from the first polyline or polygon of an SVG file")
	cmd.Flags().BoolVar(&o.stdin, "stdin", false, `read "x,y" samples from stdin, one per line`)
	cmd.Flags().StringVar(&o.metric, "metric", "", "matching metric: classic or protractor (default from settings)")
	cmd.Flags().BoolVar(&o.exec, "exec", false, "run the command learned for the recognized gesture")
	return cmd
}

func readStroke(cmd *cobra.Command, svg string, stdin bool, args []string) ([]models.Point, error) {
	sources := 0
	for _, set := range []bool{svg != "", stdin, len(args) > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errors.New("give exactly one of a stroke argument, --svg or --stdin")
	}

	switch {
	case svg != "":
		return gestures.LoadSVG(svg)
	case stdin:
		return gestures.Record(cmd.InOrStdin())
	default:
		return stroke.ParsePoints(args[0])
	}
}

func (a *app) recognize(cmd *cobra.Command, o *recognizeOptions, args []string) error {
	points, err := readStroke(cmd, o.svg, o.stdin, args)
	if err != nil {
		return err
	}
	if len(points) < a.settings.MinPoints {
		return fmt.Errorf("%w: got %d, need at least %d; draw a longer stroke",
			ErrTooFewPoints, len(points), a.settings.MinPoints)
	}

	r, err := a.newRecognizer()
	if err != nil {
		return err
	}
	if o.metric != "" {
		metric, err := recognizer.ParseMetric(o.metric)
		if err != nil {
			return err
		}
		if err := r.SetMetric(metric); err != nil {
			return err
		}
	}

	result, err := r.Recognize(points)
	if err != nil {
		return err
	}
	if result.Score < a.settings.Threshold {
		return fmt.Errorf("%w: best was %q at %s, threshold %.2f",
			ErrNoMatch, result.Name, formatScore(result), a.settings.Threshold)
	}

	printResult(cmd.OutOrStdout(), result)

	if o.exec {
		return a.execute(result.Name)
	}
	return nil
}

func formatScore(result recognizer.Result) string {
	if result.Exact {
		return "exact"
	}
	return fmt.Sprintf("%.2f", result.Score)
}

func printResult(w io.Writer, result recognizer.Result) {
	s := newStyles(w)
	fmt.Fprintf(w, "%s %s\n", s.name.Render(result.Name), s.faint.Render("("+formatScore(result)+")"))
}

func (a *app) execute(name string) error {
	library, err := gestures.LoadGestures(a.templatesPath)
	if err != nil {
		return fmt.Errorf("failed to load gestures: %w", err)
	}
	for _, g := range library {
		if g.Name == name && g.Command != "" {
			a.logger.Info("Executing command", "gesture", name, "command", g.Command)
			if err := execute.Command(g.Command, name); err != nil {
				return fmt.Errorf("failed to execute command: %w", err)
			}
			return nil
		}
	}
	a.logger.Info("No command learned for gesture", "gesture", name)
	return nil
}
