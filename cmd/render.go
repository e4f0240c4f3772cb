package cmd

import (
	"errors"
	"fmt"

	"github.com/ThatOtherAndrew/dollar/internal/draw"
	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
	"github.com/spf13/cobra"

	imgcat "github.com/martinlindhe/imgcat/lib"
)

// catFile prints an image file to a terminal.
var catFile = imgcat.CatFile

type renderOptions struct {
	output    string
	svg       string
	size      int
	canonical bool
	inline    bool
}

func newRenderCmd(a *app) *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [gesture|stroke]",
		Short: "Draw a gesture's templates or a stroke to a PNG",
		Long: `Draw every template of a named gesture, or a stroke given as "x,y;..." or
with --svg, to a PNG. With --canonical the stroke is normalized first and the
best matching template is drawn over it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, o, args)
		},
	}
	cmd.Flags().StringVarP(&o.output, "output", "o", "gesture.png", "PNG file to write")
	cmd.Flags().StringVar(&o.svg, "svg", "", "read the stroke from an SVG file")
	cmd.Flags().IntVar(&o.size, "size", 400, "image width and height in pixels")
	cmd.Flags().BoolVar(&o.canonical, "canonical", false, "draw the normalized stroke with its best match")
	cmd.Flags().BoolVar(&o.inline, "inline", false, "also print the image to the terminal")
	return cmd
}

func (a *app) render(cmd *cobra.Command, o *renderOptions, args []string) error {
	if o.size < 64 {
		return fmt.Errorf("size %d is too small, need at least 64", o.size)
	}
	r, err := a.newRecognizer()
	if err != nil {
		return err
	}
	canvas := draw.New(o.size, o.size)

	if o.svg == "" && len(args) == 1 {
		if templates := r.Templates(args[0]); len(templates) > 0 {
			strokes := make([][]models.Point, len(templates))
			for i, t := range templates {
				strokes[i] = t.Points
			}
			canvas.Fit(strokes...)
			for _, s := range strokes {
				canvas.DrawStroke(s, draw.Template)
			}
			return a.writeImage(cmd, canvas, o)
		}
	}

	points, err := readStroke(cmd, o.svg, false, args)
	if err != nil {
		if len(args) == 1 && errors.Is(err, stroke.ErrMalformedPoints) {
			return fmt.Errorf("%q is neither a gesture nor a stroke: %w", args[0], err)
		}
		return err
	}

	if !o.canonical {
		canvas.Fit(points)
		canvas.DrawStroke(points, draw.Input)
		return a.writeImage(cmd, canvas, o)
	}

	input, err := stroke.Normalize(points, r.NumPoints(), r.SquareSize())
	if err != nil {
		return err
	}
	result, err := r.Recognize(points)
	if err != nil {
		return err
	}
	match := r.Templates(result.Name)[result.Variant].Points
	canvas.Fit(input.Points, match)
	canvas.DrawStroke(match, draw.Template)
	canvas.DrawStroke(input.Points, draw.Input)
	canvas.DrawPoints(input.Points, draw.Input)
	printResult(cmd.OutOrStdout(), result)
	return a.writeImage(cmd, canvas, o)
}

func (a *app) writeImage(cmd *cobra.Command, canvas *draw.Canvas, o *renderOptions) error {
	if err := canvas.SavePNG(o.output); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	a.logger.Info("Saved image", "path", o.output)
	if o.inline {
		if err := catFile(o.output, cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to print image: %w", err)
		}
	}
	return nil
}
