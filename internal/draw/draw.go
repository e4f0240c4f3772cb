package draw

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/ThatOtherAndrew/dollar/internal/models"
	"github.com/ThatOtherAndrew/dollar/internal/stroke"
	"github.com/fogleman/gg"
)

const padding = 16

var (
	Background = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	Input      = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	Template   = color.RGBA{R: 255, G: 170, B: 60, A: 255}
)

// Canvas renders strokes to an image. All strokes share one view, set by Fit,
// so they can be compared by overlaying them.
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int

	scale      float64
	minX, minY float64
	offX, offY float64
}

func New(width, height int) *Canvas {
	c := &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		scale:  1,
		offX:   padding,
		offY:   padding,
	}
	c.ctx.SetColor(Background)
	c.ctx.DrawRectangle(0, 0, float64(width), float64(height))
	c.ctx.Fill()
	c.ctx.SetLineCapRound()
	c.ctx.SetLineJoinRound()
	return c
}

// Fit sets the view so the combined bounding box of strokes fills the canvas
// inside the padding, keeping the aspect ratio and centring the result.
func (c *Canvas) Fit(strokes ...[]models.Point) {
	var all []models.Point
	for _, s := range strokes {
		all = append(all, s...)
	}
	if len(all) == 0 {
		return
	}
	box := stroke.BoundingBox(all)

	innerW := float64(c.width - 2*padding)
	innerH := float64(c.height - 2*padding)
	scale := math.Inf(1)
	if box.Width > 0 {
		scale = innerW / box.Width
	}
	if box.Height > 0 {
		scale = math.Min(scale, innerH/box.Height)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	c.scale = scale
	c.minX, c.minY = box.X, box.Y
	c.offX = padding + (innerW-box.Width*scale)/2
	c.offY = padding + (innerH-box.Height*scale)/2
}

func (c *Canvas) project(p models.Point) (float64, float64) {
	return (p.X-c.minX)*c.scale + c.offX, (p.Y-c.minY)*c.scale + c.offY
}

// DrawStroke draws points as a glowing polyline with a dot on the first point.
func (c *Canvas) DrawStroke(points []models.Point, col color.Color) {
	if len(points) == 0 {
		return
	}
	r, g, b, _ := col.RGBA()
	red, green, blue := float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff

	for pass := 2; pass >= 0; pass-- {
		thickness := float64(3 + pass*4)
		alpha := 0.7 - float64(pass)*0.15
		if pass == 0 {
			alpha = 1
		}
		c.ctx.SetRGBA(red, green, blue, alpha)
		c.ctx.SetLineWidth(thickness)
		x, y := c.project(points[0])
		c.ctx.MoveTo(x, y)
		for _, p := range points[1:] {
			x, y := c.project(p)
			c.ctx.LineTo(x, y)
		}
		c.ctx.Stroke()
	}

	x, y := c.project(points[0])
	c.ctx.SetRGB(1, 1, 1)
	c.ctx.DrawCircle(x, y, 5)
	c.ctx.Fill()
}

// DrawPoints marks every point, which shows resampling spacing.
func (c *Canvas) DrawPoints(points []models.Point, col color.Color) {
	c.ctx.SetColor(col)
	for _, p := range points {
		x, y := c.project(p)
		c.ctx.DrawCircle(x, y, 2)
	}
	c.ctx.Fill()
}

func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.ctx.EncodePNG(w)
}

func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}
