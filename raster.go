package edgeart

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Raster is a Canvas backed by a gg drawing context.
type Raster struct {
	ctx    *gg.Context
	format imaging.Format
	stroke color.Color
	fill   color.Color
	weight float64
}

// NewRaster creates a transparent width x height raster encoded as PNG.
func NewRaster(width, height int) *Raster {
	ctx := gg.NewContext(width, height)
	ctx.SetLineCapRound()
	ctx.SetLineJoinRound()
	return &Raster{
		ctx:    ctx,
		format: imaging.PNG,
		stroke: color.Black,
		fill:   color.White,
		weight: 1,
	}
}

// Size implements Canvas.
func (r *Raster) Size() (int, int) {
	return r.ctx.Width(), r.ctx.Height()
}

// Background implements Canvas.
func (r *Raster) Background(c color.Color) {
	r.ctx.DrawRectangle(0, 0, float64(r.ctx.Width()), float64(r.ctx.Height()))
	r.ctx.SetColor(c)
	r.ctx.Fill()
}

// SetStroke implements Canvas.
func (r *Raster) SetStroke(c color.Color) { r.stroke = c }

// SetFill implements Canvas.
func (r *Raster) SetFill(c color.Color) { r.fill = c }

// SetStrokeWeight implements Canvas.
func (r *Raster) SetStrokeWeight(w float64) { r.weight = w }

// Point implements Canvas.
func (r *Raster) Point(x, y float64) {
	if r.weight <= 0 {
		return
	}
	r.ctx.DrawCircle(x, y, r.weight/2)
	r.ctx.SetColor(r.stroke)
	r.ctx.Fill()
}

// Line implements Canvas.
func (r *Raster) Line(x0, y0, x1, y1 float64) {
	r.ctx.DrawLine(x0, y0, x1, y1)
	r.strokePath()
}

// Circle implements Canvas.
func (r *Raster) Circle(x, y, radius float64) {
	r.ctx.DrawCircle(x, y, radius)
	r.strokePath()
}

// Disc implements Canvas.
func (r *Raster) Disc(x, y, radius float64) {
	r.ctx.DrawCircle(x, y, radius)
	r.ctx.SetColor(r.fill)
	r.ctx.FillPreserve()
	r.strokePath()
}

// Curve implements Canvas.
func (r *Raster) Curve(start Point, segs []Segment) {
	r.ctx.MoveTo(start.X, start.Y)
	for _, s := range segs {
		r.ctx.CubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
	}
	r.strokePath()
}

func (r *Raster) strokePath() {
	if r.weight <= 0 {
		r.ctx.ClearPath()
		return
	}
	r.ctx.SetColor(r.stroke)
	r.ctx.SetLineWidth(r.weight)
	r.ctx.Stroke()
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	return r.ctx.Image()
}

// Grain replaces the rendered image with a noisy copy of itself.
func (r *Raster) Grain(amount int, rnd Rand) {
	if amount <= 0 {
		return
	}
	ctx := gg.NewContextForImage(Noise(amount, r.ctx.Image(), rnd))
	ctx.SetLineCapRound()
	ctx.SetLineJoinRound()
	r.ctx = ctx
}

// Encode writes the image in the raster's format.
func (r *Raster) Encode(w io.Writer) error {
	return imaging.Encode(w, r.ctx.Image(), r.format, imaging.JPEGQuality(100))
}
