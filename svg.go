package edgeart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVG is a Canvas producing a vector document.
type SVG struct {
	buf           bytes.Buffer
	canvas        *svg.SVG
	width, height int
	stroke, fill  color.Color
	weight        float64
}

// NewSVG starts a width x height document with the given title.
func NewSVG(width, height int, title string) *SVG {
	s := &SVG{
		width:  width,
		height: height,
		stroke: color.Black,
		fill:   color.White,
		weight: 1,
	}
	s.canvas = svg.New(&s.buf)
	s.canvas.Start(width, height)
	if title != "" {
		s.canvas.Title(title)
	}
	return s
}

// Size implements Canvas.
func (s *SVG) Size() (int, int) { return s.width, s.height }

// Background implements Canvas.
func (s *SVG) Background(c color.Color) {
	s.canvas.Rect(0, 0, s.width, s.height, fillStyle(c))
}

// SetStroke implements Canvas.
func (s *SVG) SetStroke(c color.Color) { s.stroke = c }

// SetFill implements Canvas.
func (s *SVG) SetFill(c color.Color) { s.fill = c }

// SetStrokeWeight implements Canvas.
func (s *SVG) SetStrokeWeight(w float64) { s.weight = w }

// Point implements Canvas.
func (s *SVG) Point(x, y float64) {
	if s.weight <= 0 {
		return
	}
	s.canvas.Path(circlePath(x, y, s.weight/2), fillStyle(s.stroke))
}

// Line implements Canvas.
func (s *SVG) Line(x0, y0, x1, y1 float64) {
	s.strokePath(fmt.Sprintf("M%.2f %.2f L%.2f %.2f", x0, y0, x1, y1), "none")
}

// Circle implements Canvas.
func (s *SVG) Circle(x, y, r float64) {
	s.strokePath(circlePath(x, y, r), "none")
}

// Disc implements Canvas.
func (s *SVG) Disc(x, y, r float64) {
	d := circlePath(x, y, r)
	s.canvas.Path(d, fillStyle(s.fill))
	s.strokePath(d, "none")
}

// Curve implements Canvas.
func (s *SVG) Curve(start Point, segs []Segment) {
	var d strings.Builder
	fmt.Fprintf(&d, "M%.2f %.2f", start.X, start.Y)
	for _, sg := range segs {
		fmt.Fprintf(&d, " C%.2f %.2f %.2f %.2f %.2f %.2f", sg.C1.X, sg.C1.Y, sg.C2.X, sg.C2.Y, sg.To.X, sg.To.Y)
	}
	s.strokePath(d.String(), "none")
}

func (s *SVG) strokePath(d, fill string) {
	if s.weight <= 0 {
		return
	}
	c := toNRGBA(s.stroke)
	s.canvas.Path(d, fmt.Sprintf(
		"fill:%s;stroke:rgb(%d,%d,%d);stroke-opacity:%.3f;stroke-width:%.2f;stroke-linecap:round;stroke-linejoin:round",
		fill, c.R, c.G, c.B, float64(c.A)/255, s.weight,
	))
}

// Encode closes the document and writes it to w.
func (s *SVG) Encode(w io.Writer) error {
	s.canvas.End()
	_, err := w.Write(s.buf.Bytes())
	return err
}

func fillStyle(c color.Color) string {
	n := toNRGBA(c)
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f;stroke:none", n.R, n.G, n.B, float64(n.A)/255)
}

// circlePath draws a full circle as two half arcs.
func circlePath(x, y, r float64) string {
	return fmt.Sprintf("M%.2f %.2f a%.2f %.2f 0 1 0 %.2f 0 a%.2f %.2f 0 1 0 %.2f 0 Z",
		x-r, y, r, r, 2*r, r, r, -2*r)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
