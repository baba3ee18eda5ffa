package edgeart

import (
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDF is a Canvas drawing on a single page sized to the canvas, one point per pixel.
type PDF struct {
	doc           *gofpdf.Fpdf
	width, height int
	stroke, fill  color.NRGBA
	weight        float64
	alpha         float64
}

// NewPDF creates a one page document of width x height points.
func NewPDF(width, height int, title string) *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(title, true)
	doc.AddPage()
	doc.SetLineCapStyle("round")
	doc.SetLineJoinStyle("round")

	return &PDF{
		doc:    doc,
		width:  width,
		height: height,
		stroke: color.NRGBA{A: 255},
		fill:   color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		weight: 1,
		alpha:  1,
	}
}

// Size implements Canvas.
func (p *PDF) Size() (int, int) { return p.width, p.height }

// Background implements Canvas.
func (p *PDF) Background(c color.Color) {
	n := toNRGBA(c)
	p.setAlpha(n)
	p.doc.SetFillColor(int(n.R), int(n.G), int(n.B))
	p.doc.Rect(0, 0, float64(p.width), float64(p.height), "F")
}

// SetStroke implements Canvas.
func (p *PDF) SetStroke(c color.Color) { p.stroke = toNRGBA(c) }

// SetFill implements Canvas.
func (p *PDF) SetFill(c color.Color) { p.fill = toNRGBA(c) }

// SetStrokeWeight implements Canvas.
func (p *PDF) SetStrokeWeight(w float64) { p.weight = w }

// Point implements Canvas.
func (p *PDF) Point(x, y float64) {
	if p.weight <= 0 {
		return
	}
	p.setAlpha(p.stroke)
	p.doc.SetFillColor(int(p.stroke.R), int(p.stroke.G), int(p.stroke.B))
	p.doc.Circle(x, y, p.weight/2, "F")
}

// Line implements Canvas.
func (p *PDF) Line(x0, y0, x1, y1 float64) {
	if p.prepareStroke() {
		p.doc.Line(x0, y0, x1, y1)
	}
}

// Circle implements Canvas.
func (p *PDF) Circle(x, y, r float64) {
	if p.prepareStroke() {
		p.doc.Circle(x, y, r, "D")
	}
}

// Disc implements Canvas.
func (p *PDF) Disc(x, y, r float64) {
	p.setAlpha(p.fill)
	p.doc.SetFillColor(int(p.fill.R), int(p.fill.G), int(p.fill.B))
	p.doc.Circle(x, y, r, "F")
	p.Circle(x, y, r)
}

// Curve implements Canvas.
func (p *PDF) Curve(start Point, segs []Segment) {
	if !p.prepareStroke() {
		return
	}
	p.doc.MoveTo(start.X, start.Y)
	for _, s := range segs {
		p.doc.CurveBezierCubicTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.To.X, s.To.Y)
	}
	p.doc.DrawPath("D")
}

// prepareStroke loads the stroke state into the document.
// It reports false when nothing would be visible.
func (p *PDF) prepareStroke() bool {
	if p.weight <= 0 {
		return false
	}
	p.setAlpha(p.stroke)
	p.doc.SetDrawColor(int(p.stroke.R), int(p.stroke.G), int(p.stroke.B))
	p.doc.SetLineWidth(p.weight)
	return true
}

func (p *PDF) setAlpha(c color.NRGBA) {
	a := float64(c.A) / 255
	if a != p.alpha {
		p.doc.SetAlpha(a, "Normal")
		p.alpha = a
	}
}

// Encode writes the document to w.
func (p *PDF) Encode(w io.Writer) error {
	return p.doc.Output(w)
}
