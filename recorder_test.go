package edgeart

import (
	"fmt"
	"image/color"
)

// recorder is a Canvas keeping a log of the calls it receives.
type recorder struct {
	w, h   int
	calls  []string
	lines  [][4]float64
	points []Point
	curves [][]Segment
	starts []Point
	stroke []color.Color
	bg     []color.Color
}

func newRecorder(w, h int) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Background(c color.Color) {
	r.bg = append(r.bg, c)
	r.calls = append(r.calls, "background")
}

func (r *recorder) SetStroke(c color.Color) {
	r.stroke = append(r.stroke, c)
	r.calls = append(r.calls, "stroke")
}

func (r *recorder) SetFill(c color.Color) { r.calls = append(r.calls, "fill") }

func (r *recorder) SetStrokeWeight(w float64) {
	r.calls = append(r.calls, fmt.Sprintf("weight %v", w))
}

func (r *recorder) Point(x, y float64) {
	r.points = append(r.points, Point{X: x, Y: y})
	r.calls = append(r.calls, fmt.Sprintf("point %v %v", x, y))
}

func (r *recorder) Line(x0, y0, x1, y1 float64) {
	r.lines = append(r.lines, [4]float64{x0, y0, x1, y1})
	r.calls = append(r.calls, fmt.Sprintf("line %v %v %v %v", x0, y0, x1, y1))
}

func (r *recorder) Circle(x, y, radius float64) {
	r.calls = append(r.calls, fmt.Sprintf("circle %v %v %v", x, y, radius))
}

func (r *recorder) Disc(x, y, radius float64) {
	r.calls = append(r.calls, fmt.Sprintf("disc %v %v %v", x, y, radius))
}

func (r *recorder) Curve(start Point, segs []Segment) {
	r.starts = append(r.starts, start)
	r.curves = append(r.curves, segs)
	r.calls = append(r.calls, fmt.Sprintf("curve %v %v", start, segs))
}

// fixedRand always returns the same value.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }
