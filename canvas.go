package edgeart

import (
	"image/color"
	"math"
)

// Point is a pixel or canvas coordinate.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Segment is a cubic Bezier segment continuing a path from its current point.
type Segment struct {
	C1, C2, To Point
}

// Canvas is the drawing surface the stroke renderers write to.
// Implementations keep their own stroke state: every primitive is drawn
// with the color, alpha and weight set by the last setter call.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)
	// Background paints the whole canvas with c, honoring its alpha.
	Background(c color.Color)
	SetStroke(c color.Color)
	SetFill(c color.Color)
	SetStrokeWeight(w float64)
	// Point draws a single mark as wide as the current stroke weight.
	Point(x, y float64)
	Line(x0, y0, x1, y1 float64)
	// Circle strokes the outline of a circle.
	Circle(x, y, r float64)
	// Disc fills a circle with the fill color and strokes its outline.
	Disc(x, y, r float64)
	// Curve strokes an open path of cubic segments starting at start.
	Curve(start Point, segs []Segment)
}
