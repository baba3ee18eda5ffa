package edgeart

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// DrawFn selects how a tour is rendered.
type DrawFn int

const (
	// Points marks every point.
	Points DrawFn = iota
	// Curve draws smoothed polylines broken across large gaps.
	Curve
	// Pipes connects close neighbors with orthogonal elbows.
	Pipes
	// Lines connects close neighbors with straight segments.
	Lines
	// Bezier draws an arc between every pair of neighbors.
	Bezier
)

// bezierSteps is the number of straight segments approximating each Bezier arc.
const bezierSteps = 50

var drawFnNames = []string{"points", "curve", "pipes", "lines", "bezier"}

func (fn DrawFn) String() string {
	if fn < 0 || int(fn) >= len(drawFnNames) {
		return fmt.Sprintf("DrawFn(%d)", int(fn))
	}
	return drawFnNames[fn]
}

// ParseDrawFn returns the drawing function with the given name.
func ParseDrawFn(name string) (DrawFn, error) {
	for i, n := range drawFnNames {
		if n == name {
			return DrawFn(i), nil
		}
	}
	return 0, fmt.Errorf("unknown drawing function %q", name)
}

// Stroke renders the tour on the canvas with the current stroke state.
// The tour is treated as cyclic. Neighbors at maxDist or farther are not
// connected. rnd picks the elbow routing of the pipes.
func Stroke(c Canvas, fn DrawFn, list []Point, maxDist float64, rnd Rand) {
	switch fn {
	case Points:
		drawPoints(c, list)
	case Curve:
		drawCurve(c, list, maxDist)
	case Pipes:
		drawPipes(c, list, maxDist, rnd)
	case Lines:
		drawLines(c, list, maxDist)
	case Bezier:
		drawBezier(c, list)
	}
}

func drawPoints(c Canvas, list []Point) {
	for _, p := range list {
		c.Point(p.X, p.Y)
	}
}

// drawCurve feeds the points to a Catmull-Rom spline and starts a new shape
// after every point lying at least maxDist away from its predecessor.
func drawCurve(c Canvas, list []Point, maxDist float64) {
	var shape []Point
	for i, p := range list {
		shape = append(shape, p)
		if i != 0 && p.Dist(list[i-1]) >= maxDist {
			curveShape(c, shape)
			shape = nil
		}
	}
	curveShape(c, shape)
}

func curveShape(c Canvas, vertices []Point) {
	if start, segs, ok := CatmullRom(vertices); ok {
		c.Curve(start, segs)
	}
}

// CatmullRom converts spline vertices into cubic segments. The first and the
// last vertex only steer the curve; at least four vertices are needed.
func CatmullRom(vertices []Point) (Point, []Segment, bool) {
	if len(vertices) < 4 {
		return Point{}, nil, false
	}
	segs := make([]Segment, 0, len(vertices)-3)
	for i := 1; i+2 < len(vertices); i++ {
		v0, v1 := toVec(vertices[i-1]), toVec(vertices[i])
		v2, v3 := toVec(vertices[i+1]), toVec(vertices[i+2])
		segs = append(segs, Segment{
			C1: toPoint(v1.Add(v2.Sub(v0).Mul(1.0 / 6))),
			C2: toPoint(v2.Sub(v3.Sub(v1).Mul(1.0 / 6))),
			To: vertices[i+1],
		})
	}
	return vertices[1], segs, true
}

func drawPipes(c Canvas, list []Point, maxDist float64, rnd Rand) {
	l := len(list)
	for i := 0; i < l; i++ {
		p0, p1 := list[i], list[(i+1)%l]
		if p0.Dist(p1) >= maxDist {
			continue
		}
		if rnd.Float64() < 0.5 {
			c.Line(p0.X, p0.Y, p0.X, p1.Y)
			c.Line(p0.X, p1.Y, p1.X, p1.Y)
		} else {
			c.Line(p1.X, p1.Y, p1.X, p0.Y)
			c.Line(p1.X, p0.Y, p0.X, p0.Y)
		}
	}
}

func drawLines(c Canvas, list []Point, maxDist float64) {
	l := len(list)
	for i := 0; i < l; i++ {
		p0, p1 := list[i], list[(i+1)%l]
		if p0.Dist(p1) < maxDist {
			c.Line(p0.X, p0.Y, p1.X, p1.Y)
		}
	}
}

func drawBezier(c Canvas, list []Point) {
	l := len(list)
	for i := 0; i < l; i++ {
		pm1 := toVec(list[(l+i-1)%l])
		p0 := toVec(list[i])
		p1 := toVec(list[(i+1)%l])
		p2 := toVec(list[(i+2)%l])

		b, a, d, e := ArcControls(pm1, p0, p1, p2)
		prev := b
		for j := 1; j <= bezierSteps; j++ {
			next := bezierPoint(b, a, d, e, float64(j)/bezierSteps)
			c.Line(prev.X, prev.Y, next.X, next.Y)
			prev = next
		}
	}
}

// ArcControls builds the cubic running from p0 to p1. The first control point
// is the mean of pm1 and p1 mirrored through p0, turned a quarter clockwise
// around p0. The second is built the same way from p0 and p2 around p1,
// turned a quarter counter-clockwise. It returns start, control 1, control 2
// and end.
func ArcControls(pm1, p0, p1, p2 vec.Vec2) (start, c1, c2, end vec.Vec2) {
	a0 := p0.Mul(2).Sub(pm1)
	a1 := p0.Mul(2).Sub(p1)
	c1 = rotCW(a0.Add(a1).Mul(0.5).Sub(p0)).Add(p0)

	d0 := p1.Mul(2).Sub(p0)
	d1 := p1.Mul(2).Sub(p2)
	c2 = rotCCW(d0.Add(d1).Mul(0.5).Sub(p1)).Add(p1)

	return p0, c1, c2, p1
}

// bezierPoint evaluates the cubic with end points a, d and controls b, c at t.
func bezierPoint(a, b, c, d vec.Vec2, t float64) vec.Vec2 {
	u := 1 - t
	return a.Mul(u * u * u).
		Add(b.Mul(3 * u * u * t)).
		Add(c.Mul(3 * u * t * t)).
		Add(d.Mul(t * t * t))
}

// rotCW rotates v by -90 degrees.
func rotCW(v vec.Vec2) vec.Vec2 { return vec.Vec2{X: v.Y, Y: -v.X} }

// rotCCW rotates v by 90 degrees.
func rotCCW(v vec.Vec2) vec.Vec2 { return vec.Vec2{X: -v.Y, Y: v.X} }

func toVec(p Point) vec.Vec2 { return vec.Vec2{X: p.X, Y: p.Y} }

func toPoint(v vec.Vec2) Point { return Point{X: v.X, Y: v.Y} }
