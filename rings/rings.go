// Package rings draws animated compositions of soft edged rings orbiting
// around the center of the canvas.
package rings

import (
	"image/color"
	"math"

	"github.com/esimov/edgeart"
)

// Options control a composition.
type Options struct {
	Iterations int     // rings per group
	Blur       float64 // share of the radius faded out on both sides of a ring
	Speed      float64 // phase advance per frame
	Discs      bool    // draw a pulsing disc at the center
}

// DefaultOptions returns the settings of the reference composition.
func DefaultOptions() Options {
	return Options{
		Iterations: 10,
		Blur:       0.2,
		Speed:      0.02,
	}
}

// DrawRing strokes a ring of the given radius whose edges fade out over
// blur*radius pixels. A zero width draws only the faded edges.
func DrawRing(c edgeart.Canvas, x, y, radius, blur, width, alpha float64) {
	blurRadius := blur * radius
	if width > 0 {
		c.SetStroke(white(alpha))
		c.SetStrokeWeight(width)
		c.Circle(x, y, radius)
	}
	c.SetStrokeWeight(1)
	for i := 1.0; i < blurRadius; i++ {
		outer := radius - 1 + width/2 + i
		inner := radius - width/2 - i
		mult := (blurRadius - i) / blurRadius

		c.SetStroke(white(mult * mult * alpha))
		c.Circle(x, y, outer)
		if inner > 0 {
			c.Circle(x, y, inner)
		}
	}
}

// DrawDisc fills a disc of the given diameter whose outer blur share fades
// out towards the rim.
func DrawDisc(c edgeart.Canvas, x, y, size, blur, alpha float64) {
	radius := math.Floor(size / 2)
	blurEdge := radius - math.Floor(radius*blur)
	remaining := radius - blurEdge

	c.SetStrokeWeight(0)
	for r := blurEdge; r > 0; r-- {
		c.SetFill(light(alpha - r/blurEdge*alpha))
		c.Disc(x, y, r+remaining)
	}
	c.SetFill(light(alpha))
	c.Disc(x, y, remaining)
}

// Frame draws the composition at the given frame number.
func Frame(c edgeart.Canvas, frame int, opts Options) {
	w, h := c.Size()
	width, height := float64(w), float64(h)

	c.Background(color.Black)
	phase := float64(frame) * opts.Speed
	n := float64(opts.Iterations)

	for i := 0.0; i < n; i++ {
		a := phase + i*0.2
		radius := math.Pow((n-i)/n, 1.3333) * (width / 2)
		alpha := math.Pow(i/n, 3)*200 + 10
		swing := (1 + math.Sin(a)) / 2

		DrawRing(c, math.Cos(a)*width*0.2+width/2, swing*height, radius, opts.Blur, 0, alpha)
		DrawRing(c, swing*width, math.Cos(a)*height*0.2+height/2, radius, opts.Blur, 0, alpha)
		DrawRing(c, -math.Cos(a)*width*0.2+width/2, height-swing*height, radius, opts.Blur, 0, alpha)
		DrawRing(c, width-swing*width, -math.Cos(a)*height*0.2+height/2, radius, opts.Blur, 0, alpha)
	}
	if opts.Discs {
		size := math.Min(width, height) * (0.05 + 0.1*(1+math.Sin(phase)))
		DrawDisc(c, width/2, height/2, size, opts.Blur, 200)
	}
}

func white(alpha float64) color.Color {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(edgeart.Clamp(alpha, 0, 255))}
}

func light(alpha float64) color.Color {
	return color.NRGBA{R: 200, G: 200, B: 200, A: uint8(edgeart.Clamp(alpha, 0, 255))}
}
