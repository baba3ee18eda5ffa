package rings

import (
	"image/color"
	"testing"

	"github.com/esimov/edgeart"
)

type counter struct {
	w, h            int
	backgrounds     int
	circles, discs  []float64
	weights         []float64
	lastStrokeAlpha uint8
}

func (c *counter) Size() (int, int)                       { return c.w, c.h }
func (c *counter) Background(color.Color)                 { c.backgrounds++ }
func (c *counter) SetFill(color.Color)                    {}
func (c *counter) SetStrokeWeight(w float64)              { c.weights = append(c.weights, w) }
func (c *counter) Point(x, y float64)                     {}
func (c *counter) Line(x0, y0, x1, y1 float64)            {}
func (c *counter) Circle(x, y, r float64)                 { c.circles = append(c.circles, r) }
func (c *counter) Disc(x, y, r float64)                   { c.discs = append(c.discs, r) }
func (c *counter) Curve(edgeart.Point, []edgeart.Segment) {}

func (c *counter) SetStroke(col color.Color) {
	c.lastStrokeAlpha = color.NRGBAModel.Convert(col).(color.NRGBA).A
}

func TestDrawRing_ShouldFadeBothEdges(t *testing.T) {
	c := &counter{w: 200, h: 200}
	DrawRing(c, 100, 100, 50, 0.2, 0, 200)
	if len(c.circles) != 18 {
		t.Fatalf("expected 18 circles, got %d", len(c.circles))
	}
	if c.circles[0] != 50 || c.circles[1] != 49 {
		t.Errorf("unexpected first radii: %v", c.circles[:2])
	}

	c = &counter{w: 200, h: 200}
	DrawRing(c, 100, 100, 50, 0.2, 4, 200)
	if len(c.circles) != 19 {
		t.Fatalf("expected the solid ring plus 18 faded circles, got %d", len(c.circles))
	}
	if c.weights[0] != 4 {
		t.Errorf("the solid ring should use the ring width, got %v", c.weights[0])
	}
}

func TestDrawRing_ShouldSkipNonPositiveInnerRadius(t *testing.T) {
	c := &counter{w: 10, h: 10}
	DrawRing(c, 5, 5, 3, 2, 0, 255)
	for _, r := range c.circles {
		if r <= 0 {
			t.Fatalf("drew a circle with radius %v", r)
		}
	}
}

func TestDrawDisc_ShouldStackFadingDiscs(t *testing.T) {
	c := &counter{w: 100, h: 100}
	DrawDisc(c, 50, 50, 20, 0.5, 255)
	want := []float64{10, 9, 8, 7, 6, 5}
	if len(c.discs) != len(want) {
		t.Fatalf("expected %d discs, got %d", len(want), len(c.discs))
	}
	for i := range want {
		if c.discs[i] != want[i] {
			t.Errorf("disc %d: expected radius %v, got %v", i, want[i], c.discs[i])
		}
	}
	if c.weights[0] != 0 {
		t.Errorf("discs should be drawn without outline")
	}
}

func TestFrame_ShouldClearOnce(t *testing.T) {
	c := &counter{w: 300, h: 300}
	Frame(c, 7, DefaultOptions())
	if c.backgrounds != 1 {
		t.Fatalf("expected a single background, got %d", c.backgrounds)
	}
	if len(c.circles) == 0 {
		t.Fatal("expected the frame to draw rings")
	}
}

func TestFrame_ShouldRenderOnRaster(t *testing.T) {
	r := edgeart.NewRaster(64, 64)
	Frame(r, 0, Options{Iterations: 3, Blur: 0.2, Speed: 0.02})
	if _, _, _, a := r.Image().At(0, 0).RGBA(); a != 0xffff {
		t.Fatalf("the background should be opaque, got alpha %d", a)
	}
}

func TestFrame_ShouldDrawCenterDiscWhenEnabled(t *testing.T) {
	c := &counter{w: 300, h: 300}
	Frame(c, 0, DefaultOptions())
	if len(c.discs) != 0 {
		t.Fatalf("expected no discs by default, got %d", len(c.discs))
	}

	opts := DefaultOptions()
	opts.Discs = true
	c = &counter{w: 300, h: 300}
	Frame(c, 0, opts)
	if len(c.discs) == 0 {
		t.Fatal("expected the frame to draw the center disc")
	}
}
