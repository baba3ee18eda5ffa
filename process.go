package edgeart

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"
)

// ColorScheme selects the background and stroke colors.
type ColorScheme int

const (
	// BlackAndWhite draws white strokes on black.
	BlackAndWhite ColorScheme = iota
	// WhiteAndBlack draws black strokes on white.
	WhiteAndBlack
	// Channels draws one edge map per red, green and blue channel, each in
	// its own color, on black.
	Channels
)

var schemeNames = []string{"black-white", "white-black", "channels"}

func (s ColorScheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return fmt.Sprintf("ColorScheme(%d)", int(s))
	}
	return schemeNames[s]
}

// ParseColorScheme returns the color scheme with the given name.
func ParseColorScheme(name string) (ColorScheme, error) {
	for i, n := range schemeNames {
		if n == name {
			return ColorScheme(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color scheme %q", name)
}

// Processor holds the drawing options of a render pass.
type Processor struct {
	DrawFn       DrawFn
	DropOut      DropOutStrategy
	Scheme       ColorScheme
	EdgeWidth    int     // width the source is resized to before edge detection
	BitDepth     int     // quantization levels as a power of two
	MaxDistance  float64 // neighbors at this distance or farther are not connected
	DropOutRate  float64 // share of the edge points kept
	BgAlpha      uint8
	StrokeAlpha  uint8
	StrokeWeight float64
	Noise        int // grain amount applied to raster output

	// Logger receives the stage timings when set.
	Logger *log.Logger
}

// DefaultProcessor returns the options the sketch starts with.
func DefaultProcessor() *Processor {
	return &Processor{
		DrawFn:       Pipes,
		DropOut:      Random,
		Scheme:       BlackAndWhite,
		EdgeWidth:    200,
		BitDepth:     2,
		MaxDistance:  80,
		DropOutRate:  0.6,
		BgAlpha:      255,
		StrokeAlpha:  255,
		StrokeWeight: 1,
	}
}

// Validate reports the first option out of its range.
func (p *Processor) Validate() error {
	switch {
	case p.DrawFn < Points || p.DrawFn > Bezier:
		return fmt.Errorf("invalid drawing function: %v", p.DrawFn)
	case p.DropOut < Random || p.DropOut > Sequential:
		return fmt.Errorf("invalid drop out strategy: %v", p.DropOut)
	case p.Scheme < BlackAndWhite || p.Scheme > Channels:
		return fmt.Errorf("invalid color scheme: %v", p.Scheme)
	case p.EdgeWidth < 2:
		return fmt.Errorf("edge detection width must be at least 2, got %d", p.EdgeWidth)
	case p.BitDepth < 1 || p.BitDepth > 8:
		return fmt.Errorf("bit depth must be between 1 and 8, got %d", p.BitDepth)
	case p.DropOutRate < 0 || p.DropOutRate > 1:
		return fmt.Errorf("drop out rate must be between 0 and 1, got %v", p.DropOutRate)
	case p.MaxDistance < 0:
		return fmt.Errorf("max distance must not be negative, got %v", p.MaxDistance)
	case p.StrokeWeight < 0:
		return fmt.Errorf("stroke weight must not be negative, got %v", p.StrokeWeight)
	case p.Noise < 0:
		return fmt.Errorf("noise must not be negative, got %d", p.Noise)
	}
	return nil
}

// Stage is the time spent in one step of the pipeline.
type Stage struct {
	Name string
	Took time.Duration
}

// Stats describes a finished render pass.
type Stats struct {
	EdgePoints int // points found by the edge detection
	Points     int // points left after the drop out
	Stages     []Stage
}

type layer struct {
	sample Sampler
	stroke color.Color
}

// Draw runs a full pass over src: edge detection, drop out, nearest neighbor
// sorting, matching to the canvas size and stroking. rnd feeds the random
// drop out and the pipe elbows.
func (p *Processor) Draw(src image.Image, c Canvas, rnd Rand) (*Stats, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if src.Bounds().Empty() {
		return nil, errors.New("empty source image")
	}

	stats := &Stats{}
	img := Resize(src, p.EdgeWidth)
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	cw, ch := c.Size()

	bg, layers := p.palette(img)

	p.bench(stats, "draw", func() {
		c.Background(bg)
		c.SetStrokeWeight(p.StrokeWeight)
	})
	for _, l := range layers {
		var edges, points, sorted, matched []Point

		p.bench(stats, "edge detection", func() {
			edges = ExtractEdgePoints(l.sample, iw, ih, p.BitDepth)
		})
		p.bench(stats, "drop out", func() {
			if p.DropOut == Random {
				points = DropOutRandom(edges, p.DropOutRate, rnd)
			} else {
				points = DropOut(edges, p.DropOutRate)
			}
		})
		p.bench(stats, "sorting", func() {
			sorted = SortByDistance2d(points)
		})
		p.bench(stats, "matching", func() {
			matched = Remap(sorted, float64(iw), float64(ih), float64(cw), float64(ch))
		})
		p.bench(stats, "draw", func() {
			c.SetStroke(l.stroke)
			Stroke(c, p.DrawFn, matched, p.MaxDistance, rnd)
		})

		stats.EdgePoints += len(edges)
		stats.Points += len(points)
	}

	if g, ok := c.(interface{ Grain(int, Rand) }); ok && p.Noise > 0 {
		g.Grain(p.Noise, rnd)
	}
	return stats, nil
}

// palette returns the background color and one layer per edge map.
func (p *Processor) palette(img *image.NRGBA) (color.Color, []layer) {
	gray := func(v uint8, a uint8) color.Color { return color.NRGBA{R: v, G: v, B: v, A: a} }

	switch p.Scheme {
	case WhiteAndBlack:
		return gray(255, p.BgAlpha), []layer{{GraySampler(img), gray(0, p.StrokeAlpha)}}
	case Channels:
		return gray(0, p.BgAlpha), []layer{
			{ChannelSampler(img, 0), color.NRGBA{R: 255, A: p.StrokeAlpha}},
			{ChannelSampler(img, 1), color.NRGBA{G: 255, A: p.StrokeAlpha}},
			{ChannelSampler(img, 2), color.NRGBA{B: 255, A: p.StrokeAlpha}},
		}
	default:
		return gray(0, p.BgAlpha), []layer{{GraySampler(img), gray(255, p.StrokeAlpha)}}
	}
}

// bench times fn and accumulates the duration under label.
func (p *Processor) bench(stats *Stats, label string, fn func()) {
	start := time.Now()
	fn()
	took := time.Since(start)

	if p.Logger != nil {
		p.Logger.Printf("%s took %s", label, took)
	}
	for i := range stats.Stages {
		if stats.Stages[i].Name == label {
			stats.Stages[i].Took += took
			return
		}
	}
	stats.Stages = append(stats.Stages, Stage{Name: label, Took: took})
}
