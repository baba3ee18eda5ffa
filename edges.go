package edgeart

import (
	"image"
	"math"
)

// Sampler returns the channel value (0..255) used for edge detection at (x, y).
type Sampler func(x, y int) float64

// GraySampler averages the red, green and blue channels of the pixel at (x, y).
func GraySampler(img *image.NRGBA) Sampler {
	return func(x, y int) float64 {
		i := img.PixOffset(x, y)
		return (float64(img.Pix[i]) + float64(img.Pix[i+1]) + float64(img.Pix[i+2])) / 3
	}
}

// ChannelSampler returns the raw value of a single channel (0 red, 1 green, 2 blue).
func ChannelSampler(img *image.NRGBA, channel int) Sampler {
	return func(x, y int) float64 {
		return float64(img.Pix[img.PixOffset(x, y)+channel])
	}
}

// Quantize snaps an 8 bit sample to one of 2^bitDepth evenly spaced levels.
func Quantize(value float64, bitDepth int) float64 {
	loss := math.Exp2(float64(8 - bitDepth))
	return math.Floor(value/loss) * loss
}

// ExtractEdgePoints scans the grid in raster order and returns every pixel whose
// quantized value differs from its top, left or top-left neighbor.
// The first row and column are never emitted.
func ExtractEdgePoints(sample Sampler, width, height, bitDepth int) []Point {
	var points []Point
	if width < 2 || height < 2 {
		return points
	}

	prev := make([]float64, width)
	curr := make([]float64, width)
	for x := 0; x < width; x++ {
		prev[x] = Quantize(sample(x, 0), bitDepth)
	}

	for y := 1; y < height; y++ {
		curr[0] = Quantize(sample(0, y), bitDepth)
		for x := 1; x < width; x++ {
			g0 := Quantize(sample(x, y), bitDepth)
			curr[x] = g0

			gt, gl, gtl := prev[x], curr[x-1], prev[x-1]
			if g0 != gt || g0 != gl || g0 != gtl {
				points = append(points, Point{X: float64(x), Y: float64(y)})
			}
		}
		prev, curr = curr, prev
	}
	return points
}
