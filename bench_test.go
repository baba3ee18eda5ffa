package edgeart

import (
	"image"
	"image/color"
	"testing"
)

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x*x + y*3) % 256)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	return img
}

func BenchmarkDraw(b *testing.B) {
	img := gradientImage(400, 300)
	p := DefaultProcessor()
	rnd := NewPRNG(72)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewRaster(800, 600)
		if _, err := p.Draw(img, c, rnd); err != nil {
			b.Fatalf("Failed drawing benchmark image: %v", err)
		}
	}
}

func BenchmarkSortByDistance2d(b *testing.B) {
	img := gradientImage(200, 150)
	points := ExtractEdgePoints(GraySampler(img), 200, 150, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SortByDistance2d(points)
	}
}
