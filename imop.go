package edgeart

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/exp/constraints"
)

// ImgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
// NRGBA images already anchored at the origin are returned as they are.
func ImgToNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Bounds().Min == (image.Point{}) {
		return src
	}
	return imaging.Clone(img)
}

// Resize scales the image to the given width keeping its aspect ratio.
// The height never drops below one pixel.
func Resize(img image.Image, width int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width {
		return ImgToNRGBA(img)
	}
	height := Max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	return imaging.Resize(img, width, height, imaging.Linear)
}

// CanvasSize returns the dimensions of a canvas whose longest side is maxSize
// and whose aspect ratio matches a w x h source.
func CanvasSize(w, h, maxSize int) (int, int) {
	scale := float64(maxSize) / float64(Max(w, h))
	return Max(1, int(float64(w)*scale)), Max(1, int(float64(h)*scale))
}

// Clamp restricts v to the [lo, hi] range.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}

// Min returns the smallest value between two numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between two numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}
