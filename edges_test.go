package edgeart

import (
	"image"
	"image/color"
	"math"
	"reflect"
	"testing"
)

func TestQuantize_ShouldSnapToMultiplesOfLoss(t *testing.T) {
	for b := 1; b <= 8; b++ {
		loss := math.Exp2(float64(8 - b))
		prev := -1.0
		for v := 0.0; v < 256; v += 0.5 {
			q := Quantize(v, b)
			if q < 0 || math.Mod(q, loss) != 0 {
				t.Fatalf("Quantize(%v, %d) = %v, expected a non negative multiple of %v", v, b, q, loss)
			}
			if q < prev {
				t.Fatalf("Quantize should be monotonic: Quantize(%v, %d) = %v after %v", v, b, q, prev)
			}
			prev = q
		}
	}
}

func TestQuantize_Levels(t *testing.T) {
	tests := []struct {
		value    float64
		bitDepth int
		want     float64
	}{
		{255, 3, 224},
		{31.9, 3, 0},
		{32, 3, 32},
		{127, 1, 0},
		{128, 1, 128},
		{200, 8, 200},
		{200.7, 8, 200},
	}
	for _, tt := range tests {
		if got := Quantize(tt.value, tt.bitDepth); got != tt.want {
			t.Errorf("Quantize(%v, %d) = %v, want %v", tt.value, tt.bitDepth, got, tt.want)
		}
	}
}

func TestExtractEdgePoints_ConstantImageHasNoEdges(t *testing.T) {
	sample := func(x, y int) float64 { return 137 }
	if pts := ExtractEdgePoints(sample, 16, 9, 3); len(pts) != 0 {
		t.Fatalf("expected no edge points, got %d", len(pts))
	}
}

func TestExtractEdgePoints_CheckerboardEmitsEveryInteriorPixel(t *testing.T) {
	const w, h = 7, 5
	sample := func(x, y int) float64 { return float64((x+y)%2) * 255 }

	pts := ExtractEdgePoints(sample, w, h, 1)
	var want []Point
	for y := 1; y < h; y++ {
		for x := 1; x < w; x++ {
			want = append(want, Point{X: float64(x), Y: float64(y)})
		}
	}
	if !reflect.DeepEqual(pts, want) {
		t.Fatalf("expected every interior pixel in raster order, got %v", pts)
	}
}

func TestExtractEdgePoints_SmallImages(t *testing.T) {
	sample := func(x, y int) float64 { return float64(x * 100) }
	for _, dim := range [][2]int{{0, 0}, {1, 5}, {5, 1}} {
		if pts := ExtractEdgePoints(sample, dim[0], dim[1], 3); len(pts) != 0 {
			t.Errorf("%dx%d image should have no edge points, got %v", dim[0], dim[1], pts)
		}
	}
}

func TestExtractEdgePoints_PixelBuffer(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if pts := ExtractEdgePoints(GraySampler(img), 4, 4, 3); len(pts) != 0 {
		t.Fatalf("an all zero buffer should have no edge points, got %v", pts)
	}

	img.SetNRGBA(2, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	pts := ExtractEdgePoints(GraySampler(img), 4, 4, 3)
	want := []Point{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	if !reflect.DeepEqual(pts, want) {
		t.Fatalf("expected %v, got %v", want, pts)
	}
}

func TestChannelSampler_ShouldReadSingleChannel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})

	if pts := ExtractEdgePoints(ChannelSampler(img, 0), 4, 4, 2); len(pts) != 4 {
		t.Errorf("red channel should have 4 edge points, got %v", pts)
	}
	if pts := ExtractEdgePoints(ChannelSampler(img, 1), 4, 4, 2); len(pts) != 0 {
		t.Errorf("green channel should have no edge points, got %v", pts)
	}
	if got := GraySampler(img)(1, 1); got != 85 {
		t.Errorf("gray sample should average the channels, got %v", got)
	}
}
