package edgeart

import (
	"image"
	"image/color"
	"testing"
)

func TestResize_ShouldKeepAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if b := Resize(src, 20).Bounds(); b != image.Rect(0, 0, 20, 10) {
		t.Fatalf("unexpected bounds %v", b)
	}
	if b := Resize(image.NewRGBA(image.Rect(0, 0, 300, 1)), 30).Bounds(); b.Dy() != 1 {
		t.Fatalf("the height should never drop below one pixel, got %v", b)
	}
}

func TestImgToNRGBA_ShouldMoveOriginToZero(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 8, 7))
	src.SetGray(5, 5, color.Gray{Y: 90})

	dst := ImgToNRGBA(src)
	if dst.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("unexpected bounds %v", dst.Bounds())
	}
	if c := dst.NRGBAAt(0, 0); c != (color.NRGBA{R: 90, G: 90, B: 90, A: 255}) {
		t.Fatalf("unexpected pixel %v", c)
	}

	same := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	if ImgToNRGBA(same) != same {
		t.Fatal("an NRGBA image at the origin should be returned as is")
	}
}

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{400, 200, 800, 800, 400},
		{200, 400, 800, 400, 800},
		{1000, 1000, 500, 500, 500},
	}
	for _, tt := range tests {
		if w, h := CanvasSize(tt.w, tt.h, tt.max); w != tt.wantW || h != tt.wantH {
			t.Errorf("CanvasSize(%d, %d, %d) = %d, %d, want %d, %d", tt.w, tt.h, tt.max, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(300.0, 0, 255); got != 255 {
		t.Errorf("expected 255, got %v", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := Max(3, 9, 4); got != 9 {
		t.Errorf("expected 9, got %v", got)
	}
	if got := Min(3, 9, 4); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
}
