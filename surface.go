package edgeart

import (
	"fmt"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// Surface is a Canvas that can be written out once drawing is done.
type Surface interface {
	Canvas
	Encode(w io.Writer) error
}

// NewSurface returns a width x height surface for the given output format:
// "svg", "pdf" or any raster format known to imaging (png, jpg, gif, tif, bmp).
func NewSurface(format string, width, height int, title string) (Surface, error) {
	switch f := strings.ToLower(strings.TrimPrefix(format, ".")); f {
	case "svg":
		return NewSVG(width, height, title), nil
	case "pdf":
		return NewPDF(width, height, title), nil
	default:
		rf, err := imaging.FormatFromExtension(f)
		if err != nil {
			return nil, fmt.Errorf("unsupported output format %q: %w", format, err)
		}
		r := NewRaster(width, height)
		r.format = rf
		return r, nil
	}
}
