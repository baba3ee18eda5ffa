package edgeart

// Remap scales the points from a sw x sh raster to a tw x th canvas.
// A non-positive source dimension leaves the matching axis unscaled.
func Remap(points []Point, sw, sh, tw, th float64) []Point {
	sx, sy := 1.0, 1.0
	if sw > 0 {
		sx = tw / sw
	}
	if sh > 0 {
		sy = th / sh
	}

	res := make([]Point, len(points))
	for i, p := range points {
		res[i] = Point{X: p.X * sx, Y: p.Y * sy}
	}
	return res
}
