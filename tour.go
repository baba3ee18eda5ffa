package edgeart

import "math"

// SortByDistance2d orders the points with a greedy nearest neighbor walk
// starting at points[0]. Each step moves to the closest point not yet
// visited; ties go to the lowest index. Points are tracked by their index,
// so coordinate-equal duplicates are all kept.
//
// The walk is quadratic in the number of points.
func SortByDistance2d(points []Point) []Point {
	n := len(points)
	if n < 2 {
		return append([]Point(nil), points...)
	}

	sorted := make([]Point, 0, n)
	visited := make([]bool, n)
	current := 0

	for {
		visited[current] = true
		sorted = append(sorted, points[current])

		next, best := -1, math.Inf(1)
		p := points[current]
		for i, q := range points {
			if visited[i] {
				continue
			}
			dx, dy := q.X-p.X, q.Y-p.Y
			// squared distances preserve the ordering
			if d := dx*dx + dy*dy; d < best {
				next, best = i, d
			}
		}
		if next < 0 {
			break
		}
		current = next
	}
	return sorted
}
