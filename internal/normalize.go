package internal

import "math"

// Map points into the unit cube: translate so the bounding box minimum is at
// the origin, then scale every axis by the same factor so the largest extent
// becomes 1. Uniform scaling keeps angles, so the Delaunay triangulation of the
// result has the same triangles as that of the input.
//
// If all points coincide, they are only translated.
func NormalizePoints(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	lo := points[0]
	hi := points[0]
	for _, p := range points[1:] {
		lo = Point{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = Point{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	extent := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
	scale := 1.0
	if extent > 0 {
		scale = 1 / extent
	}

	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = p.Sub(lo).Mul(scale)
	}
	return result
}
