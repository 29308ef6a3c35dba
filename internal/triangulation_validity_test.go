package internal

// This contains no actual tests. It is just a helper for checking finished
// triangulations.

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a finished triangulation is valid. The rules are:
// 1. Validate() passes: symmetric adjacency, consistent edges, CCW winding,
//    no super-triangle vertex, local Delaunay everywhere.
// 2. No triangle has zero area.
// 3. No input point lies strictly inside any triangle's circumcircle. This is
//    checked by brute force, independently of CheckDelaunay.
// 4. The set of points used by the triangles is exactly the input set.
// 5. The triangles cover the convex hull of the input: their total area is the
//    hull's area.
func AssertValidTriangulation(t *testing.T, tri *Triangulation) {
	require.NoError(t, tri.Validate())

	used := make(map[int]struct{})
	for i, triangle := range tri.Triangles {
		if tri.IsRemoved(i) {
			continue
		}
		a, b, c := tri.Points[triangle[0]], tri.Points[triangle[1]], tri.Points[triangle[2]]
		require.True(t, IsCCW(a, b, c), "degenerate or clockwise triangle %d %v", i, triangle)

		center, radiusSquared := circumcircle(a, b, c)
		for p := 0; p < tri.InputCount(); p++ {
			if p == triangle[0] || p == triangle[1] || p == triangle[2] {
				continue
			}
			d := Subtract(tri.Points[p], center)
			require.False(t, d.Norm2() < radiusSquared*(1-1e-7),
				"point %d lies inside the circumcircle of triangle %d %v", p, i, triangle)
		}

		for _, v := range triangle {
			used[v] = struct{}{}
		}
	}

	for p := 0; p < tri.InputCount(); p++ {
		_, ok := used[p]
		assert.True(t, ok, "point %d %v is not a vertex of any triangle", p, tri.Points[p])
	}

	if tri.LiveCount() > 0 {
		hull := hullArea(convexHull(tri.Points[:tri.InputCount()]))
		assert.InDelta(t, hull, totalArea(tri), 1e-9*math.Max(1, hull),
			"triangles should cover the convex hull")
	}
}

// Total area of the live triangles.
func totalArea(tri *Triangulation) float64 {
	var area float64
	for i, triangle := range tri.Triangles {
		if tri.IsRemoved(i) {
			continue
		}
		area += SignedArea(tri.Points[triangle[0]], tri.Points[triangle[1]], tri.Points[triangle[2]])
	}
	return area
}

func circumcircle(a, b, c Point) (center Point, radiusSquared float64) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if d == 0 {
		return Point{}, math.Inf(1)
	}
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	center = Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	return center, Subtract(a, center).Norm2()
}

// Convex hull by monotone chain, counterclockwise. Points on the hull's edges
// are kept, since they are hull vertices of the triangulation too.
func convexHull(points []Point) []Point {
	sorted := make([]Point, 0, len(points))
	for _, p := range points {
		sorted = append(sorted, Point{X: p.X, Y: p.Y})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	unique := sorted[:0]
	for _, p := range sorted {
		if len(unique) == 0 || p != unique[len(unique)-1] {
			unique = append(unique, p)
		}
	}
	if len(unique) < 3 {
		return unique
	}

	turn := func(o, a, b Point) float64 {
		return Cross(Subtract(a, o), Subtract(b, o)).Z
	}
	var lower, upper []Point
	for _, p := range unique {
		for len(lower) >= 2 && turn(lower[len(lower)-2], lower[len(lower)-1], p) < 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(unique) - 1; i >= 0; i-- {
		p := unique[i]
		for len(upper) >= 2 && turn(upper[len(upper)-2], upper[len(upper)-1], p) < 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func hullArea(hull []Point) float64 {
	var area float64
	for i, p := range hull {
		q := hull[CircularIndex(i+1, len(hull))]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}
