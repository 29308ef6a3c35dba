package internal

import "github.com/golang/geo/r3"

// Tolerance used when deciding whether four points are co-circular. Inside
// this band either diagonal of the quadrilateral is a valid Delaunay choice,
// so we keep the one we have. Without it, nearly co-circular inputs (regular
// grids, rings) flip back and forth on round-off noise.
const CocircularTolerance = 1e-9

var planeNormal = r3.Vector{X: 0, Y: 0, Z: 1}

// Difference of two points projected onto the xy plane. Z is dropped so that
// dot products between differences only measure planar angles.
func Subtract(a, b Point) r3.Vector {
	return r3.Vector{X: a.X - b.X, Y: a.Y - b.Y}
}

func Dot(a, b r3.Vector) float64 {
	return a.Dot(b)
}

func Cross(a, b r3.Vector) r3.Vector {
	return a.Cross(b)
}

// Is the query point on or to the left of the directed edge start->end? Points
// exactly on the edge count as left, so triangle membership includes the
// boundary.
func LeftOf(start, end, query Point) bool {
	return Dot(Cross(Subtract(end, start), Subtract(query, start)), planeNormal) >= 0
}

// Signed area of the triangle in the xy plane. Positive when counterclockwise.
func SignedArea(a, b, c Point) float64 {
	return Cross(Subtract(b, a), Subtract(c, a)).Z / 2
}

func IsCCW(a, b, c Point) bool {
	return SignedArea(a, b, c) > 0
}

// Does the triangle contain the point, boundary included?
func Encloses(a, b, c, query Point) bool {
	return LeftOf(a, b, query) && LeftOf(b, c, query) && LeftOf(c, a, query)
}
