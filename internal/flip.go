package internal

import (
	"log/slog"
	"math"
)

// Lawson flip propagation. L is a triangle (p, v2, v1) whose slot 0 holds the
// newest point p, and R is the triangle across from p, sharing edge (v1, v2)
// and adding a vertex v3:
/*
	        v1                      v1
	       /|\                     /  \
	      / | \                   / R  \
	     /  |  \                 /      \
	    p L | R v3     ==>      p--------v3
	     \  |  /                 \      /
	      \ | /                   \ L  /
	       \|/                     \  /
	        v2                      v2
*/
// When v3 lies inside the circumcircle of L, the diagonal (v1, v2) is swapped
// for (p, v3). Both new triangles still have p in slot 0, so their slot 1
// neighbors are the next ring out, and they go back on the worklist.

// Does the quadrilateral formed by triangles l and r need its diagonal
// swapped?
//
// This compares the angle at v3 (inside r) with the angle at p (inside l), both
// subtended by the shared edge. The diagonal must go when the two sum to more
// than 180 degrees, which is the in-circle test in angle form. The sum is
// checked through sin(a+b) = sin(a)cos(b) + sin(b)cos(a), with the case where
// both angles are obtuse handled up front, since sin(a+b) is close to zero
// there too.
func (t *Triangulation) CheckDelaunay(l, r int) bool {
	left := t.Triangles[l]
	p, v2, v1 := left[0], left[1], left[2]
	return t.quadNeedsSwap(p, v1, v2, t.oppositeVertex(r, v1, v2))
}

// The vertex of triangle r that is on neither end of edge (v1, v2).
func (t *Triangulation) oppositeVertex(r, v1, v2 int) int {
	for _, v := range t.Triangles[r] {
		if v != v1 && v != v2 {
			return v
		}
	}
	fatalf(ErrAdjacencyMismatch, "triangle %d %v has no vertex off edge (%d, %d)", r, t.Triangles[r], v1, v2)
	return -1
}

// Super-triangle vertices stand in for points at infinity. Their coordinates
// are only finite so that point location works, so a quad that includes one is
// decided by its combinatorics instead of the angle test:
//
//   - A shared edge between two super vertices stays.
//   - A shared edge with one super vertex is swapped whenever the swap is
//     possible, that is, whenever the quad is strictly convex. This is where
//     edges between real points come from at the hull.
//   - A shared edge between real points never gives way to a super vertex,
//     since no finite circle contains a point at infinity. The one exception
//     is an L that has collapsed to a segment because p landed exactly on the
//     edge. That triangle must go.
func (t *Triangulation) quadNeedsSwap(p, v1, v2, v3 int) bool {
	superEnds := 0
	if t.IsSuperVertex(v1) {
		superEnds++
	}
	if t.IsSuperVertex(v2) {
		superEnds++
	}

	switch {
	case superEnds == 2:
		return false
	case superEnds == 1:
		return t.swapIsConvex(p, v1, v2, v3)
	case t.IsSuperVertex(p) || t.IsSuperVertex(v3):
		return !IsCCW(t.Points[p], t.Points[v2], t.Points[v1]) && t.swapIsConvex(p, v1, v2, v3)
	}
	return t.inCircleSwap(p, v1, v2, v3)
}

// Would both triangles after a swap, (p, v2, v3) and (p, v3, v1), be strictly
// counterclockwise?
func (t *Triangulation) swapIsConvex(p, v1, v2, v3 int) bool {
	pp, p1, p2, p3 := t.Points[p], t.Points[v1], t.Points[v2], t.Points[v3]
	return IsCCW(pp, p2, p3) && IsCCW(pp, p3, p1)
}

func (t *Triangulation) inCircleSwap(p, v1, v2, v3 int) bool {
	x13 := Subtract(t.Points[v1], t.Points[v3])
	x23 := Subtract(t.Points[v2], t.Points[v3])
	x1p := Subtract(t.Points[v1], t.Points[p])
	x2p := Subtract(t.Points[v2], t.Points[p])

	normA := x13.Norm() * x23.Norm()
	normB := x1p.Norm() * x2p.Norm()
	if normA == 0 || normB == 0 {
		// Coincident points. There is no meaningful angle to compare.
		return false
	}

	cosA := Dot(x13, x23) / normA
	cosB := Dot(x1p, x2p) / normB
	if cosA >= 0 && cosB >= 0 {
		// Both angles at most 90 degrees
		return false
	}
	if cosA < -CocircularTolerance && cosB < -CocircularTolerance {
		// Both angles past 90 degrees
		return true
	}

	sinA := math.Abs(Cross(x13, x23).Z) / normA
	sinB := math.Abs(Cross(x1p, x2p).Z) / normB
	return sinA*cosB+sinB*cosA < -CocircularTolerance
}

// Swap the diagonal shared by l and r. Afterwards l is (p, v2, v3) and r is
// (p, v3, v1), and the four outside neighbors are redistributed.
func (t *Triangulation) SwapTriangles(l, r int) {
	left := t.Triangles[l]
	p, v2, v1 := left[0], left[1], left[2]

	// Rotate r's slots so they read (v1, v2, v3).
	k := t.slotOf(r, v1)
	if k < 0 || t.Triangles[r][CircularIndex(k+1, 3)] != v2 {
		fatalf(ErrAdjacencyMismatch, "triangles %d %v and %d %v do not share edge (%d, %d)",
			l, left, r, t.Triangles[r], v2, v1)
	}
	v3 := t.Triangles[r][CircularIndex(k+2, 3)]

	outsideP2 := t.Neighbors[l][0]                     // across (p, v2)
	outside1P := t.Neighbors[l][2]                     // across (v1, p)
	outside23 := t.Neighbors[r][CircularIndex(k+1, 3)] // across (v2, v3)
	outside31 := t.Neighbors[r][CircularIndex(k+2, 3)] // across (v3, v1)

	t.Triangles[l] = Triangle{p, v2, v3}
	t.Neighbors[l] = NeighborList{outsideP2, outside23, Neighbor(r)}
	t.Triangles[r] = Triangle{p, v3, v1}
	t.Neighbors[r] = NeighborList{Neighbor(l), outside31, outside1P}

	// Edge (v2, v3) moved from r to l, and edge (v1, p) moved from l to r
	t.UpdateAdjacent(outside23, r, l)
	t.UpdateAdjacent(outside1P, l, r)
}

// Drain the worklist, flipping wherever the Delaunay property is broken.
//
// Entries are re-checked when popped rather than trusted from push time,
// since earlier flips may have changed a triangle's neighbors in the meantime.
func (t *Triangulation) Legalize(stack TriangleStack) {
	limit := t.flipLimit()
	flips := 0
	for !stack.Empty() {
		l := stack.Pop()
		r, ok := t.Neighbors[l][1].Index()
		if !ok {
			continue
		}
		if !t.CheckDelaunay(l, r) {
			continue
		}

		if flips == limit {
			// Exact arithmetic always terminates. Getting here means round-off
			// is cycling us between equivalent diagonals, so stop and keep what we
			// have.
			t.Stats.FlipLimitHits++
			Logger().Warn("flip limit reached, leaving insertion partially legalized",
				slog.Int("point", t.Triangles[l][0]),
				slog.Int("limit", limit),
				slog.Int("pending", len(stack)+1),
			)
			return
		}

		t.SwapTriangles(l, r)
		flips++
		t.Stats.Flips++
		stack.pushIfInterior(l, t.Neighbors[l])
		stack.pushIfInterior(r, t.Neighbors[r])
	}
}

func (t *Triangulation) flipLimit() int {
	if t.MaxFlipsPerInsert > 0 {
		return t.MaxFlipsPerInsert
	}
	// Each flip during one insertion adds an edge at the new point, and no
	// point can have more edges than there are triangles.
	return 2*len(t.Triangles) + 8
}
