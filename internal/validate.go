package internal

import "github.com/pkg/errors"

// Check the structural and Delaunay invariants of the live triangles, returning
// an error wrapping ErrInvalidTriangulation for the first one that fails:
//
//  1. Every vertex index refers to a point.
//  2. Adjacency is symmetric: a neighbor lists us back exactly once.
//  3. A neighbor in slot i actually shares the edge (v[i], v[i+1]).
//  4. No two triangles share more than one edge.
//  5. Every triangle is counterclockwise (LeftOf holds on all three edges).
//  6. Once the super-triangle has been stripped, no vertex belongs to it.
//  7. Every pair of neighbors is locally Delaunay.
func (t *Triangulation) Validate() error {
	for i, tri := range t.Triangles {
		if t.removed[i] {
			continue
		}
		for _, v := range tri {
			if v < 0 || v >= len(t.Points) {
				return invalidf("triangle %d %v refers to missing point %d", i, tri, v)
			}
		}
	}

	stripped := len(t.Points) == t.inputCount
	for i, tri := range t.Triangles {
		if t.removed[i] {
			continue
		}
		a, b, c := t.Points[tri[0]], t.Points[tri[1]], t.Points[tri[2]]
		if !IsCCW(a, b, c) {
			return invalidf("triangle %d %v is clockwise or degenerate", i, tri)
		}
		if stripped {
			for _, v := range tri {
				if t.IsSuperVertex(v) {
					return invalidf("triangle %d %v uses super-triangle vertex %d", i, tri, v)
				}
			}
		}

		seen := make(map[int]struct{}, 3)
		for slot, neighbor := range t.Neighbors[i] {
			j, ok := neighbor.Index()
			if !ok {
				continue
			}
			if j < 0 || j >= len(t.Triangles) || t.removed[j] {
				return invalidf("triangle %d lists missing triangle %d", i, j)
			}
			if _, dup := seen[j]; dup {
				return invalidf("triangles %d and %d share more than one edge", i, j)
			}
			seen[j] = struct{}{}

			backReferences := 0
			for _, back := range t.Neighbors[j] {
				if back.Is(i) {
					backReferences++
				}
			}
			if backReferences != 1 {
				return invalidf("triangle %d lists %d, which lists it back %d times", i, j, backReferences)
			}

			start, end := tri[slot], tri[CircularIndex(slot+1, 3)]
			if t.slotOf(j, start) < 0 || t.slotOf(j, end) < 0 {
				return invalidf("triangle %d slot %d: neighbor %d %v does not share edge (%d, %d)",
					i, slot, j, t.Triangles[j], start, end)
			}

			if t.needsFlip(i, slot) {
				return invalidf("triangles %d and %d are not locally Delaunay", i, j)
			}
		}
	}
	return nil
}

// Check the edge in the given slot of tri against the neighbor across it.
func (t *Triangulation) needsFlip(tri, slot int) bool {
	r, ok := t.Neighbors[tri][slot].Index()
	if !ok {
		return false
	}
	triangle := t.Triangles[tri]
	p := triangle[CircularIndex(slot+2, 3)]
	v2, v1 := triangle[slot], triangle[CircularIndex(slot+1, 3)]
	return t.quadNeedsSwap(p, v1, v2, t.oppositeVertex(r, v1, v2))
}

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidTriangulation, format, args...)
}
