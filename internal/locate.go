package internal

// Find a triangle containing point p, boundary included.
//
// This is an exhaustive scan, so a full run is O(n²).
func (t *Triangulation) FindEnclosingTriangle(p int) int {
	query := t.Points[p]
	for i, tri := range t.Triangles {
		if t.removed[i] {
			continue
		}
		if Encloses(t.Points[tri[0]], t.Points[tri[1]], t.Points[tri[2]], query) {
			return i
		}
	}
	// Only reachable if the super-triangle does not bound the point, which
	// means bad input (NaN, infinities) or round-off at the super-triangle's own
	// edges.
	fatalf(ErrGeometricInconsistency, "no triangle encloses point %d %v", p, query)
	return -1
}
