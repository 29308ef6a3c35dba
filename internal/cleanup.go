package internal

// Remove every triangle that touches a super-triangle vertex. Removed triangles
// stay in place, marked dead, so indices stay valid until Compact() runs.
// Surviving triangles that bordered a removed one get a boundary in its place.
func (t *Triangulation) RemoveSuperTriangle() {
	for i, tri := range t.Triangles {
		if t.removed[i] {
			continue
		}
		if t.IsSuperVertex(tri[0]) || t.IsSuperVertex(tri[1]) || t.IsSuperVertex(tri[2]) {
			t.removed[i] = true
		}
	}

	for i := range t.Triangles {
		if !t.removed[i] {
			continue
		}
		for _, neighbor := range t.Neighbors[i] {
			index, ok := neighbor.Index()
			if !ok || t.removed[index] {
				continue
			}
			t.replaceNeighbor(index, i, Boundary)
		}
		t.Neighbors[i] = NeighborList{}
	}
}

// Drop removed triangles and renumber the survivors densely, keeping their
// relative order. Neighbor references are rewritten to the new indices. If the
// super-triangle is gone, its three points are dropped from the point set too.
func (t *Triangulation) Compact() {
	renumbered := make([]int, len(t.Triangles))
	next := 0
	for i := range t.Triangles {
		if t.removed[i] {
			renumbered[i] = -1
			continue
		}
		renumbered[i] = next
		next++
	}

	triangles := make([]Triangle, 0, next)
	neighbors := make([]NeighborList, 0, next)
	for i, tri := range t.Triangles {
		if t.removed[i] {
			continue
		}
		var list NeighborList
		for slot, neighbor := range t.Neighbors[i] {
			index, ok := neighbor.Index()
			if !ok {
				continue
			}
			if renumbered[index] < 0 {
				fatalf(ErrAdjacencyMismatch, "triangle %d still lists removed triangle %d", i, index)
			}
			list[slot] = Neighbor(renumbered[index])
		}
		triangles = append(triangles, tri)
		neighbors = append(neighbors, list)
	}

	t.Triangles = triangles
	t.Neighbors = neighbors
	t.removed = make([]bool, len(triangles))

	if len(t.Points) > t.inputCount && !t.referencesSuperVertex() {
		t.Points = t.Points[:t.inputCount]
	}
}

func (t *Triangulation) referencesSuperVertex() bool {
	for i, tri := range t.Triangles {
		if t.removed[i] {
			continue
		}
		for _, v := range tri {
			if t.IsSuperVertex(v) {
				return true
			}
		}
	}
	return false
}

// Insert all points, then strip the super-triangle and compact.
func (t *Triangulation) Run() {
	t.InsertAll()
	t.RemoveSuperTriangle()
	t.Compact()
}
