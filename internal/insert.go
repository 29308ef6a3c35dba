package internal

// Split the enclosing triangle into three triangles fanned around point p, and
// return the worklist of triangles that need a Delaunay check.
//
// The enclosing triangle's slot is reused for the first of the new triangles,
// and the other two are appended:
/*
	            c
	           /|\
	          / | \
	         /  |  \
	        / t3|t2 \
	       /   _p_   \
	      /  _/   \_  \
	     / _/  t1   \_ \
	    a---------------b
*/
// t1 = (p, a, b), t2 = (p, b, c), t3 = (p, c, a). Each keeps the outside
// neighbor of its old edge in slot 1, with the other two new triangles in
// slots 0 and 2.
func (t *Triangulation) InsertPoint(p, enclosing int) TriangleStack {
	a, b, c := t.Triangles[enclosing][0], t.Triangles[enclosing][1], t.Triangles[enclosing][2]
	outside := t.Neighbors[enclosing]

	t1 := enclosing
	t2 := len(t.Triangles)
	t3 := t2 + 1

	t.Triangles[t1] = Triangle{p, a, b}
	t.Neighbors[t1] = NeighborList{Neighbor(t3), outside[0], Neighbor(t2)}
	t.addTriangle(Triangle{p, b, c}, NeighborList{Neighbor(t1), outside[1], Neighbor(t3)})
	t.addTriangle(Triangle{p, c, a}, NeighborList{Neighbor(t2), outside[2], Neighbor(t1)})

	// The outside neighbors still point at the enclosing triangle. The first is
	// a no-op since t1 reuses the index, but it still checks the back-reference.
	t.UpdateAdjacent(outside[0], enclosing, t1)
	t.UpdateAdjacent(outside[1], enclosing, t2)
	t.UpdateAdjacent(outside[2], enclosing, t3)

	var stack TriangleStack
	stack.pushIfInterior(t1, t.Neighbors[t1])
	stack.pushIfInterior(t2, t.Neighbors[t2])
	stack.pushIfInterior(t3, t.Neighbors[t3])
	return stack
}

// Insert point p: locate it, split its triangle, then restore the Delaunay
// property around it.
func (t *Triangulation) Insert(p int) {
	enclosing := t.FindEnclosingTriangle(p)
	stack := t.InsertPoint(p, enclosing)
	t.Legalize(stack)
	t.Stats.Insertions++
}

// Insert every input point, in order.
func (t *Triangulation) InsertAll() {
	for p := 0; p < t.inputCount; p++ {
		t.Insert(p)
	}
}
