package internal

import "github.com/golang/geo/r3"

// Points are plain 3D vectors. Z is carried through to the output mesh, but
// every predicate in this package works on the xy projection.
type Point = r3.Vector

// A triangle is three indices into the point set, wound counterclockwise. For
// any triangle created by an insertion or a flip, slot 0 holds the point whose
// insertion created it. Legalization depends on that.
type Triangle [3]int

// Neighbor slot i is the triangle across the edge running from vertex i to
// vertex i+1. So for a triangle (p, a, b), slot 1 is across (a, b), the edge
// opposite p.
type NeighborList [3]Adjacent

// Adjacent refers to a triangle across an edge, or to nothing at all. The zero
// value is Boundary, so a fresh NeighborList has no neighbors.
type Adjacent struct {
	index int
	valid bool
}

var Boundary Adjacent

func Neighbor(index int) Adjacent {
	return Adjacent{index: index, valid: true}
}

func (a Adjacent) IsBoundary() bool {
	return !a.valid
}

// Index returns the triangle index and whether there is one.
func (a Adjacent) Index() (int, bool) {
	return a.index, a.valid
}

// Is reports whether a refers to the given triangle.
func (a Adjacent) Is(index int) bool {
	return a.valid && a.index == index
}
