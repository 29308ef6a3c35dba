package internal

import "math"

// How far the super-triangle reaches past the input, in multiples of the
// larger side of the input's bounding box.
const superTriangleScale = 20

type Stats struct {
	Insertions int
	Flips      int
	// Insertions whose legalization hit the flip limit and stopped early.
	FlipLimitHits int
}

// A Triangulation is a triangle list and a neighbor list that share indices.
// Triangles[i] and Neighbors[i] always describe the same triangle.
//
// Triangles are never moved while points are being inserted. Cleanup marks
// dead triangles in removed, and Compact() renumbers the survivors in a
// separate pass.
type Triangulation struct {
	Points    []Point
	Triangles []Triangle
	Neighbors []NeighborList

	// Number of real input points. Point indices at or above this belong to
	// the super-triangle.
	inputCount int
	removed    []bool

	// Maximum flips per insertion before we give up on it. Zero means derive
	// it from the triangle count.
	MaxFlipsPerInsert int

	Stats Stats
}

// Create a triangulation seeded with a super-triangle bounding all of the
// points. The points are copied; the three super-triangle vertices are
// appended after them.
func NewTriangulation(points []Point) *Triangulation {
	n := len(points)
	allPoints := make([]Point, n, n+3)
	copy(allPoints, points)
	a, b, c := superTriangle(points)
	allPoints = append(allPoints, a, b, c)

	return &Triangulation{
		Points:     allPoints,
		Triangles:  []Triangle{{n, n + 1, n + 2}},
		Neighbors:  []NeighborList{{Boundary, Boundary, Boundary}},
		removed:    []bool{false},
		inputCount: n,
	}
}

// Build a triangulation from existing triangles and neighbors, skipping the
// super-triangle entirely. This exists so individual steps can be tested on
// hand-built meshes. A nil neighbor list means every edge is a boundary.
func NewTriangulationFromState(points []Point, triangles []Triangle, neighbors []NeighborList) *Triangulation {
	if neighbors == nil {
		neighbors = make([]NeighborList, len(triangles))
	}
	if len(neighbors) != len(triangles) {
		fatalf(ErrAdjacencyMismatch, "%d triangles but %d neighbor lists", len(triangles), len(neighbors))
	}
	t := &Triangulation{
		Points:     append([]Point(nil), points...),
		Triangles:  append([]Triangle(nil), triangles...),
		Neighbors:  append([]NeighborList(nil), neighbors...),
		removed:    make([]bool, len(triangles)),
		inputCount: len(points),
	}
	return t
}

// Three points forming a counterclockwise triangle far outside the bounding
// box of the input.
//
//	            c
//	           / \
//	          /   \
//	         / [ ] \
//	        a-------b
func superTriangle(points []Point) (a, b, c Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if minX > maxX { // no usable points
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		extent = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	a = Point{X: midX - superTriangleScale*extent, Y: midY - extent}
	b = Point{X: midX + superTriangleScale*extent, Y: midY - extent}
	c = Point{X: midX, Y: midY + superTriangleScale*extent}
	return a, b, c
}

func (t *Triangulation) InputCount() int {
	return t.inputCount
}

func (t *Triangulation) IsSuperVertex(p int) bool {
	return p >= t.inputCount
}

func (t *Triangulation) IsRemoved(tri int) bool {
	return t.removed[tri]
}

// Number of triangles not removed by cleanup.
func (t *Triangulation) LiveCount() int {
	count := 0
	for _, removed := range t.removed {
		if !removed {
			count++
		}
	}
	return count
}

func (t *Triangulation) addTriangle(tri Triangle, neighbors NeighborList) int {
	t.Triangles = append(t.Triangles, tri)
	t.Neighbors = append(t.Neighbors, neighbors)
	t.removed = append(t.removed, false)
	return len(t.Triangles) - 1
}

// The target triangle used to list oldNeighbor in one of its slots. Point
// that slot at newNeighbor instead. A boundary target has nothing to update.
func (t *Triangulation) UpdateAdjacent(target Adjacent, oldNeighbor, newNeighbor int) {
	index, ok := target.Index()
	if !ok {
		return
	}
	t.replaceNeighbor(index, oldNeighbor, Neighbor(newNeighbor))
}

func (t *Triangulation) replaceNeighbor(target, oldNeighbor int, replacement Adjacent) {
	neighbors := &t.Neighbors[target]
	for i, neighbor := range neighbors {
		if neighbor.Is(oldNeighbor) {
			neighbors[i] = replacement
			return
		}
	}
	fatalf(ErrAdjacencyMismatch, "triangle %d does not list %d as a neighbor: %s", target, oldNeighbor, *neighbors)
}

// The slot of tri holding vertex p, or -1.
func (t *Triangulation) slotOf(tri, p int) int {
	for i, v := range t.Triangles[tri] {
		if v == p {
			return i
		}
	}
	return -1
}
