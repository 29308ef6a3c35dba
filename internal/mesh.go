package internal

import "github.com/go-gl/mathgl/mgl32"

// Vertex record handed to a renderer: position plus a color attribute.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// A Mesh is what a renderer consumes: vertices and a flat index list with three
// entries per triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func NewMesh(vertices []Vertex, indices []uint32) *Mesh {
	if len(indices)%3 != 0 {
		fatalf(ErrInvalidTriangulation, "index count %d is not a multiple of 3", len(indices))
	}
	for _, index := range indices {
		if int(index) >= len(vertices) {
			fatalf(ErrInvalidTriangulation, "index %d out of range for %d vertices", index, len(vertices))
		}
	}
	return &Mesh{Vertices: vertices, Indices: indices}
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// Build a mesh from the live triangles. Vertex positions come from positions,
// which must be index-aligned with the triangulation's input points; pass nil
// to use the triangulation's own points. Super-triangle points are never
// emitted.
func (t *Triangulation) Mesh(positions []Point, color mgl32.Vec3) *Mesh {
	if positions == nil {
		positions = t.Points[:t.inputCount]
	}
	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i] = Vertex{
			Position: mgl32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)},
			Color:    color,
		}
	}

	indices := make([]uint32, 0, 3*t.LiveCount())
	for i, tri := range t.Triangles {
		if t.removed[i] {
			continue
		}
		for _, v := range tri {
			if v >= len(positions) {
				fatalf(ErrGeometricInconsistency, "triangle %d %v still uses super-triangle vertex %d", i, tri, v)
			}
			indices = append(indices, uint32(v))
		}
	}
	return NewMesh(vertices, indices)
}
