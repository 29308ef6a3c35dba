package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tri := fanWithSuperTriangle()
		tri.RemoveSuperTriangle()
		tri.Compact()
		assert.NoError(t, tri.Validate())

		// Removed triangles are not checked.
		tri = fanWithSuperTriangle()
		tri.RemoveSuperTriangle()
		tri.Points = tri.Points[:5]
		assert.NoError(t, tri.Validate())
	})

	t.Run("missing point", func(t *testing.T) {
		tri := NewTriangulationFromState(UnitSquare(), []Triangle{{0, 1, 9}}, nil)
		err := tri.Validate()
		assert.ErrorIs(t, err, ErrInvalidTriangulation)
		assert.Contains(t, err.Error(), "missing point 9")
	})

	t.Run("clockwise", func(t *testing.T) {
		tri := NewTriangulationFromState(UnitSquare(), []Triangle{{0, 2, 1}}, nil)
		err := tri.Validate()
		assert.ErrorIs(t, err, ErrInvalidTriangulation)
		assert.Contains(t, err.Error(), "clockwise")
	})

	t.Run("degenerate", func(t *testing.T) {
		points := []Point{{X: 0}, {X: 1}, {X: 2}}
		tri := NewTriangulationFromState(points, []Triangle{{0, 1, 2}}, nil)
		err := tri.Validate()
		assert.ErrorIs(t, err, ErrInvalidTriangulation)
		assert.Contains(t, err.Error(), "degenerate")
	})

	t.Run("one-sided adjacency", func(t *testing.T) {
		tri := Run(UnitSquare(), Options{})
		tri.Neighbors[0] = NeighborList{}
		err := tri.Validate()
		assert.ErrorIs(t, err, ErrInvalidTriangulation)
		assert.Contains(t, err.Error(), "lists it back 0 times")
	})

	t.Run("neighbor in the wrong slot", func(t *testing.T) {
		tri := NewTriangulationFromState(UnitSquare(),
			[]Triangle{{0, 1, 2}, {0, 2, 3}},
			neighborsFromInts([3]int{1, -1, -1}, [3]int{0, -1, -1}),
		)
		err := tri.Validate()
		assert.ErrorIs(t, err, ErrInvalidTriangulation)
		assert.Contains(t, err.Error(), "does not share edge (0, 1)")
	})

	t.Run("not Delaunay", func(t *testing.T) {
		points := []Point{
			{X: -1, Y: 0},
			{X: 0, Y: -1},
			{X: 0, Y: 1},
			{X: 0.5, Y: 0},
		}
		tri := NewTriangulationFromState(points,
			[]Triangle{{0, 1, 2}, {2, 1, 3}},
			neighborsFromInts([3]int{-1, 1, -1}, [3]int{0, -1, -1}),
		)
		err := tri.Validate()
		assert.ErrorIs(t, err, ErrInvalidTriangulation)
		assert.Contains(t, err.Error(), "not locally Delaunay")

		tri.SwapTriangles(0, 1)
		assert.NoError(t, tri.Validate())
	})
}
