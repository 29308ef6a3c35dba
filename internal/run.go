package internal

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Options for a triangulation run. The zero value is a plain run.
type Options struct {
	// Triangulate a copy of the points mapped into the unit cube. Output
	// positions are still the original ones.
	Normalize bool
	// Per-insertion flip limit. Zero derives one from the mesh size.
	MaxFlipsPerInsert int
	// Check every invariant after cleanup and fail the run if one is broken.
	Validate bool
	// Color given to every output vertex.
	Color mgl32.Vec3
}

// Triangulate the points and return the finished triangulation. Panics with a
// triangulateError on failure; callers recover with
// HandleTriangulatePanicRecover.
func Run(points []Point, opts Options) *Triangulation {
	working := points
	if opts.Normalize {
		working = NormalizePoints(points)
	}

	t := NewTriangulation(working)
	t.MaxFlipsPerInsert = opts.MaxFlipsPerInsert
	t.Run()

	if opts.Validate {
		if err := t.Validate(); err != nil {
			panic(triangulateError{err})
		}
	}

	Logger().Debug("triangulated",
		slog.Int("points", len(points)),
		slog.Int("triangles", len(t.Triangles)),
		slog.Int("flips", t.Stats.Flips),
		slog.Int("flipLimitHits", t.Stats.FlipLimitHits),
	)
	return t
}

// Triangulate the points and convert the result to a mesh.
func TriangulateMesh(points []Point, opts Options) *Mesh {
	t := Run(points, opts)
	return t.Mesh(points, opts.Color)
}
