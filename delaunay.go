// Incremental 2D Delaunay triangulation for Go.
//
// This package takes a cloud of points, which may carry a z coordinate, and
// triangulates it in the xy-plane so that no point lies inside the
// circumcircle of any triangle. The result is a mesh of vertices and a flat
// triangle index list, ready to hand to a renderer.
package delaunay

import (
	"log/slog"

	"github.com/osuushi/delaunay/internal"
)

type Point = internal.Point
type Vertex = internal.Vertex
type Mesh = internal.Mesh
type Options = internal.Options

var (
	ErrGeometricInconsistency = internal.ErrGeometricInconsistency
	ErrAdjacencyMismatch      = internal.ErrAdjacencyMismatch
	ErrInvalidTriangulation   = internal.ErrInvalidTriangulation
)

// Triangulate the points. Z is carried into the mesh but ignored by the
// triangulation.
//
// Fewer than three points produce an empty mesh. Collinear input also
// produces no triangles. Duplicate points are not supported.
func Triangulate(points []Point) (*Mesh, error) {
	return TriangulateWithOptions(points, Options{})
}

func TriangulateWithOptions(points []Point, opts Options) (result *Mesh, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if len(points) < 3 {
		return internal.NewMesh(nil, nil), nil
	}
	return internal.TriangulateMesh(points, opts), nil
}

// SetLogger sets the logger for triangulation runs. Runs are silent by default;
// pass nil to silence them again.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

func Logger() *slog.Logger {
	return internal.Logger()
}
