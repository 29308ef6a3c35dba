package internal

import "github.com/pkg/errors"

// Threading errors up and down every insertion and flip would add a ton of
// complexity to the code. Instead, we use panics, and the public API recovers
// to convert to an error. Either way a failed run is thrown away whole.

var (
	// Point location found no triangle containing the point. The super-triangle
	// does not bound the input, or the input contains NaN or infinite values.
	ErrGeometricInconsistency = errors.New("geometric inconsistency")
	// A triangle did not list the neighbor it was expected to list.
	ErrAdjacencyMismatch = errors.New("adjacency mismatch")
	// Validate found a broken invariant.
	ErrInvalidTriangulation = errors.New("invalid triangulation")
)

// Wrapper so that recovery only swallows our own panics, never runtime errors.
type triangulateError struct {
	err error
}

// Panic with an error wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(triangulateError{errors.Wrapf(cause, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(triangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}
