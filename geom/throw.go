package geom

import "github.com/pkg/errors"

// Contract violations (out-of-range coordinate indexes, too many
// constructor arguments) are programming errors, not geometry. Threading
// error returns through every accessor would bury the arithmetic, so we
// panic with a GeometryError and let the public facade recover it back
// into an error. Degenerate geometry never panics; it collapses to the
// canonical null value instead.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
