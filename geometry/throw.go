package geometry

import "github.com/pkg/errors"

// Threading errors up through every predicate and hot loop would add a ton of
// complexity for failures that only occur when an input polygon violates its
// construction preconditions (or the algorithms themselves are buggy).
// Instead, internal invariant violations panic, and the public API recovers
// to convert to an error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
