package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors through every linked list operation would clutter the ear
// clipping code, and the only errors possible there are broken invariants.
// Instead, we panic, and the public API recovers and degrades to an empty
// result.

// TriangulateError is the panic value for a broken engine invariant.
type TriangulateError struct {
	error
}

func (e TriangulateError) Unwrap() error {
	return e.error
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Convert a recovered panic value into an error. Engine invariant failures and
// runtime errors (such as an out of range slot on a corrupted ring) become
// errors. Anything else was not raised by the engine, and is re-panicked.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	switch err := r.(type) {
	case TriangulateError:
		return err
	case runtime.Error:
		return errors.Wrap(err, "triangulation failed")
	}
	panic(r)
}
