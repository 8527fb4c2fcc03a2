package ctri

import "github.com/pkg/errors"

// Threading an error return through every recursive step of ingest,
// joining, and ear clipping would bury the pipeline in plumbing for
// conditions that, per the engine's error-handling design (§7), are
// either programming-error traps (debug-only assertions) or simply not
// supposed to happen given a well-formed caller. So internal helpers
// that detect an invariant violation panic with a typed error, and the
// single public entry point recovers and converts it to a returned error.
type triangulateError struct{ error }

func fatalf(format string, args ...interface{}) {
	panic(triangulateError{errors.Errorf(format, args...)})
}

func errRingInconsistent(v int32, why string) error {
	return errors.Errorf("ring vertex %d inconsistent: %s", v, why)
}

// recoverTriangulateError converts a panic raised by fatalf into an
// error. Any other panic value is re-raised; this engine only degrades
// gracefully for conditions it explicitly recognizes as recoverable.
func recoverTriangulateError(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(triangulateError); ok {
		return err.error
	}
	panic(r)
}
