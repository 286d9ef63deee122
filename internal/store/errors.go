package store

// storageError wraps a filesystem failure; it is never swallowed.
type storageError struct {
	op    string
	cause error
}

func (e storageError) Error() string { return "storage " + e.op + ": " + e.cause.Error() }
func (e storageError) Unwrap() error { return e.cause }

// IsStorageError reports whether err came from the artifact store's
// filesystem layer.
func IsStorageError(err error) bool {
	_, ok := err.(storageError)
	return ok
}
