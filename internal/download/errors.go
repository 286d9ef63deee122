package download

// authRequiredError is returned before any network I/O when a backend
// requires a credential that is not present in the environment.
type authRequiredError struct{ id string }

func (e authRequiredError) Error() string {
	return "authentication required for backend " + e.id + ": accept the upstream license and set " + TokenEnv
}

// ErrAuthenticationRequired constructs an authRequiredError.
func ErrAuthenticationRequired(id string) error { return authRequiredError{id: id} }

// IsAuthenticationRequired reports whether err indicates a missing credential.
func IsAuthenticationRequired(err error) bool {
	_, ok := err.(authRequiredError)
	return ok
}

// downloadFailedError wraps a transfer failure (network, auth rejection
// mid-transfer, disk exhaustion). Partial files may remain on disk.
type downloadFailedError struct {
	id    string
	cause error
}

func (e downloadFailedError) Error() string { return "download failed for " + e.id + ": " + e.cause.Error() }
func (e downloadFailedError) Unwrap() error { return e.cause }

// ErrDownloadFailed constructs a downloadFailedError wrapping cause.
func ErrDownloadFailed(id string, cause error) error {
	return downloadFailedError{id: id, cause: cause}
}

// IsDownloadFailed reports whether err indicates a failed transfer.
func IsDownloadFailed(err error) bool {
	_, ok := err.(downloadFailedError)
	return ok
}

// timeoutError is surfaced to waiters when a download exceeds its bound.
type timeoutError struct{ id string }

func (e timeoutError) Error() string { return "download timed out for " + e.id }

// IsTimeout reports whether err indicates an expired download wait.
func IsTimeout(err error) bool {
	_, ok := err.(timeoutError)
	return ok
}
