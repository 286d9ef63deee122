package manager

// unknownBackendError is returned when a requested id is not registered.
type unknownBackendError struct{ id string }

func (e unknownBackendError) Error() string { return "unknown backend: " + e.id }

// ErrUnknownBackend constructs an unknownBackendError.
func ErrUnknownBackend(id string) error { return unknownBackendError{id: id} }

// IsUnknownBackend reports whether err indicates an unregistered backend id.
func IsUnknownBackend(err error) bool {
	_, ok := err.(unknownBackendError)
	return ok
}

// notDownloadedError signals a load attempted before any artifacts exist.
// Loading never triggers an implicit download.
type notDownloadedError struct{ id string }

func (e notDownloadedError) Error() string { return "backend not downloaded: " + e.id }

// ErrNotDownloaded constructs a notDownloadedError.
func ErrNotDownloaded(id string) error { return notDownloadedError{id: id} }

// IsNotDownloaded reports whether err indicates absent artifacts.
func IsNotDownloaded(err error) bool {
	_, ok := err.(notDownloadedError)
	return ok
}

// modelNotReadyError is the dispatcher's fail-fast when translation is
// requested for a backend that is not downloaded+verified. Downloads happen
// out-of-band; the hot translation path never fetches.
type modelNotReadyError struct {
	id    string
	cause error
}

func (e modelNotReadyError) Error() string {
	return "backend " + e.id + " not ready: " + e.cause.Error()
}
func (e modelNotReadyError) Unwrap() error { return e.cause }

// ErrModelNotReady constructs a modelNotReadyError wrapping cause.
func ErrModelNotReady(id string, cause error) error {
	return modelNotReadyError{id: id, cause: cause}
}

// IsModelNotReady reports whether err indicates an undownloaded/unverified
// backend on the translation path.
func IsModelNotReady(err error) bool {
	_, ok := err.(modelNotReadyError)
	return ok
}

// emptyInputError rejects translation requests with no text after trimming.
type emptyInputError struct{}

func (emptyInputError) Error() string { return "text is empty" }

// ErrEmptyInput constructs an emptyInputError.
func ErrEmptyInput() error { return emptyInputError{} }

// IsEmptyInput reports whether err indicates blank input text.
func IsEmptyInput(err error) bool {
	_, ok := err.(emptyInputError)
	return ok
}

// backendBusyError signals queue overflow, drain in progress, or a remove
// racing an in-flight load/download. Maps to 429.
type backendBusyError struct {
	id     string
	reason string
}

func (e backendBusyError) Error() string { return "backend " + e.id + " busy: " + e.reason }

// ErrBackendBusy constructs a backendBusyError.
func ErrBackendBusy(id, reason string) error { return backendBusyError{id: id, reason: reason} }

// IsBackendBusy reports whether err indicates backpressure or a rejected
// racing operation.
func IsBackendBusy(err error) bool {
	_, ok := err.(backendBusyError)
	return ok
}

// timeoutError is surfaced to a waiter whose bound expired during a load.
type timeoutError struct{ id string }

func (e timeoutError) Error() string { return "timed out waiting on backend " + e.id }

// ErrTimeout constructs a timeoutError.
func ErrTimeout(id string) error { return timeoutError{id: id} }

// IsTimeout reports whether err indicates an expired load wait.
func IsTimeout(err error) bool {
	_, ok := err.(timeoutError)
	return ok
}
