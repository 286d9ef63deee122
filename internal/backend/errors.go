package backend

// invalidLanguageCodeError reports a code the chosen backend's scheme does
// not recognize.
type invalidLanguageCodeError struct {
	id   string
	code string
}

func (e invalidLanguageCodeError) Error() string {
	return "invalid language code for " + e.id + ": " + e.code
}

// ErrInvalidLanguageCode constructs an invalidLanguageCodeError.
func ErrInvalidLanguageCode(id, code string) error {
	return invalidLanguageCodeError{id: id, code: code}
}

// IsInvalidLanguageCode reports whether err indicates an unrecognized code.
func IsInvalidLanguageCode(err error) bool {
	_, ok := err.(invalidLanguageCodeError)
	return ok
}

// inferenceError wraps a failure from the underlying numeric computation.
// Never retried automatically; retries are the caller's decision.
type inferenceError struct {
	id    string
	cause error
}

func (e inferenceError) Error() string { return "inference failed for " + e.id + ": " + e.cause.Error() }
func (e inferenceError) Unwrap() error { return e.cause }

// ErrInference constructs an inferenceError wrapping cause.
func ErrInference(id string, cause error) error { return inferenceError{id: id, cause: cause} }

// IsInferenceError reports whether err came from the numeric engine.
func IsInferenceError(err error) bool {
	_, ok := err.(inferenceError)
	return ok
}
