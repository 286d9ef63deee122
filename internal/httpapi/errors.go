package httpapi

import (
	"encoding/json"
	"net/http"

	"babd/internal/backend"
	"babd/internal/download"
	"babd/internal/manager"
	"babd/internal/store"
	"babd/internal/verify"
	"babd/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusForError maps domain errors to HTTP status codes.
//
//	404 unknown backend
//	401 gated model without a token
//	400 caller mistakes (empty text, bad language code)
//	409 translation requested before download/verify
//	429 backpressure and rejected racing operations
//	502 upstream hub failures
//	504 expired waits
func statusForError(err error) int {
	switch {
	case manager.IsUnknownBackend(err):
		return http.StatusNotFound
	case download.IsAuthenticationRequired(err):
		return http.StatusUnauthorized
	case manager.IsEmptyInput(err), backend.IsInvalidLanguageCode(err):
		return http.StatusBadRequest
	case manager.IsModelNotReady(err), manager.IsNotDownloaded(err):
		return http.StatusConflict
	case manager.IsBackendBusy(err):
		return http.StatusTooManyRequests
	case manager.IsTimeout(err), download.IsTimeout(err):
		return http.StatusGatewayTimeout
	case download.IsDownloadFailed(err):
		return http.StatusBadGateway
	case verify.IsVerificationFailed(err), store.IsStorageError(err), backend.IsInferenceError(err):
		return http.StatusInternalServerError
	}
	if he, ok := err.(HTTPError); ok {
		return he.StatusCode()
	}
	return http.StatusInternalServerError
}

// writeError maps err to a status and writes the JSON payload.
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusTooManyRequests {
		IncrementBackpressure("busy")
	}
	writeJSONError(w, status, err.Error())
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
