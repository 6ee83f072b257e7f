// Package response renders JSON responses and maps the service error
// taxonomy onto HTTP status codes. Success bodies are written unwrapped
// because the versioned wire shapes are themselves the API contract; only
// failures carry an error envelope.
package response

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error ErrorDetail `json:"error"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// NoContent writes a 204 response with no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error writes err as an error envelope, translating the error taxonomy:
// ValidationError renders as 422 with per-field details, HTTPError uses its
// own status and key, anything else is a 500 with no internal detail leaked.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}

	var valErr ValidationError
	var httpErr HTTPError
	switch {
	case errors.As(err, &valErr):
		status = http.StatusUnprocessableEntity
		detail = ErrorDetail{
			Code:    "validation_error",
			Message: "request validation failed",
			Details: map[string][]string(valErr),
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		detail = ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Error: detail})
}
