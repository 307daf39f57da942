package textapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/strkit/pkg/b64json"
	"github.com/dmitrymomot/strkit/pkg/binder"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Data: data})
}

// errorStatus maps input errors of the core packages to 400.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, binder.ErrInvalidArgument),
		errors.Is(err, b64json.ErrInvalidArgument):
		return http.StatusBadRequest, "missing_argument"
	case errors.Is(err, binder.ErrInvalidFormat),
		errors.Is(err, b64json.ErrInvalidBase64),
		errors.Is(err, b64json.ErrInvalidJSON):
		return http.StatusBadRequest, "invalid_format"
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge, "body_too_large"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
