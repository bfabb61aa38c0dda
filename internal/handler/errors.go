package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/avasquez-gs/travel-emissions/internal/domain"
)

// ErrorResponse is the JSON error envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
// Encoding failures after the header is written can only be logged by the
// request middleware; the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a domain error to its HTTP status and error code.
// Unknown errors become an opaque 500 — internals never leak to the client.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownLocation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("unknown_location", err))
	case errors.Is(err, domain.ErrUnknownFactor):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("unknown_factor", err))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", err))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not_found", err))
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// requestError rejects a request before it reaches the service layer
// (e.g. malformed JSON body or an unparsable date).
func requestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

func errorBody(code string, err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: unwrapMessage(err)}}
}

// unwrapMessage strips the service-layer wrap prefix from an error message.
// e.g. "service.CalculatorService.Submit: trip 2: unknown location" becomes
// "trip 2: unknown location".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, "service.CalculatorService.Submit: "); ok {
		return rest
	}
	return msg
}
