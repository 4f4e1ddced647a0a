package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/charleslimjh/tp/internal/domain"
	"github.com/charleslimjh/tp/internal/parser"
)

// ErrorResponse is the envelope for every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code and a message for people.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes body as the JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the client has gone if this fails
	json.NewEncoder(w).Encode(body)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// requestBody reports a request rejected before reaching the service layer
// (e.g. a missing or malformed body or parameter).
func requestBody(w http.ResponseWriter, message string) {
	writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// writeError maps a service error onto an HTTP status and error code.
// Unknown errors are logged and answered with a generic 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeErrorBody(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large")
	case errors.Is(err, domain.ErrValidation):
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, parser.ErrInvalidFormat):
		writeErrorBody(w, http.StatusUnprocessableEntity, "invalid_command", unwrapMessage(err))
	case errors.Is(err, parser.ErrUnknownCommand):
		writeErrorBody(w, http.StatusUnprocessableEntity, "unknown_command", unwrapMessage(err))
	case errors.Is(err, domain.ErrInvalidIndex):
		writeErrorBody(w, http.StatusUnprocessableEntity, "invalid_index", unwrapMessage(err))
	case errors.Is(err, domain.ErrDuplicateEatery):
		writeErrorBody(w, http.StatusConflict, "duplicate_eatery", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	default:
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeErrorBody(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.FoodGuideService.Execute: validation error: Tags names should be alphanumeric"
// → "Tags names should be alphanumeric"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.FoodGuideService.Execute: ",
		"service.FoodGuideService.GetDisplayed: ",
		"validation error: ",
	} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return msg
}
