// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Detailer is implemented by errors that carry diagnostic fields to be
// included alongside the message in the error envelope.
type Detailer interface {
	Details() map[string]any
}

// ErrorBody is the payload nested under "error" in every failure response.
type ErrorBody map[string]any

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// The response body has the shape {"error": {"message": "...", ...details}}
// where details come from any Detailer in the error chain.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondJSON(w, status, map[string]ErrorBody{"error": NewErrorBody(err)})
}

// NewErrorBody builds the envelope payload for err.
func NewErrorBody(err error) ErrorBody {
	body := ErrorBody{}

	var d Detailer
	if errors.As(err, &d) {
		for k, v := range d.Details() {
			body[k] = v
		}
	}

	body["message"] = err.Error()
	return body
}
