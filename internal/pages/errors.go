package pages

import (
	"errors"
	"net/http"
)

// Messages are part of the API contract and returned verbatim to clients.
var (
	ErrNotFound          = errors.New("Page not found")
	ErrMissingDocumentID = errors.New("Missing documentId")
	ErrInvalidDocumentID = errors.New("Invalid documentId")
	ErrMissingFile       = errors.New("Missing file")
	ErrNotImage          = errors.New("File must be an image")
	ErrEmptyFile         = errors.New("Empty file")
	ErrFileTooLarge      = errors.New("File exceeds maximum upload size")
	ErrNoPublicURL       = errors.New("Failed to create public URL for uploaded file.")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrMissingDocumentID),
		errors.Is(err, ErrInvalidDocumentID),
		errors.Is(err, ErrMissingFile),
		errors.Is(err, ErrNotImage),
		errors.Is(err, ErrEmptyFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
