package ocr

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/handnotes/internal/pages"
)

// Messages are part of the API contract and returned verbatim to clients.
var (
	ErrMissingPageID = errors.New("Missing pageId")
	ErrPageNotFound  = errors.New("Page not found / missing image_original_url")
	ErrDownload      = errors.New("Failed to download image")
	ErrNotImage      = errors.New("URL did not return an image")
	ErrImageTooLarge = errors.New("Image exceeds maximum size")
	ErrEmptyOutput   = errors.New("Model returned no text")
	ErrInvalidJSON   = errors.New("Model output was not valid JSON")
	ErrMissingFields = errors.New("Model output missing expected fields")
)

// rawExcerptLimit caps the model output echoed back in parse failures.
const rawExcerptLimit = 500

// OutputError reports unusable model output along with an excerpt of it.
type OutputError struct {
	Err error
	Raw string
}

func (e *OutputError) Error() string {
	return e.Err.Error()
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

func (e *OutputError) Details() map[string]any {
	return map[string]any{"raw": excerpt(e.Raw)}
}

func excerpt(s string) string {
	r := []rune(s)
	if len(r) <= rawExcerptLimit {
		return s
	}
	return string(r[:rawExcerptLimit])
}

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingPageID), errors.Is(err, ErrNotImage):
		return http.StatusBadRequest
	case errors.Is(err, ErrPageNotFound), errors.Is(err, pages.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
