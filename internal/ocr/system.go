// Package ocr transcribes page images with a vision model and records the
// result on the page.
package ocr

import (
	"context"

	"github.com/JaimeStill/handnotes/internal/pages"
	"github.com/google/uuid"
)

// Options selects the transcription variant.
type Options struct {
	// Structured requests strict JSON output that is saved as ocr_json.
	Structured bool
}

// Result is the outcome of one transcription.
type Result struct {
	Text  string      `json:"text"`
	Model string      `json:"model"`
	Page  *pages.Page `json:"page,omitempty"`
}

// System transcribes stored pages.
type System interface {
	Transcribe(ctx context.Context, pageID uuid.UUID, opts Options) (*Result, error)
}
