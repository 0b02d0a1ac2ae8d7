// Package vision sends images to a vision-capable language model and
// returns the text it produces. Images always travel inline as base64 data
// URIs so the model never needs network access to the object store.
package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrEmptyResponse indicates the model returned no text.
	ErrEmptyResponse = errors.New("vision model returned an empty response")

	// ErrInvalidDataURI indicates an image is not a base64 data URI.
	ErrInvalidDataURI = errors.New("invalid image data URI")
)

// Request is a single transcription call.
type Request struct {
	Instruction string

	// Images are data URIs of the form data:<mime>;base64,<payload>.
	Images []string

	// Detail overrides the configured image detail hint when set.
	Detail string

	// JSON asks the model for a strict JSON response.
	JSON bool
}

// Response carries the model text and the model that produced it.
type Response struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// Transcriber is the vision model client.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request) (*Response, error)

	// Model reports the configured model identifier.
	Model() string
}

// New creates the Transcriber selected by cfg.Provider.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (Transcriber, error) {
	logger = logger.With("system", "vision", "provider", string(cfg.Provider))

	switch cfg.Provider {
	case ProviderAgents, "":
		return newAgents(cfg, logger)
	case ProviderGemini:
		return newGemini(ctx, cfg, logger)
	case ProviderVertex:
		return newVertex(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", cfg.Provider)
	}
}

// EncodeDataURI builds a base64 data URI for data.
func EncodeDataURI(data []byte, contentType string) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI splits a base64 data URI into its MIME type and payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}

	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok || mime == "" {
		return "", nil, ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}
	return mime, data, nil
}

// imageFormat returns the subtype of an image MIME type, as genai.ImageData expects.
func imageFormat(mime string) string {
	format := strings.TrimPrefix(mime, "image/")
	if i := strings.IndexAny(format, ";+"); i >= 0 {
		format = format[:i]
	}
	return format
}
