// Package pages stores uploaded page images and their transcription state.
// Uploads run as a saga: the blob is written first and removed again if any
// later step fails.
package pages

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Page is one uploaded image within a Document.
type Page struct {
	ID               uuid.UUID       `json:"id"`
	DocumentID       uuid.UUID       `json:"document_id"`
	PageIndex        int             `json:"page_index"`
	ImageOriginalURL string          `json:"image_original_url"`
	StoragePath      string          `json:"storage_path"`
	OriginalFilename *string         `json:"original_filename"`
	MimeType         *string         `json:"mime_type"`
	OcrText          *string         `json:"ocr_text"`
	OcrJSON          json.RawMessage `json:"ocr_json"`
	ProcessedAt      *time.Time      `json:"processed_at"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Response wraps a page for single-page endpoints.
type Response struct {
	Page *Page `json:"page"`
}

// ListResponse wraps the pages of a document.
type ListResponse struct {
	Pages []Page `json:"pages"`
}

// File is an uploaded binary with its declared metadata.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// UploadCommand is a validated page upload.
type UploadCommand struct {
	DocumentID uuid.UUID
	File       File
}

// NewUploadCommand validates the upload inputs in order and stops at the
// first failure: document id, file presence, content type, size.
func NewUploadCommand(documentID string, file *File, maxSize int64) (UploadCommand, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return UploadCommand{}, ErrMissingDocumentID
	}

	id, err := uuid.Parse(documentID)
	if err != nil {
		return UploadCommand{}, ErrInvalidDocumentID
	}

	if file == nil {
		return UploadCommand{}, ErrMissingFile
	}

	if !strings.HasPrefix(file.ContentType, "image/") {
		typ := file.ContentType
		if typ == "" {
			typ = "unknown"
		}
		return UploadCommand{}, fmt.Errorf("%w. Got: %s", ErrNotImage, typ)
	}

	if file.Size <= 0 || len(file.Data) == 0 {
		return UploadCommand{}, ErrEmptyFile
	}

	if maxSize > 0 && file.Size > maxSize {
		return UploadCommand{}, ErrFileTooLarge
	}

	return UploadCommand{DocumentID: id, File: *file}, nil
}

// StorageKey returns {document_id}/{token}.{ext} where ext is the lower-cased
// filename suffix, or png when the filename has none.
func StorageKey(documentID, token uuid.UUID, filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		ext = "png"
	}
	return fmt.Sprintf("%s/%s.%s", documentID, token, ext)
}
