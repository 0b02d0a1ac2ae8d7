package pages

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUploadCommand_ValidationOrder(t *testing.T) {
	docID := uuid.NewString()
	image := &File{Filename: "note.JPG", ContentType: "image/jpeg", Size: 3, Data: []byte{1, 2, 3}}

	tests := []struct {
		name       string
		documentID string
		file       *File
		maxSize    int64
		err        error
		message    string
		status     int
	}{
		{
			name:    "missing document id wins over missing file",
			file:    nil,
			err:     ErrMissingDocumentID,
			message: "Missing documentId",
			status:  http.StatusBadRequest,
		},
		{
			name:       "whitespace document id",
			documentID: "   ",
			file:       image,
			err:        ErrMissingDocumentID,
			status:     http.StatusBadRequest,
		},
		{
			name:       "malformed document id",
			documentID: "doc-1",
			file:       image,
			err:        ErrInvalidDocumentID,
			status:     http.StatusBadRequest,
		},
		{
			name:       "missing file",
			documentID: docID,
			err:        ErrMissingFile,
			message:    "Missing file",
			status:     http.StatusBadRequest,
		},
		{
			name:       "non-image checked before empty",
			documentID: docID,
			file:       &File{Filename: "a.txt", ContentType: "text/plain"},
			err:        ErrNotImage,
			message:    "File must be an image. Got: text/plain",
			status:     http.StatusBadRequest,
		},
		{
			name:       "undeclared type",
			documentID: docID,
			file:       &File{Filename: "a", Size: 1, Data: []byte{1}},
			err:        ErrNotImage,
			message:    "File must be an image. Got: unknown",
			status:     http.StatusBadRequest,
		},
		{
			name:       "empty image",
			documentID: docID,
			file:       &File{Filename: "a.png", ContentType: "image/png"},
			err:        ErrEmptyFile,
			message:    "Empty file",
			status:     http.StatusBadRequest,
		},
		{
			name:       "too large",
			documentID: docID,
			file:       image,
			maxSize:    2,
			err:        ErrFileTooLarge,
			status:     http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUploadCommand(tt.documentID, tt.file, tt.maxSize)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if tt.message != "" && err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
			if got := MapHTTPStatus(err); got != tt.status {
				t.Errorf("status = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestNewUploadCommand_Valid(t *testing.T) {
	docID := uuid.New()
	file := &File{Filename: "note.png", ContentType: "image/png", Size: 4, Data: []byte("abcd")}

	cmd, err := NewUploadCommand(" "+docID.String()+" ", file, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.DocumentID != docID {
		t.Errorf("document id = %s, want %s", cmd.DocumentID, docID)
	}
	if cmd.File.Filename != "note.png" {
		t.Errorf("file = %+v", cmd.File)
	}
}

func TestStorageKey(t *testing.T) {
	docID := uuid.New()
	token := uuid.New()
	prefix := docID.String() + "/" + token.String() + "."

	tests := []struct {
		filename string
		ext      string
	}{
		{"scan.JPG", "jpg"},
		{"photo.heic", "heic"},
		{"archive.tar.gz", "gz"},
		{"noext", "png"},
		{"", "png"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			key := StorageKey(docID, token, tt.filename)
			if !strings.HasPrefix(key, prefix) {
				t.Fatalf("key %q missing prefix %q", key, prefix)
			}
			if got := strings.TrimPrefix(key, prefix); got != tt.ext {
				t.Errorf("ext = %q, want %q", got, tt.ext)
			}
		})
	}
}
