package pages_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/JaimeStill/handnotes/internal/pages"
	"github.com/JaimeStill/handnotes/pkg/routes"
	"github.com/google/uuid"
)

type fakeSystem struct {
	uploads []pages.UploadCommand
	pages   map[uuid.UUID]pages.Page
}

func (f *fakeSystem) Upload(ctx context.Context, cmd pages.UploadCommand) (*pages.Page, error) {
	f.uploads = append(f.uploads, cmd)
	p := pages.Page{
		ID:               uuid.New(),
		DocumentID:       cmd.DocumentID,
		PageIndex:        len(f.uploads),
		ImageOriginalURL: "http://localhost/api/storage/" + cmd.File.Filename,
		StoragePath:      cmd.File.Filename,
		CreatedAt:        time.Now(),
	}
	f.pages[p.ID] = p
	return &p, nil
}

func (f *fakeSystem) Find(ctx context.Context, id uuid.UUID) (*pages.Page, error) {
	p, ok := f.pages[id]
	if !ok {
		return nil, pages.ErrNotFound
	}
	return &p, nil
}

func (f *fakeSystem) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]pages.Page, error) {
	result := []pages.Page{}
	for _, p := range f.pages {
		if p.DocumentID == documentID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeSystem) SaveTranscription(ctx context.Context, id uuid.UUID, text string, ocrJSON json.RawMessage, processedAt time.Time) (*pages.Page, error) {
	return nil, pages.ErrNotFound
}

func newServer(sys pages.System, maxSize int64) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := pages.NewHandler(sys, logger, maxSize)

	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, h.Routes(), h.DocumentRoutes())
	return mux
}

type part struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, fields map[string]string, file *part) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		mw.WriteField(k, v)
	}

	if file != nil {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.filename+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		w, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		w.Write(file.data)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/pages", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func errorMessage(t *testing.T, body io.Reader) string {
	t.Helper()
	var env struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return env.Error.Message
}

func TestHandler_Upload_Validation(t *testing.T) {
	docID := uuid.NewString()
	jpeg := &part{field: "file", filename: "note.jpg", contentType: "image/jpeg", data: []byte("jpegdata")}

	tests := []struct {
		name    string
		fields  map[string]string
		file    *part
		status  int
		message string
	}{
		{"missing documentId", nil, jpeg, http.StatusBadRequest, "Missing documentId"},
		{"missing file", map[string]string{"documentId": docID}, nil, http.StatusBadRequest, "Missing file"},
		{
			"not an image",
			map[string]string{"documentId": docID},
			&part{field: "file", filename: "notes.txt", contentType: "text/plain", data: []byte("hi")},
			http.StatusBadRequest,
			"File must be an image. Got: text/plain",
		},
		{
			"empty file",
			map[string]string{"documentId": docID},
			&part{field: "file", filename: "empty.png", contentType: "image/png"},
			http.StatusBadRequest,
			"Empty file",
		},
		{
			"too large",
			map[string]string{"documentId": docID},
			&part{field: "file", filename: "big.png", contentType: "image/png", data: bytes.Repeat([]byte{1}, 64)},
			http.StatusRequestEntityTooLarge,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &fakeSystem{pages: map[uuid.UUID]pages.Page{}}
			srv := newServer(sys, 32)

			w := httptest.NewRecorder()
			srv.ServeHTTP(w, multipartRequest(t, tt.fields, tt.file))

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.status, w.Body)
			}
			if tt.message != "" {
				if got := errorMessage(t, w.Body); got != tt.message {
					t.Errorf("message = %q, want %q", got, tt.message)
				}
			}
			if len(sys.uploads) != 0 {
				t.Error("upload reached the system despite failed validation")
			}
		})
	}
}

func TestHandler_Upload_NotMultipart(t *testing.T) {
	sys := &fakeSystem{pages: map[uuid.UUID]pages.Page{}}
	srv := newServer(sys, 1024)

	req := httptest.NewRequest(http.MethodPost, "/pages", bytes.NewBufferString(`{"documentId":"x"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := errorMessage(t, w.Body); got != "Missing documentId" {
		t.Errorf("message = %q", got)
	}
}

func TestHandler_Upload_Success(t *testing.T) {
	sys := &fakeSystem{pages: map[uuid.UUID]pages.Page{}}
	srv := newServer(sys, 1024)
	docID := uuid.New()

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, multipartRequest(t,
		map[string]string{"documentId": docID.String()},
		&part{field: "file", filename: "Scan.JPG", contentType: "image/jpeg", data: []byte("jpegdata")},
	))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body)
	}

	var resp pages.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Page == nil || resp.Page.DocumentID != docID || resp.Page.PageIndex != 1 {
		t.Errorf("page = %+v", resp.Page)
	}

	cmd := sys.uploads[0]
	if cmd.File.ContentType != "image/jpeg" || cmd.File.Size != 8 || string(cmd.File.Data) != "jpegdata" {
		t.Errorf("command file = %+v", cmd.File)
	}
}

func TestHandler_FindAndList(t *testing.T) {
	sys := &fakeSystem{pages: map[uuid.UUID]pages.Page{}}
	docID := uuid.New()
	p, _ := sys.Upload(context.Background(), pages.UploadCommand{DocumentID: docID, File: pages.File{Filename: "a.png"}})
	srv := newServer(sys, 1024)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"find", "/pages/" + p.ID.String(), http.StatusOK},
		{"find unknown", "/pages/" + uuid.NewString(), http.StatusNotFound},
		{"find malformed", "/pages/abc", http.StatusNotFound},
		{"list by document", "/documents/" + docID.String() + "/pages", http.StatusOK},
		{"list malformed", "/documents/abc/pages", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}
