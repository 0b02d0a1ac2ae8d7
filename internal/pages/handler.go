package pages

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/handnotes/pkg/handlers"
	"github.com/JaimeStill/handnotes/pkg/routes"
	"github.com/google/uuid"
)

// multipartOverhead is the body allowance beyond the file for boundaries and form fields.
const multipartOverhead = 1 << 20

// Handler provides HTTP endpoints for page operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "pages"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the page endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/pages",
		Tags:        []string{"Pages"},
		Description: "Page image upload and lookup",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Upload, OpenAPI: Spec.Upload},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
		},
	}
}

// DocumentRoutes returns the routes nested under a document.
func (h *Handler) DocumentRoutes() routes.Group {
	return routes.Group{
		Prefix: "/documents",
		Tags:   []string{"Pages"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/pages", Handler: h.ListByDocument, OpenAPI: Spec.ListByDocument},
		},
	}
}

// Upload handles POST /api/pages with multipart fields documentId and file.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
			return
		case !errors.Is(err, http.ErrNotMultipart):
			handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
			return
		}
	}

	file, err := formFile(r, "file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := NewUploadCommand(r.FormValue("documentId"), file, h.maxUploadSize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	page, err := h.sys.Upload(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Page: page})
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrNotFound)
		return
	}

	page, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Page: page})
}

func (h *Handler) ListByDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidDocumentID)
		return
	}

	pages, err := h.sys.ListByDocument(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{Pages: pages})
}

// formFile returns nil when the field is absent.
func formFile(r *http.Request, field string) (*File, error) {
	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}

	return &File{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Data:        data,
	}, nil
}
