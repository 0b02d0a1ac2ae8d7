package ocr

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/handnotes/pkg/handlers"
	"github.com/JaimeStill/handnotes/pkg/routes"
	"github.com/google/uuid"
)

// Request is the body of POST /api/ocr.
type Request struct {
	PageID     string `json:"pageId"`
	Structured bool   `json:"structured"`
}

// ProcessedPage is the page projection answered by the process endpoint.
type ProcessedPage struct {
	ID      uuid.UUID `json:"id"`
	OcrText string    `json:"ocr_text"`
}

// ProcessResponse is the body of POST /api/pages/{pageId}/process.
type ProcessResponse struct {
	Page ProcessedPage `json:"page"`
}

// Handler provides HTTP endpoints for OCR.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "ocr"),
	}
}

// Routes returns the OCR endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/ocr",
		Tags:        []string{"OCR"},
		Description: "Handwriting transcription",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Transcribe, OpenAPI: Spec.Transcribe},
		},
	}
}

// ProcessRoutes returns the page processing route, nested under pages.
func (h *Handler) ProcessRoutes() routes.Group {
	return routes.Group{
		Prefix: "/pages",
		Tags:   []string{"OCR"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{pageId}/process", Handler: h.Process, OpenAPI: Spec.Process},
		},
	}
}

// Transcribe handles POST /api/ocr. An unreadable body is treated as empty.
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = Request{}
	}

	pageID := strings.TrimSpace(req.PageID)
	if pageID == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingPageID)
		return
	}

	id, err := uuid.Parse(pageID)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrPageNotFound)
		return
	}

	result, err := h.sys.Transcribe(r.Context(), id, Options{Structured: req.Structured})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Process handles POST /api/pages/{pageId}/process by running a plain
// transcription and reshaping the result.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("pageId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrPageNotFound)
		return
	}

	result, err := h.sys.Transcribe(r.Context(), id, Options{})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ProcessResponse{
		Page: ProcessedPage{ID: id, OcrText: result.Text},
	})
}
