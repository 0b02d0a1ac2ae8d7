package storage

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path"

	"github.com/JaimeStill/handnotes/pkg/handlers"
	"github.com/JaimeStill/handnotes/pkg/openapi"
	"github.com/JaimeStill/handnotes/pkg/routes"
)

// Handler serves stored objects over HTTP so filesystem-backed keys have a
// resolvable public URL.
type Handler struct {
	store  System
	logger *slog.Logger
}

func NewHandler(store System, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger.With("handler", "storage"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/storage",
		Tags:        []string{"Storage"},
		Description: "Public access to stored objects",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/{key...}",
				Handler: h.Serve,
				OpenAPI: &openapi.Operation{
					Summary: "Fetch stored object",
					Parameters: []*openapi.Parameter{
						{Name: "key", In: "path", Required: true, Schema: &openapi.Schema{Type: "string"}},
					},
					Responses: map[int]*openapi.Response{
						200: {Description: "Object bytes"},
						404: openapi.ResponseRef("NotFound"),
					},
				},
			},
		},
	}
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	data, err := h.store.Retrieve(r.Context(), key)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidKey):
			status = http.StatusNotFound
		case errors.Is(err, ErrPermissionDenied):
			status = http.StatusForbidden
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
