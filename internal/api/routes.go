package api

import (
	"net/http"

	"github.com/JaimeStill/handnotes/internal/config"
	"github.com/JaimeStill/handnotes/internal/documents"
	"github.com/JaimeStill/handnotes/internal/ocr"
	"github.com/JaimeStill/handnotes/internal/pages"
	"github.com/JaimeStill/handnotes/pkg/openapi"
	"github.com/JaimeStill/handnotes/pkg/routes"
	"github.com/JaimeStill/handnotes/pkg/storage"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
	cfg *config.Config,
) {
	documentsHandler := documents.NewHandler(domain.Documents, runtime.Logger, runtime.Pagination)
	pagesHandler := pages.NewHandler(domain.Pages, runtime.Logger, runtime.MaxUploadSize)
	ocrHandler := ocr.NewHandler(domain.OCR, runtime.Logger)

	groups := []routes.Group{
		documentsHandler.Routes(),
		pagesHandler.Routes(),
		pagesHandler.DocumentRoutes(),
		ocrHandler.Routes(),
		ocrHandler.ProcessRoutes(),
	}

	if cfg.Storage.Backend == storage.BackendFilesystem {
		groups = append(groups, storage.NewHandler(runtime.Storage, runtime.Logger).Routes())
	}

	spec.Components.AddSchemas(documents.Spec.Schemas())
	spec.Components.AddSchemas(pages.Spec.Schemas())
	spec.Components.AddSchemas(ocr.Spec.Schemas())

	routes.Register(mux, cfg.API.BasePath, spec, groups...)
}
