package api

import (
	"net/http"

	"github.com/JaimeStill/handnotes/internal/config"
	"github.com/JaimeStill/handnotes/internal/infrastructure"
	"github.com/JaimeStill/handnotes/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination    pagination.Config
	MaxUploadSize int64
	MaxImageSize  int64
	HTTPClient    *http.Client
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle:   infra.Lifecycle,
			Logger:      infra.Logger.With("module", "api"),
			Database:    infra.Database,
			Storage:     infra.Storage,
			Transcriber: infra.Transcriber,
		},
		Pagination:    cfg.API.Pagination,
		MaxUploadSize: cfg.Storage.MaxUploadSizeBytes(),
		MaxImageSize:  cfg.OCR.MaxImageSizeBytes(),
		HTTPClient:    &http.Client{Timeout: cfg.OCR.FetchTimeoutDuration()},
	}
}
