package api

import (
	"github.com/JaimeStill/handnotes/internal/documents"
	"github.com/JaimeStill/handnotes/internal/ocr"
	"github.com/JaimeStill/handnotes/internal/pages"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents documents.System
	Pages     pages.System
	OCR       ocr.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	documentsSys := documents.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	pagesSys := pages.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
	)

	ocrSys := ocr.New(
		pagesSys,
		runtime.Transcriber,
		runtime.HTTPClient,
		runtime.MaxImageSize,
		runtime.Logger,
	)

	return &Domain{
		Documents: documentsSys,
		Pages:     pagesSys,
		OCR:       ocrSys,
	}
}
