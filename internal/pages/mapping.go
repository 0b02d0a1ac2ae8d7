package pages

import (
	"github.com/JaimeStill/handnotes/pkg/query"
	"github.com/JaimeStill/handnotes/pkg/repository"
)

var projection = query.NewProjectionMap("public", "pages", "p").
	Project("id", "Id").
	Project("document_id", "DocumentId").
	Project("page_index", "PageIndex").
	Project("image_original_url", "ImageOriginalUrl").
	Project("storage_path", "StoragePath").
	Project("original_filename", "OriginalFilename").
	Project("mime_type", "MimeType").
	Project("ocr_text", "OcrText").
	Project("ocr_json", "OcrJson").
	Project("processed_at", "ProcessedAt").
	Project("created_at", "CreatedAt")

var documentSort = query.SortField{Field: "PageIndex"}

// returning lists the columns in scanPage order for RETURNING clauses.
const returning = `id, document_id, page_index, image_original_url, storage_path,
	original_filename, mime_type, ocr_text, ocr_json, processed_at, created_at`

func scanPage(s repository.Scanner) (Page, error) {
	var p Page
	var ocrJSON []byte
	err := s.Scan(
		&p.ID,
		&p.DocumentID,
		&p.PageIndex,
		&p.ImageOriginalURL,
		&p.StoragePath,
		&p.OriginalFilename,
		&p.MimeType,
		&p.OcrText,
		&ocrJSON,
		&p.ProcessedAt,
		&p.CreatedAt,
	)
	if len(ocrJSON) > 0 {
		p.OcrJSON = ocrJSON
	}
	return p, err
}
