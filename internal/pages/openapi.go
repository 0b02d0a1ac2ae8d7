package pages

import "github.com/JaimeStill/handnotes/pkg/openapi"

type spec struct {
	Upload         *openapi.Operation
	Find           *openapi.Operation
	ListByDocument *openapi.Operation
}

var Spec = spec{
	Upload: &openapi.Operation{
		Summary: "Upload page",
		Description: "Store a page image for a document and insert its page row. " +
			"The next page_index is one past the highest existing index for the document. " +
			"Failures after the image is stored remove it again and report the failing step in error.extra.step.",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"documentId": {Type: "string", Format: "uuid", Description: "Owning document"},
							"file":       {Type: "string", Format: "binary", Description: "Image file (image/*)"},
						},
						Required: []string{"documentId", "file"},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page uploaded", "PageResponse"),
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "File too large"},
			500: openapi.ResponseJSON("Upload step failed", "StepError"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find page",
		Description: "Find page by ID, including its transcription state",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Page ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page details", "PageResponse"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ListByDocument: &openapi.Operation{
		Summary:     "List document pages",
		Description: "List the pages of a document ordered by page_index",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document pages", "PageList"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Page": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                 {Type: "string", Format: "uuid"},
				"document_id":        {Type: "string", Format: "uuid"},
				"page_index":         {Type: "integer", Description: "1-based position within the document"},
				"image_original_url": {Type: "string", Description: "Public URL of the stored image"},
				"storage_path":       {Type: "string", Description: "Object store key"},
				"original_filename":  {Type: "string", Nullable: true},
				"mime_type":          {Type: "string", Nullable: true},
				"ocr_text":           {Type: "string", Nullable: true},
				"ocr_json":           {Type: "object", Nullable: true, Description: "Structured transcription"},
				"processed_at":       {Type: "string", Format: "date-time", Nullable: true},
				"created_at":         {Type: "string", Format: "date-time"},
			},
		},
		"PageResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"page": openapi.SchemaRef("Page"),
			},
		},
		"PageList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"pages": {Type: "array", Items: openapi.SchemaRef("Page")},
			},
		},
		"StepError": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"error": {
					Type:     "object",
					Required: []string{"message"},
					Properties: map[string]*openapi.Schema{
						"message": {Type: "string"},
						"code":    {Type: "string", Description: "PostgreSQL error code, when the store failed"},
						"extra": {
							Type: "object",
							Properties: map[string]*openapi.Schema{
								"step": {Type: "string"},
							},
						},
					},
				},
			},
		},
	}
}
