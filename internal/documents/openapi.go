package documents

import "github.com/JaimeStill/handnotes/pkg/openapi"

type spec struct {
	Create *openapi.Operation
	List   *openapi.Operation
	Find   *openapi.Operation
}

var Spec = spec{
	Create: &openapi.Operation{
		Summary:     "Create document",
		Description: "Create an empty document titled \"Untitled\" with the work_doc_notes template. No request body is read.",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document created", "DocumentCreated"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List documents",
		Description: "List documents with pagination and optional filters",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number", false),
			openapi.QueryParam("page_size", "integer", "Items per page", false),
			openapi.QueryParam("search", "string", "Search in title", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields, '-' prefix for descending", false),
			openapi.QueryParam("title", "string", "Filter by title (contains)", false),
			openapi.QueryParam("template_type", "string", "Filter by template type (exact)", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Documents list", "DocumentPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find document",
		Description: "Find document by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Document ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Document details", "Document"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Document": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", Format: "uuid"},
				"title":         {Type: "string"},
				"template_type": {Type: "string"},
				"created_at":    {Type: "string", Format: "date-time"},
			},
		},
		"DocumentCreated": {
			Type:     "object",
			Required: []string{"id"},
			Properties: map[string]*openapi.Schema{
				"id": {Type: "string", Format: "uuid"},
			},
		},
		"DocumentPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Document")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
