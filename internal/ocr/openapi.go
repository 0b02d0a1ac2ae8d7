package ocr

import "github.com/JaimeStill/handnotes/pkg/openapi"

type spec struct {
	Transcribe *openapi.Operation
	Process    *openapi.Operation
}

var Spec = spec{
	Transcribe: &openapi.Operation{
		Summary: "Transcribe page",
		Description: "Download the page image, send it inline to the vision model, and save the transcription on the page. " +
			"With structured set, the model answers in JSON, the paragraphs are saved as ocr_json, and the updated page is returned.",
		RequestBody: openapi.RequestBodyJSON("OcrRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Transcription", "OcrResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Process: &openapi.Operation{
		Summary:     "Process page",
		Description: "Run a plain transcription for the page and return its id and text. Error statuses match POST /api/ocr.",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("pageId", "Page ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Processed page", "ProcessResponse"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"OcrRequest": {
			Type:     "object",
			Required: []string{"pageId"},
			Properties: map[string]*openapi.Schema{
				"pageId":     {Type: "string", Format: "uuid"},
				"structured": {Type: "boolean", Description: "Request structured JSON output"},
			},
		},
		"OcrResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"text":  {Type: "string", Description: "Transcribed text"},
				"model": {Type: "string", Description: "Model that produced the transcription"},
				"page":  {Ref: "#/components/schemas/Page", Description: "Updated page (structured only)"},
			},
		},
		"ProcessResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"page": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"id":       {Type: "string", Format: "uuid"},
						"ocr_text": {Type: "string"},
					},
				},
			},
		},
	}
}
