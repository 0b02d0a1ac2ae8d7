package ocr

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/JaimeStill/handnotes/pkg/decode"
)

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Paragraph is one item of a structured transcription.
type Paragraph struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text"`
}

// Structured is the parsed structured_json object.
type Structured struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

type structuredOutput struct {
	CleanedText    string     `json:"cleaned_text"`
	StructuredJSON Structured `json:"structured_json"`
}

// parseStructured reads the model's JSON response. Direct parsing is tried
// first, then the contents of a fenced code block.
func parseStructured(content string) (structuredOutput, json.RawMessage, error) {
	content = strings.TrimSpace(content)

	obj, ok := unmarshalObject(content)
	if !ok {
		if m := jsonBlockRegex.FindStringSubmatch(content); len(m) >= 2 {
			obj, ok = unmarshalObject(strings.TrimSpace(m[1]))
		}
	}
	if !ok {
		return structuredOutput{}, nil, &OutputError{Err: ErrInvalidJSON, Raw: content}
	}

	if missing := decode.Missing(obj, "cleaned_text", "structured_json"); len(missing) > 0 {
		return structuredOutput{}, nil, &OutputError{Err: ErrMissingFields, Raw: content}
	}

	out, err := decode.FromMap[structuredOutput](obj)
	if err != nil {
		return structuredOutput{}, nil, &OutputError{Err: ErrMissingFields, Raw: content}
	}

	raw, err := json.Marshal(obj["structured_json"])
	if err != nil {
		return structuredOutput{}, nil, &OutputError{Err: ErrInvalidJSON, Raw: content}
	}

	out.CleanedText = strings.TrimSpace(out.CleanedText)
	return out, raw, nil
}

func unmarshalObject(s string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}
