package vision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiTranscriber struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	name    string
	timeout time.Duration
	logger  *slog.Logger
}

func newGemini(ctx context.Context, cfg *Config, logger *slog.Logger) (Transcriber, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("gemini provider requires a token")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Token))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(0)

	return &geminiTranscriber{
		client:  client,
		model:   model,
		name:    cfg.Model,
		timeout: cfg.TimeoutDuration(),
		logger:  logger,
	}, nil
}

func (t *geminiTranscriber) Model() string {
	return t.name
}

func (t *geminiTranscriber) Close() error {
	return t.client.Close()
}

func (t *geminiTranscriber) Transcribe(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	parts := make([]genai.Part, 0, len(req.Images)+1)
	for _, uri := range req.Images {
		mime, data, err := DecodeDataURI(uri)
		if err != nil {
			return nil, err
		}
		parts = append(parts, genai.ImageData(imageFormat(mime), data))
	}
	parts = append(parts, genai.Text(req.Instruction))

	// The model value is shared; JSON mode is applied to a copy.
	model := *t.model
	if req.JSON {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return nil, ErrEmptyResponse
	}

	t.logger.Debug("gemini response received", "model", t.name, "chars", len(text))
	return &Response{Text: text, Model: t.name}, nil
}
