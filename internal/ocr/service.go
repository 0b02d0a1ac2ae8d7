package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JaimeStill/handnotes/internal/pages"
	"github.com/JaimeStill/handnotes/internal/vision"
	"github.com/google/uuid"
)

type service struct {
	pages       pages.System
	transcriber vision.Transcriber
	fetcher     *fetcher
	logger      *slog.Logger
	now         func() time.Time
}

// New creates the OCR system. Images larger than maxImageSize are refused;
// zero disables the limit.
func New(pagesSys pages.System, transcriber vision.Transcriber, client *http.Client, maxImageSize int64, logger *slog.Logger) System {
	return &service{
		pages:       pagesSys,
		transcriber: transcriber,
		fetcher:     &fetcher{client: client, maxSize: maxImageSize},
		logger:      logger.With("system", "ocr"),
		now:         time.Now,
	}
}

func (s *service) Transcribe(ctx context.Context, pageID uuid.UUID, opts Options) (*Result, error) {
	page, err := s.pages.Find(ctx, pageID)
	if err != nil {
		if errors.Is(err, pages.ErrNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("load page: %w", err)
	}

	imageURL := strings.TrimSpace(page.ImageOriginalURL)
	if imageURL == "" {
		return nil, ErrPageNotFound
	}

	data, contentType, err := s.fetcher.fetch(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	instruction := Instruction
	if opts.Structured {
		instruction = StructuredInstruction
	}

	resp, err := s.transcriber.Transcribe(ctx, vision.Request{
		Instruction: instruction,
		Images:      []string{vision.EncodeDataURI(data, contentType)},
		Detail:      detail,
		JSON:        opts.Structured,
	})
	if err != nil {
		if errors.Is(err, vision.ErrEmptyResponse) {
			return nil, ErrEmptyOutput
		}
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	processedAt := s.now().UTC()

	if opts.Structured {
		return s.saveStructured(ctx, pageID, resp, processedAt)
	}
	return s.savePlain(ctx, pageID, resp, processedAt)
}

// savePlain records the text best-effort: update failures are logged and
// the transcription is still returned.
func (s *service) savePlain(ctx context.Context, pageID uuid.UUID, resp *vision.Response, processedAt time.Time) (*Result, error) {
	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return nil, ErrEmptyOutput
	}

	if _, err := s.pages.SaveTranscription(ctx, pageID, text, nil, processedAt); err != nil {
		s.logger.Warn("transcription not saved", "page_id", pageID, "error", err)
	} else {
		s.logger.Info("page transcribed", "page_id", pageID, "model", resp.Model, "chars", len(text))
	}

	return &Result{Text: text, Model: resp.Model}, nil
}

func (s *service) saveStructured(ctx context.Context, pageID uuid.UUID, resp *vision.Response, processedAt time.Time) (*Result, error) {
	out, ocrJSON, err := parseStructured(resp.Text)
	if err != nil {
		return nil, err
	}

	page, err := s.pages.SaveTranscription(ctx, pageID, out.CleanedText, ocrJSON, processedAt)
	if err != nil {
		return nil, fmt.Errorf("save transcription: %w", err)
	}

	s.logger.Info("page transcribed",
		"page_id", pageID,
		"model", resp.Model,
		"paragraphs", len(out.StructuredJSON.Paragraphs),
	)
	return &Result{Text: out.CleanedText, Model: resp.Model, Page: page}, nil
}
