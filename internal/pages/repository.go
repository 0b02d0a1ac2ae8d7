package pages

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/handnotes/pkg/query"
	"github.com/JaimeStill/handnotes/pkg/repository"
	"github.com/JaimeStill/handnotes/pkg/storage"
	"github.com/google/uuid"
)

type repo struct {
	db       *sql.DB
	logger   *slog.Logger
	uploader *uploader
}

// New creates a page repository with database and object storage integration.
func New(db *sql.DB, store storage.System, logger *slog.Logger) System {
	r := &repo{
		db:     db,
		logger: logger.With("system", "pages"),
	}

	r.uploader = &uploader{
		storage:   store,
		lastIndex: r.lastIndex,
		insert:    r.insert,
		token:     uuid.New,
		logger:    r.logger,
	}

	return r
}

func (r *repo) Upload(ctx context.Context, cmd UploadCommand) (*Page, error) {
	return r.uploader.upload(ctx, cmd)
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Page, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("Id", id)

	page, err := repository.QueryOne(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &page, nil
}

func (r *repo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]Page, error) {
	q, args := query.
		NewBuilder(projection, documentSort).
		WhereEquals("DocumentId", documentID).
		Build()

	pages, err := repository.QueryMany(ctx, r.db, q, args, scanPage)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	return pages, nil
}

func (r *repo) SaveTranscription(ctx context.Context, id uuid.UUID, text string, ocrJSON json.RawMessage, processedAt time.Time) (*Page, error) {
	q := `UPDATE pages SET ocr_text = $1, ocr_json = $2, processed_at = $3
		WHERE id = $4
		RETURNING ` + returning

	var jsonArg any
	if len(ocrJSON) > 0 {
		jsonArg = string(ocrJSON)
	}

	page, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Page, error) {
		return repository.QueryOne(ctx, tx, q, []any{text, jsonArg, processedAt, id}, scanPage)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, repository.Wrap("pages.update", err)
	}

	r.logger.Info("page transcription saved", "id", id, "chars", len(text))
	return &page, nil
}

// lastIndex returns the highest page_index of the document, or 0.
// The read and the following insert are not atomic.
func (r *repo) lastIndex(ctx context.Context, documentID uuid.UUID) (int, error) {
	q := `SELECT COALESCE(MAX(page_index), 0) FROM pages WHERE document_id = $1`

	var last int
	if err := r.db.QueryRowContext(ctx, q, documentID).Scan(&last); err != nil {
		return 0, repository.Wrap(StepLatestIndex, err)
	}
	return last, nil
}

func (r *repo) insert(ctx context.Context, p insertParams) (Page, error) {
	q := `INSERT INTO pages(document_id, page_index, image_original_url, storage_path, original_filename, mime_type)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING ` + returning

	page, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Page, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			p.DocumentID, p.PageIndex, p.ImageOriginalURL, p.StoragePath, p.OriginalFilename, p.MimeType,
		}, scanPage)
	})
	if err != nil {
		return Page{}, repository.Wrap(StepInsert, err)
	}
	return page, nil
}
