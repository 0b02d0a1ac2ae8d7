package pages

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/handnotes/pkg/saga"
	"github.com/JaimeStill/handnotes/pkg/storage"
	"github.com/google/uuid"
)

// Saga step names reported in upload failures.
const (
	StepUpload      = "storage.upload"
	StepPublicURL   = "storage.public_url"
	StepLatestIndex = "pages.select_latest_index"
	StepInsert      = "pages.insert"
)

type insertParams struct {
	DocumentID       uuid.UUID
	PageIndex        int
	ImageOriginalURL string
	StoragePath      string
	OriginalFilename string
	MimeType         string
}

// uploader runs the upload saga against storage and two row operations.
type uploader struct {
	storage   storage.System
	lastIndex func(ctx context.Context, documentID uuid.UUID) (int, error)
	insert    func(ctx context.Context, p insertParams) (Page, error)
	token     func() uuid.UUID
	logger    *slog.Logger
}

func (u *uploader) upload(ctx context.Context, cmd UploadCommand) (*Page, error) {
	key := StorageKey(cmd.DocumentID, u.token(), cmd.File.Filename)

	var (
		publicURL string
		pageIndex int
		page      Page
	)

	s := saga.New(u.logger.With("storage_key", key),
		saga.Step{
			Name: StepUpload,
			Action: func(ctx context.Context) error {
				return u.storage.Store(ctx, key, cmd.File.Data, cmd.File.ContentType)
			},
			Compensate: func(ctx context.Context) error {
				return u.storage.Delete(ctx, key)
			},
		},
		saga.Step{
			Name: StepPublicURL,
			Action: func(ctx context.Context) error {
				publicURL = u.storage.PublicURL(key)
				if publicURL == "" {
					return ErrNoPublicURL
				}
				return nil
			},
		},
		saga.Step{
			Name: StepLatestIndex,
			Action: func(ctx context.Context) error {
				last, err := u.lastIndex(ctx, cmd.DocumentID)
				if err != nil {
					return err
				}
				pageIndex = last + 1
				return nil
			},
		},
		saga.Step{
			Name: StepInsert,
			Action: func(ctx context.Context) error {
				var err error
				page, err = u.insert(ctx, insertParams{
					DocumentID:       cmd.DocumentID,
					PageIndex:        pageIndex,
					ImageOriginalURL: publicURL,
					StoragePath:      key,
					OriginalFilename: cmd.File.Filename,
					MimeType:         cmd.File.ContentType,
				})
				return err
			},
		},
	)

	if err := s.Run(ctx); err != nil {
		return nil, err
	}

	u.logger.Info("page uploaded",
		"id", page.ID,
		"document_id", page.DocumentID,
		"page_index", page.PageIndex,
		"storage_key", key,
	)
	return &page, nil
}
