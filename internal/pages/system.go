package pages

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// System defines page operations.
type System interface {
	// Upload stores the image and inserts its page row, undoing the stored
	// object when a later step fails.
	Upload(ctx context.Context, cmd UploadCommand) (*Page, error)
	Find(ctx context.Context, id uuid.UUID) (*Page, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]Page, error)

	// SaveTranscription overwrites the OCR fields of a page. A nil ocrJSON
	// clears any previous structured result.
	SaveTranscription(ctx context.Context, id uuid.UUID, text string, ocrJSON json.RawMessage, processedAt time.Time) (*Page, error)
}
