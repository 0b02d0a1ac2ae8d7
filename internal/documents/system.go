package documents

import (
	"context"

	"github.com/JaimeStill/handnotes/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the document operations.
type System interface {
	// Create inserts a document with the default title and template type.
	Create(ctx context.Context) (*Document, error)
	Find(ctx context.Context, id uuid.UUID) (*Document, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error)
}
