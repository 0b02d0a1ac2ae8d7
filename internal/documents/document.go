// Package documents creates and reads Documents, the logical grouping that
// uploaded pages belong to.
package documents

import (
	"time"

	"github.com/google/uuid"
)

// Default values applied by the database when a document is created.
const (
	DefaultTitle        = "Untitled"
	DefaultTemplateType = "work_doc_notes"
)

// Document groups one or more uploaded pages.
type Document struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	TemplateType string    `json:"template_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreatedResponse is the body returned by document creation.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
