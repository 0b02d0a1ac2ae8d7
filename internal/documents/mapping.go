package documents

import (
	"net/url"

	"github.com/JaimeStill/handnotes/pkg/query"
	"github.com/JaimeStill/handnotes/pkg/repository"
)

var projection = query.NewProjectionMap("public", "documents", "d").
	Project("id", "Id").
	Project("title", "Title").
	Project("template_type", "TemplateType").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanDocument(s repository.Scanner) (Document, error) {
	var d Document
	err := s.Scan(
		&d.ID,
		&d.Title,
		&d.TemplateType,
		&d.CreatedAt,
	)
	return d, err
}

// Filters contains optional criteria for filtering document queries.
type Filters struct {
	Title        *string
	TemplateType *string
}

// FiltersFromQuery extracts document filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if t := values.Get("title"); t != "" {
		f.Title = &t
	}

	if tt := values.Get("template_type"); tt != "" {
		f.TemplateType = &tt
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Title", f.Title)
	if f.TemplateType != nil {
		b.WhereEquals("TemplateType", *f.TemplateType)
	}
	return b
}
