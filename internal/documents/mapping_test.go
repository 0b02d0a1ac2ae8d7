package documents

import (
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/handnotes/pkg/query"
)

func TestFilters_Apply(t *testing.T) {
	values := url.Values{}
	values.Set("title", "meeting")
	values.Set("template_type", "work_doc_notes")

	qb := query.NewBuilder(projection, defaultSort)
	FiltersFromQuery(values).Apply(qb)

	sql, args := qb.Build()

	for _, want := range []string{
		"d.title ILIKE $1",
		"d.template_type = $2",
		"ORDER BY d.created_at DESC",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("sql missing %q: %s", want, sql)
		}
	}

	if len(args) != 2 || args[0] != "%meeting%" || args[1] != "work_doc_notes" {
		t.Errorf("args = %v", args)
	}
}

func TestFiltersFromQuery_Empty(t *testing.T) {
	f := FiltersFromQuery(url.Values{})
	if f.Title != nil || f.TemplateType != nil {
		t.Errorf("expected no filters, got %+v", f)
	}

	sql, args := f.Apply(query.NewBuilder(projection)).Build()
	if strings.Contains(sql, "WHERE") || len(args) != 0 {
		t.Errorf("unexpected conditions: %s %v", sql, args)
	}
}
