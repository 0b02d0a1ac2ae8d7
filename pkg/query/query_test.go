package query_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/handnotes/pkg/query"
)

func newProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "pages", "p").
		Project("id", "Id").
		Project("document_id", "DocumentId").
		Project("page_index", "PageIndex")
}

func TestProjectionMap(t *testing.T) {
	pm := newProjection()

	if pm.Table() != "public.pages p" {
		t.Errorf("Table() = %q, want %q", pm.Table(), "public.pages p")
	}
	if pm.Columns() != "p.id, p.document_id, p.page_index" {
		t.Errorf("Columns() = %q", pm.Columns())
	}
	if pm.Column("PageIndex") != "p.page_index" {
		t.Errorf("Column(PageIndex) = %q", pm.Column("PageIndex"))
	}
	if pm.Column("Unknown") != "Unknown" {
		t.Errorf("Column(Unknown) = %q, want input returned", pm.Column("Unknown"))
	}
	if len(pm.ColumnList()) != 3 {
		t.Errorf("len(ColumnList()) = %d, want 3", len(pm.ColumnList()))
	}
}

func TestBuilder_Build(t *testing.T) {
	b := query.NewBuilder(newProjection(), query.SortField{Field: "PageIndex"}).
		WhereEquals("DocumentId", "doc-1")

	sql, args := b.Build()

	want := "SELECT p.id, p.document_id, p.page_index FROM public.pages p WHERE p.document_id = $1 ORDER BY p.page_index ASC"
	if sql != want {
		t.Errorf("Build() sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "doc-1" {
		t.Errorf("Build() args = %v, want [doc-1]", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		page, pageSize int
		want           string
	}{
		{1, 20, "LIMIT 20 OFFSET 0"},
		{3, 10, "LIMIT 10 OFFSET 20"},
	}

	for _, tt := range tests {
		sql, _ := query.NewBuilder(newProjection()).BuildPage(tt.page, tt.pageSize)
		if !strings.HasSuffix(sql, tt.want) {
			t.Errorf("BuildPage(%d, %d) = %q, want suffix %q", tt.page, tt.pageSize, sql, tt.want)
		}
	}
}

func TestBuilder_ParameterNumbering(t *testing.T) {
	search := "notes"
	kind := "work"

	b := query.NewBuilder(newProjection()).
		WhereSearch(&search, "Id", "DocumentId").
		WhereContains("PageIndex", &kind)

	sql, args := b.BuildCount()

	for _, want := range []string{"p.id ILIKE $1", "p.document_id ILIKE $2", "p.page_index ILIKE $3", " OR "} {
		if !strings.Contains(sql, want) {
			t.Errorf("BuildCount() missing %q: %q", want, sql)
		}
	}
	if len(args) != 3 {
		t.Errorf("len(args) = %d, want 3", len(args))
	}
}

func TestBuilder_IgnoresEmptyConditions(t *testing.T) {
	empty := ""

	sql, args := query.NewBuilder(newProjection()).
		WhereEquals("Id", nil).
		WhereContains("Id", &empty).
		WhereSearch(nil, "Id").
		BuildCount()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("BuildCount() should not have WHERE, got %q", sql)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilder_OrderByFields(t *testing.T) {
	sql, _ := query.NewBuilder(newProjection(), query.SortField{Field: "Id"}).
		OrderByFields(query.ParseSortFields("-PageIndex,DocumentId")).
		Build()

	if !strings.HasSuffix(sql, "ORDER BY p.page_index DESC, p.document_id ASC") {
		t.Errorf("Build() = %q", sql)
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		input string
		want  []query.SortField
	}{
		{"", nil},
		{"Title", []query.SortField{{Field: "Title"}}},
		{"-CreatedAt, Title", []query.SortField{{Field: "CreatedAt", Descending: true}, {Field: "Title"}}},
		{",-,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
