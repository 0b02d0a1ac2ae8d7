package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/handnotes/pkg/pagination"
)

var cfg = pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

func TestPageRequestFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantSearch   string
		wantSort     int
	}{
		{"defaults", "", 1, 20, "", 0},
		{"explicit", "page=3&page_size=5", 3, 5, "", 0},
		{"clamped", "page=-1&page_size=500", 1, 100, "", 0},
		{"search and sort", "search=notes&sort=-CreatedAt,Title", 1, 20, "notes", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", req.Page, tt.wantPage)
			}
			if req.PageSize != tt.wantPageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.wantPageSize)
			}
			if tt.wantSearch == "" && req.Search != nil {
				t.Errorf("Search = %q, want nil", *req.Search)
			}
			if tt.wantSearch != "" && (req.Search == nil || *req.Search != tt.wantSearch) {
				t.Errorf("Search = %v, want %q", req.Search, tt.wantSearch)
			}
			if len(req.Sort) != tt.wantSort {
				t.Errorf("len(Sort) = %d, want %d", len(req.Sort), tt.wantSort)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name           string
		total          int
		pageSize       int
		wantTotalPages int
	}{
		{"empty", 0, 20, 1},
		{"exact", 40, 20, 2},
		{"remainder", 41, 20, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[string](nil, tt.total, 1, tt.pageSize)

			if result.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantTotalPages)
			}
			if result.Data == nil {
				t.Error("Data should be an empty slice, not nil")
			}
		})
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "10")

	c := &pagination.Config{}
	if err := c.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_SIZE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if c.DefaultPageSize != 10 || c.MaxPageSize != 100 {
		t.Errorf("got %+v, want default 10 max 100", c)
	}

	invalid := &pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	if err := invalid.Finalize(nil); err == nil {
		t.Error("Finalize() should reject default_page_size > max_page_size")
	}
}
