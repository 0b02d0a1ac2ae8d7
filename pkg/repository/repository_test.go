package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/JaimeStill/handnotes/pkg/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func TestMapError(t *testing.T) {
	other := errors.New("some other error")
	pgOther := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, errNotFound},
		{"wrapped no rows", fmt.Errorf("find: %w", sql.ErrNoRows), errNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"other pg error", pgOther, pgOther},
		{"other error", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errNotFound, errDuplicate)
			if got != tt.want {
				t.Errorf("MapError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoreError_Details(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		Message:        "insert or update on table \"pages\" violates foreign key constraint",
		Detail:         "Key (document_id) is not present in table \"documents\".",
		ConstraintName: "pages_document_id_fkey",
		TableName:      "pages",
	}

	err := repository.Wrap("pages.insert", pgErr)

	var storeErr *repository.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Wrap() did not return *StoreError: %T", err)
	}

	if !errors.Is(err, pgErr) {
		t.Error("StoreError should unwrap to the PgError")
	}

	details := storeErr.Details()

	want := map[string]string{
		"code":       "23503",
		"details":    pgErr.Detail,
		"constraint": "pages_document_id_fkey",
		"table":      "pages",
	}
	for k, v := range want {
		if details[k] != v {
			t.Errorf("details[%q] = %v, want %q", k, details[k], v)
		}
	}

	if _, ok := details["hint"]; ok {
		t.Error("empty hint should be omitted")
	}
}

func TestStoreError_NonPgError(t *testing.T) {
	err := repository.Wrap("documents.insert", errors.New("connection refused"))

	var storeErr *repository.StoreError
	errors.As(err, &storeErr)

	if len(storeErr.Details()) != 0 {
		t.Errorf("Details() = %v, want empty", storeErr.Details())
	}
	if err.Error() != "connection refused" {
		t.Errorf("Error() = %q, want %q", err.Error(), "connection refused")
	}
}

func TestWrap_Nil(t *testing.T) {
	if err := repository.Wrap("op", nil); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}
