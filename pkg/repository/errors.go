package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// StoreError wraps a database failure so its diagnostic payload can be
// returned to callers.
type StoreError struct {
	Op  string
	Err error
}

// Wrap returns nil for a nil err, otherwise a StoreError for op.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Details exposes the PostgreSQL error fields when present.
func (e *StoreError) Details() map[string]any {
	details := map[string]any{}

	var pgErr *pgconn.PgError
	if !errors.As(e.Err, &pgErr) {
		return details
	}

	details["code"] = pgErr.Code
	set := func(key, value string) {
		if value != "" {
			details[key] = value
		}
	}
	set("details", pgErr.Detail)
	set("hint", pgErr.Hint)
	set("constraint", pgErr.ConstraintName)
	set("table", pgErr.TableName)
	set("column", pgErr.ColumnName)

	return details
}
