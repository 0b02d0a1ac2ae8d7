package saga_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"github.com/JaimeStill/handnotes/pkg/saga"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recorder struct {
	calls []string
}

func (r *recorder) step(name string, fail bool) saga.Step {
	return saga.Step{
		Name: name,
		Action: func(ctx context.Context) error {
			r.calls = append(r.calls, "do:"+name)
			if fail {
				return errors.New(name + " failed")
			}
			return nil
		},
		Compensate: func(ctx context.Context) error {
			r.calls = append(r.calls, "undo:"+name)
			return nil
		},
	}
}

func TestSaga_Run_Success(t *testing.T) {
	rec := &recorder{}
	s := saga.New(discardLogger(), rec.step("a", false), rec.step("b", false))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"do:a", "do:b"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestSaga_Run_UnwindsInReverse(t *testing.T) {
	rec := &recorder{}
	s := saga.New(
		discardLogger(),
		rec.step("a", false),
		rec.step("b", false),
		rec.step("c", true),
		rec.step("d", false),
	)

	err := s.Run(context.Background())

	var stepErr *saga.StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("Run() error = %v, want *StepError", err)
	}
	if stepErr.Step != "c" {
		t.Errorf("Step = %q, want c", stepErr.Step)
	}
	if err.Error() != "c failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "c failed")
	}

	want := []string{"do:a", "do:b", "do:c", "undo:b", "undo:a"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestSaga_Run_CompensationFailureKeepsOriginalError(t *testing.T) {
	original := errors.New("insert failed")
	var undone []string

	s := saga.New(
		discardLogger(),
		saga.Step{
			Name:   "first",
			Action: func(context.Context) error { return nil },
			Compensate: func(context.Context) error {
				undone = append(undone, "first")
				return nil
			},
		},
		saga.Step{
			Name:   "second",
			Action: func(context.Context) error { return nil },
			Compensate: func(context.Context) error {
				return errors.New("delete failed")
			},
		},
		saga.Step{
			Name:   "third",
			Action: func(context.Context) error { return original },
		},
	)

	err := s.Run(context.Background())
	if !errors.Is(err, original) {
		t.Errorf("Run() error = %v, want %v", err, original)
	}
	if !slices.Equal(undone, []string{"first"}) {
		t.Errorf("undone = %v, want [first]", undone)
	}
}

type payloadError struct{}

func (payloadError) Error() string { return "duplicate key" }

func (payloadError) Details() map[string]any {
	return map[string]any{"code": "23505"}
}

func TestStepError_Details(t *testing.T) {
	err := &saga.StepError{Step: "pages.insert", Err: payloadError{}}

	details := err.Details()

	extra, ok := details["extra"].(map[string]any)
	if !ok || extra["step"] != "pages.insert" {
		t.Errorf("extra = %v, want step pages.insert", details["extra"])
	}
	if details["code"] != "23505" {
		t.Errorf("code = %v, want cause details merged", details["code"])
	}
}
