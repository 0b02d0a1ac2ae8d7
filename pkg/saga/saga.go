// Package saga runs an ordered list of steps, each paired with an optional
// compensating action. When a step fails, the compensations of every step
// that already completed run in reverse order.
package saga

import (
	"context"
	"errors"
	"log/slog"
)

// Step is one forward action and the action that undoes it.
type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError reports which step failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Details merges the failing step into any details carried by the cause.
func (e *StepError) Details() map[string]any {
	details := map[string]any{}

	var d interface{ Details() map[string]any }
	if errors.As(e.Err, &d) {
		for k, v := range d.Details() {
			details[k] = v
		}
	}

	details["extra"] = map[string]any{"step": e.Step}
	return details
}

// Saga executes steps sequentially.
type Saga struct {
	steps  []Step
	logger *slog.Logger
}

func New(logger *slog.Logger, steps ...Step) *Saga {
	return &Saga{
		steps:  steps,
		logger: logger,
	}
}

// Run executes each step in order. On the first failure it unwinds the
// completed steps and returns a *StepError. Compensation failures are logged
// and do not replace the original error.
func (s *Saga) Run(ctx context.Context) error {
	for i, step := range s.steps {
		if err := step.Action(ctx); err != nil {
			s.logger.Warn("saga step failed", "step", step.Name, "error", err)
			s.unwind(context.WithoutCancel(ctx), i-1)
			return &StepError{Step: step.Name, Err: err}
		}
	}
	return nil
}

func (s *Saga) unwind(ctx context.Context, from int) {
	for i := from; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			s.logger.Error("saga compensation failed", "step", step.Name, "error", err)
			continue
		}
		s.logger.Info("saga step compensated", "step", step.Name)
	}
}
