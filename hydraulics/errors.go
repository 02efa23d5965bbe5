package hydraulics

import (
	"fmt"
	"math"
)

// InvalidInputError reports a scalar input that violates a precondition.
type InvalidInputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%g: %s", e.Field, e.Value, e.Reason)
}

// ConvergenceError reports a friction-factor iteration that ran out of iterations.
type ConvergenceError struct {
	Iterations int
	Last       float64
	Delta      float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("friction factor did not converge within %d iterations (last f=%g, |Δf|=%g)",
		e.Iterations, e.Last, e.Delta)
}

// InvalidConfigurationError reports a derived quantity that is physically meaningless.
type InvalidConfigurationError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%g: %s", e.Quantity, e.Value, e.Reason)
}

// OutOfRangeWarning is advisory: the correction is empirically validated only
// inside the envelope, the computation still proceeds.
type OutOfRangeWarning struct {
	Quantity string  `json:"quantity"`
	Value    float64 `json:"value"`
	Limit    float64 `json:"limit"`
	Message  string  `json:"message"`
}

func (w OutOfRangeWarning) String() string {
	return fmt.Sprintf("%s=%.4g: %s", w.Quantity, w.Value, w.Message)
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be > 0"}
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v < 0 {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be >= 0"}
	}
	return nil
}

func fraction(field string, v float64) error {
	if err := positive(field, v); err != nil {
		return err
	}
	if v > 1 {
		return &InvalidInputError{Field: field, Value: v, Reason: "must be <= 1"}
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

type quantity struct {
	name  string
	value float64
}

// finite returns an InvalidConfigurationError for the first NaN or Inf value, in argument order.
func finite(qs ...quantity) error {
	for _, q := range qs {
		if math.IsNaN(q.value) || math.IsInf(q.value, 0) {
			return &InvalidConfigurationError{Quantity: q.name, Value: q.value, Reason: "result is not a finite number"}
		}
	}
	return nil
}
