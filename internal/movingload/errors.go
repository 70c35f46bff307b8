package movingload

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpan is returned when the span length is not a positive finite number.
	ErrInvalidSpan = errors.New("span must be a positive finite length")
	// ErrInvalidLoad is returned when a load is negative or not finite, or both loads are zero.
	ErrInvalidLoad = errors.New("loads must be non-negative and not both zero")
	// ErrInvalidSpacing is returned when the load spacing is not finite.
	ErrInvalidSpacing = errors.New("spacing must be a finite length")
	// ErrInvalidSteps is returned when an influence table is requested with fewer than one step.
	ErrInvalidSteps = errors.New("steps must be at least 1")
)

// InputError reports which input was rejected and why.
type InputError struct {
	Field string
	Value float64
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s (%g): %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
