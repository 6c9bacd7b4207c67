package oscillator

import (
	"errors"
	"fmt"
)

// Domain errors for the oscillator solver.
var (
	// ErrNoRealSolution indicates h <= 2|1-(w/w0)^2|: only oscillatory
	// solutions exist and there is no real growth rate.
	ErrNoRealSolution = errors.New("oscillator: no real solution")

	// ErrNumericDomain indicates a value outside the domain of the closed-form
	// solution (w0 == 0, non-finite input, or a negative discriminant/root
	// caused by round-off).
	ErrNumericDomain = errors.New("oscillator: numeric domain error")
)

// DomainError wraps ErrNumericDomain with the quantity that left the domain.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s = %g", ErrNumericDomain.Error(), e.Quantity, e.Value)
}

func (e *DomainError) Unwrap() error {
	return ErrNumericDomain
}
