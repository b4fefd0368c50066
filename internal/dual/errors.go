package dual

import (
	"errors"
	"fmt"
)

// Domain errors. All of them wrap ErrDomain.
var (
	ErrDomain         = errors.New("domain error")
	ErrDivisionByZero = fmt.Errorf("division by zero: %w", ErrDomain)
	ErrNegativeBase   = fmt.Errorf("non-integer power of non-positive base: %w", ErrDomain)
	ErrLogNonPositive = fmt.Errorf("logarithm of non-positive value: %w", ErrDomain)
	ErrSqrtNegative   = fmt.Errorf("square root of negative value: %w", ErrDomain)
)

// DomainError reports an operation evaluated at a point where it is
// mathematically undefined.
type DomainError struct {
	Op    string  // Operation name (e.g. "Div", "Pow")
	Value float64 // Offending operand value
	Err   error   // One of the Err* sentinels
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %v (value=%g)", e.Op, e.Err, e.Value)
}

// Unwrap returns the underlying sentinel.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// fail aborts the current expression. The differentiator in internal/forward
// recovers the *DomainError and hands it back as an ordinary error.
func fail(op string, value float64, err error) {
	panic(&DomainError{Op: op, Value: value, Err: err})
}
