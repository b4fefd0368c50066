package forward

import (
	"fmt"
	"math"
)

// DefaultStep is the finite-difference step used by Check.
const DefaultStep = 1e-6

// NumericalGrad approximates f′(x) with a central difference:
//
//	(f(x+h) - f(x-h)) / 2h
func NumericalGrad(f func(float64) float64, x, h float64) float64 {
	return (f(x+h) - f(x-h)) / (2 * h)
}

// MismatchError reports a disagreement found by Check.
type MismatchError struct {
	Channel string  // "value" or "derivative"
	X       float64 // Evaluation point
	Got     float64 // Forward-mode result
	Want    float64 // Reference result
	Tol     float64
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch at x=%g: got %g, want %g (tol %g)", e.Channel, e.X, e.Got, e.Want, e.Tol)
}

// Check compares f against plain, a float64 implementation of the same
// function. The value channel must match plain(x) and the derivative channel
// must match a central difference of plain, both within tol (absolute, or
// relative for magnitudes above 1).
//
// Domain errors from f are returned as-is.
func Check(f Func, plain func(float64) float64, x, tol float64) error {
	value, derivative, err := ValueAndGrad(f, x)
	if err != nil {
		return err
	}
	if want := plain(x); !within(value, want, tol) {
		return &MismatchError{Channel: "value", X: x, Got: value, Want: want, Tol: tol}
	}
	if want := NumericalGrad(plain, x, DefaultStep); !within(derivative, want, tol) {
		return &MismatchError{Channel: "derivative", X: x, Got: derivative, Want: want, Tol: tol}
	}
	return nil
}

func within(got, want, tol float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return false
	}
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}
