// Package forward drives forward-mode differentiation over dual numbers.
//
// A differentiable function is any Func built from dual.Number operations.
// Grad seeds the input with derivative 1, evaluates the function once and
// reads the derivative off the result:
//
//	square := func(x dual.Number) dual.Number { return x.Mul(x) }
//	d, err := forward.Grad(square, 3.0) // d = 6
//
// There is no tape and no backward pass: the derivative is carried alongside
// the value through every operation.
//
// Domain errors raised while evaluating the function (see dual.DomainError)
// are returned unchanged, with no partial result. A Func must operate on its
// argument through dual.Number operations only; converting to float64 and back
// silently drops the tangent and cannot be detected.
package forward

import (
	"errors"

	"github.com/born-ml/dualdiff/internal/dual"
)

// Func is a scalar function expressed over dual numbers.
type Func func(dual.Number) dual.Number

// Grad returns f′(x).
func Grad(f Func, x float64) (float64, error) {
	y, err := Eval(f, dual.Variable(x))
	if err != nil {
		return 0, err
	}
	return y.Derivative, nil
}

// ValueAndGrad returns f(x) and f′(x) from a single evaluation of f.
func ValueAndGrad(f Func, x float64) (value, derivative float64, err error) {
	y, err := Eval(f, dual.Variable(x))
	if err != nil {
		return 0, 0, err
	}
	return y.Value, y.Derivative, nil
}

// GradFunc binds f and returns its derivative as a plain function of x.
func GradFunc(f Func) func(x float64) (float64, error) {
	return func(x float64) (float64, error) {
		return Grad(f, x)
	}
}

// ValueAndGradFunc binds f and returns a function computing (f(x), f′(x)).
func ValueAndGradFunc(f Func) func(x float64) (float64, float64, error) {
	return func(x float64) (float64, float64, error) {
		return ValueAndGrad(f, x)
	}
}

// Eval applies f to an arbitrary seed. A *dual.DomainError raised inside f is
// returned as err. Any other panic is not ours to handle and is re-raised.
func Eval(f Func, seed dual.Number) (y dual.Number, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			var de *dual.DomainError
			if errors.As(e, &de) {
				err = e
				return
			}
		}
		panic(r)
	}()
	return f(seed), nil
}
