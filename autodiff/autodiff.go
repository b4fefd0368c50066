// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides forward-mode automatic differentiation of scalar
// functions.
//
// Functions are written over Dual numbers, which carry a value and its
// derivative through every operation. Grad seeds the input, evaluates the
// function once and returns the exact derivative (no finite differences, no
// symbolic engine).
//
// Example:
//
//	import "github.com/born-ml/dualdiff/autodiff"
//
//	func main() {
//	    f := func(x autodiff.Dual) autodiff.Dual {
//	        return autodiff.Sin(x.Mul(x)) // sin(x²)
//	    }
//
//	    d, err := autodiff.Grad(f, 1.0) // 2·cos(1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    v, d, err := autodiff.ValueAndGrad(f, 1.0)
//	}
//
// Plain numbers mix with Dual values through the generic helpers, in either
// operand position:
//
//	autodiff.Add(x, 3)     // x + 3
//	autodiff.Sub(1, x)     // 1 - x
//	autodiff.Div(1.0, x)   // 1 / x, fails at x == 0
//
// Division by an exact zero and other undefined points surface as a
// *DomainError from Grad and ValueAndGrad.
package autodiff

import (
	"context"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/forward"
	"github.com/born-ml/dualdiff/internal/parallel"
)

// Dual is a value paired with its derivative.
type Dual = dual.Number

// Func is a scalar function over Dual numbers.
type Func = forward.Func

// Operand is a Dual or a plain number.
type Operand = dual.Operand

// Scalar is any plain Go integer or float.
type Scalar = dual.Scalar

// DomainError reports an operation evaluated where it is undefined.
type DomainError = dual.DomainError

// MismatchError is returned by Check.
type MismatchError = forward.MismatchError

// Point is a function value and derivative at X.
type Point = forward.Point

// ParallelConfig controls how GradMany and Sweep spread work over goroutines.
type ParallelConfig = parallel.Config

// Domain error sentinels, usable with errors.Is.
var (
	ErrDomain         = dual.ErrDomain
	ErrDivisionByZero = dual.ErrDivisionByZero
	ErrNegativeBase   = dual.ErrNegativeBase
	ErrLogNonPositive = dual.ErrLogNonPositive
	ErrSqrtNegative   = dual.ErrSqrtNegative
)

// New creates a Dual from a value and a derivative.
func New(value, derivative float64) Dual {
	return dual.New(value, derivative)
}

// Variable creates the differentiation variable at x (derivative 1).
func Variable(x float64) Dual {
	return dual.Variable(x)
}

// Const lifts a plain number to a Dual with zero derivative.
func Const[T Scalar](c T) Dual {
	return dual.Const(c)
}

// Add returns a + b.
func Add[A, B Operand](a A, b B) Dual { return dual.Add(a, b) }

// Sub returns a - b.
func Sub[A, B Operand](a A, b B) Dual { return dual.Sub(a, b) }

// Mul returns a * b.
func Mul[A, B Operand](a A, b B) Dual { return dual.Mul(a, b) }

// Div returns a / b.
func Div[A, B Operand](a A, b B) Dual { return dual.Div(a, b) }

// Exp returns e^x.
func Exp(x Dual) Dual { return dual.Exp(x) }

// Sin returns sin(x).
func Sin(x Dual) Dual { return dual.Sin(x) }

// Cos returns cos(x).
func Cos(x Dual) Dual { return dual.Cos(x) }

// Tan returns tan(x).
func Tan(x Dual) Dual { return dual.Tan(x) }

// Log returns ln(x).
func Log(x Dual) Dual { return dual.Log(x) }

// Sqrt returns √x.
func Sqrt(x Dual) Dual { return dual.Sqrt(x) }

// Tanh returns tanh(x).
func Tanh(x Dual) Dual { return dual.Tanh(x) }

// Sigmoid returns 1 / (1 + e^-x).
func Sigmoid(x Dual) Dual { return dual.Sigmoid(x) }

// Grad returns f′(x).
func Grad(f Func, x float64) (float64, error) {
	return forward.Grad(f, x)
}

// ValueAndGrad returns f(x) and f′(x) from one evaluation of f.
func ValueAndGrad(f Func, x float64) (float64, float64, error) {
	return forward.ValueAndGrad(f, x)
}

// GradFunc returns f′ as a plain function.
func GradFunc(f Func) func(x float64) (float64, error) {
	return forward.GradFunc(f)
}

// ValueAndGradFunc returns x -> (f(x), f′(x)).
func ValueAndGradFunc(f Func) func(x float64) (float64, float64, error) {
	return forward.ValueAndGradFunc(f)
}

// DefaultParallelConfig returns a ParallelConfig sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// GradMany returns f′ at every x in xs, evaluated concurrently.
func GradMany(ctx context.Context, f Func, xs []float64, cfg ParallelConfig) ([]float64, error) {
	return forward.GradMany(ctx, f, xs, cfg)
}

// Sweep returns f and f′ at every x in xs, evaluated concurrently.
func Sweep(ctx context.Context, f Func, xs []float64, cfg ParallelConfig) ([]Point, error) {
	return forward.Sweep(ctx, f, xs, cfg)
}

// Check compares f against a plain float64 implementation at x.
func Check(f Func, plain func(float64) float64, x, tol float64) error {
	return forward.Check(f, plain, x, tol)
}
