// Package dual implements dual numbers for forward-mode automatic differentiation.
//
// A Number carries a value together with its derivative (tangent) with respect
// to a single input variable. It behaves like a + b·ε with ε² = 0: every
// operation computes the ordinary result in Value and propagates the tangent
// by the matching calculus rule (sum, product, quotient and chain rules).
//
// Numbers are immutable values. Operations never modify their operands and
// always return a fresh Number, so a Number can be shared between goroutines
// without synchronization.
//
// Usage:
//
//	x := dual.Variable(3.0)   // seeded: derivative = 1
//	y := x.Mul(x).AddConst(1) // y = x² + 1
//	fmt.Println(y)            // Number(value=10, derivative=6)
//
// Errors:
//
// Operations that are undefined at the evaluation point (exact division by
// zero, negative powers of zero, logarithm of a non-positive value) panic with
// a *DomainError. forward.Grad and forward.ValueAndGrad recover it and return
// it as an error. Poles that IEEE-754 represents as ±Inf (Tan near π/2) are not
// treated as errors and propagate as Inf/NaN.
package dual

import "fmt"

// Number is a dual number: Value is the primal value, Derivative the tangent.
type Number struct {
	Value      float64
	Derivative float64
}

// New creates a Number from a value and a tangent.
func New(value, derivative float64) Number {
	return Number{Value: value, Derivative: derivative}
}

// Variable seeds the differentiation variable: derivative = 1.
func Variable(x float64) Number {
	return Number{Value: x, Derivative: 1}
}

// Const lifts a plain number into dual space with a zero tangent.
func Const[T Scalar](c T) Number {
	return Number{Value: float64(c)}
}

// IsConst reports whether n carries no tangent.
func (n Number) IsConst() bool {
	return n.Derivative == 0
}

// String renders n as Number(value=V, derivative=D).
func (n Number) String() string {
	return fmt.Sprintf("Number(value=%g, derivative=%g)", n.Value, n.Derivative)
}
