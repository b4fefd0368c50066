package dual

import "golang.org/x/exp/constraints"

// Scalar is any plain Go number that can be lifted into dual space.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Operand is either a Number or a plain number. Plain numbers are lifted to
// zero-tangent Numbers, which lets the free functions below accept operands in
// either position:
//
//	dual.Add(x, 3)   // x + 3
//	dual.Sub(1, x)   // 1 - x
//	dual.Div(1.0, x) // 1 / x
type Operand interface {
	Number | float64 | float32 | int | int64
}

// Lift normalizes an Operand to a Number.
func Lift[T Operand](v T) Number {
	switch x := any(v).(type) {
	case Number:
		return x
	case float64:
		return Const(x)
	case float32:
		return Const(x)
	case int:
		return Const(x)
	case int64:
		return Const(x)
	}
	panic("unreachable")
}

// Add returns a + b.
func Add[A, B Operand](a A, b B) Number {
	return Lift(a).Add(Lift(b))
}

// Sub returns a - b. For a constant a the result has derivative -b′.
func Sub[A, B Operand](a A, b B) Number {
	return Lift(a).Sub(Lift(b))
}

// Mul returns a * b.
func Mul[A, B Operand](a A, b B) Number {
	return Lift(a).Mul(Lift(b))
}

// Div returns a / b. For a constant a the derivative is -a·b′/b².
// Panics with ErrDivisionByZero if b is zero.
func Div[A, B Operand](a A, b B) Number {
	return Lift(a).Div(Lift(b))
}
