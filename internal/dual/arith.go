package dual

import "math"

// Add returns u + v.
//
//	value:      a + b
//	derivative: a′ + b′
func (u Number) Add(v Number) Number {
	return Number{
		Value:      u.Value + v.Value,
		Derivative: u.Derivative + v.Derivative,
	}
}

// AddConst returns u + c. The constant has no tangent.
func (u Number) AddConst(c float64) Number {
	return Number{Value: u.Value + c, Derivative: u.Derivative}
}

// Sub returns u - v.
//
//	value:      a - b
//	derivative: a′ - b′
func (u Number) Sub(v Number) Number {
	return Number{
		Value:      u.Value - v.Value,
		Derivative: u.Derivative - v.Derivative,
	}
}

// SubConst returns u - c.
func (u Number) SubConst(c float64) Number {
	return Number{Value: u.Value - c, Derivative: u.Derivative}
}

// Neg returns -u.
func (u Number) Neg() Number {
	return Number{Value: -u.Value, Derivative: -u.Derivative}
}

// Mul returns u * v (product rule).
//
//	value:      a·b
//	derivative: a′·b + a·b′
func (u Number) Mul(v Number) Number {
	return Number{
		Value:      u.Value * v.Value,
		Derivative: u.Derivative*v.Value + u.Value*v.Derivative,
	}
}

// Scale returns u * c.
func (u Number) Scale(c float64) Number {
	return Number{Value: u.Value * c, Derivative: u.Derivative * c}
}

// Div returns u / v (quotient rule).
//
//	value:      a / b
//	derivative: (a′·b - a·b′) / b²
//
// Panics with ErrDivisionByZero if v.Value == 0.
func (u Number) Div(v Number) Number {
	if v.Value == 0 {
		fail("Div", v.Value, ErrDivisionByZero)
	}
	return Number{
		Value:      u.Value / v.Value,
		Derivative: (u.Derivative*v.Value - u.Value*v.Derivative) / (v.Value * v.Value),
	}
}

// DivConst returns u / c. Panics with ErrDivisionByZero if c == 0.
func (u Number) DivConst(c float64) Number {
	if c == 0 {
		fail("DivConst", c, ErrDivisionByZero)
	}
	return Number{Value: u.Value / c, Derivative: u.Derivative / c}
}

// Recip returns 1 / u.
//
//	value:      1 / a
//	derivative: -a′ / a²
//
// Panics with ErrDivisionByZero if u.Value == 0.
func (u Number) Recip() Number {
	if u.Value == 0 {
		fail("Recip", u.Value, ErrDivisionByZero)
	}
	return Number{
		Value:      1 / u.Value,
		Derivative: -u.Derivative / (u.Value * u.Value),
	}
}

// Pow returns uⁿ for an integer exponent using exponentiation by squaring.
// Every intermediate product goes through Mul, so the tangent follows the
// product rule and ends up as n·aⁿ⁻¹·a′.
//
// Pow(0) is the constant 1. A negative n inverts u first, which panics with
// ErrDivisionByZero when u.Value == 0.
func (u Number) Pow(n int) Number {
	var k uint
	if n < 0 {
		u = u.Recip()
		k = uint(-(n + 1)) + 1 // safe for math.MinInt
	} else {
		k = uint(n)
	}

	result := Number{Value: 1}
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(u)
		}
		k >>= 1
		if k > 0 {
			u = u.Mul(u)
		}
	}
	return result
}

// PowReal returns uᵖ for a real exponent.
//
//	value:      aᵖ
//	derivative: p·aᵖ⁻¹·a′
//
// Integral exponents are delegated to Pow. Otherwise the base must be
// positive; a non-positive base panics with ErrNegativeBase.
func (u Number) PowReal(p float64) Number {
	if p == math.Trunc(p) && math.Abs(p) <= math.MaxInt32 {
		return u.Pow(int(p))
	}
	if u.Value <= 0 {
		fail("PowReal", u.Value, ErrNegativeBase)
	}
	return Number{
		Value:      math.Pow(u.Value, p),
		Derivative: p * math.Pow(u.Value, p-1) * u.Derivative,
	}
}
