package dual

import "math"

// Exp returns e^u. d(eᵃ) = eᵃ·a′.
func Exp(u Number) Number {
	e := math.Exp(u.Value)
	return Number{Value: e, Derivative: e * u.Derivative}
}

// Sin returns sin(u). d(sin a) = cos(a)·a′.
func Sin(u Number) Number {
	return Number{Value: math.Sin(u.Value), Derivative: math.Cos(u.Value) * u.Derivative}
}

// Cos returns cos(u). d(cos a) = -sin(a)·a′.
func Cos(u Number) Number {
	return Number{Value: math.Cos(u.Value), Derivative: -math.Sin(u.Value) * u.Derivative}
}

// Tan returns tan(u). d(tan a) = a′ / cos²(a).
//
// Near a pole the result follows IEEE-754: values and derivatives become very
// large or ±Inf, no error is raised.
func Tan(u Number) Number {
	c := math.Cos(u.Value)
	return Number{Value: math.Tan(u.Value), Derivative: u.Derivative / (c * c)}
}

// Log returns the natural logarithm of u. d(ln a) = a′ / a.
// Panics with ErrLogNonPositive if u.Value <= 0.
func Log(u Number) Number {
	if u.Value <= 0 {
		fail("Log", u.Value, ErrLogNonPositive)
	}
	return Number{Value: math.Log(u.Value), Derivative: u.Derivative / u.Value}
}

// Sqrt returns √u. d(√a) = a′ / (2√a).
//
// Panics with ErrSqrtNegative if u.Value < 0. At u.Value == 0 a non-zero
// tangent gives a +Inf (or -Inf) derivative.
func Sqrt(u Number) Number {
	if u.Value < 0 {
		fail("Sqrt", u.Value, ErrSqrtNegative)
	}
	s := math.Sqrt(u.Value)
	if u.Derivative == 0 {
		return Number{Value: s}
	}
	return Number{Value: s, Derivative: u.Derivative / (2 * s)}
}

// Tanh returns tanh(u). d(tanh a) = (1 - tanh²a)·a′.
func Tanh(u Number) Number {
	t := math.Tanh(u.Value)
	return Number{Value: t, Derivative: (1 - t*t) * u.Derivative}
}

// Sigmoid returns σ(u) = 1 / (1 + e^-u). d(σ(a)) = σ(a)·(1 - σ(a))·a′.
func Sigmoid(u Number) Number {
	s := 1 / (1 + math.Exp(-u.Value))
	return Number{Value: s, Derivative: s * (1 - s) * u.Derivative}
}

// Method forms, so expressions can be chained: x.Mul(x).Sin().

// Exp returns e^u.
func (u Number) Exp() Number { return Exp(u) }

// Sin returns sin(u).
func (u Number) Sin() Number { return Sin(u) }

// Cos returns cos(u).
func (u Number) Cos() Number { return Cos(u) }

// Tan returns tan(u).
func (u Number) Tan() Number { return Tan(u) }

// Log returns ln(u).
func (u Number) Log() Number { return Log(u) }

// Sqrt returns √u.
func (u Number) Sqrt() Number { return Sqrt(u) }

// Tanh returns tanh(u).
func (u Number) Tanh() Number { return Tanh(u) }

// Sigmoid returns σ(u).
func (u Number) Sigmoid() Number { return Sigmoid(u) }
