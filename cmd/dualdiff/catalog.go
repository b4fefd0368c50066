package main

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/forward"
)

// function is a catalog entry: the same function written over dual numbers
// and over plain floats.
type function struct {
	name  string
	expr  string
	f     forward.Func
	plain func(float64) float64
}

var catalog = map[string]function{
	"square": {
		name:  "square",
		expr:  "x^2",
		f:     func(x dual.Number) dual.Number { return x.Mul(x) },
		plain: func(x float64) float64 { return x * x },
	},
	"cube": {
		name:  "cube",
		expr:  "x^3",
		f:     func(x dual.Number) dual.Number { return x.Pow(3) },
		plain: func(x float64) float64 { return x * x * x },
	},
	"sin": {
		name:  "sin",
		expr:  "sin(x)",
		f:     dual.Sin,
		plain: math.Sin,
	},
	"cos": {
		name:  "cos",
		expr:  "cos(x)",
		f:     dual.Cos,
		plain: math.Cos,
	},
	"tan": {
		name:  "tan",
		expr:  "tan(x)",
		f:     dual.Tan,
		plain: math.Tan,
	},
	"exp": {
		name:  "exp",
		expr:  "exp(x)",
		f:     dual.Exp,
		plain: math.Exp,
	},
	"recip": {
		name:  "recip",
		expr:  "1/x",
		f:     func(x dual.Number) dual.Number { return dual.Div(1.0, x) },
		plain: func(x float64) float64 { return 1 / x },
	},
	"sinsq": {
		name:  "sinsq",
		expr:  "sin(x^2)",
		f:     func(x dual.Number) dual.Number { return x.Mul(x).Sin() },
		plain: func(x float64) float64 { return math.Sin(x * x) },
	},
	"poly": {
		name:  "poly",
		expr:  "x^3 - 2x^2 + x",
		f:     func(x dual.Number) dual.Number { return x.Pow(3).Sub(x.Pow(2).Scale(2)).Add(x) },
		plain: func(x float64) float64 { return x*x*x - 2*x*x + x },
	},
	"logistic": {
		name:  "logistic",
		expr:  "1/(1+exp(-x))",
		f:     dual.Sigmoid,
		plain: func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
	},
	"gauss": {
		name:  "gauss",
		expr:  "exp(-x^2)",
		f:     func(x dual.Number) dual.Number { return x.Mul(x).Neg().Exp() },
		plain: func(x float64) float64 { return math.Exp(-x * x) },
	},
}

func catalogNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookup(name string) (function, error) {
	fn, ok := catalog[name]
	if !ok {
		return function{}, fmt.Errorf("unknown function %q (available: %s)", name, strings.Join(catalogNames(), ", "))
	}
	return fn, nil
}
