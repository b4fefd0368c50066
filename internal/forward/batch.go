package forward

import (
	"context"
	"fmt"

	"github.com/born-ml/dualdiff/internal/dual"
	"github.com/born-ml/dualdiff/internal/parallel"
)

// Point is f and f′ evaluated at X.
type Point struct {
	X          float64
	Value      float64
	Derivative float64
}

// Sweep evaluates f and f′ at every x in xs. Points are independent, so they
// are spread over cfg.NumWorkers goroutines. The first domain error cancels
// the remaining work and is returned wrapped with the failing point.
func Sweep(ctx context.Context, f Func, xs []float64, cfg parallel.Config) ([]Point, error) {
	points := make([]Point, len(xs))
	err := parallel.ForErr(ctx, len(xs), func(i int) error {
		y, err := Eval(f, dual.Variable(xs[i]))
		if err != nil {
			return fmt.Errorf("point %d (x=%g): %w", i, xs[i], err)
		}
		points[i] = Point{X: xs[i], Value: y.Value, Derivative: y.Derivative}
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return points, nil
}

// GradMany returns f′ at every x in xs. See Sweep.
func GradMany(ctx context.Context, f Func, xs []float64, cfg parallel.Config) ([]float64, error) {
	points, err := Sweep(ctx, f, xs, cfg)
	if err != nil {
		return nil, err
	}
	grads := make([]float64, len(points))
	for i, p := range points {
		grads[i] = p.Derivative
	}
	return grads, nil
}

// Linspace returns n evenly spaced points over [from, to].
// n == 1 yields {from}; n <= 0 yields nil.
func Linspace(from, to float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{from}
	}
	xs := make([]float64, n)
	step := (to - from) / float64(n-1)
	for i := range xs {
		xs[i] = from + float64(i)*step
	}
	xs[n-1] = to
	return xs
}
