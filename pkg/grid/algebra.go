package grid

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when two grids combined elementwise do not
// share the same dimensions.
var ErrDimensionMismatch = errors.New("grid dimensions do not match")

func mismatch(aw, ah, bw, bh int) error {
	return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, aw, ah, bw, bh)
}

// zip applies op cell by cell to a and b.
func zip(a, b *Grid, op func(x, y float64) float64) (*Grid, error) {
	if !a.SameSize(b) {
		return nil, mismatch(a.W, a.H, b.W, b.H)
	}
	out := New(a.W, a.H)
	for i := range out.data {
		out.data[i] = op(a.data[i], b.data[i])
	}
	return out, nil
}

func div(x, y float64) float64 {
	// A zero divisor yields 0 so no non-finite value enters the pipeline.
	if y == 0 {
		return 0
	}
	return x / y
}

// Add returns a + b.
func Add(a, b *Grid) (*Grid, error) {
	return zip(a, b, func(x, y float64) float64 { return x + y })
}

// AddScalar returns s + b.
func AddScalar(s float64, b *Grid) *Grid {
	return b.Map(func(v float64) float64 { return s + v })
}

// Subtract returns a - b.
func Subtract(a, b *Grid) (*Grid, error) {
	return zip(a, b, func(x, y float64) float64 { return x - y })
}

// SubtractScalar returns s - b.
func SubtractScalar(s float64, b *Grid) *Grid {
	return b.Map(func(v float64) float64 { return s - v })
}

// Multiply returns the elementwise product a * b.
func Multiply(a, b *Grid) (*Grid, error) {
	return zip(a, b, func(x, y float64) float64 { return x * y })
}

// MultiplyScalar returns s * b.
func MultiplyScalar(s float64, b *Grid) *Grid {
	return b.Map(func(v float64) float64 { return s * v })
}

// Divide returns the elementwise quotient a / b. Cells where b is zero are 0.
func Divide(a, b *Grid) (*Grid, error) {
	return zip(a, b, div)
}

// DivideScalar returns s / b. Cells where b is zero are 0.
func DivideScalar(s float64, b *Grid) *Grid {
	return b.Map(func(v float64) float64 { return div(s, v) })
}
