package grid

import "math"

// Grid stores a 2D field of real values in row-major order.
type Grid struct {
	W, H int
	data []float64
}

// New allocates a zeroed grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func New(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		return &Grid{}
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// NewSquare allocates a zeroed size × size grid.
func NewSquare(size int) *Grid {
	return New(size, size)
}

// Filled allocates a size × size grid with every cell set to v.
func Filled(size int, v float64) *Grid {
	g := NewSquare(size)
	for i := range g.data {
		g.data[i] = v
	}
	return g
}

// FromRows builds a grid from a slice of equal-length rows.
func FromRows(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Grid{}, nil
	}
	g := New(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.W {
			return nil, mismatch(g.W, g.H, len(row), len(rows))
		}
		copy(g.data[y*g.W:(y+1)*g.W], row)
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At returns the value stored at (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Empty reports whether the grid holds no cells.
func (g *Grid) Empty() bool { return g == nil || len(g.data) == 0 }

// SameSize reports whether g and o have identical dimensions.
func (g *Grid) SameSize(o *Grid) bool { return g.W == o.W && g.H == o.H }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Map returns a new grid with fn applied to every cell.
func (g *Grid) Map(fn func(v float64) float64) *Grid {
	out := New(g.W, g.H)
	for i, v := range g.data {
		out.data[i] = fn(v)
	}
	return out
}

// MinMax returns the smallest and largest cell values. An empty grid
// reports (0, 0).
func (g *Grid) MinMax() (lo, hi float64) {
	if g.Empty() {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
