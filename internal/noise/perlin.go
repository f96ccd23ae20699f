package noise

import "math"

// Perlin is 2D gradient noise over an integer lattice. Lattice gradients are
// picked by hashing the corner coordinates with the seed, so no permutation
// table is stored and the field is unbounded.
type Perlin struct {
	seed int
}

// NewPerlin creates a Perlin source for the given seed
func NewPerlin(seed int64) *Perlin {
	return &Perlin{seed: int(seed)}
}

// Noise2D generates 2D Perlin noise. The value is 0 on lattice points and
// stays within [-1, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	// Get grid points
	x0 := math.Floor(x)
	x1 := x0 + 1.0
	y0 := math.Floor(y)
	y1 := y0 + 1.0

	// Quintic interpolation weights
	sx := smoothstep(x - x0)
	sy := smoothstep(y - y0)

	ix0, iy0 := int(x0), int(y0)
	g00 := gradient2D(hash(ix0, iy0, p.seed))
	g10 := gradient2D(hash(ix0+1, iy0, p.seed))
	g01 := gradient2D(hash(ix0, iy0+1, p.seed))
	g11 := gradient2D(hash(ix0+1, iy0+1, p.seed))

	dp00 := dot2D(g00, x-x0, y-y0)
	dp10 := dot2D(g10, x-x1, y-y0)
	dp01 := dot2D(g01, x-x0, y-y1)
	dp11 := dot2D(g11, x-x1, y-y1)

	v0 := lerp(dp00, dp10, sx)
	v1 := lerp(dp01, dp11, sx)
	return lerp(v0, v1, sy)
}

// hash combines lattice coordinates and seed into a well-mixed integer
func hash(x, y, seed int) int {
	h := seed + x*374761393 + y*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// gradient2D picks one of eight lattice gradients from a hash
func gradient2D(hash int) [2]float64 {
	switch hash & 7 {
	case 0:
		return [2]float64{1, 0}
	case 1:
		return [2]float64{-1, 0}
	case 2:
		return [2]float64{0, 1}
	case 3:
		return [2]float64{0, -1}
	case 4:
		return [2]float64{1, 1}
	case 5:
		return [2]float64{-1, 1}
	case 6:
		return [2]float64{1, -1}
	default:
		return [2]float64{-1, -1}
	}
}

func dot2D(g [2]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// smoothstep applies the improved Perlin fade: 6t^5 - 15t^4 + 10t^3
func smoothstep(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}
