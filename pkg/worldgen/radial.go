package worldgen

import (
	"math"

	"biomegen/pkg/grid"

	"github.com/go-gl/mathgl/mgl64"
)

// Distances returns the Euclidean distance from origin to every integer cell
// of a size × size grid. origin is in grid coordinates.
func Distances(size int, origin mgl64.Vec2) *grid.Grid {
	d := grid.NewSquare(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d.Set(x, y, mgl64.Vec2{float64(x), float64(y)}.Sub(origin).Len())
		}
	}
	return d
}

// Fade is the logistic curve 1 / (1 + a^((-1/k)·d + s)). For a > 1 and k > 0
// it rises from 1/(1+a^s) at d = 0 towards 1.
func Fade(d, a, s, k float64) float64 {
	return 1 / (1 + math.Pow(a, (-1/k)*d+s))
}

// FadeGrid applies Fade to every cell of a distance grid.
func FadeGrid(distances *grid.Grid, a, s, k float64) *grid.Grid {
	return distances.Map(func(d float64) float64 {
		return Fade(d, a, s, k)
	})
}

// Influence is the biome weight 1 - Fade: strongest at the origin and falling
// to 0 with distance.
func Influence(distances *grid.Grid, a, s, k float64) *grid.Grid {
	return grid.SubtractScalar(1, FadeGrid(distances, a, s, k))
}
