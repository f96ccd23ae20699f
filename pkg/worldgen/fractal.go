package worldgen

import (
	"fmt"
	"math"

	"biomegen/internal/noise"
	"biomegen/internal/util"
	"biomegen/pkg/grid"
)

// NoiseField builds the size × size fractal noise field of one biome,
// normalised into b.Range.
//
// Octaves are the outer loop and cells the inner, row-major loop, so that
// with gradient detail reduction each cell sees its left and upper
// neighbours already updated by the current octave.
func NoiseField(src noise.Source, size int, b Biome) (*grid.Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: field size %d", ErrEmptyInput, size)
	}
	if b.Octaves == 0 {
		return nil, fmt.Errorf("%w: biome %q has no octaves", ErrEmptyInput, b.Name)
	}

	offsets := noise.OctaveOffsets(int64(b.Seed), int(b.Octaves))
	maxNoiseHeight := maxAmplitude(b.Persistence, int(b.Octaves))

	field := grid.NewSquare(size)
	cells := field.Cells()

	var detail *detailModulator
	if b.GradientDetailReduction {
		detail = newDetailModulator(size, b.GradientDetailReductionSpeed, b.Lacunarity)
	}

	amplitude := 1.0
	frequency := 1.0
	for _, offset := range offsets {
		step := frequency * b.NoiseScale
		for y := 0; y < size; y++ {
			sy := float64(y)*step + offset[1]
			for x := 0; x < size; x++ {
				sample := src.Noise2D(float64(x)*step+offset[0], sy) * amplitude
				if detail != nil {
					sample = detail.apply(field, x, y, sample)
				}
				cells[field.Index(x, y)] += sample
			}
		}
		amplitude *= b.Persistence
		frequency *= b.Lacunarity
	}

	for i, v := range cells {
		cells[i] = util.MapClamped(v/maxNoiseHeight, -1, 1, b.Min(), b.Max())
	}
	return field, nil
}

// maxAmplitude is the sum of persistence^o over all octaves: the largest
// value the unweighted octave sum can reach.
func maxAmplitude(persistence float64, octaves int) float64 {
	sum := 0.0
	for o := 0; o < octaves; o++ {
		sum += math.Pow(persistence, float64(o))
	}
	return sum
}

// detailModulator attenuates octave samples where the partially accumulated
// field is already steep. Its factor map lives for one NoiseField call.
type detailModulator struct {
	factor *grid.Grid
	speed  float64
	blend  float64
}

func newDetailModulator(size int, speed, blend float64) *detailModulator {
	return &detailModulator{
		factor: grid.Filled(size, 1),
		speed:  speed,
		blend:  blend,
	}
}

// apply scales sample by the cell's detail factor and then updates the factor
// from the gradient against the left and upper neighbours of acc. On the
// first row and column the missing neighbour is replaced by the candidate
// value, which contributes no gradient.
func (d *detailModulator) apply(acc *grid.Grid, x, y int, sample float64) float64 {
	i := acc.Index(x, y)
	factors := d.factor.Cells()

	sample *= factors[i]
	candidate := acc.Cells()[i] + sample

	left, up := candidate, candidate
	if x > 0 {
		left = acc.At(x-1, y)
	}
	if y > 0 {
		up = acc.At(x, y-1)
	}

	gradient := math.Hypot(candidate-left, candidate-up)
	target := 1 / (1 + d.speed*gradient)
	factors[i] = factors[i]*(1-d.blend) + target*d.blend

	return sample
}
