package worldgen

import (
	"fmt"
	"math"
	"slices"

	"biomegen/internal/util"

	"github.com/go-gl/mathgl/mgl64"
)

// Biome describes one band of fractal noise and the radial falloff that
// weights it. Range and Origin follow the document layout: Range[0] is the
// lower output bound, Range[1] the upper; Origin is relative to the world
// centre.
type Biome struct {
	Name string

	Range       mgl64.Vec2
	Seed        int32
	Octaves     uint8
	Persistence float64
	// Lacunarity grows the sampling frequency per octave. With gradient
	// detail reduction enabled it is also the blend weight of the detail
	// factor update.
	Lacunarity float64
	NoiseScale float64

	FadeA  float64
	FadeS  float64
	FadeK  float64
	Origin mgl64.Vec2

	GradientDetailReduction      bool
	GradientDetailReductionSpeed float64
}

// DefaultBiome returns a single-octave biome spanning [-1, 1] centred on the
// world origin.
func DefaultBiome() Biome {
	return Biome{
		Name:                         "Biome",
		Range:                        mgl64.Vec2{-1, 1},
		Octaves:                      1,
		Persistence:                  0.5,
		Lacunarity:                   0.5,
		NoiseScale:                   0.01,
		FadeA:                        2,
		FadeS:                        0,
		FadeK:                        1,
		GradientDetailReductionSpeed: 1,
	}
}

// Min returns the lower output bound.
func (b Biome) Min() float64 { return b.Range[0] }

// Max returns the upper output bound.
func (b Biome) Max() float64 { return b.Range[1] }

// Equal compares every field that influences generation. Name is a label and
// is ignored; real fields are compared with a tolerance.
func (b Biome) Equal(o Biome) bool {
	return vecNearlyEqual(b.Range, o.Range) &&
		vecNearlyEqual(b.Origin, o.Origin) &&
		b.Seed == o.Seed &&
		b.Octaves == o.Octaves &&
		util.NearlyEqual(b.Persistence, o.Persistence) &&
		util.NearlyEqual(b.Lacunarity, o.Lacunarity) &&
		util.NearlyEqual(b.NoiseScale, o.NoiseScale) &&
		util.NearlyEqual(b.FadeA, o.FadeA) &&
		util.NearlyEqual(b.FadeS, o.FadeS) &&
		util.NearlyEqual(b.FadeK, o.FadeK) &&
		b.GradientDetailReduction == o.GradientDetailReduction &&
		util.NearlyEqual(b.GradientDetailReductionSpeed, o.GradientDetailReductionSpeed)
}

func vecNearlyEqual(a, b mgl64.Vec2) bool {
	return util.NearlyEqual(a[0], b[0]) && util.NearlyEqual(a[1], b[1])
}

// Validate checks b, reporting the first offending field. index is used only
// to label the error.
func (b Biome) Validate(index int) error {
	if b.Octaves == 0 {
		return fmt.Errorf("biome %d (%s): octaves: %w", index, b.Name, ErrEmptyInput)
	}

	bad := func(field, reason string) error {
		return &ParamError{Index: index, Name: b.Name, Field: field, Reason: reason}
	}
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	switch {
	case !finite(b.Range[0]):
		return bad("RangeMin", "must be finite")
	case !finite(b.Range[1]):
		return bad("RangeMax", "must be finite")
	case !finite(b.Persistence) || b.Persistence <= 0:
		return bad("Persistence", "must be positive")
	case !finite(b.Lacunarity) || b.Lacunarity <= 0:
		return bad("Lacunarity", "must be positive")
	case !finite(b.NoiseScale) || b.NoiseScale <= 0:
		return bad("NoiseScale", "must be positive")
	case !finite(b.FadeA) || b.FadeA <= 0:
		return bad("a", "must be positive")
	case !finite(b.FadeS):
		return bad("s", "must be finite")
	case !finite(b.FadeK) || b.FadeK == 0:
		return bad("k", "must be finite and non-zero")
	case !finite(b.Origin[0]):
		return bad("OriginX", "must be finite")
	case !finite(b.Origin[1]):
		return bad("OriginY", "must be finite")
	case b.GradientDetailReduction && (!finite(b.GradientDetailReductionSpeed) || b.GradientDetailReductionSpeed <= 0):
		return bad("GradientDetailReductionSpeed", "must be positive when gradient detail reduction is enabled")
	}
	return nil
}

// BiomeList is an ordered set of biomes. Order matters: the blend cascade
// walks the list by index.
type BiomeList []Biome

// Equal reports whether both lists hold equal biomes in the same order.
func (l BiomeList) Equal(o BiomeList) bool {
	return slices.EqualFunc(l, o, Biome.Equal)
}

// Clone returns a copy that does not share storage with l.
func (l BiomeList) Clone() BiomeList {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}

// Validate checks every biome in order.
func (l BiomeList) Validate() error {
	for i, b := range l {
		if err := b.Validate(i); err != nil {
			return err
		}
	}
	return nil
}
