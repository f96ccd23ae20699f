package worldgen

import (
	"fmt"
	"time"

	"biomegen/internal/logger"
	"biomegen/internal/noise"
	"biomegen/internal/util"
	"biomegen/pkg/grid"

	"github.com/go-gl/mathgl/mgl64"
)

// Generator turns a biome list into a height field.
type Generator struct {
	noise noise.Factory
	log   *logger.Logger
}

// New creates a Generator sampling coherent noise from factory. A nil factory
// selects the built-in Perlin backend and a nil logger discards output.
func New(factory noise.Factory, log *logger.Logger) *Generator {
	if factory == nil {
		factory = func(seed int64) noise.Source { return noise.NewPerlin(seed) }
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Generator{noise: factory, log: log}
}

// Generate synthesizes a worldSize × worldSize height field. Biome origins
// are relative to the world centre. Inputs are fully validated before any
// noise is sampled.
func (g *Generator) Generate(worldSize int, biomes BiomeList) (*grid.Grid, error) {
	if worldSize <= 0 {
		return nil, fmt.Errorf("%w: world size %d", ErrEmptyInput, worldSize)
	}
	if len(biomes) == 0 {
		return nil, fmt.Errorf("%w: no biomes", ErrEmptyInput)
	}
	if err := biomes.Validate(); err != nil {
		return nil, err
	}
	defer util.TimeTrack(time.Now(), "Generate", g.log.Debugf)

	centre := float64(worldSize / 2)
	fields := make([]*grid.Grid, len(biomes))
	weights := make([]*grid.Grid, len(biomes))

	for i, b := range biomes {
		g.log.Debugf("biome %d %q: seed=%d octaves=%d range=[%g, %g] origin=(%g, %g) detail=%v",
			i, b.Name, b.Seed, b.Octaves, b.Min(), b.Max(), b.Origin[0], b.Origin[1], b.GradientDetailReduction)

		field, err := NoiseField(g.noise(int64(b.Seed)), worldSize, b)
		if err != nil {
			return nil, fmt.Errorf("biome %d (%s): %w", i, b.Name, err)
		}
		fields[i] = field

		if len(biomes) == 1 {
			// A lone biome owns the whole world.
			weights[i] = grid.Filled(worldSize, 1)
			continue
		}
		origin := b.Origin.Add(mgl64.Vec2{centre, centre})
		weights[i] = Influence(Distances(worldSize, origin), b.FadeA, b.FadeS, b.FadeK)
	}

	if err := Cascade(weights); err != nil {
		return nil, err
	}
	heights, err := Blend(fields, weights)
	if err != nil {
		return nil, err
	}

	lo, hi := heights.MinMax()
	g.log.Infof("generated %dx%d height field from %d biomes (min %.3f, max %.3f)", worldSize, worldSize, len(biomes), lo, hi)
	return heights, nil
}
