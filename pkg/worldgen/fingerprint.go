package worldgen

import (
	"encoding/binary"
	"math"

	"biomegen/internal/noise"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes every input that affects Generate's output: the world
// size, the noise backend and the biome list. Names are not hashed. Real
// fields are hashed bit for bit, so biomes that Biome.Equal accepts within
// tolerance can still fingerprint differently.
func Fingerprint(worldSize int, backend noise.Backend, biomes BiomeList) uint64 {
	buf := make([]byte, 0, 24+len(backend)+len(biomes)*112)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(worldSize))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(backend)))
	buf = append(buf, backend...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(biomes)))

	f := func(v float64) {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	for _, b := range biomes {
		f(b.Range[0])
		f(b.Range[1])
		buf = binary.LittleEndian.AppendUint32(buf, uint32(b.Seed))
		buf = append(buf, b.Octaves)
		f(b.Persistence)
		f(b.Lacunarity)
		f(b.NoiseScale)
		f(b.FadeA)
		f(b.FadeS)
		f(b.FadeK)
		f(b.Origin[0])
		f(b.Origin[1])
		if b.GradientDetailReduction {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		f(b.GradientDetailReductionSpeed)
	}
	return xxhash.Sum64(buf)
}
