package noise

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// OffsetRange bounds octave offsets to [-OffsetRange, OffsetRange).
const OffsetRange = 100000

// OctaveOffsets derives one sampling offset per octave. Octave o draws from a
// PCG stream seeded with seed+o, so the offsets for a seed never change and
// octaves of one field are decorrelated.
func OctaveOffsets(seed int64, octaves int) []mgl64.Vec2 {
	offsets := make([]mgl64.Vec2, octaves)
	for o := range offsets {
		r := rand.New(rand.NewPCG(uint64(seed+int64(o)), 0))
		offsets[o] = mgl64.Vec2{
			-OffsetRange + r.Float64()*2*OffsetRange,
			-OffsetRange + r.Float64()*2*OffsetRange,
		}
	}
	return offsets
}
