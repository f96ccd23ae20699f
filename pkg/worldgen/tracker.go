package worldgen

// Tracker records the inputs of the last generation so a host can skip
// regenerating when nothing changed. It is not safe for concurrent use.
type Tracker struct {
	worldSize int
	tileSize  int
	biomes    BiomeList
}

// Changed reports whether (worldSize, tileSize, biomes) differs from the
// recorded baseline and is worth generating. A true result commits the new
// inputs as the baseline; sizes ≤ 0 or an empty biome list never count as a
// change.
func (t *Tracker) Changed(worldSize, tileSize int, biomes BiomeList) bool {
	if worldSize == t.worldSize && tileSize == t.tileSize && biomes.Equal(t.biomes) {
		return false
	}
	if worldSize <= 0 || tileSize <= 0 || len(biomes) == 0 {
		return false
	}

	t.worldSize = worldSize
	t.tileSize = tileSize
	t.biomes = biomes.Clone()
	return true
}

// Baseline returns the last committed inputs.
func (t *Tracker) Baseline() (worldSize, tileSize int, biomes BiomeList) {
	return t.worldSize, t.tileSize, t.biomes.Clone()
}

// Reset forgets the baseline so the next valid input reports a change.
func (t *Tracker) Reset() {
	*t = Tracker{}
}
