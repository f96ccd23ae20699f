package worldgen

import (
	"testing"

	"biomegen/internal/noise"

	"github.com/go-gl/mathgl/mgl64"
)

func sampleBiomes() BiomeList {
	plains := DefaultBiome()
	plains.Name = "plains"
	plains.Seed = 1
	plains.Range = mgl64.Vec2{-16, 16}

	mountains := DefaultBiome()
	mountains.Name = "mountains"
	mountains.Seed = 2
	mountains.Octaves = 6
	mountains.Range = mgl64.Vec2{0, 384}
	mountains.Origin = mgl64.Vec2{-64, 64}
	return BiomeList{plains, mountains}
}

func TestTrackerReportsChangeOnce(t *testing.T) {
	var tr Tracker
	biomes := sampleBiomes()

	if !tr.Changed(640, 100, biomes) {
		t.Fatal("first valid input must report a change")
	}
	if tr.Changed(640, 100, biomes) {
		t.Fatal("unchanged input reported as changed")
	}

	edited := sampleBiomes()
	edited[1].Seed = 99
	if !tr.Changed(640, 100, edited) {
		t.Fatal("seed edit not detected")
	}
	if tr.Changed(640, 100, edited) {
		t.Fatal("seed edit reported twice")
	}

	if !tr.Changed(640, 50, edited) {
		t.Fatal("tile size change not detected")
	}
	if !tr.Changed(320, 50, edited) {
		t.Fatal("world size change not detected")
	}
}

func TestTrackerIgnoresInvalidInput(t *testing.T) {
	var tr Tracker
	if tr.Changed(640, 100, nil) {
		t.Fatal("empty biome list must not report a change")
	}
	if tr.Changed(0, 100, sampleBiomes()) || tr.Changed(640, 0, sampleBiomes()) {
		t.Fatal("zero sizes must not report a change")
	}

	if !tr.Changed(640, 100, sampleBiomes()) {
		t.Fatal("valid input must report a change")
	}
	if tr.Changed(640, 100, BiomeList{}) {
		t.Fatal("emptying the list must not report a change")
	}
	ws, ts, b := tr.Baseline()
	if ws != 640 || ts != 100 || !b.Equal(sampleBiomes()) {
		t.Fatal("rejected input overwrote the baseline")
	}
}

func TestTrackerBaselineIsCopied(t *testing.T) {
	var tr Tracker
	biomes := sampleBiomes()
	tr.Changed(640, 100, biomes)

	// Editing the caller's slice in place must still be seen as a change.
	biomes[0].Persistence = 0.9
	if !tr.Changed(640, 100, biomes) {
		t.Fatal("in-place edit was hidden by aliasing")
	}

	tr.Reset()
	if !tr.Changed(640, 100, biomes) {
		t.Fatal("Reset did not clear the baseline")
	}
}

func TestTrackerToleratesRounding(t *testing.T) {
	var tr Tracker
	tr.Changed(640, 100, sampleBiomes())

	nudged := sampleBiomes()
	nudged[0].Persistence += 1e-14
	nudged[1].Name = "renamed"
	if tr.Changed(640, 100, nudged) {
		t.Fatal("rounding noise or a rename triggered regeneration")
	}
}

func TestBiomeListEqualIsOrdered(t *testing.T) {
	a := sampleBiomes()
	b := BiomeList{a[1], a[0]}
	if a.Equal(b) {
		t.Fatal("lists in different order compared equal")
	}
	if !a.Equal(a.Clone()) {
		t.Fatal("clone not equal")
	}
	if a.Equal(a[:1]) {
		t.Fatal("lists of different length compared equal")
	}
}

func TestFingerprint(t *testing.T) {
	base := Fingerprint(640, noise.BackendPerlin, sampleBiomes())
	if base != Fingerprint(640, noise.BackendPerlin, sampleBiomes()) {
		t.Fatal("fingerprint not stable")
	}

	renamed := sampleBiomes()
	renamed[0].Name = "lowlands"
	if Fingerprint(640, noise.BackendPerlin, renamed) != base {
		t.Fatal("name changed the fingerprint")
	}

	reseeded := sampleBiomes()
	reseeded[0].Seed = 7
	if Fingerprint(640, noise.BackendPerlin, reseeded) == base {
		t.Fatal("seed did not change the fingerprint")
	}
	if Fingerprint(320, noise.BackendPerlin, sampleBiomes()) == base {
		t.Fatal("world size did not change the fingerprint")
	}

	if Fingerprint(640, noise.BackendOpenSimplex, sampleBiomes()) == base {
		t.Fatal("noise backend did not change the fingerprint")
	}

	detail := sampleBiomes()
	detail[1].GradientDetailReduction = true
	if Fingerprint(640, noise.BackendPerlin, detail) == base {
		t.Fatal("detail flag did not change the fingerprint")
	}
}
