package config

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"biomegen/pkg/worldgen"

	"github.com/go-gl/mathgl/mgl64"
)

func testBiomes() worldgen.BiomeList {
	plains := worldgen.DefaultBiome()
	plains.Name = "plains"
	plains.Seed = -12345
	plains.Range = mgl64.Vec2{-16.25, 16.125}
	plains.Octaves = 5
	plains.Persistence = 0.1 + 0.2 // not exactly representable
	plains.Lacunarity = 2
	plains.NoiseScale = 1.0 / 48
	plains.FadeA, plains.FadeS, plains.FadeK = 3, -4.5, 1e-3
	plains.Origin = mgl64.Vec2{64.5, -128}

	mountains := worldgen.DefaultBiome()
	mountains.Name = "mountains"
	mountains.Seed = math.MaxInt32
	mountains.Octaves = 255
	mountains.Range = mgl64.Vec2{0, 384}
	mountains.NoiseScale = 3e-7
	mountains.GradientDetailReduction = true
	mountains.GradientDetailReductionSpeed = math.Pi

	return worldgen.BiomeList{plains, mountains}
}

// exactEqual compares every field bit for bit, names included.
func exactEqual(a, b worldgen.BiomeList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBiomesRoundTripIsLossless(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		var buf bytes.Buffer
		if err := EncodeBiomes(&buf, format, testBiomes()); err != nil {
			t.Fatalf("%s encode: %v", format, err)
		}
		got, err := DecodeBiomes(&buf, format)
		if err != nil {
			t.Fatalf("%s decode: %v", format, err)
		}
		if !exactEqual(got, testBiomes()) {
			t.Fatalf("%s round trip mismatch:\n got %+v\nwant %+v", format, got, testBiomes())
		}
	}
}

func TestBiomeDocumentKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeBiomes(&buf, FormatJSON, testBiomes()[:1]); err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	keys := []string{
		`"Biomes"`, `"Name"`, `"bGradientDetailReduction"`, `"GradientDetailReductionSpeed"`,
		`"RangeMax"`, `"RangeMin"`, `"Seed"`, `"Octaves"`, `"Persistence"`, `"Lacunarity"`,
		`"NoiseScale"`, `"a"`, `"s"`, `"k"`, `"OriginX"`, `"OriginY"`,
	}
	for _, key := range keys {
		if !strings.Contains(doc, key) {
			t.Fatalf("document lacks key %s:\n%s", key, doc)
		}
	}
}

func TestDecodeBiomesFillsDefaults(t *testing.T) {
	docs := map[Format]string{
		FormatJSON: `{"Biomes": [{"Name": "dunes", "Seed": 4, "RangeMax": 12}]}`,
		FormatYAML: "Biomes:\n  - Name: dunes\n    Seed: 4\n    RangeMax: 12\n",
		FormatTOML: "[[Biomes]]\nName = \"dunes\"\nSeed = 4\nRangeMax = 12\n",
	}
	want := worldgen.DefaultBiome()
	want.Name = "dunes"
	want.Seed = 4
	want.Range[1] = 12

	for format, doc := range docs {
		got, err := DecodeBiomes(strings.NewReader(doc), format)
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if len(got) != 1 || got[0] != want {
			t.Fatalf("%s: got %+v, expected %+v", format, got, want)
		}
	}
}

func TestDecodeBiomesRejectsOutOfRange(t *testing.T) {
	docs := []string{
		`{"Biomes": [{"Octaves": 256}]}`,
		`{"Biomes": [{"Octaves": -1}]}`,
		`{"Biomes": [{"Seed": 4294967296}]}`,
	}
	for _, doc := range docs {
		if _, err := DecodeBiomes(strings.NewReader(doc), FormatJSON); err == nil {
			t.Fatalf("%s: expected an error", doc)
		}
	}
	if _, err := DecodeBiomes(strings.NewReader("{}"), Format("xml")); err == nil {
		t.Fatal("expected unknown format to fail")
	}
}

func TestLoadSaveBiomesByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"biomes.json", "biomes.yaml", "biomes.yml", "biomes.toml"} {
		path := filepath.Join(dir, name)
		if err := SaveBiomes(path, testBiomes()); err != nil {
			t.Fatalf("%s: SaveBiomes: %v", name, err)
		}
		got, err := LoadBiomes(path)
		if err != nil {
			t.Fatalf("%s: LoadBiomes: %v", name, err)
		}
		if !exactEqual(got, testBiomes()) {
			t.Fatalf("%s: round trip mismatch", name)
		}
	}

	if err := SaveBiomes(filepath.Join(dir, "biomes.ini"), testBiomes()); err == nil {
		t.Fatal("expected unknown extension to fail")
	}
	if _, err := LoadBiomes(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}
