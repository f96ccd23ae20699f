package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"biomegen/pkg/worldgen"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v2"
)

// Format identifies a biome document encoding
type Format string

// Supported biome document encodings
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the document format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported biome document extension %q", filepath.Ext(path))
	}
}

// BiomeDocument is the persisted form of a biome list
type BiomeDocument struct {
	Biomes []BiomeRecord `json:"Biomes" yaml:"Biomes" toml:"Biomes"`
}

// BiomeRecord is one entry of the "Biomes" array. Keys missing from a
// document take the values of DefaultRecord.
type BiomeRecord struct {
	Name                         string  `json:"Name" yaml:"Name" toml:"Name"`
	GradientDetailReduction      bool    `json:"bGradientDetailReduction" yaml:"bGradientDetailReduction" toml:"bGradientDetailReduction"`
	GradientDetailReductionSpeed float64 `json:"GradientDetailReductionSpeed" yaml:"GradientDetailReductionSpeed" toml:"GradientDetailReductionSpeed"`
	RangeMax                     float64 `json:"RangeMax" yaml:"RangeMax" toml:"RangeMax"`
	RangeMin                     float64 `json:"RangeMin" yaml:"RangeMin" toml:"RangeMin"`
	Seed                         int64   `json:"Seed" yaml:"Seed" toml:"Seed"`
	Octaves                      int64   `json:"Octaves" yaml:"Octaves" toml:"Octaves"`
	Persistence                  float64 `json:"Persistence" yaml:"Persistence" toml:"Persistence"`
	Lacunarity                   float64 `json:"Lacunarity" yaml:"Lacunarity" toml:"Lacunarity"`
	NoiseScale                   float64 `json:"NoiseScale" yaml:"NoiseScale" toml:"NoiseScale"`
	A                            float64 `json:"a" yaml:"a" toml:"a"`
	S                            float64 `json:"s" yaml:"s" toml:"s"`
	K                            float64 `json:"k" yaml:"k" toml:"k"`
	OriginX                      float64 `json:"OriginX" yaml:"OriginX" toml:"OriginX"`
	OriginY                      float64 `json:"OriginY" yaml:"OriginY" toml:"OriginY"`
}

// DefaultRecord mirrors worldgen.DefaultBiome
func DefaultRecord() BiomeRecord {
	return RecordFromBiome(worldgen.DefaultBiome())
}

// UnmarshalJSON fills missing keys from DefaultRecord
func (r *BiomeRecord) UnmarshalJSON(data []byte) error {
	*r = DefaultRecord()
	type plain BiomeRecord
	return json.Unmarshal(data, (*plain)(r))
}

// UnmarshalYAML fills missing keys from DefaultRecord
func (r *BiomeRecord) UnmarshalYAML(unmarshal func(interface{}) error) error {
	*r = DefaultRecord()
	type plain BiomeRecord
	return unmarshal((*plain)(r))
}

// RecordFromBiome converts a biome to its persisted form
func RecordFromBiome(b worldgen.Biome) BiomeRecord {
	return BiomeRecord{
		Name:                         b.Name,
		GradientDetailReduction:      b.GradientDetailReduction,
		GradientDetailReductionSpeed: b.GradientDetailReductionSpeed,
		RangeMax:                     b.Max(),
		RangeMin:                     b.Min(),
		Seed:                         int64(b.Seed),
		Octaves:                      int64(b.Octaves),
		Persistence:                  b.Persistence,
		Lacunarity:                   b.Lacunarity,
		NoiseScale:                   b.NoiseScale,
		A:                            b.FadeA,
		S:                            b.FadeS,
		K:                            b.FadeK,
		OriginX:                      b.Origin[0],
		OriginY:                      b.Origin[1],
	}
}

// Biome converts the record back into a biome. Integer fields that do not
// fit the biome's types are rejected.
func (r BiomeRecord) Biome() (worldgen.Biome, error) {
	if r.Seed < math.MinInt32 || r.Seed > math.MaxInt32 {
		return worldgen.Biome{}, fmt.Errorf("biome %q: Seed %d out of int32 range", r.Name, r.Seed)
	}
	if r.Octaves < 0 || r.Octaves > math.MaxUint8 {
		return worldgen.Biome{}, fmt.Errorf("biome %q: Octaves %d out of range [0, 255]", r.Name, r.Octaves)
	}
	return worldgen.Biome{
		Name:                         r.Name,
		Range:                        mgl64.Vec2{r.RangeMin, r.RangeMax},
		Seed:                         int32(r.Seed),
		Octaves:                      uint8(r.Octaves),
		Persistence:                  r.Persistence,
		Lacunarity:                   r.Lacunarity,
		NoiseScale:                   r.NoiseScale,
		FadeA:                        r.A,
		FadeS:                        r.S,
		FadeK:                        r.K,
		Origin:                       mgl64.Vec2{r.OriginX, r.OriginY},
		GradientDetailReduction:      r.GradientDetailReduction,
		GradientDetailReductionSpeed: r.GradientDetailReductionSpeed,
	}, nil
}

// NewBiomeDocument wraps a biome list for encoding
func NewBiomeDocument(biomes worldgen.BiomeList) BiomeDocument {
	doc := BiomeDocument{Biomes: make([]BiomeRecord, len(biomes))}
	for i, b := range biomes {
		doc.Biomes[i] = RecordFromBiome(b)
	}
	return doc
}

// BiomeList converts every record, preserving order
func (d BiomeDocument) BiomeList() (worldgen.BiomeList, error) {
	list := make(worldgen.BiomeList, len(d.Biomes))
	for i, r := range d.Biomes {
		b, err := r.Biome()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		list[i] = b
	}
	return list, nil
}

// DecodeBiomes reads a biome document in the given format
func DecodeBiomes(r io.Reader, format Format) (worldgen.BiomeList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading biome document: %w", err)
	}

	var doc BiomeDocument
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = decodeTOML(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported biome document format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("error parsing %s biome document: %w", format, err)
	}

	return doc.BiomeList()
}

// decodeTOML routes the parsed tree through the JSON decoder so that missing
// keys get the same defaults as the other formats.
func decodeTOML(data []byte, doc *BiomeDocument) error {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return err
	}
	bridged, err := json.Marshal(tree.ToMap())
	if err != nil {
		return err
	}
	return json.Unmarshal(bridged, doc)
}

// EncodeBiomes writes a biome document in the given format
func EncodeBiomes(w io.Writer, format Format, biomes worldgen.BiomeList) error {
	doc := NewBiomeDocument(biomes)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported biome document format %q", format)
	}
	if err != nil {
		return fmt.Errorf("error serializing biome document: %w", err)
	}

	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// LoadBiomes reads a biome document, choosing the format from the extension
func LoadBiomes(filePath string) (worldgen.BiomeList, error) {
	format, err := FormatFromPath(filePath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening biome document: %w", err)
	}
	defer f.Close()

	return DecodeBiomes(f, format)
}

// SaveBiomes writes a biome document, choosing the format from the extension
func SaveBiomes(filePath string, biomes worldgen.BiomeList) error {
	format, err := FormatFromPath(filePath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := EncodeBiomes(&buf, format, biomes); err != nil {
		return err
	}

	if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing biome document: %w", err)
	}
	return nil
}
