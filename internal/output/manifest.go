package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"biomegen/internal/noise"
	"biomegen/pkg/grid"
	"biomegen/pkg/worldgen"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

// ManifestName is the file name of the run manifest inside the output dir
const ManifestName = "manifest.yaml"

// File describes one exported height map
type File struct {
	Name   string `yaml:"name"`
	Format Format `yaml:"format"`
	Bytes  int64  `yaml:"bytes"`
	XXHash string `yaml:"xxhash"`
}

// Manifest records what a generation run produced and from which inputs
type Manifest struct {
	ID          string   `yaml:"id"`
	Fingerprint string   `yaml:"fingerprint"`
	WorldSize   int      `yaml:"world_size"`
	TileSize    int      `yaml:"tile_size"`
	Backend     string   `yaml:"backend"`
	Biomes      []string `yaml:"biomes"`
	Min         float64  `yaml:"min"`
	Max         float64  `yaml:"max"`
	Files       []File   `yaml:"files"`
	CreatedAt   string   `yaml:"created_at"`
}

// NewManifest describes a generated field. Files is filled by Export.
func NewManifest(worldSize, tileSize int, backend noise.Backend, biomes worldgen.BiomeList, field *grid.Grid) *Manifest {
	names := make([]string, len(biomes))
	for i, b := range biomes {
		names[i] = b.Name
	}
	lo, hi := field.MinMax()

	return &Manifest{
		ID:          uuid.New().String(),
		Fingerprint: fmt.Sprintf("%016x", worldgen.Fingerprint(worldSize, backend, biomes)),
		WorldSize:   worldSize,
		TileSize:    tileSize,
		Backend:     string(backend),
		Biomes:      names,
		Min:         lo,
		Max:         hi,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

// Export writes the field once per format into dir as heightmap.<ext> and
// appends each file to the manifest.
func (m *Manifest) Export(dir string, field *grid.Grid, formats []Format) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating output dir: %w", err)
	}

	for _, format := range formats {
		name := "heightmap" + format.Ext()
		entry, err := writeFile(filepath.Join(dir, name), field, format)
		if err != nil {
			return err
		}
		entry.Name = name
		m.Files = append(m.Files, entry)
	}
	return nil
}

func writeFile(path string, field *grid.Grid, format Format) (File, error) {
	f, err := os.Create(path)
	if err != nil {
		return File{}, fmt.Errorf("error creating %s: %w", path, err)
	}
	defer f.Close()

	digest := xxhash.New()
	counter := &countingWriter{}
	if err := WriteHeightmap(io.MultiWriter(f, digest, counter), field, format); err != nil {
		return File{}, fmt.Errorf("error encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return File{}, fmt.Errorf("error closing %s: %w", path, err)
	}

	return File{
		Format: format,
		Bytes:  counter.n,
		XXHash: fmt.Sprintf("%016x", digest.Sum64()),
	}, nil
}

// Save writes the manifest as YAML into dir
func (m *Manifest) Save(dir string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error serializing manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0644); err != nil {
		return fmt.Errorf("error writing manifest: %w", err)
	}
	return nil
}

// LoadManifest reads a manifest previously written by Save
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error parsing manifest: %w", err)
	}
	return &m, nil
}

type countingWriter struct{ n int64 }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
