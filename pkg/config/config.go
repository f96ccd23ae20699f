package config

import (
	"fmt"
	"os"

	"biomegen/internal/noise"
	"biomegen/internal/output"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	World      WorldConfig   `yaml:"world"`
	Noise      NoiseConfig   `yaml:"noise"`
	BiomesFile string        `yaml:"biomes_file"`
	Output     OutputConfig  `yaml:"output"`
	Logging    LoggingConfig `yaml:"logging"`
}

// WorldConfig sizes the generated world. The height field is
// (2·ChunksFromCenter + 1)·ChunkSize cells on a side.
type WorldConfig struct {
	ChunkSize        int `yaml:"chunk_size"`
	ChunksFromCenter int `yaml:"chunks_from_center"`
	TileSize         int `yaml:"tile_size"` // world units per cell, used by consumers only
}

// NoiseConfig selects the coherent noise backend
type NoiseConfig struct {
	Backend string `yaml:"backend"` // perlin, classic, opensimplex
}

// OutputConfig controls what the CLI writes after generating
type OutputConfig struct {
	Dir      string   `yaml:"dir"`
	Formats  []string `yaml:"formats"` // png, tiff
	Manifest bool     `yaml:"manifest"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stdout only
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			ChunkSize:        128,
			ChunksFromCenter: 2,
			TileSize:         100,
		},
		Noise: NoiseConfig{
			Backend: string(noise.BackendPerlin),
		},
		BiomesFile: "biomes.yaml",
		Output: OutputConfig{
			Dir:      "out",
			Formats:  []string{string(output.FormatPNG)},
			Manifest: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// WorldSize returns the side length of the height field in cells
func (w WorldConfig) WorldSize() int {
	return (w.ChunksFromCenter*2 + 1) * w.ChunkSize
}

// Validate checks the configuration for values the generator cannot use
func (c *Config) Validate() error {
	if c.World.ChunkSize <= 0 {
		return fmt.Errorf("world.chunk_size must be positive, got %d", c.World.ChunkSize)
	}
	if c.World.ChunksFromCenter < 0 {
		return fmt.Errorf("world.chunks_from_center must not be negative, got %d", c.World.ChunksFromCenter)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %d", c.World.TileSize)
	}
	if _, err := noise.NewFactory(c.Noise.Backend); err != nil {
		return fmt.Errorf("noise.backend: %w", err)
	}
	for _, f := range c.Output.Formats {
		if _, err := output.ParseFormat(f); err != nil {
			return fmt.Errorf("output.formats: %w", err)
		}
	}
	return nil
}

// LoadConfig loads the configuration from a file. When the file cannot be
// read or parsed the defaults are returned together with the error.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
