package main

import (
	"fmt"

	"biomegen/internal/logger"
	"biomegen/internal/util"
	"biomegen/pkg/config"
	"biomegen/pkg/worldgen"

	"github.com/go-gl/mathgl/mgl64"
)

// newLogger logs to stdout, and additionally to a file when one is configured
func newLogger(cfg config.LoggingConfig) (*logger.Logger, error) {
	if cfg.File == "" {
		return logger.NewLogger(cfg.Level), nil
	}
	return logger.NewMultiLogger(cfg.Level, cfg.File)
}

// sampleBiomes is a plains, hills and mountains layout for the default world
func sampleBiomes() worldgen.BiomeList {
	plains := worldgen.DefaultBiome()
	plains.Name = "plains"
	plains.Seed = 1
	plains.Range = mgl64.Vec2{-16, 16}
	plains.Octaves = 5
	plains.Lacunarity = 2
	plains.NoiseScale = 0.004
	plains.FadeA, plains.FadeS, plains.FadeK = 3, 4, 24
	plains.Origin = mgl64.Vec2{64, 128}

	hills := worldgen.DefaultBiome()
	hills.Name = "hills"
	hills.Seed = 2
	hills.Range = mgl64.Vec2{-8, 56}
	hills.Octaves = 5
	hills.Lacunarity = 2
	hills.NoiseScale = 0.008
	hills.FadeA, hills.FadeS, hills.FadeK = 1.5, 6, 32
	hills.Origin = mgl64.Vec2{-64, 64}

	mountains := worldgen.DefaultBiome()
	mountains.Name = "mountains"
	mountains.Seed = 3
	mountains.Range = mgl64.Vec2{0, 384}
	mountains.Octaves = 6
	mountains.Lacunarity = 0.5
	mountains.NoiseScale = 0.01
	mountains.GradientDetailReduction = true
	mountains.GradientDetailReductionSpeed = 2

	return worldgen.BiomeList{plains, hills, mountains}
}

// writeSamples writes a default config and a sample biome document. Existing
// files are left alone.
func writeSamples(configPath, biomesPath string) error {
	cfg := config.DefaultConfig()
	if biomesPath != "" {
		cfg.BiomesFile = biomesPath
	}

	if util.FileExists(configPath) {
		fmt.Printf("%s exists, keeping it\n", configPath)
	} else {
		if err := config.SaveConfig(cfg, configPath); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", configPath)
	}

	biomesFile := cfg.BiomesFile
	if util.FileExists(biomesFile) {
		fmt.Printf("%s exists, keeping it\n", biomesFile)
		return nil
	}
	if err := config.SaveBiomes(biomesFile, sampleBiomes()); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", biomesFile)
	return nil
}
