package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"biomegen/internal/logger"
	"biomegen/internal/output"
	"biomegen/pkg/config"
)

func TestSampleBiomesAreValid(t *testing.T) {
	if err := sampleBiomes().Validate(); err != nil {
		t.Fatalf("sample biomes invalid: %v", err)
	}
}

func TestWriteSamplesAndRun(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	biomesPath := filepath.Join(dir, "biomes.toml")

	if err := writeSamples(configPath, biomesPath); err != nil {
		t.Fatalf("writeSamples: %v", err)
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BiomesFile != biomesPath {
		t.Fatalf("biomes_file = %q, expected %q", cfg.BiomesFile, biomesPath)
	}
	biomes, err := config.LoadBiomes(biomesPath)
	if err != nil {
		t.Fatalf("LoadBiomes: %v", err)
	}
	if !biomes.Equal(sampleBiomes()) {
		t.Fatal("sample document does not match sampleBiomes")
	}

	cfg.World.ChunkSize = 8
	cfg.World.ChunksFromCenter = 1
	cfg.Output.Dir = filepath.Join(dir, "out")
	cfg.Output.Formats = []string{"png", "tiff"}

	a, err := newApp(cfg, "", logger.Discard())
	if err != nil {
		t.Fatalf("newApp: %v", err)
	}
	if err := a.run(context.Background(), 0); err != nil {
		t.Fatalf("run: %v", err)
	}

	m, err := output.LoadManifest(cfg.Output.Dir)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.WorldSize != 24 || len(m.Files) != 2 || len(m.Biomes) != 3 {
		t.Fatalf("unexpected manifest %+v", m)
	}

	// An unchanged document must not produce a new run.
	if err := a.refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	again, err := output.LoadManifest(cfg.Output.Dir)
	if err != nil {
		t.Fatal(err)
	}
	if again.ID != m.ID {
		t.Fatal("unchanged biomes triggered a regeneration")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.World.ChunkSize = 4
	cfg.World.ChunksFromCenter = 0
	cfg.BiomesFile = filepath.Join(dir, "biomes.json")
	cfg.Output.Dir = filepath.Join(dir, "out")
	if err := config.SaveBiomes(cfg.BiomesFile, sampleBiomes()); err != nil {
		t.Fatal(err)
	}

	a, err := newApp(cfg, "", logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := a.run(ctx, 10*time.Millisecond); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func smallApp(t *testing.T, dir string) *app {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.World.ChunkSize = 4
	cfg.World.ChunksFromCenter = 0
	cfg.BiomesFile = filepath.Join(dir, "biomes.yaml")
	cfg.Output.Dir = filepath.Join(dir, "out")
	if err := config.SaveBiomes(cfg.BiomesFile, sampleBiomes()); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(dir, "config.yaml")
	if err := config.SaveConfig(cfg, configPath); err != nil {
		t.Fatal(err)
	}

	a, err := newApp(cfg, configPath, logger.Discard())
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestFailedManifestWriteIsRetried(t *testing.T) {
	dir := t.TempDir()
	a := smallApp(t, dir)

	// A directory in the manifest's place makes the write fail.
	if err := os.MkdirAll(filepath.Join(a.cfg.Output.Dir, output.ManifestName), 0755); err != nil {
		t.Fatal(err)
	}
	if err := a.refresh(); err == nil {
		t.Fatal("expected the manifest write to fail")
	}
	if err := a.refresh(); err == nil {
		t.Fatal("unchanged biomes were not retried after a failed run")
	}

	if err := os.Remove(filepath.Join(a.cfg.Output.Dir, output.ManifestName)); err != nil {
		t.Fatal(err)
	}
	if err := a.refresh(); err != nil {
		t.Fatalf("retry after fixing the output dir: %v", err)
	}
	if _, err := output.LoadManifest(a.cfg.Output.Dir); err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
}

func TestApplyLogLevelFollowsConfig(t *testing.T) {
	dir := t.TempDir()
	a := smallApp(t, dir)

	a.applyLogLevel()
	if a.log.Level() != logger.INFO {
		t.Fatalf("level = %v, expected INFO from the config file", a.log.Level())
	}

	a.cfg.Logging.Level = "error"
	if err := config.SaveConfig(a.cfg, a.configPath); err != nil {
		t.Fatal(err)
	}
	a.applyLogLevel()
	if a.log.Level() != logger.ERROR {
		t.Fatalf("level = %v, expected ERROR after editing the config", a.log.Level())
	}
}
