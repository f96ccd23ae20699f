package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"biomegen/internal/logger"
	"biomegen/internal/noise"
	"biomegen/internal/output"
	"biomegen/internal/util"
	"biomegen/pkg/config"
	"biomegen/pkg/worldgen"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	biomesPath := flag.String("biomes", "", "Path to biome document (overrides biomes_file)")
	outDir := flag.String("out", "", "Output directory (overrides output.dir)")
	watch := flag.Duration("watch", 0, "Poll the biome document at this interval and regenerate on change")
	initFiles := flag.Bool("init", false, "Write a default config and sample biome document, then exit")
	flag.Parse()

	if *initFiles {
		if err := writeSamples(*configPath, *biomesPath); err != nil {
			log.Fatalf("Failed to write sample files: %v", err)
		}
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Printf("%v", err)
	}
	if *biomesPath != "" {
		cfg.BiomesFile = *biomesPath
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logger.Close()
	logger.Info("Starting biome terrain generator...")

	app, err := newApp(cfg, *configPath, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize generator: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.run(ctx, *watch); err != nil {
		logger.Fatalf("Generation failed: %v", err)
	}
}

// app ties the configuration to a generator and remembers the last input
type app struct {
	cfg        *config.Config
	configPath string
	backend    noise.Backend
	log        *logger.Logger
	gen        *worldgen.Generator
	tracker    worldgen.Tracker
	formats    []output.Format
}

func newApp(cfg *config.Config, configPath string, log *logger.Logger) (*app, error) {
	backend, err := noise.ParseBackend(cfg.Noise.Backend)
	if err != nil {
		return nil, err
	}
	factory, err := noise.NewFactory(string(backend))
	if err != nil {
		return nil, err
	}

	formats := make([]output.Format, 0, len(cfg.Output.Formats))
	for _, name := range cfg.Output.Formats {
		f, err := output.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}

	return &app{
		cfg:        cfg,
		configPath: configPath,
		backend:    backend,
		log:        log,
		gen:        worldgen.New(factory, log.WithPrefix("worldgen")),
		formats:    formats,
	}, nil
}

// run generates once, then keeps polling while interval is positive
func (a *app) run(ctx context.Context, interval time.Duration) error {
	if err := a.refresh(); err != nil {
		if interval <= 0 {
			return err
		}
		a.log.Errorf("%v", err)
	}
	if interval <= 0 {
		return nil
	}

	a.log.Infof("Watching %s every %v", a.cfg.BiomesFile, interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("Stopping watch")
			return nil
		case <-ticker.C:
			a.applyLogLevel()
			if err := a.refresh(); err != nil {
				a.log.Errorf("%v", err)
			}
		}
	}
}

// applyLogLevel picks up logging.level edits in the config file while
// watching. Other config changes need a restart.
func (a *app) applyLogLevel() {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return
	}
	if logger.ParseLevel(cfg.Logging.Level) == a.log.Level() {
		return
	}
	a.log.SetLevel(cfg.Logging.Level)
	a.log.Infof("Log level set to %s", cfg.Logging.Level)
}

// refresh reloads the biome document and regenerates when it changed
func (a *app) refresh() error {
	biomes, err := config.LoadBiomes(a.cfg.BiomesFile)
	if err != nil {
		return err
	}

	worldSize := a.cfg.World.WorldSize()
	if !a.tracker.Changed(worldSize, a.cfg.World.TileSize, biomes) {
		a.log.Debug("Biomes unchanged, skipping generation")
		return nil
	}
	defer util.TimeTrack(time.Now(), "generation run", a.log.Infof)

	heights, err := a.gen.Generate(worldSize, biomes)
	if err != nil {
		var pe *worldgen.ParamError
		if errors.As(err, &pe) {
			a.log.Warnf("Fix biome %d (%s) in %s", pe.Index, pe.Name, a.cfg.BiomesFile)
		}
		// Let the next poll retry the same document once it is fixed.
		a.tracker.Reset()
		return err
	}

	manifest := output.NewManifest(worldSize, a.cfg.World.TileSize, a.backend, biomes, heights)
	if err := manifest.Export(a.cfg.Output.Dir, heights, a.formats); err != nil {
		a.tracker.Reset()
		return err
	}
	for _, f := range manifest.Files {
		a.log.Infof("Wrote %s (%d bytes)", f.Name, f.Bytes)
	}

	if a.cfg.Output.Manifest {
		if err := manifest.Save(a.cfg.Output.Dir); err != nil {
			a.tracker.Reset()
			return err
		}
		a.log.Infof("Manifest %s fingerprint %s", manifest.ID, manifest.Fingerprint)
	}
	return nil
}
