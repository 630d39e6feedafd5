package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"chosenoffset.com/raymaze/internal/compositor"
	"chosenoffset.com/raymaze/internal/config"
	"chosenoffset.com/raymaze/internal/game"
	ebitenrender "chosenoffset.com/raymaze/internal/render/ebiten"
	"chosenoffset.com/raymaze/internal/scene"
	"chosenoffset.com/raymaze/internal/snapshot"
)

func main() {
	configPath := flag.String("config", "raymaze.json", "Path to the JSON settings file")
	seed := flag.Uint64("seed", 0, "Maze seed, 0 picks one from the clock (overrides the settings file)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error (overrides the settings file)")
	showHUD := flag.Bool("hud", false, "Start with the HUD overlay visible")
	flag.Parse()

	if err := run(*configPath, *seed, *logLevel, *showHUD); err != nil {
		slog.Error("raymaze failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, logLevel string, showHUD bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Maze.Seed = seed
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	sceneOpts := scene.OptionsFromConfig(cfg)
	sceneOpts.Logger = logger
	s, err := scene.New(sceneOpts)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}

	comp, err := compositor.New(compositor.OptionsFromConfig(cfg), cfg.MapWidth(), cfg.MapHeight())
	if err != nil {
		return fmt.Errorf("failed to create compositor: %w", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.New(s, comp, renderer, inputMgr, game.Options{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Snapshots:    snapshot.NewWriter(cfg.SnapshotDir),
		ShowHUD:      showHUD,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(false)

	logger.Info("starting",
		"window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"seed", s.Seed(),
		"interior_walls", cfg.Maze.InteriorWalls,
		"rays", cfg.View.RayCount,
		"snapshot_dir", cfg.SnapshotDir)

	return engine.RunGame(g)
}
