package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tilestack/internal/config"
	"github.com/vovakirdan/tilestack/internal/core"
	"github.com/vovakirdan/tilestack/internal/storage"
)

// loadConfig loads the game config and applies --difficulty. A level above
// zero overrides the start level the preset picks; under the fixed preset it
// is the only level played.
func loadConfig(level int) (config.TileStackConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TileStackConfig{}, err
	}

	cfg, err := config.LoadTileStack(flagConfig)
	if err != nil {
		return cfg, err
	}

	cfg = cfg.WithStartLevel(level)
	config.ApplyTileStackPreset(&cfg, preset)
	if !config.IsFixedPreset(preset) {
		cfg = cfg.WithStartLevel(level)
	}
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Failure is not fatal: the game
// still works, it just doesn't record results.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openLogger returns a logger writing to --log, or nil when the flag is unset.
// The returned func closes the log file.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilestack",
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Nothing left to report to
	return logger, func() { f.Close() }, nil
}
