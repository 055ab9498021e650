package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubic-hopper/internal/config"
	"github.com/vovakirdan/cubic-hopper/internal/core"
)

// newLogger builds the process logger. With no --log-file, toFile selects
// the XDG state log (the TUI owns the terminal) and otherwise stderr.
// The returned func closes the log file.
func newLogger(toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}

	path := flagLogFile
	if path == "" && toFile {
		if path, err = config.DefaultLogPath(); err != nil {
			return nil, nil, err
		}
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "hopper",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration and applies --difficulty and --fps.
func loadConfig(logger *log.Logger) (config.HopperConfig, error) {
	cfg, source, err := config.LoadHopper(flagConfig)
	if err != nil {
		return config.HopperConfig{}, err
	}
	logger.Debug("config loaded", "source", source)

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return config.HopperConfig{}, err
		}
		config.ApplyHopperPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}

// runtimeConfig combines the terminal size with the loaded config.
func runtimeConfig(cfg config.HopperConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}
}
