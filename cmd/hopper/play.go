package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cubic-hopper/internal/audio"
	"github.com/vovakirdan/cubic-hopper/internal/games/hopper"
	"github.com/vovakirdan/cubic-hopper/internal/platform/tui"
	"github.com/vovakirdan/cubic-hopper/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Cubic Hopper in the terminal.

Controls:
  Space        - Jump (restart after game over)
  Up/Down      - Move through menus
  Left/Right   - Change a setting
  Enter        - Select
  Esc          - Back to the main menu
  R            - Restart after game over
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Obstacles ramp up at half speed
  normal - Obstacles ramp up with distance
  hard   - Obstacles ramp up at 1.5x speed
  fixed  - No progression, stays at the config's fixed level

Examples:
  hopper play
  hopper play --difficulty easy
  hopper play --mute --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := runtimeConfig(cfg, width, height)

	opts := tui.Options{Logger: logger}

	ledger, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run ledger unavailable", "err", err)
	} else {
		defer ledger.Close()
		opts.Ledger = ledger
	}

	if cfg.Audio.Enabled && !flagMute {
		engine := audio.NewEngine(cfg.Audio.SampleRate)
		if err := engine.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer engine.Cleanup()
			opts.Sound = engine
		}
	}

	logger.Info("starting", "difficulty", cfg.Difficulty.Preset, "fps", rt.TickRate, "seed", rt.Seed)
	game := hopper.New(cfg)
	if err := tui.Run(game, rt, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if ledger != nil {
		printSessionSummary(cmd.OutOrStdout(), ledger)
	}
	return nil
}
