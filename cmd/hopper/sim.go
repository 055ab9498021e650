package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cubic-hopper/internal/games/hopper"
	"github.com/vovakirdan/cubic-hopper/internal/platform/tui"
	"github.com/vovakirdan/cubic-hopper/internal/storage"
)

var (
	flagTicks   int
	flagRestart bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session driven by the autopilot",
	Long: `Run the simulation without a terminal UI. The autopilot starts a run
from the main menu and jumps whenever a spike comes into range. Finished
runs are recorded and summarised at the end.

Examples:
  hopper sim
  hopper sim --ticks 36000 --restart
  hopper sim --seed 42 --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagRestart, "restart", false, "Restart after every game over")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	ledger, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer ledger.Close()

	rt := runtimeConfig(cfg, 80, 24)
	game := hopper.New(cfg)
	game.Reset(rt)
	pilot := hopper.NewAutopilot(flagRestart)

	jumps := 0
	logger.Info("simulating", "ticks", flagTicks, "seed", rt.Seed, "difficulty", cfg.Difficulty.Preset)
	for tick := 0; tick < flagTicks; tick++ {
		res := game.Step(pilot.Decide(game.Snapshot()))
		jumps += res.Events.Count(hopper.SoundJump)
		if res.ModeChanged() {
			logger.Debug("mode changed", "tick", tick, "from", res.PrevMode, "to", res.Mode)
		}
		if s := res.Summary; s != nil {
			logger.Info("run finished", "tick", tick, "score", s.Score, "distance", int(s.Distance), "zone", s.Zone)
			if _, err := ledger.RecordRun(tui.RunFromSummary(*s)); err != nil {
				return err
			}
		}
		if res.Quit {
			break
		}
	}

	snap := game.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Mode:     %s\n", snap.Mode)
	fmt.Fprintf(out, "Score:    %d (best %d)\n", snap.Score, snap.HighScore)
	fmt.Fprintf(out, "Distance: %.0f\n", snap.Player.Distance)
	fmt.Fprintf(out, "Zone:     %s\n", snap.Zone.Name)
	fmt.Fprintf(out, "Jumps:    %d\n", jumps)
	fmt.Fprintln(out)
	printSessionSummary(out, ledger)
	return nil
}
