package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/sim"
	"github.com/automoto/spaceman/telemetry"
	"github.com/spf13/cobra"
)

var (
	flagSimLevel    string
	flagSimFrames   int
	flagSimScript   string
	flagSimCSV      string
	flagSimWindow   int
	flagSimTickRate int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a level headless and report telemetry",
	Long: `Step a level at a fixed tick without opening a window.

Input comes from a script with one step per line, e.g.

  # hold right, jump on frame 60
  0-600 right run
  60 jump

The run stops early when the player dies or the level is completed.
Physics counters are aggregated every --window frames and written to --csv.`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimLevel, "level", "", "Level to run (default: config level.first)")
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 0, "Frames to run (default: script length, or 600)")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Input script file")
	simCmd.Flags().StringVar(&flagSimCSV, "csv", "", "Write window stats to this CSV file")
	simCmd.Flags().IntVar(&flagSimWindow, "window", 60, "Telemetry window in frames")
	simCmd.Flags().IntVar(&flagSimTickRate, "tick-rate", 0, "Pace the run at this many ticks per second (0 = as fast as possible)")
}

func runSim(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}
	name := flagSimLevel
	if name == "" {
		name = config.Level.First
	}
	index := levelIndex(levels, name)
	if index < 0 {
		return fmt.Errorf("unknown level %q", name)
	}

	var script *sim.Script
	if flagSimScript != "" {
		f, err := os.Open(flagSimScript)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		script, err = sim.ParseScript(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	frames := flagSimFrames
	if frames <= 0 && script.Len() == 0 {
		frames = 600
	}

	out, err := telemetry.CreateOutput(flagSimCSV)
	if err != nil {
		return err
	}
	defer out.Close()

	runner, err := sim.NewRunner(sim.Options{
		Level:    levels[index],
		Frames:   frames,
		Seed:     flagSeed,
		Script:   script,
		TickRate: flagSimTickRate,
		Step:     1 / float64(config.Physics.TargetFPS),
		Window:   flagSimWindow,
		Output:   out,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "outcome: %s\nframes:  %d\ntime:    %.2fs\ncoins:   %d\nplayer:  %.1f, %.1f\n",
		res.Outcome, res.Frames, res.SimSeconds, res.Coins, res.Player.X, res.Player.Y)
	if res.KilledBy != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "killed:  %s\n", res.KilledBy)
	}
	return nil
}
