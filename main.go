// spaceman is a side-scrolling platformer built on a small AABB physics
// engine.
//
// Usage:
//
//	spaceman play             - Open the game window
//	spaceman sim              - Run a level headless and report telemetry
//	spaceman levels           - List the bundled levels
//
// Global flags:
//
//	--config <path>     - YAML config overlay (default: ~/.spaceman/config.yaml)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/spaceman/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagSeed     int64

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceman",
	Short: "Spaceman - a tile-based platformer",
	Long: `Spaceman is a side-scrolling platformer. Run right, stomp goombas,
bump blocks for coins and mushrooms, and reach the end of each level.

Examples:
  spaceman play
  spaceman play --level level2
  spaceman sim --level level1 --frames 1200 --script run.txt --csv out/stats.csv
  spaceman levels`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config overlay")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "RNG seed for enemy behaviour")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(levelsCmd)
}

// setup builds the logger and applies the config overlay before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceman",
		Level:           level,
	})

	path, err := config.Resolve(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("config loaded", "path", path)
	}
	return nil
}
