// pong is two-player Pong for the terminal on a fixed-timestep loop.
//
// Usage:
//
//	pong play [--mode versus|cpu|demo]   - Play in the terminal
//	pong sim --ticks N                   - Run a headless match and print the result
//	pong list                            - List available games
//	pong config                          - Print the default configuration
//
// Global flags:
//
//	--tps <rate>         - Simulation ticks per second (default: from config)
//	--seed <value>       - RNG seed for reproducible gameplay
//	--config <path>      - Custom pong.yaml
//	--difficulty <name>  - CPU difficulty preset: easy, normal, hard, fixed
//	--win <points>       - Points needed to win (default: from config)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-pong/internal/games/pong"
)

var (
	// Global flags
	flagTPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagWin        int
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one ball, in your terminal",
	Long: `Pong runs a classic two-player match on a fixed-timestep game loop.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless match and print the final state
  list     - Show all available games
  config   - Print the default configuration

Examples:
  pong play
  pong play --mode cpu --difficulty hard
  pong sim --ticks 3600 --seed 42 --format yaml
  pong config > ~/.pong/configs/pong.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Simulation ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random for play, literal for sim)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom pong config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "CPU difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagWin, "win", 0, "Points needed to win (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime settings from the global flags and a
// command's --mode value.
func runtimeConfig(modeName string) (core.RuntimeConfig, error) {
	mode, ok := core.ParseMode(modeName)
	if !ok {
		return core.RuntimeConfig{}, fmt.Errorf("unknown mode %q (want versus, cpu or demo)", modeName)
	}

	return core.RuntimeConfig{
		TickRate:   flagTPS,
		Seed:       flagSeed,
		Mode:       mode,
		WinScore:   flagWin,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}, nil
}

// setupLogging installs the default logger writing to w.
func setupLogging(w io.Writer) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	log.SetDefault(log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}))
	return nil
}
