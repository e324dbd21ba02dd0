package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var (
	flagPlayMode string
	flagFPS      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pong in the terminal",
	Long: `Start a match in the terminal.

Controls:
  W/S        - Left paddle
  Up/Down    - Right paddle
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Modes:
  versus - Two players on one keyboard
  cpu    - Left paddle against the computer
  demo   - Computer against computer

Logs are written to ~/.pong/pong.log while playing.

Examples:
  pong play
  pong play --mode cpu --difficulty easy
  pong play --win 5 --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayMode, "mode", "versus", "Who plays: versus, cpu, demo")
	playCmd.Flags().IntVar(&flagFPS, "fps", tui.DefaultFPS, "Terminal redraw rate")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal, so logs go to a file
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	var logOut io.Writer = io.Discard
	if logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}
	if err := setupLogging(logOut); err != nil {
		return err
	}

	rt, err := runtimeConfig(flagPlayMode)
	if err != nil {
		return err
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game, err := registry.Create("pong", rt)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.Run(game, rt, width, height, tui.WithFPS(flagFPS))
}

// openLogFile opens ~/.pong/pong.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, config.AppDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "pong.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
