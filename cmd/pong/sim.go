package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/loop"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var (
	flagSimMode string
	flagTicks   uint64
	flagFormat  string
	flagRender  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match on a virtual clock",
	Long: `Run a match without a terminal UI and print its final state.

The loop runs on a virtual clock, so the run finishes as fast as the
machine allows and the same seed always gives the same result.
The match stops at game over or after --ticks ticks.

Examples:
  pong sim --ticks 3600
  pong sim --seed 7 --mode demo --format yaml
  pong sim --ticks 600 --render`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMode, "mode", "demo", "Who plays: versus, cpu, demo")
	simCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, yaml")
	simCmd.Flags().BoolVar(&flagRender, "render", false, "Print the last frame as text")
}

// simReport is the result of a headless run.
type simReport struct {
	Seed     int64         `yaml:"seed"`
	Mode     string        `yaml:"mode"`
	Ticks    uint64        `yaml:"ticks"`
	Hash     string        `yaml:"hash"`
	Snapshot pong.Snapshot `yaml:"snapshot"`
	Frame    string        `yaml:"frame,omitempty"`
}

func runSim(cmd *cobra.Command, _ []string) error {
	if err := setupLogging(os.Stderr); err != nil {
		return err
	}
	if flagFormat != "text" && flagFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", flagFormat)
	}

	rt, err := runtimeConfig(flagSimMode)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, err := simulate(ctx, rt, flagTicks, flagRender)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), report, flagFormat)
}

// simulate plays a match on a virtual clock until game over, maxTicks ticks
// (when non-zero) or ctx cancellation.
func simulate(ctx context.Context, rt core.RuntimeConfig, maxTicks uint64, render bool) (simReport, error) {
	g, err := registry.Create("pong", rt)
	if err != nil {
		return simReport{}, err
	}
	game, ok := g.(*pong.Game)
	if !ok {
		return simReport{}, fmt.Errorf("sim: unexpected game type %T", g)
	}

	world := game.World()
	screen := core.NewScreen(80, 24)
	canvas := core.NewCanvas(screen, float64(world.Width), float64(world.Height))

	clock := loop.NewVirtualClock(time.Unix(0, 0))
	l := loop.New(game, world.TickRate,
		loop.WithClock(clock),
		loop.WithMaxFrameTime(world.MaxFrameTime))

	done := func() bool {
		return game.State().GameOver || (maxTicks > 0 && l.Ticks() >= maxTicks)
	}
	if err := l.RunUntil(ctx, canvas, done); err != nil {
		return simReport{}, err
	}

	snap := game.Match().Snapshot()
	report := simReport{
		Seed:     rt.Seed,
		Mode:     rt.Mode.String(),
		Ticks:    l.Ticks(),
		Hash:     fmt.Sprintf("%016x", snap.Hash()),
		Snapshot: snap,
	}
	if render {
		screen.Clear()
		l.Render(canvas)
		report.Frame = screen.String()
	}
	return report, nil
}

// writeReport prints the report in the requested format.
func writeReport(w io.Writer, r simReport, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("sim: encode yaml: %w", err)
		}
		return enc.Close()
	}

	s := r.Snapshot
	fmt.Fprintf(w, "Mode:   %s (seed %d)\n", r.Mode, r.Seed)
	fmt.Fprintf(w, "Ticks:  %d\n", r.Ticks)
	fmt.Fprintf(w, "Score:  %d : %d\n", s.LeftScore, s.RightScore)
	fmt.Fprintf(w, "Phase:  %s\n", s.Phase)
	if s.Winner != "" {
		fmt.Fprintf(w, "Winner: %s\n", s.Winner)
	}
	fmt.Fprintf(w, "Ball:   (%.2f, %.2f) v=(%.3f, %.3f)\n", s.BallX, s.BallY, s.BallVX, s.BallVY)
	fmt.Fprintf(w, "Match:  %s\n", s.MatchID)
	fmt.Fprintf(w, "Hash:   %s\n", r.Hash)
	if r.Frame != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Frame)
	}
	return nil
}
