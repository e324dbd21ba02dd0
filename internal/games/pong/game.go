// Package pong implements two-player Pong on a fixed-timestep loop.
// Player 1 controls the left paddle with W/S, Player 2 the right paddle with
// the arrow keys. Either paddle can be handed to a CPU controller.
package pong

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Game adapts a Match to the loop and the registry.
type Game struct {
	base    config.PongConfig // Config before runtime overrides
	cfg     config.PongConfig
	runtime core.RuntimeConfig

	rng        *rand.Rand
	match      *Match
	cpus       []*CPU
	difficulty *config.DifficultyManager
	logger     *log.Logger
}

// Ensure Game implements registry.Game
var _ registry.Game = (*Game)(nil)

// New creates a game from cfg. Call Reset before the first tick.
func New(cfg config.PongConfig) *Game {
	return &Game{
		base:   cfg,
		cfg:    cfg,
		logger: log.WithPrefix("pong"),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset starts a new match with runtime overrides applied.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.cfg = g.base
	if rt.WinScore > 0 {
		g.cfg.Gameplay.WinningScore = rt.WinScore
	}
	if rt.TickRate > 0 {
		g.cfg.Loop.TicksPerSecond = rt.TickRate
	}

	g.rng = rand.New(rand.NewSource(rt.Seed)) //nolint:gosec // deterministic gameplay RNG
	g.match = NewMatch(g.cfg, g.rng)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.cpus = g.cpus[:0]
	switch rt.Mode {
	case core.ModeVsCPU:
		g.cpus = append(g.cpus, NewCPU(Player2, g.cfg.CPU.MinSkill, g.rng))
	case core.ModeDemo:
		g.cpus = append(g.cpus,
			NewCPU(Player1, g.cfg.CPU.MinSkill, g.rng),
			NewCPU(Player2, g.cfg.CPU.MinSkill, g.rng))
	}

	g.logger.Info("match started",
		"match_id", g.match.ID(),
		"mode", rt.Mode,
		"seed", rt.Seed,
		"winning_score", g.cfg.Gameplay.WinningScore)
}

// Tick runs one simulation step. CPU paddles get their keys before the step.
func (g *Game) Tick(in core.InputState) {
	if len(g.cpus) > 0 {
		in = in.CloneHeld()
		left, right := g.match.Scores()
		skill := g.difficulty.Skill(g.cfg.CPU.MinSkill, g.cfg.CPU.MaxSkill, left+right, int(g.match.Tick())) //nolint:gosec // tick count fits
		for _, cpu := range g.cpus {
			cpu.SetSkill(skill)
			cpu.Drive(&in, g.match)
		}
	}

	res := g.match.Step(in)
	g.logStep(res)
}

// logStep reports the events of one tick.
func (g *Game) logStep(res StepResult) {
	logger := g.logger.With("match_id", g.match.ID(), "tick", res.State.Tick)

	if res.Restarted {
		logger.Info("match restarted")
		return
	}
	if res.WallBounce {
		logger.Debug("wall bounce")
	}
	for _, p := range res.Hits {
		logger.Debug("paddle hit", "player", p)
	}
	if res.Scorer != PlayerNone {
		logger.Info("point scored",
			"scorer", res.Scorer,
			"left", res.State.LeftScore,
			"right", res.State.RightScore)
	}
	if res.GameOver {
		logger.Info("game over", "winner", res.State.Winner)
	}
}

// Render draws the current frame.
func (g *Game) Render(dst core.Surface) {
	drawMatch(dst, g.match, g.controls())
}

// controls returns the hint text for each paddle.
func (g *Game) controls() [2]string {
	labels := [2]string{"Player 1: W/S", "Player 2: ↑/↓"}
	for _, cpu := range g.cpus {
		if cpu.Player() == Player1 {
			labels[0] = "CPU"
		} else {
			labels[1] = "CPU"
		}
	}
	return labels
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.match.State()
}

// World returns the playfield size and loop timing.
func (g *Game) World() core.WorldSpec {
	return core.WorldSpec{
		Width:        g.cfg.Window.Width,
		Height:       g.cfg.Window.Height,
		TickRate:     g.cfg.Loop.TicksPerSecond,
		MaxFrameTime: g.cfg.Loop.MaxFrameTime(),
	}
}

// Match exposes the running match.
func (g *Game) Match() *Match {
	return g.match
}

// Config returns the effective config of the current match.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// Create loads the Pong config for rt and returns a reset game.
func Create(rt core.RuntimeConfig) (*Game, error) {
	cfg, err := config.LoadPong(rt.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParseDifficultyPreset(rt.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyPongPreset(&cfg, preset)

	g := New(cfg)
	g.Reset(rt)
	return g, nil
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{ID: "pong", Title: "Pong"}, func(rt core.RuntimeConfig) (registry.Game, error) {
		g, err := Create(rt)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
