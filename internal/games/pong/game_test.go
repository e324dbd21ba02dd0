package pong

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/loop"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func newTestGame(rt core.RuntimeConfig) *Game {
	g := New(config.DefaultPongConfig())
	g.Reset(rt)
	return g
}

func TestGameRuntimeOverrides(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 1, WinScore: 3, TickRate: 120})

	if got := g.Config().Gameplay.WinningScore; got != 3 {
		t.Errorf("WinningScore = %d, expected 3", got)
	}
	world := g.World()
	if world.Width != 1200 || world.Height != 800 || world.TickRate != 120 {
		t.Errorf("World() = %+v", world)
	}
	if world.MaxFrameTime != 250*time.Millisecond {
		t.Errorf("MaxFrameTime = %v, expected 250ms", world.MaxFrameTime)
	}

	// Overrides do not stick across resets
	g.Reset(core.RuntimeConfig{Seed: 1})
	if got := g.Config().Gameplay.WinningScore; got != 10 {
		t.Errorf("WinningScore = %d after reset without override, expected 10", got)
	}
}

func TestGameControls(t *testing.T) {
	tests := []struct {
		mode core.Mode
		want [2]string
	}{
		{core.ModeVersus, [2]string{"Player 1: W/S", "Player 2: ↑/↓"}},
		{core.ModeVsCPU, [2]string{"Player 1: W/S", "CPU"}},
		{core.ModeDemo, [2]string{"CPU", "CPU"}},
	}
	for _, tc := range tests {
		g := newTestGame(core.RuntimeConfig{Seed: 1, Mode: tc.mode})
		if got := g.controls(); got != tc.want {
			t.Errorf("%v: controls() = %v, expected %v", tc.mode, got, tc.want)
		}
	}
}

func TestGameTickDoesNotMutateCallerInput(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 1, Mode: core.ModeDemo})
	in := core.NewInputState()

	for range 50 {
		g.Tick(in)
	}

	if in.Held(core.KeyW) || in.Held(core.KeyS) || in.Held(core.KeyUp) || in.Held(core.KeyDown) {
		t.Error("CPU keys leaked into the caller's input state")
	}
	if g.State().Tick != 50 {
		t.Errorf("Tick = %d, expected 50", g.State().Tick)
	}
}

func TestRestartTypedDuringFinalRallyCarriesIntoGameOver(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 1})
	m := g.Match()
	m.rightScore = 9
	m.ball.X, m.ball.VX, m.ball.VY = -10, -4, 0

	table := core.NewKeyTable()
	clock := loop.NewVirtualClock(time.Unix(0, 0))
	l := loop.New(g, 50, loop.WithClock(clock), loop.WithInput(table))
	l.Start()

	table.Press(core.KeyR)

	clock.Advance(20 * time.Millisecond)
	l.Advance()
	if m.Phase() != PhasePlaying || m.Tick() != 1 {
		t.Fatalf("after first tick: phase=%v tick=%d", m.Phase(), m.Tick())
	}
	if !table.Snapshot().Typed(core.KeyR) {
		t.Fatal("R should stay pending while the match is running")
	}

	clock.Advance(20 * time.Millisecond)
	l.Advance()
	if m.Phase() != PhaseGameOver {
		t.Fatalf("second tick should end the match, phase=%v", m.Phase())
	}

	clock.Advance(20 * time.Millisecond)
	l.Advance()
	if m.Phase() != PhasePlaying {
		t.Fatal("pending R should restart on the first GameOver tick")
	}
	if left, right := m.Scores(); left != 0 || right != 0 {
		t.Errorf("scores = %d-%d after restart", left, right)
	}
	if table.Snapshot().Typed(core.KeyR) {
		t.Error("restart should consume the R edge")
	}
}

func TestCPUModeConsumesRestartThroughSharedEdges(t *testing.T) {
	g := newTestGame(core.RuntimeConfig{Seed: 1, Mode: core.ModeDemo})
	m := g.Match()
	m.leftScore = 9
	m.ball.X, m.ball.VX, m.ball.VY = 1300, 4, 0
	g.Tick(core.NewInputState())
	if m.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected GameOver", m.Phase())
	}

	in := core.NewInputState()
	in.Type(core.KeyR)
	g.Tick(in)

	if m.Phase() != PhasePlaying {
		t.Fatal("typed R should restart a CPU match")
	}
	if in.Typed(core.KeyR) {
		t.Error("the edge should be consumed in the caller's input")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := newTestGame(core.RuntimeConfig{Seed: seed, Mode: core.ModeDemo})
		for range 5000 {
			g.Tick(core.NewInputState())
		}
		return g.Match().Snapshot()
	}

	a, b := run(42), run(42)
	if a != b {
		t.Fatalf("same seed diverged:\n%+v\n%+v", a, b)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("hashes differ for equal snapshots: %x vs %x", a.Hash(), b.Hash())
	}

	if c := run(43); c.Hash() == a.Hash() {
		t.Error("different seeds produced the same hash")
	}
}

func TestSnapshotHashTracksState(t *testing.T) {
	m := newTestMatch(config.DefaultPongConfig())
	before := m.Snapshot()

	m.Step(core.NewInputState())
	after := m.Snapshot()

	if before.Hash() == after.Hash() {
		t.Error("hash unchanged after a tick")
	}
	if after.Tick != 1 || after.Phase != "Playing" || after.Winner != "" {
		t.Errorf("Snapshot() = %+v", after)
	}
}

func TestCreateViaRegistry(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g, err := registry.Create("pong", core.RuntimeConfig{Seed: 7, Difficulty: "hard"})
	if err != nil {
		t.Fatalf("registry.Create(pong) failed: %v", err)
	}
	if g.ID() != "pong" || g.Title() != "Pong" {
		t.Errorf("created %s/%s", g.ID(), g.Title())
	}

	pg, ok := g.(*Game)
	if !ok {
		t.Fatalf("registry returned %T", g)
	}
	if lvl := pg.Config().Difficulty.InitialLevel; lvl != 0.7 {
		t.Errorf("hard preset initial level = %v, expected 0.7", lvl)
	}
}

func TestCreateRejectsUnknownDifficulty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if _, err := Create(core.RuntimeConfig{Difficulty: "nightmare"}); err == nil {
		t.Error("Create() with an unknown difficulty should fail")
	}
}
