package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/loop"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// footerLines is the number of rows reserved below the playfield.
const footerLines = 1

// Model is the Bubble Tea model that plays one game.
// Update and View run on the Bubble Tea goroutine; all mutable state is held
// behind pointers so the value receivers share it.
type Model struct {
	game    registry.Game
	loop    *loop.Loop
	keys    *core.KeyTable
	holds   *holdTracker
	keymap  KeyMap
	help    help.Model
	screen  *core.Screen
	canvas  *core.Canvas
	runtime core.RuntimeConfig
	fps     int
	logger  *log.Logger

	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithFPS sets the redraw rate.
func WithFPS(fps int) Option {
	return func(m *Model) {
		m.fps = fps
	}
}

// WithLoopOptions passes extra options to the game loop, e.g. a clock.
func WithLoopOptions(opts ...loop.Option) Option {
	return func(m *Model) {
		m.loop = newLoop(m.game, m.keys, opts...)
	}
}

// NewModel creates a model for game sized to a width x height terminal.
func NewModel(game registry.Game, rt core.RuntimeConfig, width, height int, opts ...Option) Model {
	world := game.World()
	screen := core.NewScreen(width, max(1, height-footerLines))

	m := Model{
		game:    game,
		keys:    core.NewKeyTable(),
		holds:   newHoldTracker(InitialHold, RepeatHold),
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		screen:  screen,
		canvas:  core.NewCanvas(screen, float64(world.Width), float64(world.Height)),
		runtime: rt,
		fps:     DefaultFPS,
		logger:  log.WithPrefix("tui"),
	}
	m.loop = newLoop(game, m.keys)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func newLoop(game registry.Game, keys *core.KeyTable, opts ...loop.Option) *loop.Loop {
	world := game.World()
	base := []loop.Option{
		loop.WithInput(keys),
		loop.WithMaxFrameTime(world.MaxFrameTime),
	}
	return loop.New(game, world.TickRate, append(base, opts...)...)
}

// Init starts the loop and the frame ticker.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	m.logger.Info("game started", "game", m.game.ID(), "mode", m.runtime.Mode,
		"tick", m.loop.TickDuration(), "screen", fmt.Sprintf("%dx%d", m.screen.Width(), m.screen.Height()))
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey records a press in the key table.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if m.keymap.IsQuit(msg) {
		m.quitting = true
		m.logger.Info("quit", "ticks", m.loop.Ticks(), "frames", m.loop.Frames())
		return m, tea.Quit
	}

	k, ok := m.keymap.Lookup(msg)
	if !ok {
		return m, nil
	}

	if !holdable(k) {
		m.keys.Press(k)
		m.keys.Release(k)
		return m, nil
	}

	if opp := opposite(k); opp != core.KeyNone {
		m.keys.Release(opp)
		m.holds.Drop(opp)
	}

	// Auto-repeats keep the key held without producing another typed edge
	if m.holds.Seen(k, now) {
		m.keys.Press(k)
	}
	return m, nil
}

// handleResize fits the playfield to the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(1, msg.Height-footerLines))
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame releases lapsed keys and runs the ticks due since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	for _, k := range m.holds.Expire(now) {
		m.keys.Release(k)
	}
	m.loop.Advance()
	return m, frameCmd(m.fps)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.loop.Render(m.canvas)

	return RenderFrame(m.screen, m.status(), m.help.View(m.keymap))
}

// status summarizes the match for the footer.
func (m Model) status() string {
	st := m.game.State()
	if st.GameOver {
		return st.Winner
	}
	return fmt.Sprintf("%s  %d : %d", m.runtime.Mode, st.LeftScore, st.RightScore)
}

// Run plays game in the terminal until the user quits.
func Run(game registry.Game, rt core.RuntimeConfig, width, height int, opts ...Option) error {
	model := NewModel(game, rt, width, height, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
