// Package loop runs a simulation at a fixed tick rate, decoupled from rendering.
//
// Real time elapsed between frames is added to an accumulator; every whole tick
// duration in the accumulator runs one simulation tick, and the remainder carries
// over to the next frame. Rendering happens once per frame regardless of how many
// ticks ran.
package loop

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DefaultMaxFrameTime caps the time credited for a single frame, so a stall
// (debugger, suspended terminal) does not trigger a burst of catch-up ticks.
const DefaultMaxFrameTime = 250 * time.Millisecond

// Simulatable is anything the loop can drive: a tick per fixed time step and a
// render per frame.
type Simulatable interface {
	// Tick advances the simulation by one fixed step using the sampled input.
	Tick(in core.InputState)

	// Render draws the current state onto dst.
	Render(dst core.Surface)
}

// Loop is a fixed-timestep scheduler for a single Simulatable.
// It is not safe for concurrent use; one goroutine owns it.
type Loop struct {
	sim      Simulatable
	clock    Clock
	input    core.InputSource
	logger   *log.Logger
	tickDur  time.Duration
	maxFrame time.Duration

	accumulator time.Duration
	last        time.Time
	started     bool

	ticks           uint64
	frames          uint64
	warnedNoSurface bool
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithInput sets the source sampled once per tick.
func WithInput(src core.InputSource) Option {
	return func(l *Loop) {
		l.input = src
	}
}

// WithMaxFrameTime overrides DefaultMaxFrameTime. Zero disables the cap.
func WithMaxFrameTime(d time.Duration) Option {
	return func(l *Loop) {
		l.maxFrame = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// New creates a loop running sim at tickRate ticks per second.
// Non-positive rates fall back to 60.
func New(sim Simulatable, tickRate int, opts ...Option) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	l := &Loop{
		sim:      sim,
		clock:    SystemClock{},
		tickDur:  time.Second / time.Duration(tickRate),
		maxFrame: DefaultMaxFrameTime,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.WithPrefix("loop")
	}
	return l
}

// TickDuration returns the fixed simulation step.
func (l *Loop) TickDuration() time.Duration {
	return l.tickDur
}

// Ticks returns the number of simulation ticks run so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Alpha returns how far the simulation is between the last tick and the next,
// in [0, 1). Renderers may use it to interpolate.
func (l *Loop) Alpha() float64 {
	return float64(l.accumulator) / float64(l.tickDur)
}

// Start resets the time base. Time before Start is never simulated.
func (l *Loop) Start() {
	l.last = l.clock.Now()
	l.accumulator = 0
	l.started = true
}

// Advance credits the time elapsed since the previous call and runs one tick per
// whole tick duration accumulated. It returns the number of ticks run.
func (l *Loop) Advance() int {
	if !l.started {
		l.Start()
		return 0
	}

	now := l.clock.Now()
	elapsed := now.Sub(l.last)
	l.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if l.maxFrame > 0 && elapsed > l.maxFrame {
		l.logger.Debug("frame time capped", "elapsed", elapsed, "cap", l.maxFrame)
		elapsed = l.maxFrame
	}

	l.accumulator += elapsed
	n := 0
	for l.accumulator >= l.tickDur {
		l.tick()
		l.accumulator -= l.tickDur
		l.ticks++
		n++
	}
	return n
}

// Render performs one render pass. A nil surface is skipped and reported once.
func (l *Loop) Render(dst core.Surface) {
	if dst == nil {
		if !l.warnedNoSurface {
			l.logger.Warn("no surface available, skipping render")
			l.warnedNoSurface = true
		}
		return
	}
	l.sim.Render(dst)
	l.frames++
}

// Frame advances the simulation and renders once. It returns the ticks run.
func (l *Loop) Frame(dst core.Surface) int {
	n := l.Advance()
	l.Render(dst)
	return n
}

// Run drives frames until ctx is cancelled, sleeping until the next tick
// boundary between frames.
func (l *Loop) Run(ctx context.Context, dst core.Surface) error {
	return l.RunUntil(ctx, dst, nil)
}

// RunUntil is Run with an additional stop condition checked after every frame.
// Cancellation and stop are only observed between frames, never inside a tick.
func (l *Loop) RunUntil(ctx context.Context, dst core.Surface, stop func() bool) error {
	l.Start()
	l.logger.Debug("loop started", "tick", l.tickDur)

	for {
		if err := ctx.Err(); err != nil {
			l.logger.Debug("loop stopped", "ticks", l.ticks, "frames", l.frames)
			return nil
		}

		l.Frame(dst)
		if stop != nil && stop() {
			l.logger.Debug("loop finished", "ticks", l.ticks, "frames", l.frames)
			return nil
		}

		if err := l.clock.Sleep(ctx, l.tickDur-l.accumulator); err != nil {
			l.logger.Debug("loop stopped", "ticks", l.ticks, "frames", l.frames)
			return nil
		}
	}
}

// tick samples the input, runs one simulation step and clears at the source
// every typed edge the step consumed. Edges left untouched stay pending.
func (l *Loop) tick() {
	if l.input == nil {
		l.sim.Tick(core.NewInputState())
		return
	}
	in := l.input.Snapshot()
	pending := in.Pending()
	l.sim.Tick(in)
	for _, k := range pending {
		if !in.Typed(k) {
			l.input.Consume(k)
		}
	}
}
