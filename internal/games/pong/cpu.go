package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// CPU drives one paddle by synthesising its held keys.
type CPU struct {
	player Player
	skill  float64 // Probability of reacting on a given tick (0-1)
	rng    *rand.Rand
}

// NewCPU creates a controller for player with the given skill.
func NewCPU(player Player, skill float64, rng *rand.Rand) *CPU {
	return &CPU{player: player, skill: core.ClampF(skill, 0, 1), rng: rng}
}

// Player returns the paddle this controller drives.
func (c *CPU) Player() Player {
	return c.player
}

// Skill returns the current reaction probability.
func (c *CPU) Skill() float64 {
	return c.skill
}

// SetSkill updates the reaction probability, clamped to [0, 1].
func (c *CPU) SetSkill(skill float64) {
	c.skill = core.ClampF(skill, 0, 1)
}

// Drive replaces the player's keys in `in` with the CPU's choice for this tick.
// Human presses for a CPU paddle are discarded.
func (c *CPU) Drive(in *core.InputState, m *Match) {
	up, down := c.player.Keys()
	in.Release(up)
	in.Release(down)

	if m.Phase() != PhasePlaying {
		return
	}

	ball := m.Ball()
	paddle := m.Paddle(c.player)

	// Only track the ball while it is coming toward this side
	if !c.approaching(ball) {
		return
	}

	target := ball.CenterY() - float64(paddle.Height)/2
	diff := target - float64(paddle.Y)
	if math.Abs(diff) <= float64(paddle.Speed) {
		return
	}

	// Imperfect reactions: skip some ticks
	if c.rng.Float64() >= c.skill {
		return
	}

	if diff > 0 {
		in.Hold(down)
	} else {
		in.Hold(up)
	}
}

// approaching reports whether the ball travels toward this controller's paddle.
func (c *CPU) approaching(b Ball) bool {
	if c.player == Player1 {
		return b.VX < 0
	}
	return b.VX > 0
}
