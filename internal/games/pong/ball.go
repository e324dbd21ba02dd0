package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// BallSpec holds the constants of a ball.
type BallSpec struct {
	Size         int
	BaseSpeed    float64 // Horizontal serve speed, pixels per tick
	MaxSpeed     float64 // Cap for |vx| and |vy|
	Acceleration float64 // Factor applied to vx every tick while under MaxSpeed
}

// Ball is the square ball. Position is the top-left corner.
type Ball struct {
	X, Y   float64
	VX, VY float64
	spec   BallSpec
	rng    *rand.Rand
}

// NewBall creates a ball at (x, y) served in direction (-1 left, +1 right).
func NewBall(x, y float64, spec BallSpec, rng *rand.Rand, direction int) *Ball {
	b := &Ball{spec: spec, rng: rng}
	b.ResetForRally(x, y, direction)
	return b
}

// Size returns the ball's side length.
func (b *Ball) Size() int {
	return b.spec.Size
}

// Spec returns the ball's constants.
func (b *Ball) Spec() BallSpec {
	return b.spec
}

// Advance moves the ball by one tick of velocity, then accelerates it
// horizontally while it is under the speed cap.
func (b *Ball) Advance() {
	b.X += b.VX
	b.Y += b.VY

	if math.Abs(b.VX) < b.spec.MaxSpeed {
		b.VX *= b.spec.Acceleration
		if math.Abs(b.VX) > b.spec.MaxSpeed {
			b.VX = math.Copysign(b.spec.MaxSpeed, b.VX)
		}
	}
}

// ReverseHorizontal negates the horizontal velocity.
func (b *Ball) ReverseHorizontal() {
	b.VX = -b.VX
}

// ReverseVertical negates the vertical velocity.
func (b *Ball) ReverseVertical() {
	b.VY = -b.VY
}

// AdjustVertical adds delta to the vertical velocity, clamped to ±MaxSpeed.
func (b *Ball) AdjustVertical(delta float64) {
	b.VY = core.ClampF(b.VY+delta, -b.spec.MaxSpeed, b.spec.MaxSpeed)
}

// ResetForRally places the ball at (x, y), serves it at base speed in direction
// and picks a random vertical speed in [-1, 1).
func (b *Ball) ResetForRally(x, y float64, direction int) {
	b.X = x
	b.Y = y
	b.VX = b.spec.BaseSpeed * float64(direction)
	b.VY = (b.rng.Float64() - 0.5) * 2
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Rect {
	s := float64(b.spec.Size)
	return core.NewRect(b.X, b.Y, s, s)
}

// CenterY returns the vertical center of the ball.
func (b *Ball) CenterY() float64 {
	return b.Y + float64(b.spec.Size)/2
}
