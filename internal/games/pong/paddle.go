package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Paddle is a player's paddle. It has no velocity: each move is an immediate
// displacement of Speed pixels.
type Paddle struct {
	X, Y          int
	Width, Height int
	Speed         int
}

// MoveUp moves the paddle up by its speed. No clamping.
func (p *Paddle) MoveUp() {
	p.Y -= p.Speed
}

// MoveDown moves the paddle down by its speed. No clamping.
func (p *Paddle) MoveDown() {
	p.Y += p.Speed
}

// ClampToBounds keeps the paddle within [minY, maxY]. Both edges are checked
// independently.
func (p *Paddle) ClampToBounds(minY, maxY int) {
	if p.Y < minY {
		p.Y = minY
	}
	if p.Y+p.Height > maxY {
		p.Y = maxY - p.Height
	}
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(float64(p.X), float64(p.Y), float64(p.Width), float64(p.Height))
}
