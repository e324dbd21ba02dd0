package pong

// resolveWall bounces the ball off the top and bottom walls. The ball is not
// moved back inside; it may sit past the wall for one tick.
func resolveWall(b *Ball, height int) bool {
	r := b.Rect()
	if r.Y <= 0 || r.Bottom() >= float64(height) {
		b.ReverseVertical()
		return true
	}
	return false
}

// resolvePaddle bounces the ball off a paddle it overlaps. The ball is placed
// one pixel clear of the paddle's outer face so the same contact cannot fire
// again next tick, then spin is applied from the hit position.
func resolvePaddle(b *Ball, p *Paddle, owner Player, spin float64) bool {
	if !b.Rect().Intersects(p.Rect()) {
		return false
	}

	b.ReverseHorizontal()
	switch owner {
	case Player1:
		b.X = float64(p.X + p.Width + 1)
	case Player2:
		b.X = float64(p.X - b.Size() - 1)
	}
	applySpin(b, p, spin)
	return true
}

// spinFactor maps where the ball's center met the paddle to [-1, 1] for hits
// within the paddle's span: -1 at the top edge, 0 at the middle, 1 at the
// bottom. Grazing hits fall outside that range and are not clamped.
func spinFactor(b *Ball, p *Paddle) float64 {
	relativeHit := (b.CenterY() - float64(p.Y)) / float64(p.Height)
	return (relativeHit - 0.5) * 2.0
}

// applySpin adjusts the ball's vertical velocity by the spin factor times scale.
func applySpin(b *Ball, p *Paddle, scale float64) {
	b.AdjustVertical(spinFactor(b, p) * scale)
}
