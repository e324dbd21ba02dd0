package pong

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestResolveWall(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		bounce bool
	}{
		{"above top", -1, true},
		{"touching top", 0, true},
		{"middle", 400, false},
		{"touching bottom", 785, true},
		{"past bottom", 790, true},
		{"just inside bottom", 784, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(1)
			b.Y = tc.y
			b.VY = 0.75

			got := resolveWall(b, 800)

			if got != tc.bounce {
				t.Fatalf("resolveWall() = %v, expected %v", got, tc.bounce)
			}
			wantVY := 0.75
			if tc.bounce {
				wantVY = -0.75
			}
			if b.VY != wantVY {
				t.Errorf("VY = %v, expected %v", b.VY, wantVY)
			}
			if b.Y != tc.y {
				t.Errorf("wall bounce moved the ball to Y=%v", b.Y)
			}
		})
	}
}

func TestResolvePaddleLeft(t *testing.T) {
	p := &Paddle{X: 30, Y: 360, Width: 15, Height: 80, Speed: 5}
	b := newTestBall(-1)
	b.X, b.Y, b.VY = 40, 393, 0

	if !resolvePaddle(b, p, Player1, 2) {
		t.Fatal("resolvePaddle() = false for an overlapping ball")
	}
	if b.VX != 4 {
		t.Errorf("VX = %v, expected 4", b.VX)
	}
	if b.X != 46 {
		t.Errorf("X = %v, expected 46 (paddle right edge + 1)", b.X)
	}
	// relativeHit = (400.5 - 360) / 80 = 0.50625
	if want := (0.50625 - 0.5) * 2 * 2; math.Abs(b.VY-want) > epsilon {
		t.Errorf("VY = %v, expected %v", b.VY, want)
	}
}

func TestResolvePaddleRight(t *testing.T) {
	p := &Paddle{X: 1155, Y: 360, Width: 15, Height: 80, Speed: 5}
	b := newTestBall(1)
	b.X, b.Y, b.VY = 1150, 352.5, 0 // Center on the paddle's top edge

	if !resolvePaddle(b, p, Player2, 2) {
		t.Fatal("resolvePaddle() = false for an overlapping ball")
	}
	if b.VX != -4 {
		t.Errorf("VX = %v, expected -4", b.VX)
	}
	if b.X != 1139 {
		t.Errorf("X = %v, expected 1139 (paddle left edge - size - 1)", b.X)
	}
	if math.Abs(b.VY-(-2)) > epsilon {
		t.Errorf("VY = %v, expected -2 for a top-edge hit", b.VY)
	}
}

func TestResolvePaddleMiss(t *testing.T) {
	p := &Paddle{X: 30, Y: 360, Width: 15, Height: 80}

	tests := []struct {
		name string
		x, y float64
	}{
		{"far away", 600, 393},
		{"touching right edge", 45, 393},
		{"above paddle", 35, 345},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(-1)
			b.X, b.Y = tc.x, tc.y
			vx, vy := b.VX, b.VY

			if resolvePaddle(b, p, Player1, 2) {
				t.Fatal("resolvePaddle() = true without overlap")
			}
			if b.X != tc.x || b.VX != vx || b.VY != vy {
				t.Errorf("ball changed on a miss: %+v", b)
			}
		})
	}
}

func TestSpinFactor(t *testing.T) {
	p := &Paddle{Y: 100, Height: 80}

	tests := []struct {
		centerY float64
		want    float64
	}{
		{100, -1},
		{140, 0},
		{180, 1},
		{120, -0.5},
		{60, -2}, // Grazing hit above the paddle is not clamped
	}

	for _, tc := range tests {
		b := newTestBall(1)
		b.Y = tc.centerY - 7.5
		if got := spinFactor(b, p); math.Abs(got-tc.want) > epsilon {
			t.Errorf("spinFactor(center %v) = %v, expected %v", tc.centerY, got, tc.want)
		}
	}
}
