package pong

import (
	"math"
	"math/rand"
	"testing"
)

func testBallSpec() BallSpec {
	return BallSpec{Size: 15, BaseSpeed: 4, MaxSpeed: 8, Acceleration: 1.001}
}

func newTestBall(direction int) *Ball {
	return NewBall(593, 393, testBallSpec(), rand.New(rand.NewSource(1)), direction)
}

func TestNewBallServe(t *testing.T) {
	for _, dir := range []int{-1, 1} {
		b := newTestBall(dir)
		if b.VX != 4*float64(dir) {
			t.Errorf("direction %d: VX = %v, expected %v", dir, b.VX, 4*float64(dir))
		}
		if b.VY < -1 || b.VY >= 1 {
			t.Errorf("direction %d: VY = %v, expected within [-1, 1)", dir, b.VY)
		}
		if b.X != 593 || b.Y != 393 {
			t.Errorf("position = (%v, %v), expected (593, 393)", b.X, b.Y)
		}
	}
}

func TestBallAdvance(t *testing.T) {
	b := newTestBall(1)
	b.VY = 0.5

	b.Advance()

	if b.X != 597 || b.Y != 393.5 {
		t.Errorf("position = (%v, %v), expected (597, 393.5)", b.X, b.Y)
	}
	accel := testBallSpec().Acceleration
	if want := 4 * accel; b.VX != want {
		t.Errorf("VX = %v, expected %v", b.VX, want)
	}
}

func TestBallAdvanceClampsAtMaxSpeed(t *testing.T) {
	tests := []struct {
		name string
		vx   float64
		want float64
	}{
		{"just under max", 7.999, 8},
		{"just under max leftward", -7.999, -8},
		{"at max", 8, 8},
		{"at max leftward", -8, -8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(1)
			b.VX = tc.vx
			b.Advance()
			if b.VX != tc.want {
				t.Errorf("VX = %v, expected %v", b.VX, tc.want)
			}
		})
	}
}

func TestBallSpeedNeverExceedsMax(t *testing.T) {
	b := newTestBall(-1)
	prev := math.Abs(b.VX)
	for range 5000 {
		b.Advance()
		speed := math.Abs(b.VX)
		if speed > b.Spec().MaxSpeed {
			t.Fatalf("|VX| = %v exceeds max %v", speed, b.Spec().MaxSpeed)
		}
		if speed < prev {
			t.Fatalf("|VX| decreased from %v to %v", prev, speed)
		}
		prev = speed
	}
	if prev != b.Spec().MaxSpeed {
		t.Errorf("|VX| = %v after 5000 ticks, expected to reach %v", prev, b.Spec().MaxSpeed)
	}
}

func TestBallReverseTwiceIsExact(t *testing.T) {
	b := newTestBall(1)
	b.VX = 5.123456789
	b.VY = -0.987654321

	b.ReverseHorizontal()
	b.ReverseHorizontal()
	b.ReverseVertical()
	b.ReverseVertical()

	if b.VX != 5.123456789 || b.VY != -0.987654321 {
		t.Errorf("velocity = (%v, %v) after double reversal", b.VX, b.VY)
	}
}

func TestBallAdjustVertical(t *testing.T) {
	tests := []struct {
		name  string
		vy    float64
		delta float64
		want  float64
	}{
		{"within range", 1, 2, 3},
		{"clamped high", 7, 2, 8},
		{"clamped low", -7, -2, -8},
		{"zero delta", 0.5, 0, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBall(1)
			b.VY = tc.vy
			b.AdjustVertical(tc.delta)
			if b.VY != tc.want {
				t.Errorf("VY = %v, expected %v", b.VY, tc.want)
			}
		})
	}
}

func TestBallResetForRally(t *testing.T) {
	b := newTestBall(1)
	b.X, b.Y, b.VX = -30, 10, 7.5

	b.ResetForRally(593, 393, -1)

	if b.X != 593 || b.Y != 393 {
		t.Errorf("position = (%v, %v), expected (593, 393)", b.X, b.Y)
	}
	if b.VX != -4 {
		t.Errorf("VX = %v, expected base speed -4", b.VX)
	}
	if b.VY < -1 || b.VY >= 1 {
		t.Errorf("VY = %v, expected within [-1, 1)", b.VY)
	}
}

func TestBallGeometry(t *testing.T) {
	b := newTestBall(1)
	r := b.Rect()
	if r.X != 593 || r.Y != 393 || r.W != 15 || r.H != 15 {
		t.Errorf("Rect() = %+v", r)
	}
	if got := b.CenterY(); got != 400.5 {
		t.Errorf("CenterY() = %v, expected 400.5", got)
	}
}
