package core

// Side identifies which face of a stationary rectangle a moving one struck.
type Side int

const (
	SideRight Side = iota
	SideTop
	SideLeft
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideLeft:
		return "Left"
	case SideBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// CollisionSide classifies the impact side of moving against stationary, given the
// displacement (dx, dy) moving travelled during its last tick.
//
// The pre-motion rectangle is reconstructed and each boundary is tested for a crossing
// in the order Top, Left, Bottom. Anything else is reported as SideRight.
func CollisionSide(stationary, moving Rect, dx, dy float64) Side {
	prevX := moving.X - dx
	prevY := moving.Y - dy

	switch {
	case prevY+moving.H <= stationary.Y && moving.Bottom() >= stationary.Y:
		return SideTop
	case prevX+moving.W <= stationary.X && moving.Right() >= stationary.X:
		return SideLeft
	case prevY >= stationary.Bottom() && moving.Y <= stationary.Bottom():
		return SideBottom
	default:
		return SideRight
	}
}
