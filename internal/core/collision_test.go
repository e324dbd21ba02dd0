package core

import "testing"

func TestCollisionSide(t *testing.T) {
	wall := NewRect(100, 100, 50, 50)

	tests := []struct {
		name     string
		moving   Rect
		dx, dy   float64
		expected Side
	}{
		{
			name:     "falling onto top",
			moving:   NewRect(110, 95, 10, 10), // was at y=85, bottom 95 <= 100
			dx:       0,
			dy:       10,
			expected: SideTop,
		},
		{
			name:     "moving right into left face",
			moving:   NewRect(95, 120, 10, 10), // was at x=85, right 95 <= 100
			dx:       10,
			dy:       0,
			expected: SideLeft,
		},
		{
			name:     "rising into bottom",
			moving:   NewRect(120, 145, 10, 10), // was at y=155 >= 150
			dx:       0,
			dy:       -10,
			expected: SideBottom,
		},
		{
			name:     "moving left into right face",
			moving:   NewRect(145, 120, 10, 10),
			dx:       -10,
			dy:       0,
			expected: SideRight,
		},
		{
			name:     "diagonal hit prefers top over left",
			moving:   NewRect(95, 95, 10, 10), // was at (85, 85)
			dx:       10,
			dy:       10,
			expected: SideTop,
		},
		{
			name:     "no displacement defaults to right",
			moving:   NewRect(120, 120, 10, 10),
			dx:       0,
			dy:       0,
			expected: SideRight,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CollisionSide(wall, tc.moving, tc.dx, tc.dy)
			if got != tc.expected {
				t.Errorf("CollisionSide() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSideString(t *testing.T) {
	names := map[Side]string{
		SideRight:  "Right",
		SideTop:    "Top",
		SideLeft:   "Left",
		SideBottom: "Bottom",
		Side(42):   "Unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("Side(%d).String() = %q, expected %q", int(s), s.String(), want)
		}
	}
}
