package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestHoldTrackerInitialPress(t *testing.T) {
	h := newHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	if !h.Seen(core.KeyW, t0) {
		t.Fatal("first press should be fresh")
	}

	if got := h.Expire(t0.Add(400 * time.Millisecond)); len(got) != 0 {
		t.Errorf("released %v before the repeat delay", got)
	}
	if got := h.Expire(t0.Add(501 * time.Millisecond)); len(got) != 1 || got[0] != core.KeyW {
		t.Errorf("Expire() = %v, expected [W]", got)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d after expiry", h.Len())
	}
}

func TestHoldTrackerRepeats(t *testing.T) {
	h := newHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Seen(core.KeyUp, t0)
	if h.Seen(core.KeyUp, t0.Add(50*time.Millisecond)) {
		t.Error("repeat reported as a fresh press")
	}

	// After a repeat the shorter timeout applies
	if got := h.Expire(t0.Add(140 * time.Millisecond)); len(got) != 0 {
		t.Errorf("released %v while repeats were arriving", got)
	}
	if got := h.Expire(t0.Add(151 * time.Millisecond)); len(got) != 1 {
		t.Errorf("Expire() = %v, expected the key to lapse", got)
	}

	if !h.Seen(core.KeyUp, t0.Add(time.Second)) {
		t.Error("press after release should be fresh")
	}
}

func TestHoldTrackerDrop(t *testing.T) {
	h := newHoldTracker(time.Second, time.Second)
	h.Seen(core.KeyS, time.Unix(0, 0))
	h.Drop(core.KeyS)
	if h.Len() != 0 {
		t.Error("Drop() left the key held")
	}
}
