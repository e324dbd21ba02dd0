package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Terminals report key presses and auto-repeats but never releases, so a key
// counts as held until its repeats stop arriving.
const (
	// InitialHold covers the delay before the terminal starts auto-repeating.
	InitialHold = 550 * time.Millisecond

	// RepeatHold covers the gap between two auto-repeats.
	RepeatHold = 120 * time.Millisecond
)

type heldKey struct {
	lastSeen time.Time
	repeats  int
}

// holdTracker infers key releases from the timing of repeated presses.
type holdTracker struct {
	keys    map[core.Key]*heldKey
	initial time.Duration
	repeat  time.Duration
}

func newHoldTracker(initial, repeat time.Duration) *holdTracker {
	return &holdTracker{
		keys:    make(map[core.Key]*heldKey),
		initial: initial,
		repeat:  repeat,
	}
}

// Seen records a press of k at now. It reports whether this is a fresh press
// rather than an auto-repeat.
func (h *holdTracker) Seen(k core.Key, now time.Time) bool {
	hk, ok := h.keys[k]
	if !ok {
		h.keys[k] = &heldKey{lastSeen: now}
		return true
	}
	hk.lastSeen = now
	hk.repeats++
	return false
}

// Drop forgets k, e.g. when the opposite direction is pressed.
func (h *holdTracker) Drop(k core.Key) {
	delete(h.keys, k)
}

// Expire removes and returns every key whose hold has lapsed at now.
func (h *holdTracker) Expire(now time.Time) []core.Key {
	var released []core.Key
	for k, hk := range h.keys {
		timeout := h.repeat
		if hk.repeats == 0 {
			timeout = h.initial
		}
		if now.Sub(hk.lastSeen) > timeout {
			released = append(released, k)
			delete(h.keys, k)
		}
	}
	return released
}

// Len returns the number of keys considered held.
func (h *holdTracker) Len() int {
	return len(h.keys)
}
