package core

import "sync"

// Key identifies a physical key, abstracted from the platform's key codes.
type Key int

const (
	KeyNone Key = iota
	KeyW        // Left paddle up
	KeyS        // Left paddle down
	KeyUp       // Right paddle up
	KeyDown     // Right paddle down
	KeyR        // Restart after game over
	KeyQ        // Quit
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyR:
		return "R"
	case KeyQ:
		return "Q"
	default:
		return "Unknown"
	}
}

// InputState is the key state sampled for a single simulation tick.
// It replaces process-wide key arrays: the loop hands one value to each tick.
type InputState struct {
	held  map[Key]bool
	typed map[Key]bool
}

// NewInputState creates an empty input state.
func NewInputState() InputState {
	return InputState{
		held:  make(map[Key]bool),
		typed: make(map[Key]bool),
	}
}

// Held reports whether the key is currently held down.
func (s InputState) Held(k Key) bool {
	if s.held == nil {
		return false
	}
	return s.held[k]
}

// Typed reports whether a typed edge for the key is pending, without consuming it.
func (s InputState) Typed(k Key) bool {
	if s.typed == nil {
		return false
	}
	return s.typed[k]
}

// TakeTyped reports whether a typed edge for the key is pending and clears it,
// so a second call in the same tick returns false.
func (s InputState) TakeTyped(k Key) bool {
	if s.typed == nil || !s.typed[k] {
		return false
	}
	delete(s.typed, k)
	return true
}

// Pending returns the keys with a typed edge still waiting to be consumed.
func (s InputState) Pending() []Key {
	keys := make([]Key, 0, len(s.typed))
	for k := range s.typed {
		keys = append(keys, k)
	}
	return keys
}

// Hold marks a key as held. Used by synthetic input sources such as the CPU.
func (s *InputState) Hold(k Key) {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = true
}

// Release clears the held flag of a key.
func (s *InputState) Release(k Key) {
	if s.held != nil {
		delete(s.held, k)
	}
}

// Type records a typed edge for a key.
func (s *InputState) Type(k Key) {
	if s.typed == nil {
		s.typed = make(map[Key]bool)
	}
	s.typed[k] = true
}

// Clone creates a deep copy of this input state.
func (s InputState) Clone() InputState {
	clone := NewInputState()
	for k, v := range s.held {
		clone.held[k] = v
	}
	for k, v := range s.typed {
		clone.typed[k] = v
	}
	return clone
}

// CloneHeld copies the held keys but shares the typed edges with s, so a
// caller may synthesise held keys while edges taken from the copy are still
// seen as consumed through s.
func (s InputState) CloneHeld() InputState {
	clone := InputState{held: make(map[Key]bool, len(s.held)), typed: s.typed}
	for k, v := range s.held {
		clone.held[k] = v
	}
	return clone
}

// InputSource provides the input state for the next tick.
type InputSource interface {
	// Snapshot copies the current key state. Typed edges stay pending.
	Snapshot() InputState

	// Consume clears the pending typed edge of k once a tick has acted on it.
	Consume(k Key)
}

// KeyTable is the key-state table written by the platform and read by the loop.
// The platform's event goroutine writes it while the loop samples it once per tick,
// so access is serialized with a mutex.
type KeyTable struct {
	mu    sync.Mutex
	state InputState
}

// NewKeyTable creates an empty key table.
func NewKeyTable() *KeyTable {
	return &KeyTable{state: NewInputState()}
}

// Press marks the key held and records a typed edge.
func (t *KeyTable) Press(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Hold(k)
	t.state.Type(k)
}

// Release marks the key as no longer held.
func (t *KeyTable) Release(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Release(k)
}

// Held reports whether the key is currently held.
func (t *KeyTable) Held(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Held(k)
}

// Snapshot copies the held keys and the pending typed edges. An edge stays
// pending across snapshots until Consume clears it.
func (t *KeyTable) Snapshot() InputState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// Consume clears the typed edge of k.
func (t *KeyTable) Consume(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.TakeTyped(k)
}
