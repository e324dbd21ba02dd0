package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation and to pick who controls each paddle.
type RuntimeConfig struct {
	TickRate   int    // Simulation ticks per second (0 keeps the game config value)
	Seed       int64  // RNG seed for deterministic gameplay
	Mode       Mode   // Who controls the paddles
	WinScore   int    // Overrides the winning score when > 0
	ConfigPath string // Custom game config file, empty for the search order
	Difficulty string // Difficulty preset name, empty keeps the game config
}

// DefaultConfig returns a RuntimeConfig that keeps every game config value.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0, // 0 means use current time in platform layer
		Mode: ModeVersus,
	}
}

// Mode defines who controls the paddles.
type Mode int

const (
	// ModeVersus is two local players sharing the keyboard.
	ModeVersus Mode = iota

	// ModeVsCPU is a local player on the left against the computer.
	ModeVsCPU

	// ModeDemo lets the computer control both paddles.
	ModeDemo
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeVersus:
		return "versus"
	case ModeVsCPU:
		return "cpu"
	case ModeDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "versus", "":
		return ModeVersus, true
	case "cpu":
		return ModeVsCPU, true
	case "demo":
		return ModeDemo, true
	default:
		return ModeVersus, false
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LeftScore  int    // Player 1 score
	RightScore int    // Player 2 score
	GameOver   bool   // Whether the game has ended
	Winner     string // Winner label, empty unless GameOver
	Tick       uint64 // Ticks simulated in the current match
}

// WorldSpec describes the logical world a game simulates, in world pixels.
// Platforms scale it onto their own output.
type WorldSpec struct {
	Width        int
	Height       int
	TickRate     int           // Simulation ticks per second
	MaxFrameTime time.Duration // Cap on elapsed time per frame, 0 disables
}
