package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap holds the key bindings of the game screen.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	P1Up    key.Binding
	P1Down  key.Binding
	P2Up    key.Binding
	P2Down  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings: W/S for the left paddle and
// the arrow keys for the right one.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up:    key.NewBinding(key.WithKeys("w", "W"), key.WithHelp("w/s", "left paddle")),
		P1Down:  key.NewBinding(key.WithKeys("s", "S")),
		P2Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "right paddle")),
		P2Down:  key.NewBinding(key.WithKeys("down")),
		Restart: key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P2Up, k.Restart, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up, k.P1Down},
		{k.P2Up, k.P2Down},
		{k.Restart, k.Quit},
	}
}

// Lookup translates a key message to a game key.
// Quit is not a game key and is reported separately by IsQuit.
func (k KeyMap) Lookup(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.P1Up):
		return core.KeyW, true
	case key.Matches(msg, k.P1Down):
		return core.KeyS, true
	case key.Matches(msg, k.P2Up):
		return core.KeyUp, true
	case key.Matches(msg, k.P2Down):
		return core.KeyDown, true
	case key.Matches(msg, k.Restart):
		return core.KeyR, true
	}
	return core.KeyNone, false
}

// IsQuit reports whether the message requests leaving the game.
func (k KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}

// opposite returns the key on the same paddle pointing the other way.
func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyW:
		return core.KeyS
	case core.KeyS:
		return core.KeyW
	case core.KeyUp:
		return core.KeyDown
	case core.KeyDown:
		return core.KeyUp
	default:
		return core.KeyNone
	}
}

// holdable reports whether k drives a paddle and so follows the hold and
// auto-repeat inference. Other keys produce a typed edge on every press.
func holdable(k core.Key) bool {
	return opposite(k) != core.KeyNone
}
