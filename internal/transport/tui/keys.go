package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/blockfall/internal/entity"
)

// KeyMap defines all keybindings for the game screen.
type KeyMap struct {
	HardDrop    key.Binding
	Left        key.Binding
	SoftDrop    key.Binding
	Right       key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	RotateHalf  key.Binding
	Swap        key.Binding
	Pause       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		HardDrop: key.NewBinding(
			key.WithKeys("w", " "),
			key.WithHelp("w", "drop"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a", "left"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s", "down"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d", "right"),
		),
		RotateLeft: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "ccw"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k", "cw"),
		),
		RotateHalf: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "180"),
		),
		Swap: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "hold"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("c", "ctrl+c", "esc"),
			key.WithHelp("c", "quit"),
		),
	}
}

// Move maps a key press to a game move.
func (km KeyMap) Move(msg tea.KeyMsg) (entity.Move, bool) {
	switch {
	case key.Matches(msg, km.HardDrop):
		return entity.HardDrop(), true
	case key.Matches(msg, km.Left):
		return entity.Left(1), true
	case key.Matches(msg, km.SoftDrop):
		return entity.SoftDrop(1), true
	case key.Matches(msg, km.Right):
		return entity.Right(1), true
	case key.Matches(msg, km.RotateLeft):
		return entity.Rotate(-1), true
	case key.Matches(msg, km.RotateRight):
		return entity.Rotate(1), true
	case key.Matches(msg, km.RotateHalf):
		return entity.Rotate(2), true
	case key.Matches(msg, km.Swap):
		return entity.Swap(), true
	default:
		return entity.Move{}, false
	}
}

// Bindings lists the bindings shown in the footer.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.SoftDrop, km.HardDrop,
		km.RotateLeft, km.RotateRight, km.RotateHalf,
		km.Swap, km.Pause, km.Quit,
	}
}
