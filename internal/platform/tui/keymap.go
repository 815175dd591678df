package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/subkiller/internal/core"
)

// KeyMap defines the key bindings of the play surface.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Decline key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Pause, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop},
		{k.Pause, k.Restart, k.Decline},
		{k.Quit, k.Help},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("down", "j", "s", " "),
			key.WithHelp("↓/space", "drop charge"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "y"),
			key.WithHelp("y/r", "play again"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no thanks"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// Action translates a key message to a game action.
// Restart and Decline only exist on the game-over report.
func (k KeyMap) Action(msg tea.KeyMsg, gameOver bool) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case gameOver && key.Matches(msg, k.Restart):
		return core.ActionRestart
	case gameOver && key.Matches(msg, k.Decline):
		return core.ActionQuit
	case gameOver:
		return core.ActionNone
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
