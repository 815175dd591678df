package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/subkiller/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		gameOver bool
		expected core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, false, core.ActionLeft},
		{"h", runeKey("h"), false, core.ActionLeft},
		{"a", runeKey("a"), false, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, false, core.ActionRight},
		{"l", runeKey("l"), false, core.ActionRight},
		{"d", runeKey("d"), false, core.ActionRight},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, false, core.ActionDrop},
		{"j", runeKey("j"), false, core.ActionDrop},
		{"s", runeKey("s"), false, core.ActionDrop},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, false, core.ActionDrop},
		{"pause", runeKey("p"), false, core.ActionPause},
		{"quit", runeKey("q"), false, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false, core.ActionQuit},
		{"restart while playing", runeKey("y"), false, core.ActionNone},
		{"decline while playing", runeKey("n"), false, core.ActionNone},
		{"unbound", runeKey("x"), false, core.ActionNone},
		{"yes on report", runeKey("y"), true, core.ActionRestart},
		{"r on report", runeKey("r"), true, core.ActionRestart},
		{"no on report", runeKey("n"), true, core.ActionQuit},
		{"quit on report", runeKey("q"), true, core.ActionQuit},
		{"move on report", runeKey("a"), true, core.ActionNone},
		{"drop on report", runeKey("s"), true, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keys.Action(tt.msg, tt.gameOver)
			if got != tt.expected {
				t.Errorf("Action(%q, %v) = %v, expected %v", tt.msg.String(), tt.gameOver, got, tt.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should list bindings")
	}
	if len(keys.FullHelp()) == 0 {
		t.Error("FullHelp() should list binding groups")
	}
}
