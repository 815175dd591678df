// Package tui provides the Bubble Tea integration for Submarine Killer.
// It handles the terminal UI loop, input mapping, focus gating and the
// end-of-game report, locally and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick chain that scheduled it.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// Clock gates the tick chain. Stop invalidates every tick already
// scheduled; Start while running does nothing, so at most one chain is
// ever alive and missed ticks are never caught up.
type Clock struct {
	interval time.Duration
	gen      int
	running  bool
}

// NewClock creates a stopped clock with the given period.
func NewClock(interval time.Duration) Clock {
	return Clock{interval: interval}
}

// Running reports whether ticks are being delivered.
func (c *Clock) Running() bool {
	return c.running
}

// Interval returns the tick period.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Start begins a new tick chain and returns the command for its first tick.
func (c *Clock) Start() tea.Cmd {
	if c.running {
		return nil
	}
	c.running = true
	c.gen++
	return c.Next()
}

// Stop ends the current chain. Ticks already in flight are dropped by Accept.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.gen++
}

// Accept reports whether msg belongs to the live chain.
func (c *Clock) Accept(msg TickMsg) bool {
	return c.running && msg.Gen == c.gen
}

// Next schedules the following tick of the current chain.
func (c *Clock) Next() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
