package core

import "time"

// Default runtime values.
const (
	DefaultTickInterval = 25 * time.Millisecond
	DefaultCellWidth    = 8  // Playfield pixels per terminal column
	DefaultCellHeight   = 16 // Playfield pixels per terminal row
)

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation works in playfield pixels; the terminal works in cells.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	CellW        int           // Playfield pixels per column
	CellH        int           // Playfield pixels per row
	TickInterval time.Duration // Fixed period between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		CellW:        DefaultCellWidth,
		CellH:        DefaultCellHeight,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// PlayfieldSize returns the playfield dimensions in pixels.
func (c RuntimeConfig) PlayfieldSize() (w, h int) {
	cw, ch := c.CellW, c.CellH
	if cw <= 0 {
		cw = DefaultCellWidth
	}
	if ch <= 0 {
		ch = DefaultCellHeight
	}
	return c.ScreenW * cw, c.ScreenH * ch
}

// GameState is the scoreboard view of a session.
type GameState struct {
	Hits     int  // Depth charges that struck the submarine
	Misses   int  // Depth charges that sank past the bottom
	Charges  int  // Total charges available this session
	GameOver bool // Whether the session has ended
}

// Attempts returns hits plus misses.
func (s GameState) Attempts() int {
	return s.Hits + s.Misses
}

// Remaining returns the number of charges not yet resolved.
func (s GameState) Remaining() int {
	return Max(0, s.Charges-s.Attempts())
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the tick produced the given event.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
