// Package config provides YAML/TOML configuration loading for the game.
// Every tunable of the simulation lives here with its classic default.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned (wrapped) when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all configuration for Submarine Killer.
type Config struct {
	Game       GameConfig       `yaml:"game" toml:"game"`
	Battleship BattleshipConfig `yaml:"battleship" toml:"battleship"`
	Charge     ChargeConfig     `yaml:"charge" toml:"charge"`
	Submarine  SubmarineConfig  `yaml:"submarine" toml:"submarine"`
	Scenery    SceneryConfig    `yaml:"scenery" toml:"scenery"`
	Display    DisplayConfig    `yaml:"display" toml:"display"`
}

// GameConfig defines session-wide rules.
type GameConfig struct {
	Charges int `yaml:"charges" toml:"charges"` // Attempts per session
	TickMS  int `yaml:"tick_ms" toml:"tick_ms"` // Tick period in milliseconds
}

// BattleshipConfig defines the player's ship.
type BattleshipConfig struct {
	Step        int `yaml:"step" toml:"step"`                 // Pixels per key press
	MinX        int `yaml:"min_x" toml:"min_x"`               // Leftmost center
	RightMargin int `yaml:"right_margin" toml:"right_margin"` // Rightmost center is width minus this
	Y           int `yaml:"y" toml:"y"`                       // Center line from the top
}

// ChargeConfig defines the depth charge.
type ChargeConfig struct {
	Width      int `yaml:"width" toml:"width"`
	Height     int `yaml:"height" toml:"height"`
	FallSpeed  int `yaml:"fall_speed" toml:"fall_speed"`   // Pixels per tick
	DockOffset int `yaml:"dock_offset" toml:"dock_offset"` // Distance below the battleship center
}

// SubmarineConfig defines the target.
type SubmarineConfig struct {
	Width           int     `yaml:"width" toml:"width"`
	Height          int     `yaml:"height" toml:"height"`
	Speed           int     `yaml:"speed" toml:"speed"` // Pixels per tick
	MinX            int     `yaml:"min_x" toml:"min_x"`
	RightMargin     int     `yaml:"right_margin" toml:"right_margin"`
	Depth           int     `yaml:"depth" toml:"depth"` // Distance of the center line above the bottom
	ReverseChance   float64 `yaml:"reverse_chance" toml:"reverse_chance"`
	ExplosionFrames int     `yaml:"explosion_frames" toml:"explosion_frames"`
}

// SceneryConfig toggles the decorative background.
type SceneryConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
}

// DisplayConfig maps playfield pixels to terminal cells.
type DisplayConfig struct {
	CellWidth  int `yaml:"cell_width" toml:"cell_width"`
	CellHeight int `yaml:"cell_height" toml:"cell_height"`
}

// TickInterval returns the tick period as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Game.TickMS) * time.Millisecond
}

// MinPlayfield returns the smallest playfield, in pixels, on which every
// clamp range is non-empty and a docked charge clears the submarine.
// The battleship line never sits below the middle of the playfield.
func (c Config) MinPlayfield() (w, h int) {
	w = max(
		c.Battleship.MinX+c.Battleship.RightMargin,
		c.Submarine.MinX+c.Submarine.RightMargin,
		c.Submarine.Width,
	)
	h = 2 * (c.Submarine.Depth + c.Charge.DockOffset + c.Charge.Height)
	return w, h
}

// Validate checks that every field is usable by the simulation.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("game.charges", c.Game.Charges)
	positive("game.tick_ms", c.Game.TickMS)

	positive("battleship.step", c.Battleship.Step)
	nonNegative("battleship.min_x", c.Battleship.MinX)
	nonNegative("battleship.right_margin", c.Battleship.RightMargin)
	positive("battleship.y", c.Battleship.Y)

	positive("charge.width", c.Charge.Width)
	positive("charge.height", c.Charge.Height)
	positive("charge.fall_speed", c.Charge.FallSpeed)
	nonNegative("charge.dock_offset", c.Charge.DockOffset)

	positive("submarine.width", c.Submarine.Width)
	positive("submarine.height", c.Submarine.Height)
	positive("submarine.speed", c.Submarine.Speed)
	nonNegative("submarine.min_x", c.Submarine.MinX)
	nonNegative("submarine.right_margin", c.Submarine.RightMargin)
	positive("submarine.depth", c.Submarine.Depth)
	positive("submarine.explosion_frames", c.Submarine.ExplosionFrames)
	if c.Submarine.ReverseChance < 0 || c.Submarine.ReverseChance > 1 {
		errs = append(errs, fmt.Errorf("submarine.reverse_chance must be within [0, 1], got %g", c.Submarine.ReverseChance))
	}

	positive("display.cell_width", c.Display.CellWidth)
	positive("display.cell_height", c.Display.CellHeight)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
