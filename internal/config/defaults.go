package config

import (
	_ "embed"
)

//go:embed defaults/subkiller.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/subkiller.yaml and is the fallback when the embedded
// document cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			Charges: 25,
			TickMS:  25,
		},
		Battleship: BattleshipConfig{
			Step:        15,
			MinX:        130,
			RightMargin: 145,
			Y:           200,
		},
		Charge: ChargeConfig{
			Width:      30,
			Height:     15,
			FallSpeed:  10,
			DockOffset: 23,
		},
		Submarine: SubmarineConfig{
			Width:           264,
			Height:          72,
			Speed:           5,
			MinX:            40,
			RightMargin:     200,
			Depth:           72,
			ReverseChance:   0.04,
			ExplosionFrames: 15,
		},
		Scenery: SceneryConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
