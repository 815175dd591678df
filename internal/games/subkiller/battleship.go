package subkiller

import "github.com/vovakirdan/subkiller/internal/core"

// Battleship is the player's ship. Only X changes during a session.
type Battleship struct {
	X, Y int // Center
}

// Move shifts the ship horizontally. Bounds are enforced by Clamp on the next tick.
func (b *Battleship) Move(dx int) {
	b.X += dx
}

// Clamp keeps the ship inside [minX, maxX].
func (b *Battleship) Clamp(minX, maxX int) {
	b.X = core.Clamp(b.X, minX, maxX)
}
