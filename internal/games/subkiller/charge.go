package subkiller

import "github.com/vovakirdan/subkiller/internal/core"

// ChargeState is the depth charge state machine.
type ChargeState int

const (
	ChargeDocked  ChargeState = iota // Hangs under the battleship
	ChargeFalling                    // Sinking towards the bottom
)

// String returns the state name.
func (s ChargeState) String() string {
	if s == ChargeFalling {
		return "falling"
	}
	return "docked"
}

// DepthCharge is the single projectile of a session. It is never destroyed,
// only docked again after a hit or a miss.
type DepthCharge struct {
	X, Y  int
	W, H  int
	State ChargeState
}

// Falling reports whether the charge is in flight.
func (c DepthCharge) Falling() bool {
	return c.State == ChargeFalling
}

// Dock returns the charge to the ship at the given offset below its center.
func (c *DepthCharge) Dock(ship Battleship, offset int) {
	c.State = ChargeDocked
	c.Follow(ship, offset)
}

// Follow mirrors the ship position while docked.
func (c *DepthCharge) Follow(ship Battleship, offset int) {
	if c.Falling() {
		return
	}
	c.X = ship.X
	c.Y = ship.Y + offset
}

// Release starts the fall. It reports false if the charge was already falling.
func (c *DepthCharge) Release() bool {
	if c.Falling() {
		return false
	}
	c.State = ChargeFalling
	return true
}

// Sink moves a falling charge down by dy.
func (c *DepthCharge) Sink(dy int) {
	c.Y += dy
}

// Bounds returns the collision rectangle. Its origin is the charge position.
func (c DepthCharge) Bounds() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}
