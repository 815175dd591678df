package core

// Event is a notable state transition produced by a simulation tick.
// The platform uses events for sound and logging; the game never waits on them.
type Event int

const (
	EventNone     Event = iota
	EventDrop           // A depth charge left the battleship
	EventHit            // A falling charge struck the submarine
	EventMiss           // A falling charge sank past the bottom
	EventSurface        // The submarine respawned after an explosion
	EventGameOver       // The last charge was resolved
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventDrop:
		return "drop"
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventSurface:
		return "surface"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
