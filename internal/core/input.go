package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left, h, a - move the battleship left
	ActionRight          // Right, l, d - move the battleship right
	ActionDrop           // Down, j, s, Space - release the depth charge
	ActionPause          // P - stop ticking as if focus was lost
	ActionRestart        // R, Y - start a new game after game over
	ActionQuit           // Q, N, Ctrl+C - leave the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the discrete input events received between two ticks.
// Events are edge-triggered and kept in arrival order, so two presses of
// Left before a tick move the battleship twice.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Push appends an action to the frame. ActionNone is ignored.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, got := range f.Actions {
		if got == a {
			n++
		}
	}
	return n
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
