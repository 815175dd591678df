// Package audio synthesises the game's sound effects with beep and plays
// them through the system speaker.
package audio

import (
	"github.com/vovakirdan/subkiller/internal/core"
)

// Effect identifies a sound effect.
type Effect int

const (
	EffectDrop      Effect = iota // Charge released
	EffectExplosion               // Submarine hit
	EffectSonar                   // Submarine surfaced again
	EffectGameOver                // Session ended
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectDrop:
		return "drop"
	case EffectExplosion:
		return "explosion"
	case EffectSonar:
		return "sonar"
	case EffectGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// EffectFor maps a simulation event to its sound. ok is false for silent events.
func EffectFor(ev core.Event) (e Effect, ok bool) {
	switch ev {
	case core.EventDrop:
		return EffectDrop, true
	case core.EventHit:
		return EffectExplosion, true
	case core.EventSurface:
		return EffectSonar, true
	case core.EventGameOver:
		return EffectGameOver, true
	default:
		return 0, false
	}
}

// Player plays sound effects without blocking the caller.
type Player interface {
	Play(e Effect)
	Close() error
}

// Nop is a Player that plays nothing. Used for SSH sessions and --sound=false.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Effect) {}

// Close does nothing.
func (Nop) Close() error { return nil }

// PlayEvents plays the sound of every event that has one.
func PlayEvents(p Player, events []core.Event) {
	if p == nil {
		return
	}
	for _, ev := range events {
		if e, ok := EffectFor(ev); ok {
			p.Play(e)
		}
	}
}
