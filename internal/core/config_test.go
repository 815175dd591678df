package core

import "testing"

func TestPlayfieldSize(t *testing.T) {
	cfg := DefaultConfig()
	w, h := cfg.PlayfieldSize()
	if w != 640 || h != 384 {
		t.Errorf("PlayfieldSize() = %dx%d, expected 640x384", w, h)
	}

	cfg.CellW, cfg.CellH = 0, 0
	w, h = cfg.PlayfieldSize()
	if w != 80*DefaultCellWidth || h != 24*DefaultCellHeight {
		t.Errorf("zero cell size should fall back to defaults, got %dx%d", w, h)
	}
}

func TestGameStateCounters(t *testing.T) {
	s := GameState{Hits: 3, Misses: 4, Charges: 25}
	if s.Attempts() != 7 {
		t.Errorf("Attempts() = %d, expected 7", s.Attempts())
	}
	if s.Remaining() != 18 {
		t.Errorf("Remaining() = %d, expected 18", s.Remaining())
	}

	over := GameState{Hits: 20, Misses: 10, Charges: 25}
	if over.Remaining() != 0 {
		t.Errorf("Remaining() should never be negative, got %d", over.Remaining())
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventDrop, EventHit}}
	if !r.Has(EventHit) {
		t.Error("Has(EventHit) should be true")
	}
	if r.Has(EventMiss) {
		t.Error("Has(EventMiss) should be false")
	}
}
