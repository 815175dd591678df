package tui

import (
	"testing"
	"time"
)

func TestClockStartIsIdempotent(t *testing.T) {
	c := NewClock(25 * time.Millisecond)
	if c.Running() {
		t.Fatal("new clock should be stopped")
	}

	if cmd := c.Start(); cmd == nil {
		t.Fatal("Start() on a stopped clock should schedule a tick")
	}
	gen := c.gen

	if cmd := c.Start(); cmd != nil {
		t.Error("Start() while running should not start a second chain")
	}
	if c.gen != gen {
		t.Errorf("gen changed from %d to %d on a redundant Start()", gen, c.gen)
	}
}

func TestClockStopDropsScheduledTicks(t *testing.T) {
	c := NewClock(25 * time.Millisecond)
	c.Start()
	inFlight := TickMsg{Gen: c.gen}

	if !c.Accept(inFlight) {
		t.Fatal("tick of the live chain should be accepted")
	}

	c.Stop()
	if c.Running() {
		t.Error("clock should be stopped")
	}
	if c.Accept(inFlight) {
		t.Error("tick scheduled before Stop() should be dropped")
	}

	c.Start()
	if c.Accept(inFlight) {
		t.Error("tick of an old chain should be dropped after a restart")
	}
	if !c.Accept(TickMsg{Gen: c.gen}) {
		t.Error("tick of the new chain should be accepted")
	}
}

func TestClockStopWhenStopped(t *testing.T) {
	c := NewClock(time.Second)
	c.Stop()
	if c.gen != 0 {
		t.Errorf("Stop() on a stopped clock should not bump gen, got %d", c.gen)
	}
	if c.Interval() != time.Second {
		t.Errorf("Interval() = %v", c.Interval())
	}
}
