package core

import "testing"

func TestInputFrameOrderAndCount(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionLeft)
	f.Push(ActionNone)
	f.Push(ActionLeft)
	f.Push(ActionDrop)

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3 (ActionNone is dropped)", f.Len())
	}
	if f.Count(ActionLeft) != 2 {
		t.Errorf("Count(Left) = %d, expected 2", f.Count(ActionLeft))
	}
	if !f.Has(ActionDrop) {
		t.Error("Has(Drop) should be true")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) should be false")
	}
	if f.Actions[2] != ActionDrop {
		t.Errorf("actions should keep arrival order, got %v", f.Actions)
	}
}

func TestInputFrameClearKeepsCapacity(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionRight)
	f.Push(ActionDrop)
	capBefore := cap(f.Actions)

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Clear() should empty the frame, got %d actions", f.Len())
	}
	if cap(f.Actions) != capBefore {
		t.Errorf("Clear() should keep capacity %d, got %d", capBefore, cap(f.Actions))
	}
}

func TestActionString(t *testing.T) {
	if ActionDrop.String() != "Drop" {
		t.Errorf("ActionDrop.String() = %q", ActionDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown, got %q", Action(99).String())
	}
}
