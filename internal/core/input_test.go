package core

import "testing"

func TestInputFrameControls(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionJump)

	c := f.Controls()
	if !c.Left || c.Right || !c.Jump {
		t.Errorf("Controls() = %+v, expected left+jump", c)
	}

	back := c.Frame()
	if !back.Has(ActionLeft) || back.Has(ActionRight) || !back.Has(ActionJump) {
		t.Errorf("Frame() round trip lost actions: %+v", back.Actions)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on zero frame should allocate and record the action")
	}
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	clone := f.Clone()
	f.Clear()
	if !clone.Has(ActionRight) {
		t.Error("clone should be independent of the original")
	}
}

func TestKeyLatchHoldWindow(t *testing.T) {
	l := NewKeyLatch(3)
	l.Press(ActionRight)

	for i := 0; i < 3; i++ {
		f := l.Sample()
		if !f.Has(ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}

	if f := l.Sample(); f.Has(ActionRight) {
		t.Error("right should be released after the hold window")
	}
}

func TestKeyLatchRepressExtends(t *testing.T) {
	l := NewKeyLatch(2)
	l.Press(ActionJump)
	l.Sample()
	l.Press(ActionJump) // auto-repeat
	l.Sample()
	if f := l.Sample(); !f.Has(ActionJump) {
		t.Error("a repeated press should restart the hold window")
	}
}

func TestKeyLatchOppositeDirectionsCancel(t *testing.T) {
	l := NewKeyLatch(5)
	l.Press(ActionLeft)
	l.Press(ActionRight)

	f := l.Sample()
	if f.Has(ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Has(ActionRight) {
		t.Error("right should be held")
	}
}

func TestKeyLatchReleaseAndReset(t *testing.T) {
	l := NewKeyLatch(5)
	l.Press(ActionJump)
	l.Press(ActionLeft)
	l.Release(ActionJump)

	if l.Held(ActionJump) {
		t.Error("Release should drop the action")
	}
	if !l.Held(ActionLeft) {
		t.Error("other actions should remain held")
	}

	l.Reset()
	if l.Held(ActionLeft) {
		t.Error("Reset should drop every action")
	}
}

func TestKeyLatchDefaultHold(t *testing.T) {
	l := NewKeyLatch(0)
	l.Press(ActionJump)
	held := 0
	for l.Sample().Has(ActionJump) {
		held++
	}
	if held != DefaultHoldTicks {
		t.Errorf("default hold = %d ticks, expected %d", held, DefaultHoldTicks)
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
