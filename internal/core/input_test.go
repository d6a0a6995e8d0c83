package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionPause)
	f.Set(ActionNone)

	for _, a := range []Action{ActionJump, ActionPause} {
		if !f.Has(a) {
			t.Errorf("frame should have action %d", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionUp, ActionQuit, ActionRestart} {
		if f.Has(a) {
			t.Errorf("frame should not have action %d", a)
		}
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || !f.Empty() {
		t.Error("zero frame should be empty")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("zero frame should accept actions")
	}
}
