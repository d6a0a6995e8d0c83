package session

import (
	"testing"
	"time"
)

func TestFrameClockFirstFrameIsBaseline(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(100, 0)
	tok := c.Acquire()

	if _, ok := c.Delta(tok, t0); ok {
		t.Error("first frame after acquire should not yield a delta")
	}
	dt, ok := c.Delta(tok, t0.Add(16*time.Millisecond))
	if !ok || dt != 16*time.Millisecond {
		t.Errorf("Delta() = %v, %v; expected 16ms", dt, ok)
	}
}

func TestFrameClockDropsStaleTokens(t *testing.T) {
	var c FrameClock
	t0 := time.Unix(100, 0)

	old := c.Acquire()
	c.Delta(old, t0)

	cur := c.Acquire()
	if c.Valid(old) {
		t.Error("re-acquiring should invalidate the previous token")
	}
	if _, ok := c.Delta(old, t0.Add(time.Second)); ok {
		t.Error("stale token yielded a delta")
	}

	// The new loop starts its own baseline.
	if _, ok := c.Delta(cur, t0.Add(2*time.Second)); ok {
		t.Error("first frame of the new loop should be a baseline")
	}

	c.Release()
	if c.Valid(cur) {
		t.Error("release should invalidate the active token")
	}
	if _, ok := c.Delta(cur, t0.Add(3*time.Second)); ok {
		t.Error("released clock yielded a delta")
	}
}
