package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestControlsFlapAndFlash(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	g := newTestGame(1)
	c := NewControls(g, 80*time.Millisecond, clock.Now)
	g.Reset(0)

	if c.Apply(core.NewInputFrame()) {
		t.Error("empty input should not flap")
	}
	if !c.Apply(jump()) {
		t.Fatal("jump should flap during an active run")
	}
	if g.State().Bird.VY != g.params.FlapImpulse {
		t.Errorf("VY = %v, expected impulse", g.State().Bird.VY)
	}
	if !c.Flashing() {
		t.Error("flash should be visible right after a flap")
	}

	clock.Advance(79 * time.Millisecond)
	if !c.Flashing() {
		t.Error("flash should last 80ms")
	}
	clock.Advance(time.Millisecond)
	if c.Flashing() {
		t.Error("flash should end after 80ms")
	}
}

func TestControlsIgnoreInactiveRun(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	g := newTestGame(1)
	c := NewControls(g, 80*time.Millisecond, clock.Now)

	if c.Apply(jump()) || c.Flashing() {
		t.Error("input before a run should be ignored")
	}

	g.Reset(0)
	for g.Tick(frame) == OutcomeContinue {
	}
	if c.Apply(jump()) || c.Flashing() {
		t.Error("input after a run should be ignored")
	}
}

func TestControlsPause(t *testing.T) {
	g := newTestGame(1)
	c := NewControls(g, 80*time.Millisecond, nil)
	g.Reset(0)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	in.Set(core.ActionJump)
	if c.Apply(in) {
		t.Error("jump in the same frame as pausing should be ignored")
	}
	if !g.Paused() {
		t.Fatal("pause action should pause the game")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	c.Apply(in)
	if g.Paused() {
		t.Error("second pause action should resume")
	}
}
