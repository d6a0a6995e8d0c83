package flappy

import (
	"time"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

// Controls translates semantic input into game commands and tracks the
// short highlight shown after each flap.
type Controls struct {
	game       *Game
	flash      time.Duration
	now        func() time.Time
	flashUntil time.Time
}

// NewControls binds controls to a game. now is the clock used for the
// flash; nil means time.Now.
func NewControls(g *Game, flash time.Duration, now func() time.Time) *Controls {
	if now == nil {
		now = time.Now
	}
	return &Controls{game: g, flash: flash, now: now}
}

// Apply handles one frame of input and reports whether the bird flapped.
func (c *Controls) Apply(in core.InputFrame) bool {
	if in.Has(core.ActionPause) {
		c.game.TogglePause()
	}
	if !in.Has(core.ActionJump) {
		return false
	}
	if !c.game.Flap() {
		return false
	}
	c.flashUntil = c.now().Add(c.flash)
	return true
}

// Flashing reports whether the flap highlight is still visible.
func (c *Controls) Flashing() bool {
	return c.now().Before(c.flashUntil)
}

// Reset clears any pending highlight.
func (c *Controls) Reset() {
	c.flashUntil = time.Time{}
}
