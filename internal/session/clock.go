package session

import "time"

// Token identifies one acquisition of a FrameClock. Frames carrying an
// older token belong to a loop that has since been torn down.
type Token uint64

// FrameClock turns frame timestamps into deltas for exactly one active loop.
// Front ends acquire it when a level starts and release it on teardown, so
// stale frame callbacks from a previous loop are dropped.
type FrameClock struct {
	gen     uint64
	active  bool
	last    time.Time
	hasLast bool
}

// Acquire starts a new loop and invalidates any previous token.
func (c *FrameClock) Acquire() Token {
	c.gen++
	c.active = true
	c.hasLast = false
	return Token(c.gen)
}

// Release stops the current loop. Every outstanding token becomes stale.
func (c *FrameClock) Release() {
	c.gen++
	c.active = false
	c.hasLast = false
}

// Valid reports whether tok belongs to the active loop.
func (c *FrameClock) Valid(tok Token) bool {
	return c.active && uint64(tok) == c.gen
}

// Delta records a frame at now and returns the time since the previous one.
// The first frame after Acquire only sets the baseline and yields no delta.
func (c *FrameClock) Delta(tok Token, now time.Time) (time.Duration, bool) {
	if !c.Valid(tok) {
		return 0, false
	}
	if !c.hasLast {
		c.last = now
		c.hasLast = true
		return 0, false
	}
	dt := now.Sub(c.last)
	c.last = now
	return dt, true
}
