package config

import (
	"time"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

// Catalog is the ordered, read-only level table.
// Lookups clamp out-of-range indexes instead of failing.
type Catalog struct {
	levels []Level
	spawn  SpawnConfig
}

// NewCatalog builds a catalog from a validated configuration.
func NewCatalog(cfg FlappyConfig) *Catalog {
	levels := make([]Level, len(cfg.Levels))
	copy(levels, cfg.Levels)
	return &Catalog{levels: levels, spawn: cfg.Spawn}
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}

// MaxIndex returns the highest valid level index.
func (c *Catalog) MaxIndex() int {
	return max(len(c.levels)-1, 0)
}

// Clamp restricts a level index to the table bounds.
func (c *Catalog) Clamp(index int) int {
	return core.Clamp(index, 0, c.MaxIndex())
}

// Level returns the level at the clamped index.
func (c *Catalog) Level(index int) Level {
	if len(c.levels) == 0 {
		return Level{}
	}
	return c.levels[c.Clamp(index)]
}

// Levels returns a copy of the whole table.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// SpawnInterval returns the time between pipe spawns for a level.
// Each level shortens the base interval by a fixed step, never below the floor.
func (c *Catalog) SpawnInterval(index int) time.Duration {
	ms := c.spawn.BaseIntervalMS - c.Clamp(index)*c.spawn.IntervalStepMS
	ms = max(ms, c.spawn.MinIntervalMS, 1)
	return time.Duration(ms) * time.Millisecond
}
