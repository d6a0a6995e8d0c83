package config

import (
	"errors"
	"fmt"
)

// ErrNoLevels is returned when a configuration defines no levels.
var ErrNoLevels = errors.New("config: no levels defined")

// Validate checks that a configuration can produce a playable game.
func Validate(cfg FlappyConfig) error {
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		return fmt.Errorf("config: field size must be positive, got %vx%v", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Bird.Radius <= 0 {
		return fmt.Errorf("config: bird radius must be positive, got %v", cfg.Bird.Radius)
	}
	if cfg.Bird.X-cfg.Bird.Radius < 0 || cfg.Bird.X+cfg.Bird.Radius > cfg.Field.Width {
		return fmt.Errorf("config: bird x %v does not fit the field", cfg.Bird.X)
	}
	if cfg.Pipes.Width <= 0 || cfg.Pipes.Margin <= 0 || cfg.Pipes.CullMargin < 0 {
		return fmt.Errorf("config: pipe width and margin must be positive")
	}
	if cfg.Spawn.MinIntervalMS <= 0 {
		return fmt.Errorf("config: min spawn interval must be positive, got %d", cfg.Spawn.MinIntervalMS)
	}
	if cfg.Spawn.BaseIntervalMS < cfg.Spawn.MinIntervalMS || cfg.Spawn.IntervalStepMS < 0 {
		return fmt.Errorf("config: spawn base interval must be >= min interval and step non-negative")
	}
	if cfg.Timing.MaxDeltaMS <= 0 || cfg.Timing.ReferenceFrameMS <= 0 {
		return fmt.Errorf("config: timing values must be positive")
	}
	if len(cfg.Levels) == 0 {
		return ErrNoLevels
	}

	for i, lvl := range cfg.Levels {
		if err := validateLevel(cfg, lvl); err != nil {
			return fmt.Errorf("config: level %d: %w", i+1, err)
		}
		if i == 0 {
			continue
		}
		prev := cfg.Levels[i-1]
		if lvl.ScrollSpeed < prev.ScrollSpeed || lvl.ScoreTarget < prev.ScoreTarget {
			return fmt.Errorf("config: level %d is easier than level %d", i+1, i)
		}
	}
	return nil
}

func validateLevel(cfg FlappyConfig, lvl Level) error {
	switch {
	case lvl.ScrollSpeed <= 0:
		return fmt.Errorf("scroll speed must be positive, got %v", lvl.ScrollSpeed)
	case lvl.Gravity <= 0:
		return fmt.Errorf("gravity must be positive, got %v", lvl.Gravity)
	case lvl.FlapImpulse >= 0:
		return fmt.Errorf("flap impulse must be negative (upward), got %v", lvl.FlapImpulse)
	case lvl.ScoreTarget <= 0:
		return fmt.Errorf("score target must be positive, got %d", lvl.ScoreTarget)
	case lvl.GapHeight <= 2*cfg.Bird.Radius:
		return fmt.Errorf("gap %v is too small for the bird", lvl.GapHeight)
	case lvl.GapHeight+2*cfg.Pipes.Margin >= cfg.Field.Height:
		return fmt.Errorf("gap %v plus margins does not fit field height %v", lvl.GapHeight, cfg.Field.Height)
	}
	return nil
}
