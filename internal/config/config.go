// Package config provides YAML-based game configuration loading and the
// level catalog for flappy-kids.
package config

import "time"

// FlappyConfig contains all tunables for the game.
type FlappyConfig struct {
	Field  FieldConfig  `yaml:"field"`
	Bird   BirdConfig   `yaml:"bird"`
	Pipes  PipeConfig   `yaml:"pipes"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Timing TimingConfig `yaml:"timing"`
	Levels []Level      `yaml:"levels"`
}

// FieldConfig is the logical play-field size in game units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the player body. The bird always starts at mid-field.
type BirdConfig struct {
	X       float64 `yaml:"x"`
	Radius  float64 `yaml:"radius"`
	FlashMS int     `yaml:"flash_ms"` // Cosmetic flap highlight
}

// PipeConfig defines obstacle geometry shared by every level.
type PipeConfig struct {
	Width      float64 `yaml:"width"`
	Margin     float64 `yaml:"margin"`      // Minimum pipe length above and below a gap
	CullMargin float64 `yaml:"cull_margin"` // Distance past the left edge before removal
}

// SpawnConfig defines how often pipes appear.
type SpawnConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	IntervalStepMS int `yaml:"interval_step_ms"` // Subtracted per level index
	MinIntervalMS  int `yaml:"min_interval_ms"`
}

// TimingConfig defines frame-delta normalization.
type TimingConfig struct {
	MaxDeltaMS       float64 `yaml:"max_delta_ms"`
	ReferenceFrameMS float64 `yaml:"reference_frame_ms"`
}

// Level is one immutable difficulty tuple.
type Level struct {
	Name        string  `yaml:"name"`
	ScrollSpeed float64 `yaml:"scroll_speed"` // Units per reference frame
	GapHeight   float64 `yaml:"gap_height"`
	Gravity     float64 `yaml:"gravity"`      // Units per reference frame squared
	FlapImpulse float64 `yaml:"flap_impulse"` // Absolute vertical velocity on flap (negative = up)
	ScoreTarget int     `yaml:"score_target"`
}

// Flash returns the flap highlight duration.
func (b BirdConfig) Flash() time.Duration {
	return time.Duration(b.FlashMS) * time.Millisecond
}

// MaxDelta returns the largest frame delta the simulation accepts.
func (t TimingConfig) MaxDelta() time.Duration {
	return msToDuration(t.MaxDeltaMS)
}

// ReferenceFrame returns the frame length that physics constants are tuned for.
func (t TimingConfig) ReferenceFrame() time.Duration {
	return msToDuration(t.ReferenceFrameMS)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
