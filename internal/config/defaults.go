package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:  360,
			Height: 640,
		},
		Bird: BirdConfig{
			X:       80,
			Radius:  16,
			FlashMS: 80,
		},
		Pipes: PipeConfig{
			Width:      60,
			Margin:     40,
			CullMargin: 60,
		},
		Spawn: SpawnConfig{
			BaseIntervalMS: 1200,
			IntervalStepMS: 80,
			MinIntervalMS:  400,
		},
		Timing: TimingConfig{
			MaxDeltaMS:       32,
			ReferenceFrameMS: 16.6667,
		},
		Levels: []Level{
			{Name: "Sunny Start", ScrollSpeed: 2.5, GapHeight: 160, Gravity: 0.35, FlapImpulse: -7.5, ScoreTarget: 10},
			{Name: "Breezy Hills", ScrollSpeed: 3.1, GapHeight: 150, Gravity: 0.36, FlapImpulse: -7.8, ScoreTarget: 15},
			{Name: "Cloud Hop", ScrollSpeed: 3.6, GapHeight: 140, Gravity: 0.38, FlapImpulse: -8.0, ScoreTarget: 20},
			{Name: "Windy Peaks", ScrollSpeed: 4.2, GapHeight: 130, Gravity: 0.40, FlapImpulse: -8.2, ScoreTarget: 25},
			{Name: "Storm Chaser", ScrollSpeed: 4.8, GapHeight: 120, Gravity: 0.42, FlapImpulse: -8.4, ScoreTarget: 30},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
