package config

import (
	_ "embed"
)

//go:embed defaults/glidebird.yaml
var defaultYAML []byte

// Default returns the shipped configuration. Kept in sync with the embedded
// YAML; used as the last-resort fallback if the embed fails to parse.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:           0.45,
			FlapImpulse:       -7.5,
			MaxFallSpeed:      12.0,
			TiltUp:            0.4,
			TiltDownMax:       0.6,
			TiltGain:          0.04,
			RotationSmoothing: 0.15,
			MaxStepScale:      2.0,
		},
		Agent: AgentCfg{
			X:           120,
			Radius:      14,
			StartYRatio: 0.45,
		},
		Obstacles: Obstacles{
			Width:     64,
			GapHeight: 150,
			MinGapY:   60,
			GapMargin: 40,
		},
		Difficulty: Difficulty{
			BaseSpeed:               3.0,
			SpeedGainPerPoint:       0.02,
			InitialIntervalMs:       1400,
			IntervalDecayPerPointMs: 10,
			MinIntervalMs:           900,
		},
		Viewport: Viewport{
			Width:       800,
			Height:      600,
			GroundRatio: 0.85,
		},
	}
}
