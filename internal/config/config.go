// Package config provides YAML-based configuration loading and difficulty
// presets for the glidebird simulation.
package config

import (
	"github.com/marralek/glidebird/internal/sim"
)

// Config contains every tunable of the game, mirroring sim.Params with YAML
// tags so players can override the shipped defaults.
type Config struct {
	Physics    Physics    `yaml:"physics"`
	Agent      AgentCfg   `yaml:"agent"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Difficulty Difficulty `yaml:"difficulty"`
	Viewport   Viewport   `yaml:"viewport"`
}

// Physics defines the agent integration constants.
type Physics struct {
	Gravity           float64 `yaml:"gravity"`
	FlapImpulse       float64 `yaml:"flap_impulse"`
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`
	TiltUp            float64 `yaml:"tilt_up"`
	TiltDownMax       float64 `yaml:"tilt_down_max"`
	TiltGain          float64 `yaml:"tilt_gain"`
	RotationSmoothing float64 `yaml:"rotation_smoothing"`
	MaxStepScale      float64 `yaml:"max_step_scale"`
}

// AgentCfg defines the agent's fixed pose.
type AgentCfg struct {
	X           float64 `yaml:"x"`
	Radius      float64 `yaml:"radius"`
	StartYRatio float64 `yaml:"start_y_ratio"`
}

// Obstacles defines pipe-pair spawn geometry.
type Obstacles struct {
	Width     float64 `yaml:"width"`
	GapHeight float64 `yaml:"gap_height"`
	MinGapY   float64 `yaml:"min_gap_y"`
	GapMargin float64 `yaml:"gap_margin"`
}

// Difficulty defines the score-driven difficulty curve.
type Difficulty struct {
	BaseSpeed               float64 `yaml:"base_speed"`
	SpeedGainPerPoint       float64 `yaml:"speed_gain_per_point"`
	InitialIntervalMs       float64 `yaml:"initial_interval_ms"`
	IntervalDecayPerPointMs float64 `yaml:"interval_decay_per_point_ms"`
	MinIntervalMs           float64 `yaml:"min_interval_ms"`
}

// Viewport defines the default world dimensions and ground line.
type Viewport struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundRatio float64 `yaml:"ground_ratio"`
}

// Params converts the configuration into simulation parameters.
func (c Config) Params() sim.Params {
	return sim.Params{
		Physics: sim.Physics{
			Gravity:           c.Physics.Gravity,
			FlapImpulse:       c.Physics.FlapImpulse,
			MaxFallSpeed:      c.Physics.MaxFallSpeed,
			TiltUp:            c.Physics.TiltUp,
			TiltDownMax:       c.Physics.TiltDownMax,
			TiltGain:          c.Physics.TiltGain,
			RotationSmoothing: c.Physics.RotationSmoothing,
			MaxStepScale:      c.Physics.MaxStepScale,
		},
		Obstacles: sim.ObstacleParams{
			Width:     c.Obstacles.Width,
			GapHeight: c.Obstacles.GapHeight,
			MinGapY:   c.Obstacles.MinGapY,
			GapMargin: c.Obstacles.GapMargin,
		},
		Curve: sim.Curve{
			BaseSpeed:               c.Difficulty.BaseSpeed,
			SpeedGainPerPoint:       c.Difficulty.SpeedGainPerPoint,
			InitialIntervalMs:       c.Difficulty.InitialIntervalMs,
			IntervalDecayPerPointMs: c.Difficulty.IntervalDecayPerPointMs,
			MinIntervalMs:           c.Difficulty.MinIntervalMs,
		},
		AgentX:      c.Agent.X,
		AgentRadius: c.Agent.Radius,
		StartYRatio: c.Agent.StartYRatio,
		ViewW:       c.Viewport.Width,
		ViewH:       c.Viewport.Height,
		GroundRatio: c.Viewport.GroundRatio,
	}
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ApplyPreset adjusts the configuration for a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Obstacles.GapHeight += 30
		cfg.Difficulty.BaseSpeed *= 0.85
		cfg.Difficulty.IntervalDecayPerPointMs *= 0.5
	case PresetNormal:
		// The shipped defaults are the normal preset.
	case PresetHard:
		cfg.Obstacles.GapHeight -= 30
		cfg.Difficulty.BaseSpeed *= 1.2
		cfg.Difficulty.InitialIntervalMs = cfg.Difficulty.MinIntervalMs + 200
	case PresetFixed:
		// No progression: the curve stays at its score-0 values.
		cfg.Difficulty.SpeedGainPerPoint = 0
		cfg.Difficulty.IntervalDecayPerPointMs = 0
	}
}
