package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Window: PongWindow{
			Width:  1200,
			Height: 800,
		},
		Loop: PongLoop{
			TicksPerSecond: 60,
			MaxFrameMS:     250,
		},
		Paddles: PongPaddles{
			Width:  15,
			Height: 80,
			Speed:  5,
			Offset: 30,
		},
		Ball: PongBall{
			Size:         15,
			BaseSpeed:    4.0,
			MaxSpeed:     8.0,
			Acceleration: 1.001,
		},
		Gameplay: PongGameplay{
			WinningScore: 10,
			ServeToward:  ServeTowardScorer,
			Spin:         2.0,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.9,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60 ticks per second
			},
		},
	}
}

// DefaultPongYAML returns the embedded default YAML.
func DefaultPongYAML() []byte {
	return defaultPongYAML
}
