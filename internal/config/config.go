// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Window     PongWindow       `yaml:"window"`
	Loop       PongLoop         `yaml:"loop"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Ball       PongBall         `yaml:"ball"`
	Gameplay   PongGameplay     `yaml:"gameplay"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongWindow defines the size of the playfield in world pixels.
type PongWindow struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PongLoop defines the simulation timing.
type PongLoop struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
	MaxFrameMS     int `yaml:"max_frame_ms"`
}

// MaxFrameTime returns the frame-time cap as a duration.
func (l PongLoop) MaxFrameTime() time.Duration {
	return time.Duration(l.MaxFrameMS) * time.Millisecond
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
	Offset int `yaml:"offset"`
}

// PongBall defines ball size and speeds.
type PongBall struct {
	Size         int     `yaml:"size"`
	BaseSpeed    float64 `yaml:"base_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"`
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinningScore int         `yaml:"winning_score"`
	ServeToward  ServeToward `yaml:"serve_toward"`
	Spin         float64     `yaml:"spin"`
}

// PongCPU defines the computer opponent's skill range.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"`
	MaxSkill float64 `yaml:"max_skill"`
}

// ServeToward selects which player the ball is served toward after a point.
type ServeToward string

const (
	// ServeTowardScorer serves toward the player who just won the point.
	ServeTowardScorer ServeToward = "scorer"

	// ServeTowardConceder serves toward the player who just lost the point.
	ServeTowardConceder ServeToward = "conceder"
)

// Validate reports every invalid field of the config.
func (c PongConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("loop.ticks_per_second", float64(c.Loop.TicksPerSecond))
	positive("paddles.width", float64(c.Paddles.Width))
	positive("paddles.height", float64(c.Paddles.Height))
	positive("paddles.speed", float64(c.Paddles.Speed))
	positive("ball.size", float64(c.Ball.Size))
	positive("ball.base_speed", c.Ball.BaseSpeed)
	positive("ball.max_speed", c.Ball.MaxSpeed)
	positive("gameplay.winning_score", float64(c.Gameplay.WinningScore))

	if c.Loop.MaxFrameMS < 0 {
		errs = append(errs, fmt.Errorf("loop.max_frame_ms must not be negative, got %d", c.Loop.MaxFrameMS))
	}
	if c.Ball.Acceleration < 1 {
		errs = append(errs, fmt.Errorf("ball.acceleration must be at least 1, got %v", c.Ball.Acceleration))
	}
	if c.Ball.BaseSpeed > c.Ball.MaxSpeed {
		errs = append(errs, fmt.Errorf("ball.base_speed %v exceeds ball.max_speed %v", c.Ball.BaseSpeed, c.Ball.MaxSpeed))
	}
	if c.Paddles.Height > c.Window.Height {
		errs = append(errs, fmt.Errorf("paddles.height %d exceeds window.height %d", c.Paddles.Height, c.Window.Height))
	}
	switch c.Gameplay.ServeToward {
	case ServeTowardScorer, ServeTowardConceder:
	default:
		errs = append(errs, fmt.Errorf("gameplay.serve_toward must be %q or %q, got %q",
			ServeTowardScorer, ServeTowardConceder, c.Gameplay.ServeToward))
	}
	if c.CPU.MinSkill < 0 || c.CPU.MaxSkill > 1 || c.CPU.MinSkill > c.CPU.MaxSkill {
		errs = append(errs, fmt.Errorf("cpu skill range [%v, %v] must lie within [0, 1]", c.CPU.MinSkill, c.CPU.MaxSkill))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid pong config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. The empty string is accepted
// and leaves the config untouched.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
