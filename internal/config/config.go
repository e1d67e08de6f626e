// Package config provides YAML-based tuning for the platformer: physics
// constants, player parameters, item geometry, optional rules and
// difficulty presets.
package config

import "fmt"

// PlatformerConfig contains all tunable parameters of the platformer.
type PlatformerConfig struct {
	Physics PlatformerPhysics `yaml:"physics"`
	Player  PlatformerPlayer  `yaml:"player"`
	Items   PlatformerItems   `yaml:"items"`
	Rules   PlatformerRules   `yaml:"rules"`
	Input   InputConfig       `yaml:"input"`
}

// PlatformerPhysics defines per-tick movement constants.
type PlatformerPhysics struct {
	Acceleration   float64 `yaml:"acceleration"`
	Deceleration   float64 `yaml:"deceleration"`
	SpeedMax       float64 `yaml:"speed_max"`
	JumpSpeedMax   float64 `yaml:"jump_speed_max"`
	Gravity        float64 `yaml:"gravity"`
	JumpBoostTicks int     `yaml:"jump_boost_ticks"` // Ticks a held jump keeps full upward speed
}

// PlatformerPlayer defines the player body and life parameters.
type PlatformerPlayer struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MaxLives      int     `yaml:"max_lives"`
	RecoveryTicks int     `yaml:"recovery_ticks"`
}

// PlatformerItems defines item hit geometry.
type PlatformerItems struct {
	GoalPoleWidth float64 `yaml:"goal_pole_width"`
	CoinMargin    float64 `yaml:"coin_margin"` // Fraction of coin size added on every side of its hit box
}

// PlatformerRules holds optional rules that are off in the classic game.
type PlatformerRules struct {
	FallDeath  bool    `yaml:"fall_death"`
	FallMargin float64 `yaml:"fall_margin"` // Distance below the level bottom before a fall kills
}

// InputConfig tunes the terminal key latch.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate reports the first parameter that would make the game unplayable.
func (c PlatformerConfig) Validate() error {
	p := c.Physics
	switch {
	case p.Acceleration <= 0:
		return fmt.Errorf("physics.acceleration must be positive, got %g", p.Acceleration)
	case p.Deceleration <= 0:
		return fmt.Errorf("physics.deceleration must be positive, got %g", p.Deceleration)
	case p.SpeedMax <= 0:
		return fmt.Errorf("physics.speed_max must be positive, got %g", p.SpeedMax)
	case p.JumpSpeedMax <= 0:
		return fmt.Errorf("physics.jump_speed_max must be positive, got %g", p.JumpSpeedMax)
	case p.Gravity <= 0:
		return fmt.Errorf("physics.gravity must be positive, got %g", p.Gravity)
	case p.JumpBoostTicks < 0:
		return fmt.Errorf("physics.jump_boost_ticks must not be negative, got %d", p.JumpBoostTicks)
	}

	pl := c.Player
	switch {
	case pl.Width <= 0 || pl.Height <= 0:
		return fmt.Errorf("player size must be positive, got %gx%g", pl.Width, pl.Height)
	case pl.MaxLives < 1:
		return fmt.Errorf("player.max_lives must be at least 1, got %d", pl.MaxLives)
	case pl.RecoveryTicks < 0:
		return fmt.Errorf("player.recovery_ticks must not be negative, got %d", pl.RecoveryTicks)
	}

	if c.Items.GoalPoleWidth <= 0 {
		return fmt.Errorf("items.goal_pole_width must be positive, got %g", c.Items.GoalPoleWidth)
	}
	if c.Items.CoinMargin < 0 {
		return fmt.Errorf("items.coin_margin must not be negative, got %g", c.Items.CoinMargin)
	}
	if c.Rules.FallMargin < 0 {
		return fmt.Errorf("rules.fall_margin must not be negative, got %g", c.Rules.FallMargin)
	}
	if c.Input.HoldTicks < 1 {
		return fmt.Errorf("input.hold_ticks must be at least 1, got %d", c.Input.HoldTicks)
	}
	return nil
}
