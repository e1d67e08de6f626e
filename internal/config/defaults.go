package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the classic tuning of the game.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Acceleration:   0.75,
			Deceleration:   1,
			SpeedMax:       7,
			JumpSpeedMax:   10,
			Gravity:        0.5,
			JumpBoostTicks: 10,
		},
		Player: PlatformerPlayer{
			Width:         40,
			Height:        64,
			MaxLives:      3,
			RecoveryTicks: 60,
		},
		Items: PlatformerItems{
			GoalPoleWidth: 10,
			CoinMargin:    0.5,
		},
		Rules: PlatformerRules{
			FallDeath:  false,
			FallMargin: 400,
		},
		Input: InputConfig{
			HoldTicks: 9,
		},
	}
}
