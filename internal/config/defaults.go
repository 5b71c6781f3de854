package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It mirrors
// defaults/snake.yaml and is used if the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		DefaultDifficulty: DifficultyNormal,
		Board: BoardConfig{
			Width:     32,
			Height:    18,
			MinWidth:  12,
			MinHeight: 8,
			CellWidth: 2,
			Wrap:      true,
		},
		Snake: BodyConfig{
			InitialLength: 3,
			GrowPerFood:   1,
		},
		Scoring: ScoringConfig{
			FoodPoints:    10,
			PowerUpPoints: 5,
		},
		Difficulties: map[DifficultyPreset]DifficultyConfig{
			DifficultyEasy: {
				MoveEveryTicks:    9,
				MinMoveEveryTicks: 6,
				SpeedupEveryFood:  8,
				ScoreMultiplier:   1,
				PowerUpChance:     0.03,
			},
			DifficultyNormal: {
				MoveEveryTicks:    7,
				MinMoveEveryTicks: 4,
				SpeedupEveryFood:  6,
				ScoreMultiplier:   2,
				PowerUpChance:     0.02,
			},
			DifficultyHard: {
				MoveEveryTicks:    5,
				MinMoveEveryTicks: 2,
				SpeedupEveryFood:  4,
				ScoreMultiplier:   3,
				PowerUpChance:     0.015,
			},
		},
		PowerUps: PowerUpsConfig{
			Enabled:        true,
			LifetimeTicks:  480, // 8 seconds
			MinSnakeLength: 6,
			Kinds: map[string]PowerUpConfig{
				"speed":  {Weight: 30, DurationTicks: 300},
				"slow":   {Weight: 30, DurationTicks: 360},
				"double": {Weight: 25, DurationTicks: 600},
				"ghost":  {Weight: 15, DurationTicks: 300},
			},
		},
		Particles: ParticlesConfig{
			Burst:         10,
			DeathBurst:    24,
			LifetimeTicks: 24,
			MaxParticles:  256,
			Speed:         0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
