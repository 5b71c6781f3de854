// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all tunable parameters of the game.
type SnakeConfig struct {
	DefaultDifficulty DifficultyPreset                      `yaml:"default_difficulty"`
	Board             BoardConfig                           `yaml:"board"`
	Snake             BodyConfig                            `yaml:"snake"`
	Scoring           ScoringConfig                         `yaml:"scoring"`
	Difficulties      map[DifficultyPreset]DifficultyConfig `yaml:"difficulties"`
	PowerUps          PowerUpsConfig                        `yaml:"powerups"`
	Particles         ParticlesConfig                       `yaml:"particles"`
}

// BoardConfig defines the play field. The board shrinks to fit smaller
// terminals but never below MinWidth x MinHeight.
type BoardConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	MinWidth  int  `yaml:"min_width"`
	MinHeight int  `yaml:"min_height"`
	CellWidth int  `yaml:"cell_width"` // Terminal columns per grid cell (1 or 2)
	Wrap      bool `yaml:"wrap"`       // Leaving an edge re-enters on the opposite side
}

// BodyConfig defines the snake itself.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
	GrowPerFood   int `yaml:"grow_per_food"`
}

// ScoringConfig defines points awarded per pickup.
type ScoringConfig struct {
	FoodPoints    int `yaml:"food_points"`
	PowerUpPoints int `yaml:"powerup_points"`
}

// DifficultyConfig defines speed, progression and scoring for one difficulty.
type DifficultyConfig struct {
	MoveEveryTicks    int     `yaml:"move_every_ticks"`     // Ticks between snake moves at start
	MinMoveEveryTicks int     `yaml:"min_move_every_ticks"` // Fastest the snake can get
	SpeedupEveryFood  int     `yaml:"speedup_every_food"`   // 0 disables speed progression
	ScoreMultiplier   int     `yaml:"score_multiplier"`
	PowerUpChance     float64 `yaml:"powerup_chance"` // Chance per snake move to spawn a pickup
}

// PowerUpsConfig defines pickup spawning and buff durations.
type PowerUpsConfig struct {
	Enabled        bool                     `yaml:"enabled"`
	LifetimeTicks  int                      `yaml:"lifetime_ticks"`   // How long a pickup stays on the board
	MinSnakeLength int                      `yaml:"min_snake_length"` // No pickups spawn while the snake is shorter
	Kinds          map[string]PowerUpConfig `yaml:"kinds"`
}

// PowerUpConfig defines one power-up variant.
type PowerUpConfig struct {
	Weight        int `yaml:"weight"`
	DurationTicks int `yaml:"duration_ticks"`
}

// ParticlesConfig defines the particle effects.
type ParticlesConfig struct {
	Burst         int     `yaml:"burst"`       // Particles per eat event
	DeathBurst    int     `yaml:"death_burst"` // Particles on collision
	LifetimeTicks int     `yaml:"lifetime_ticks"`
	MaxParticles  int     `yaml:"max_particles"`
	Speed         float64 `yaml:"speed"` // Initial speed in cells per tick
}

// PowerUpKinds lists the recognised power-up variants in display order.
var PowerUpKinds = []string{"speed", "slow", "double", "ghost"}

// Validate checks that the configuration can drive a game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width < 5 || c.Board.Height < 5 {
		errs = append(errs, fmt.Errorf("board must be at least 5x5, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.MinWidth < 5 || c.Board.MinHeight < 5 {
		errs = append(errs, fmt.Errorf("board minimum must be at least 5x5, got %dx%d", c.Board.MinWidth, c.Board.MinHeight))
	}
	if c.Board.MinWidth > c.Board.Width || c.Board.MinHeight > c.Board.Height {
		errs = append(errs, fmt.Errorf("board minimum %dx%d exceeds board size %dx%d",
			c.Board.MinWidth, c.Board.MinHeight, c.Board.Width, c.Board.Height))
	}
	if c.Board.CellWidth != 1 && c.Board.CellWidth != 2 {
		errs = append(errs, fmt.Errorf("board.cell_width must be 1 or 2, got %d", c.Board.CellWidth))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, errors.New("snake.initial_length must be positive"))
	}
	if c.Snake.InitialLength >= c.Board.MinWidth {
		errs = append(errs, fmt.Errorf("snake.initial_length %d does not fit a board %d cells wide", c.Snake.InitialLength, c.Board.MinWidth))
	}
	if c.Snake.GrowPerFood < 1 {
		errs = append(errs, errors.New("snake.grow_per_food must be positive"))
	}
	if !IsValidPreset(c.DefaultDifficulty) {
		errs = append(errs, fmt.Errorf("unknown default_difficulty %q", c.DefaultDifficulty))
	}

	for _, preset := range Presets() {
		d, ok := c.Difficulties[preset]
		if !ok {
			errs = append(errs, fmt.Errorf("difficulty %q is missing", preset))
			continue
		}
		if d.MoveEveryTicks < 1 || d.MinMoveEveryTicks < 1 {
			errs = append(errs, fmt.Errorf("difficulty %q: move intervals must be positive", preset))
		}
		if d.MinMoveEveryTicks > d.MoveEveryTicks {
			errs = append(errs, fmt.Errorf("difficulty %q: min_move_every_ticks exceeds move_every_ticks", preset))
		}
		if d.ScoreMultiplier < 1 {
			errs = append(errs, fmt.Errorf("difficulty %q: score_multiplier must be positive", preset))
		}
		if d.PowerUpChance < 0 || d.PowerUpChance > 1 {
			errs = append(errs, fmt.Errorf("difficulty %q: powerup_chance must be within [0, 1]", preset))
		}
	}

	if c.PowerUps.Enabled {
		if c.PowerUps.LifetimeTicks < 1 {
			errs = append(errs, errors.New("powerups.lifetime_ticks must be positive"))
		}
		if c.PowerUps.MinSnakeLength < 0 {
			errs = append(errs, errors.New("powerups.min_snake_length must not be negative"))
		}
		total := 0
		for _, kind := range PowerUpKinds {
			pc := c.PowerUps.Kinds[kind]
			if pc.Weight < 0 || pc.DurationTicks < 0 {
				errs = append(errs, fmt.Errorf("powerup %q: weight and duration must not be negative", kind))
			}
			total += pc.Weight
		}
		if total == 0 {
			errs = append(errs, errors.New("powerups are enabled but every weight is zero"))
		}
	}

	if c.Particles.MaxParticles < 0 || c.Particles.Burst < 0 || c.Particles.DeathBurst < 0 {
		errs = append(errs, errors.New("particle counts must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid snake config: %w", errors.Join(errs...))
	}
	return nil
}

// Difficulty returns the settings for a preset, falling back to the default
// difficulty for unknown names.
func (c SnakeConfig) Difficulty(preset DifficultyPreset) DifficultyConfig {
	if d, ok := c.Difficulties[preset]; ok {
		return d
	}
	return c.Difficulties[c.DefaultDifficulty]
}
