package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns all difficulties in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts user input to a preset. The empty string and unknown
// names report false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	return p, IsValidPreset(p)
}

// IsValidPreset reports whether p is one of the known presets.
func IsValidPreset(p DifficultyPreset) bool {
	for _, known := range Presets() {
		if p == known {
			return true
		}
	}
	return false
}

// Next returns the following preset, wrapping from hard back to easy.
func (p DifficultyPreset) Next() DifficultyPreset {
	return p.shift(1)
}

// Prev returns the preceding preset, wrapping from easy to hard.
func (p DifficultyPreset) Prev() DifficultyPreset {
	return p.shift(-1)
}

func (p DifficultyPreset) shift(delta int) DifficultyPreset {
	presets := Presets()
	for i, known := range presets {
		if known == p {
			n := len(presets)
			return presets[((i+delta)%n+n)%n]
		}
	}
	return DifficultyNormal
}

// Title returns the display name, e.g. "Normal".
func (p DifficultyPreset) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// DifficultyManager calculates the snake's movement interval as the run
// progresses.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsProgressive returns whether the snake speeds up while eating.
func (d *DifficultyManager) IsProgressive() bool {
	return d.cfg.SpeedupEveryFood > 0 && d.cfg.MinMoveEveryTicks < d.cfg.MoveEveryTicks
}

// MoveInterval returns the number of ticks between moves after eating
// foodEaten items. The interval drops by one every SpeedupEveryFood items
// and never goes below MinMoveEveryTicks.
func (d *DifficultyManager) MoveInterval(foodEaten int) int {
	interval := d.cfg.MoveEveryTicks
	if d.IsProgressive() {
		interval -= foodEaten / d.cfg.SpeedupEveryFood
	}
	return max(interval, d.cfg.MinMoveEveryTicks, 1)
}

// Level returns progression towards top speed in [0, 1], shown in the HUD.
func (d *DifficultyManager) Level(foodEaten int) float64 {
	if !d.IsProgressive() {
		return 0
	}
	span := float64(d.cfg.MoveEveryTicks - d.cfg.MinMoveEveryTicks)
	done := float64(d.cfg.MoveEveryTicks - d.MoveInterval(foodEaten))
	return clampF(done/span, 0, 1)
}

// Multiplier returns the score multiplier for this difficulty.
func (d *DifficultyManager) Multiplier() int {
	return max(1, d.cfg.ScoreMultiplier)
}

// PowerUpChance returns the per-move spawn chance for pickups.
func (d *DifficultyManager) PowerUpChance() float64 {
	return clampF(d.cfg.PowerUpChance, 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
