package snake

import (
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

const foodPulseTicks = 15

// Food is the single item the snake chases.
type Food struct {
	Pos    core.Point
	Placed bool // False when the board had no free cell left
	pulse  int
}

// Relocate moves the food to a random cell from free. Returns false when
// free is empty.
func (f *Food) Relocate(free []core.Point, rng *rand.Rand) bool {
	if len(free) == 0 {
		f.Placed = false
		return false
	}
	f.Pos = free[rng.Intn(len(free))]
	f.Placed = true
	f.pulse = 0
	return true
}

// Update advances the pulse animation.
func (f *Food) Update() {
	f.pulse++
}

// Glyph alternates between a large and small dot.
func (f *Food) Glyph() rune {
	if (f.pulse/foodPulseTicks)%2 == 0 {
		return '●'
	}
	return '•'
}
