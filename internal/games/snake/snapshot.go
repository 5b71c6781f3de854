package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Variant       Variant
	Phase         Phase
	Difficulty    string
	MenuIndex     MenuItem
	TutorialPage  int
	Score         int
	HighScore     int
	NewHighScore  bool
	FoodEaten     int
	Body          []core.Point
	Dir           Direction
	Food          core.Point
	PowerUp       *PowerUp
	Buffs         map[string]int
	MoveInterval  int
	ParticleCount int
	TooSmall      bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		Variant:       g.variant,
		Phase:         g.phase,
		Difficulty:    string(g.difficulty),
		MenuIndex:     g.menuIndex,
		TutorialPage:  g.tutorialPage,
		Score:         g.score,
		HighScore:     g.highScores[g.difficulty],
		NewHighScore:  g.newHighScore,
		FoodEaten:     g.foodEaten,
		Food:          g.food.Pos,
		ParticleCount: g.particles.Len(),
		TooSmall:      g.tooSmall,
	}

	if g.snake != nil {
		snap.Body = append([]core.Point(nil), g.snake.Body()...)
		snap.Dir = g.snake.Direction()
		snap.MoveInterval = g.MoveInterval()
		snap.Buffs = make(map[string]int)
		for _, k := range Kinds() {
			if g.snake.Active(k) {
				snap.Buffs[k.String()] = g.snake.Remaining(k)
			}
		}
	}
	if g.powerUp != nil {
		p := *g.powerUp
		snap.PowerUp = &p
	}

	return snap
}
