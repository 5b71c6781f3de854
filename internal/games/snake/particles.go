package snake

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Particle is a short-lived spark in board coordinates.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.Color
}

// Glyph fades the particle as it runs out of life.
func (p Particle) Glyph() rune {
	switch {
	case p.Life*3 > p.MaxLife*2:
		return '*'
	case p.Life*3 > p.MaxLife:
		return '+'
	default:
		return '.'
	}
}

// Shade returns the particle color, dimmed in the last third of its life.
func (p Particle) Shade() core.Color {
	if p.Life*3 <= p.MaxLife {
		return p.Color.Dim()
	}
	return p.Color
}

// ParticleSystem owns every live particle. The particle count never exceeds
// the configured maximum.
type ParticleSystem struct {
	particles []Particle
	max       int
	lifetime  int
	speed     float64
	rng       *rand.Rand
}

// NewParticleSystem creates an empty system drawing randomness from rng.
func NewParticleSystem(cfg config.ParticlesConfig, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, cfg.MaxParticles),
		max:       cfg.MaxParticles,
		lifetime:  max(1, cfg.LifetimeTicks),
		speed:     cfg.Speed,
		rng:       rng,
	}
}

// Burst spawns up to n particles flying out of (x, y) in random directions.
// Returns how many were spawned after applying the cap.
func (s *ParticleSystem) Burst(x, y float64, n int, c core.Color) int {
	n = min(n, s.max-len(s.particles))
	for range max(0, n) {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := s.speed * (0.5 + s.rng.Float64()*0.5)
		life := s.lifetime/2 + s.rng.Intn(s.lifetime/2+1)
		s.particles = append(s.particles, Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    max(1, life),
			MaxLife: max(1, life),
			Color:   c,
		})
	}
	return max(0, n)
}

// Update advances every particle one tick and drops the expired ones.
func (s *ParticleSystem) Update() {
	alive := 0
	for i := range s.particles {
		p := &s.particles[i]

		p.Life--
		if p.Life <= 0 {
			continue
		}

		p.X += p.VX
		p.Y += p.VY

		// Drag
		p.VX *= 0.9
		p.VY *= 0.9

		s.particles[alive] = *p
		alive++
	}
	s.particles = s.particles[:alive]
}

// Particles returns the live particles. The slice is only valid until the
// next Burst or Update.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Clear removes all particles.
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}
