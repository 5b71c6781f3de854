package snake

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// Kind identifies a power-up variant.
type Kind int

const (
	KindSpeed  Kind = iota // Snake moves faster
	KindSlow               // Snake moves slower
	KindDouble             // Food is worth twice as much
	KindGhost              // Snake passes through itself
	kindCount              // Sentinel for counting kinds
)

// Kinds returns every power-up kind in display order.
func Kinds() []Kind {
	return []Kind{KindSpeed, KindSlow, KindDouble, KindGhost}
}

// ParseKind converts a config key such as "ghost" to a Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == strings.ToLower(s) {
			return k, true
		}
	}
	return 0, false
}

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSpeed:
		return "speed"
	case KindSlow:
		return "slow"
	case KindDouble:
		return "double"
	case KindGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// Label returns the short HUD label.
func (k Kind) Label() string {
	switch k {
	case KindSpeed:
		return "FAST"
	case KindSlow:
		return "SLOW"
	case KindDouble:
		return "x2"
	case KindGhost:
		return "GHOST"
	default:
		return "?"
	}
}

// Glyph returns the board character of the pickup.
func (k Kind) Glyph() rune {
	switch k {
	case KindSpeed:
		return '»'
	case KindSlow:
		return '«'
	case KindDouble:
		return '$'
	case KindGhost:
		return '◊'
	default:
		return '?'
	}
}

// Color returns the pickup and particle color.
func (k Kind) Color() core.Color {
	switch k {
	case KindSpeed:
		return core.ColorBrightYellow
	case KindSlow:
		return core.ColorBrightBlue
	case KindDouble:
		return core.ColorBrightMagenta
	case KindGhost:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// PowerUp is a pickup lying on the board.
type PowerUp struct {
	Kind      Kind
	Pos       core.Point
	Remaining int // Ticks until the pickup vanishes
	Lifetime  int
}

// Update counts down the pickup lifetime and reports whether it expired.
func (p *PowerUp) Update() bool {
	if p.Remaining > 0 {
		p.Remaining--
	}
	return p.Remaining == 0
}

// Visible reports whether the pickup is drawn this tick. It blinks during
// the last quarter of its lifetime.
func (p *PowerUp) Visible() bool {
	if p.Remaining*4 > p.Lifetime {
		return true
	}
	return (p.Remaining/8)%2 == 1
}

// powerUpTable holds per-kind spawn weights and buff durations.
type powerUpTable struct {
	weights   [kindCount]int
	durations [kindCount]int
	total     int
}

func newPowerUpTable(cfg config.PowerUpsConfig) powerUpTable {
	var t powerUpTable
	for _, k := range Kinds() {
		pc := cfg.Kinds[k.String()]
		t.weights[k] = max(0, pc.Weight)
		t.durations[k] = max(0, pc.DurationTicks)
		t.total += t.weights[k]
	}
	return t
}

// roll selects a kind based on weights.
func (t powerUpTable) roll(rng *rand.Rand) Kind {
	if t.total <= 0 {
		return KindSpeed
	}
	r := rng.Intn(t.total)
	for _, k := range Kinds() {
		if r < t.weights[k] {
			return k
		}
		r -= t.weights[k]
	}
	return KindSpeed
}

func (t powerUpTable) duration(k Kind) int {
	if k < 0 || k >= kindCount {
		return 0
	}
	return t.durations[k]
}
