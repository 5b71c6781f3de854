package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the grid step for one move.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// HeadGlyph returns the head character pointing in d.
func (d Direction) HeadGlyph() rune {
	switch d {
	case DirUp:
		return '▲'
	case DirDown:
		return '▼'
	case DirLeft:
		return '◀'
	default:
		return '▶'
	}
}

// maxQueuedTurns bounds how many turns may be buffered between moves.
const maxQueuedTurns = 2

// Snake is the player's body with its buffered steering and buffs.
type Snake struct {
	body    []core.Point // Head at index 0
	dir     Direction
	turns   []Direction // Buffered turns applied one per move
	pending int         // Segments still to grow
	buffs   [kindCount]int
}

// NewSnake creates a snake of the given length with its head at head,
// trailing behind the direction of travel. The body wraps around a w×h board.
func NewSnake(head core.Point, length int, dir Direction, w, h int) *Snake {
	length = max(1, length)
	dx, dy := dir.Opposite().Delta()
	body := make([]core.Point, length)
	for i := range body {
		body[i] = head.Add(dx*i, dy*i).Wrap(w, h)
	}
	return &Snake{body: body, dir: dir}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns the cells head first. Callers must not modify it.
func (s *Snake) Body() []core.Point {
	return s.body
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Heading returns the direction the next move will take.
func (s *Snake) Heading() Direction {
	if len(s.turns) > 0 {
		return s.turns[0]
	}
	return s.dir
}

// Turn buffers a direction change. Turns that reverse into the body or
// repeat the previous heading are rejected.
func (s *Snake) Turn(d Direction) bool {
	last := s.dir
	if n := len(s.turns); n > 0 {
		last = s.turns[n-1]
	}
	if d == last || d == last.Opposite() || len(s.turns) >= maxQueuedTurns {
		return false
	}
	s.turns = append(s.turns, d)
	return true
}

// Grow schedules n extra segments; the tail stays put for the next n moves.
func (s *Snake) Grow(n int) {
	s.pending += max(0, n)
}

// Pending returns the segments still to be grown.
func (s *Snake) Pending() int {
	return s.pending
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// MoveResult describes the outcome of one move.
type MoveResult struct {
	Head     core.Point
	Collided bool // Hit its own body or a wall; the snake did not move
}

// Move advances the snake one cell on a w×h board. With wrap the head
// re-enters on the opposite edge, otherwise leaving the board is a collision.
// Self-collision ignores the tail cell when it moves away in the same step
// and is skipped entirely while ghost is active.
func (s *Snake) Move(w, h int, wrap bool) MoveResult {
	if len(s.turns) > 0 {
		s.dir = s.turns[0]
		s.turns = s.turns[1:]
	}

	dx, dy := s.dir.Delta()
	next := s.Head().Add(dx, dy)
	if wrap {
		next = next.Wrap(w, h)
	} else if !next.In(w, h) {
		return MoveResult{Head: next, Collided: true}
	}

	if !s.Active(KindGhost) {
		checkLen := len(s.body)
		if s.pending == 0 {
			checkLen-- // Tail will be removed
		}
		for i := range checkLen {
			if s.body[i] == next {
				return MoveResult{Head: next, Collided: true}
			}
		}
	}

	s.body = append([]core.Point{next}, s.body...)
	if s.pending > 0 {
		s.pending--
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	return MoveResult{Head: next}
}

// Apply grants a buff for duration ticks, refreshing it if already active.
// Speed and slow cancel each other.
func (s *Snake) Apply(k Kind, duration int) {
	if k < 0 || k >= kindCount {
		return
	}
	switch k {
	case KindSpeed:
		s.buffs[KindSlow] = 0
	case KindSlow:
		s.buffs[KindSpeed] = 0
	}
	s.buffs[k] = max(s.buffs[k], duration)
}

// Active reports whether a buff is running.
func (s *Snake) Active(k Kind) bool {
	return s.Remaining(k) > 0
}

// Remaining returns the ticks left on a buff.
func (s *Snake) Remaining(k Kind) int {
	if k < 0 || k >= kindCount {
		return 0
	}
	return s.buffs[k]
}

// TickBuffs counts every running buff down by one tick and returns the
// kinds that ran out.
func (s *Snake) TickBuffs() []Kind {
	var expired []Kind
	for _, k := range Kinds() {
		if s.buffs[k] == 0 {
			continue
		}
		s.buffs[k]--
		if s.buffs[k] == 0 {
			expired = append(expired, k)
		}
	}
	return expired
}
