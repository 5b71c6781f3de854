package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score        int    // Current score
	HighScore    int    // Best score for the active difficulty
	Difficulty   string // Active difficulty name
	Length       int    // Snake length
	GameOver     bool   // Whether the current run has ended
	Paused       bool   // Whether the game is paused
	InMenu       bool   // Whether a menu or tutorial screen is showing
	NewHighScore bool   // Set on game over when Score beat HighScore
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventFoodEaten EventKind = iota
	EventPowerUpSpawned
	EventPowerUpCollected
	EventPowerUpExpired
	EventBuffExpired
	EventDeath
	EventNewHighScore
	EventMenuMove
	EventMenuSelect
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventFoodEaten:
		return "food_eaten"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventBuffExpired:
		return "buff_expired"
	case EventDeath:
		return "death"
	case EventNewHighScore:
		return "new_high_score"
	case EventMenuMove:
		return "menu_move"
	case EventMenuSelect:
		return "menu_select"
	default:
		return "unknown"
	}
}

// Event is emitted by Step. Detail carries a short qualifier such as the
// power-up kind.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // The game asked the platform to exit (menu "Quit")
}

// Has reports whether an event of the given kind happened this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
