// Package snake implements the snake arcade game: a menu with difficulty
// selection and a tutorial, wraparound movement, timed power-ups, particle
// effects and per-difficulty high scores.
package snake

import (
	"math/rand"
	"sync"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
)

// Variant selects between the full game and the classic one.
type Variant string

const (
	VariantArcade  Variant = "snake"         // Menu, tutorial, pause and high scores
	VariantClassic Variant = "snake_classic" // Straight into play, restart on death
)

// Phase is the state of the game state machine.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhasePaused   Phase = "paused"
	PhaseTutorial Phase = "tutorial"
	PhaseGameOver Phase = "game_over"
)

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuDifficulty
	MenuTutorial
	MenuQuit
	menuItemCount
)

// String returns the menu label.
func (m MenuItem) String() string {
	switch m {
	case MenuStart:
		return "Start"
	case MenuDifficulty:
		return "Difficulty"
	case MenuTutorial:
		return "Tutorial"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

const (
	hudHeight    = 2 // HUD line and separator
	footerHeight = 1
)

// Package-level config used by registry factories, replaced by the CLI and
// by config reloads in the SSH server.
var (
	configMu      sync.RWMutex
	packageConfig = config.DefaultSnakeConfig()
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.SnakeConfig) {
	configMu.Lock()
	defer configMu.Unlock()
	packageConfig = cfg
}

// CurrentConfig returns the configuration new games start with.
func CurrentConfig() config.SnakeConfig {
	configMu.RLock()
	defer configMu.RUnlock()
	return packageConfig
}

func init() {
	registry.Register(string(VariantArcade), func() registry.Game {
		return New(CurrentConfig())
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return NewClassic(CurrentConfig())
	})
}

// Game implements the snake game.
type Game struct {
	variant  Variant
	cfg      config.SnakeConfig
	rng      *rand.Rand
	tick     uint64
	tickRate int
	phase    Phase

	// Menu state
	menuIndex    MenuItem
	tutorialPage int

	// Difficulty and records
	difficulty   config.DifficultyPreset
	diff         *config.DifficultyManager
	highScores   map[config.DifficultyPreset]int
	newHighScore bool

	// Run state
	score      int
	foodEaten  int
	moveTicker int
	snake      *Snake
	food       Food
	powerUp    *PowerUp
	table      powerUpTable
	particles  *ParticleSystem
	boardW     int
	boardH     int
	cellW      int
	offsetX    int
	offsetY    int
	screenW    int
	screenH    int
	tooSmall   bool
	events     []core.Event
	crash      core.Point // Where the last run ended, marked on the game over screen
}

// New creates the full game with menus.
func New(cfg config.SnakeConfig) *Game {
	return newGame(VariantArcade, cfg)
}

// NewClassic creates the classic variant, which starts playing immediately.
func NewClassic(cfg config.SnakeConfig) *Game {
	return newGame(VariantClassic, cfg)
}

func newGame(variant Variant, cfg config.SnakeConfig) *Game {
	return &Game{
		variant:    variant,
		cfg:        cfg,
		cellW:      core.Clamp(cfg.Board.CellWidth, 1, 2),
		highScores: make(map[config.DifficultyPreset]int),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Snake (Classic)"
	}
	return "Snake"
}

// Description returns a one-line summary for variant listings.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "Straight into play on the default difficulty, restart only"
	}
	return "Menu, difficulties, power-ups and particles"
}

// SetHighScores seeds the best score per difficulty, typically from storage.
// Unknown difficulty names are ignored.
func (g *Game) SetHighScores(scores map[string]int) {
	for name, score := range scores {
		if p, ok := config.ParsePreset(name); ok {
			g.highScores[p] = max(g.highScores[p], score)
		}
	}
}

// HighScore returns the best known score for a difficulty.
func (g *Game) HighScore(p config.DifficultyPreset) int {
	return g.highScores[p]
}

// Difficulty returns the selected difficulty.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.difficulty
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Length returns the snake length of the current run.
func (g *Game) Length() int {
	if g.snake == nil {
		return 0
	}
	return g.snake.Len()
}

// Reset initializes the game. High scores survive a reset.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cellW = core.Clamp(g.cfg.Board.CellWidth, 1, 2)
	g.table = newPowerUpTable(g.cfg.PowerUps)
	g.particles = NewParticleSystem(g.cfg.Particles, g.rng)
	g.menuIndex = MenuStart
	g.tutorialPage = 0
	g.events = nil

	g.difficulty = g.cfg.DefaultDifficulty
	if !config.IsValidPreset(g.difficulty) {
		g.difficulty = config.DifficultyNormal
	}

	if g.variant == VariantClassic {
		g.startRun()
		return
	}
	g.phase = PhaseMenu
	g.layout(true)
}

// Resize adapts to a new terminal size without restarting the run. The
// board keeps its size; play is suspended while it does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout(g.phase == PhaseMenu || g.phase == PhaseTutorial)
}

// layout positions the board on screen. With fit the board is resized to
// the terminal within the configured bounds; during a run it keeps its size.
func (g *Game) layout(fit bool) {
	availW := (g.screenW - 2) / g.cellW
	availH := g.screenH - hudHeight - footerHeight - 2

	if fit {
		g.boardW = core.Clamp(availW, g.cfg.Board.MinWidth, g.cfg.Board.Width)
		g.boardH = core.Clamp(availH, g.cfg.Board.MinHeight, g.cfg.Board.Height)
	}
	g.tooSmall = availW < g.boardW || availH < g.boardH

	boxW := g.boardW*g.cellW + 2
	g.offsetX = max(0, (g.screenW-boxW)/2)
	g.offsetY = hudHeight
}

// startRun begins a new run on the selected difficulty.
func (g *Game) startRun() {
	g.layout(true)

	g.phase = PhasePlaying
	g.score = 0
	g.foodEaten = 0
	g.moveTicker = 0
	g.newHighScore = false
	g.powerUp = nil
	g.particles.Clear()
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty(g.difficulty))

	head := core.Point{X: g.boardW / 2, Y: g.boardH / 2}
	g.snake = NewSnake(head, g.cfg.Snake.InitialLength, DirRight, g.boardW, g.boardH)
	g.food = Food{}
	g.food.Relocate(g.freeCells(), g.rng)
}

// freeCells lists board cells not covered by the snake, food or pickup.
func (g *Game) freeCells() []core.Point {
	taken := make(map[core.Point]bool, g.snake.Len()+2)
	for _, seg := range g.snake.Body() {
		taken[seg] = true
	}
	if g.food.Placed {
		taken[g.food.Pos] = true
	}
	if g.powerUp != nil {
		taken[g.powerUp.Pos] = true
	}

	free := make([]core.Point, 0, g.boardW*g.boardH-len(taken))
	for y := range g.boardH {
		for x := range g.boardW {
			p := core.Point{X: x, Y: y}
			if !taken[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if input.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	quit := false
	switch g.phase {
	case PhaseMenu:
		quit = g.stepMenu(input)
	case PhaseTutorial:
		g.stepTutorial(input)
	case PhasePlaying:
		g.stepPlaying(input)
	case PhasePaused:
		g.stepPaused(input)
	case PhaseGameOver:
		g.stepGameOver(input)
	}

	if g.phase != PhasePaused {
		g.particles.Update()
	}

	return core.StepResult{State: g.State(), Events: g.events, Quit: quit}
}

// stepMenu handles cursor movement and selection. Returns true on Quit.
func (g *Game) stepMenu(input core.InputFrame) bool {
	switch {
	case input.Has(core.ActionUp):
		g.menuIndex = MenuItem(core.Mod(int(g.menuIndex)-1, int(menuItemCount)))
		g.emit(core.EventMenuMove, g.menuIndex.String())
	case input.Has(core.ActionDown):
		g.menuIndex = MenuItem(core.Mod(int(g.menuIndex)+1, int(menuItemCount)))
		g.emit(core.EventMenuMove, g.menuIndex.String())
	case input.Has(core.ActionLeft) && g.menuIndex == MenuDifficulty:
		g.difficulty = g.difficulty.Prev()
		g.emit(core.EventMenuMove, string(g.difficulty))
	case input.Has(core.ActionRight) && g.menuIndex == MenuDifficulty:
		g.difficulty = g.difficulty.Next()
		g.emit(core.EventMenuMove, string(g.difficulty))
	case input.Has(core.ActionConfirm):
		g.emit(core.EventMenuSelect, g.menuIndex.String())
		switch g.menuIndex {
		case MenuStart:
			g.startRun()
		case MenuDifficulty:
			g.difficulty = g.difficulty.Next()
		case MenuTutorial:
			g.phase = PhaseTutorial
			g.tutorialPage = 0
		case MenuQuit:
			return true
		}
	}
	return false
}

func (g *Game) stepTutorial(input core.InputFrame) {
	last := len(tutorialPages) - 1
	switch {
	case input.Has(core.ActionBack):
		g.phase = PhaseMenu
	case input.Has(core.ActionConfirm), input.Has(core.ActionRight):
		if g.tutorialPage >= last {
			g.phase = PhaseMenu
			return
		}
		g.tutorialPage++
	case input.Has(core.ActionLeft):
		g.tutorialPage = max(0, g.tutorialPage-1)
	}
}

func (g *Game) stepPaused(input core.InputFrame) {
	switch {
	case input.Has(core.ActionPause):
		g.phase = PhasePlaying
	case input.Has(core.ActionBack) && g.variant == VariantArcade:
		g.phase = PhaseMenu
	}
}

func (g *Game) stepGameOver(input core.InputFrame) {
	if input.Has(core.ActionRestart) {
		g.startRun()
		return
	}
	if !input.Has(core.ActionConfirm) && !input.Has(core.ActionBack) {
		return
	}
	if g.variant == VariantClassic {
		if input.Has(core.ActionConfirm) {
			g.startRun()
		}
		return
	}
	g.phase = PhaseMenu
}

func (g *Game) stepPlaying(input core.InputFrame) {
	if input.Has(core.ActionPause) {
		g.phase = PhasePaused
		return
	}
	if g.tooSmall {
		return
	}

	// Steering, in the order the keys arrived
	for _, a := range input.Ordered() {
		switch a {
		case core.ActionUp:
			g.snake.Turn(DirUp)
		case core.ActionDown:
			g.snake.Turn(DirDown)
		case core.ActionLeft:
			g.snake.Turn(DirLeft)
		case core.ActionRight:
			g.snake.Turn(DirRight)
		}
	}

	g.food.Update()

	for _, k := range g.snake.TickBuffs() {
		g.emit(core.EventBuffExpired, k.String())
	}
	if g.powerUp != nil && g.powerUp.Update() {
		g.emit(core.EventPowerUpExpired, g.powerUp.Kind.String())
		g.powerUp = nil
	}

	g.moveTicker++
	if g.moveTicker < g.MoveInterval() {
		return
	}
	g.moveTicker = 0
	g.moveSnake()
}

// MoveInterval returns the ticks between moves, after progression and buffs.
func (g *Game) MoveInterval() int {
	if g.diff == nil {
		return 1
	}
	interval := g.diff.MoveInterval(g.foodEaten)
	switch {
	case g.snake.Active(KindSpeed):
		interval = max(1, interval/2)
	case g.snake.Active(KindSlow):
		interval = interval * 3 / 2
	}
	return interval
}

func (g *Game) moveSnake() {
	res := g.snake.Move(g.boardW, g.boardH, g.cfg.Board.Wrap)
	if res.Collided {
		at := res.Head
		if !at.In(g.boardW, g.boardH) {
			at = g.snake.Head()
		}
		g.die(at)
		return
	}
	head := res.Head

	if g.food.Placed && head == g.food.Pos {
		g.eat(head)
		if g.phase != PhasePlaying {
			return
		}
	}

	if g.powerUp != nil && head == g.powerUp.Pos {
		g.collect(head)
	}

	g.maybeSpawnPowerUp()
}

func (g *Game) eat(at core.Point) {
	points := g.cfg.Scoring.FoodPoints * g.diff.Multiplier()
	if g.snake.Active(KindDouble) {
		points *= 2
	}
	g.score += points
	g.foodEaten++
	g.snake.Grow(g.cfg.Snake.GrowPerFood)
	g.burst(at, g.cfg.Particles.Burst, core.ColorBrightRed)
	g.emit(core.EventFoodEaten, "")

	g.food.Placed = false
	if !g.food.Relocate(g.freeCells(), g.rng) {
		// Board is full, nothing left to eat
		g.endRun()
	}
}

func (g *Game) collect(at core.Point) {
	kind := g.powerUp.Kind
	g.snake.Apply(kind, g.table.duration(kind))
	g.score += g.cfg.Scoring.PowerUpPoints
	g.burst(at, g.cfg.Particles.Burst*2, kind.Color())
	g.emit(core.EventPowerUpCollected, kind.String())
	g.powerUp = nil
}

// maybeSpawnPowerUp rolls the per-move spawn chance while no pickup is on
// the board and the snake is long enough.
func (g *Game) maybeSpawnPowerUp() {
	pc := g.cfg.PowerUps
	if !pc.Enabled || g.powerUp != nil || g.snake.Len() < pc.MinSnakeLength {
		return
	}
	if g.rng.Float64() >= g.diff.PowerUpChance() {
		return
	}

	free := g.freeCells()
	if len(free) == 0 {
		return
	}
	kind := g.table.roll(g.rng)
	g.powerUp = &PowerUp{
		Kind:      kind,
		Pos:       free[g.rng.Intn(len(free))],
		Remaining: pc.LifetimeTicks,
		Lifetime:  pc.LifetimeTicks,
	}
	g.emit(core.EventPowerUpSpawned, kind.String())
}

func (g *Game) die(at core.Point) {
	g.crash = at
	g.burst(at, g.cfg.Particles.DeathBurst, core.ColorBrightRed)
	g.emit(core.EventDeath, "")
	g.endRun()
}

// endRun finishes the run and records a new best score when it strictly
// beats the stored one.
func (g *Game) endRun() {
	g.phase = PhaseGameOver
	if g.score > g.highScores[g.difficulty] {
		g.highScores[g.difficulty] = g.score
		g.newHighScore = true
		g.emit(core.EventNewHighScore, string(g.difficulty))
	}
}

// burst spawns particles from the center of a board cell.
func (g *Game) burst(at core.Point, n int, c core.Color) {
	g.particles.Burst(float64(at.X)+0.5, float64(at.Y)+0.5, n, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		HighScore:    g.highScores[g.difficulty],
		Difficulty:   string(g.difficulty),
		Length:       g.Length(),
		GameOver:     g.phase == PhaseGameOver,
		Paused:       g.phase == PhasePaused,
		InMenu:       g.phase == PhaseMenu || g.phase == PhaseTutorial,
		NewHighScore: g.newHighScore,
	}
}
