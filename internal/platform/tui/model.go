package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/audio"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// Options configures a game model. Zero values are usable: no storage,
// no sound, a discarding logger and the local player name.
type Options struct {
	Store    *storage.Store
	Audio    audio.Player
	Logger   *log.Logger
	Renderer *Renderer
	Player   string // Recorded with saved scores
	Config   core.RuntimeConfig
}

// Model is the Bubble Tea model for running a snake game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	audio      audio.Player
	logger     *log.Logger
	renderer   *Renderer
	player     string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		audio:      opts.Audio,
		logger:     opts.Logger,
		renderer:   opts.Renderer,
		player:     opts.Player,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	if m.audio == nil {
		m.audio = audio.Nop{}
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.renderer == nil {
		m.renderer = defaultRenderer
	}
	if m.player == "" {
		m.player = storage.DefaultPlayer
	}

	m.loadHighScores()
	return m
}

// loadHighScores seeds the game with stored bests.
func (m *Model) loadHighScores() {
	setter, ok := m.game.(registry.HighScoreSetter)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScores(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high scores", "game", m.game.ID(), "error", err)
		return
	}
	setter.SetHighScores(best)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "player", m.player)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The run continues; the
// game decides how to lay itself out.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.audio.Play(result.Events)
	for _, e := range result.Events {
		m.logger.Debug("event", "kind", e.Kind, "detail", e.Detail)
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameState.GameOver && !wasOver {
		m.recordRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run. Zero scores are not recorded.
func (m *Model) recordRun() {
	st := m.gameState
	m.logger.Info("run over",
		"game", m.game.ID(),
		"difficulty", st.Difficulty,
		"score", st.Score,
		"length", st.Length,
		"new_high", st.NewHighScore,
	)
	if m.store == nil || st.Score <= 0 {
		return
	}

	entry, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:     m.game.ID(),
		Difficulty: st.Difficulty,
		Player:     m.player,
		Score:      st.Score,
		Length:     st.Length,
	})
	if err != nil {
		m.logger.Error("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "run", entry.RunID)
}

// saveScreenshot writes the current screen as plain text under
// ~/.snake/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen)
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player quits.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
