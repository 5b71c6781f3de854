package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// fakeGame ends its run after overAfter steps with a fixed score.
type fakeGame struct {
	steps     int
	overAfter int
	score     int
	resets    int
	width     int
	height    int
	best      map[string]int
	lastInput []core.Action
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.width, g.height = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Resize(w, h int) { g.width, g.height = w, h }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.lastInput = append([]core.Action(nil), in.Ordered()...)
	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}
	if in.Has(core.ActionRestart) {
		g.steps = 0
	}
	g.steps++

	var events []core.Event
	if g.steps == g.overAfter {
		events = append(events, core.Event{Kind: core.EventDeath})
	} else if g.steps < g.overAfter {
		events = append(events, core.Event{Kind: core.EventFoodEaten})
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{
		Score:      g.score,
		Difficulty: "normal",
		Length:     7,
		GameOver:   g.steps >= g.overAfter,
	}
}

func (g *fakeGame) SetHighScores(scores map[string]int) { g.best = scores }

// recordingPlayer keeps every event it was asked to play.
type recordingPlayer struct {
	events []core.Event
}

func (p *recordingPlayer) Play(events []core.Event) { p.events = append(p.events, events...) }
func (p *recordingPlayer) Close() error             { return nil }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModelLoadsHighScores(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore(storage.ScoreEntry{GameID: "fake", Difficulty: "hard", Score: 90})
	require.NoError(t, err)

	game := &fakeGame{overAfter: 3}
	NewModel(game, Options{Store: store})

	assert.Equal(t, map[string]int{"hard": 90}, game.best)
}

func TestModelSavesScoreOnceOnGameOver(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{overAfter: 2, score: 40}
	m := NewModel(game, Options{Store: store, Player: "alice", Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1}})
	m.Init()

	for range 5 {
		m, _ = tick(t, m)
	}

	scores, err := store.TopScores("fake", "", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 40, scores[0].Score)
	assert.Equal(t, 7, scores[0].Length)
	assert.Equal(t, "normal", scores[0].Difficulty)
	assert.Equal(t, "alice", scores[0].Player)
	assert.True(t, m.State().GameOver)
}

func TestModelSavesAgainAfterRestart(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{overAfter: 2, score: 10}
	m := NewModel(game, Options{Store: store, Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1}})
	m.Init()

	m, _ = tick(t, m)
	m, _ = tick(t, m)
	require.True(t, m.State().GameOver)

	m, _ = press(t, m, runeKey("r"))
	m, _ = tick(t, m) // restart step
	assert.False(t, m.State().GameOver)
	m, _ = tick(t, m)
	require.True(t, m.State().GameOver)

	scores, err := store.TopScores("fake", "", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 2)
	assert.Equal(t, storage.DefaultPlayer, scores[0].Player)
}

func TestModelSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{overAfter: 1}
	m := NewModel(game, Options{Store: store, Config: core.RuntimeConfig{Seed: 1}})
	m.Init()
	tick(t, m)

	scores, err := store.TopScores("fake", "", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestModelPlaysEventSounds(t *testing.T) {
	player := &recordingPlayer{}
	game := &fakeGame{overAfter: 3}
	m := NewModel(game, Options{Audio: player, Config: core.RuntimeConfig{Seed: 1}})
	m.Init()

	for range 3 {
		m, _ = tick(t, m)
	}

	kinds := make([]core.EventKind, 0, len(player.events))
	for _, e := range player.events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []core.EventKind{core.EventFoodEaten, core.EventFoodEaten, core.EventDeath}, kinds)
}

func TestModelForwardsInputInOrder(t *testing.T) {
	game := &fakeGame{overAfter: 100}
	m := NewModel(game, Options{Config: core.RuntimeConfig{Seed: 1}})
	m.Init()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = tick(t, m)

	assert.Equal(t, []core.Action{core.ActionUp, core.ActionLeft}, game.lastInput)

	tick(t, m)
	assert.Empty(t, game.lastInput, "input should be cleared after each tick")
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&fakeGame{overAfter: 100}, Options{Config: core.RuntimeConfig{Seed: 1}})
	m.Init()

	m, cmd := press(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelQuitFromGame(t *testing.T) {
	game := &fakeGame{overAfter: 100}
	m := NewModel(game, Options{Config: core.RuntimeConfig{Seed: 1}})
	m.Init()

	// The game asks to quit, e.g. from its menu
	m.inputFrame.Set(core.ActionQuit)
	_, cmd := tick(t, m)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &fakeGame{overAfter: 100}
	m := NewModel(game, Options{Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Seed: 1}})
	m.Init()
	m, _ = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	assert.Equal(t, 1, game.resets, "resize must not reset the game")
	assert.Equal(t, 100, game.width)
	assert.Equal(t, 30, game.height)
	assert.Equal(t, 1, game.steps)
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{overAfter: 100}, Options{
		Renderer: plainRenderer(),
		Config:   core.RuntimeConfig{ScreenW: 6, ScreenH: 1, Seed: 1},
	})
	m.Init()
	assert.Equal(t, "fake  ", m.View())
}

// press feeds a key through Update and returns the concrete model.
func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}
