package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/snake-arcade/internal/storage"
)

func seedScores(t *testing.T, store *storage.Store) {
	t.Helper()
	for _, e := range []storage.ScoreEntry{
		{GameID: "snake", Difficulty: "easy", Score: 30, Length: 6},
		{GameID: "snake", Difficulty: "normal", Score: 120, Length: 12, Player: "bob"},
		{GameID: "snake", Difficulty: "normal", Score: 60, Length: 8},
		{GameID: "snake_classic", Difficulty: "normal", Score: 999},
	} {
		_, err := store.SaveScore(e)
		require.NoError(t, err)
	}
}

func TestScoreboardTabs(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "snake", "Snake", "", 100, 30)
	assert.Equal(t, "", m.difficulty())
	assert.Len(t, m.scores, 3)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "easy", m.difficulty())
	require.Len(t, m.scores, 1)
	assert.Equal(t, 30, m.scores[0].Score)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, "hard", m.difficulty(), "previous tab should wrap around")
	assert.Empty(t, m.scores)
}

func TestScoreboardStartsOnDifficulty(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "snake", "Snake", "normal", 100, 30)
	require.Len(t, m.scores, 2)
	assert.Equal(t, 120, m.scores[0].Score)
	assert.Equal(t, "bob", m.scores[0].Player)
	assert.Equal(t, "2 runs · best 120 · average 90.0 · longest snake 12", m.statsLine())
}

func TestScoreboardView(t *testing.T) {
	store := openStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "snake", "Snake", "", 100, 30)
	view := m.View()
	assert.Contains(t, view, "HIGH SCORES · Snake")
	assert.Contains(t, view, "3 runs · best 120")
	assert.Contains(t, view, "bob")
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "snake", "Snake", "", 80, 24)
	assert.True(t, strings.Contains(m.View(), "No scores recorded yet."))
	assert.Empty(t, m.statsLine())
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "snake", "Snake", "", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}
