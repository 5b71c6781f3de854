package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID, difficulty string, score int) ScoreEntry {
	t.Helper()
	e, err := store.SaveScore(ScoreEntry{GameID: gameID, Difficulty: difficulty, Score: score})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	return e
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveFillsDefaults(t *testing.T) {
	store := openTestStore(t)

	e := save(t, store, "snake", "normal", 120)

	assert.NotZero(t, e.ID)
	assert.Len(t, e.RunID, 36, "run id should be a uuid")
	assert.Equal(t, DefaultPlayer, e.Player)
	assert.False(t, e.CreatedAt.IsZero())

	other := save(t, store, "snake", "normal", 80)
	assert.NotEqual(t, e.RunID, other.RunID)
}

func TestStoreSaveRequiresKeys(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(ScoreEntry{GameID: "snake", Score: 10})
	assert.Error(t, err)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "snake", "normal", 100)
	save(t, store, "snake", "normal", 50)
	save(t, store, "snake", "normal", 200)
	save(t, store, "snake", "hard", 500)
	save(t, store, "snake_classic", "normal", 900)

	scores, err := store.TopScores("snake", "normal", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("snake", "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, 500, all[0].Score)
	assert.Equal(t, "hard", all[0].Difficulty)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "snake", "easy", (i+1)*100)
	}

	scores, err := store.TopScores("snake", "easy", 3)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake", "normal")
	require.NoError(t, err)
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "snake", "normal", 100)
	save(t, store, "snake", "normal", 300)
	save(t, store, "snake", "hard", 700)

	high, err = store.HighScore("snake", "normal")
	require.NoError(t, err)
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	best, err := store.HighScores("snake")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"normal": 300, "hard": 700}, best)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "snake", "normal", 100)
	save(t, store, "snake", "easy", 200)
	save(t, store, "snake_classic", "normal", 300)

	require.NoError(t, store.ClearScores("snake"))

	snakeScores, _ := store.TopScores("snake", "", 10)
	if len(snakeScores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snakeScores))
	}

	classic, _ := store.TopScores("snake_classic", "", 10)
	if len(classic) != 1 {
		t.Errorf("Classic scores should not be affected by clearing snake")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []int{10, 30, 20} {
		_, err := store.SaveScore(ScoreEntry{
			GameID:     "snake",
			Difficulty: "normal",
			Score:      score,
			Length:     3 + i,
			CreatedAt:  day.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	stats, err := store.GetGameStats("snake")
	require.NoError(t, err)
	require.Contains(t, stats, "normal")

	st := stats["normal"]
	assert.Equal(t, 3, st.GamesCount)
	assert.Equal(t, 30, st.HighScore)
	assert.InDelta(t, 20.0, st.AvgScore, 0.001)
	assert.Equal(t, int64(60), st.TotalScore)
	assert.Equal(t, 5, st.Longest)
	assert.True(t, st.LastPlayed.Equal(day.Add(2*time.Hour)), "last played = %v", st.LastPlayed)
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestImportLegacyJSON(t *testing.T) {
	store := openTestStore(t)
	valid := []string{"easy", "normal", "hard"}

	path := filepath.Join(t.TempDir(), "highscores.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"easy": 40, "Hard": 90, "nightmare": 10, "normal": 0}`), 0o600))

	imported, err := store.ImportLegacyJSON(path, "snake", valid)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, "easy", imported[0].Difficulty)
	assert.Equal(t, "hard", imported[1].Difficulty)
	assert.Equal(t, "import", imported[0].Player)

	best, err := store.HighScores("snake")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"easy": 40, "hard": 90}, best)
}

func TestImportLegacySingleValue(t *testing.T) {
	store := openTestStore(t)

	path := filepath.Join(t.TempDir(), "highscore.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"high_score": 250}`), 0o600))

	imported, err := store.ImportLegacyJSON(path, "snake", []string{"easy", "normal", "hard"})
	require.NoError(t, err)
	require.Len(t, imported, 1)

	high, err := store.HighScore("snake", "normal")
	require.NoError(t, err)
	assert.Equal(t, 250, high)
}

func TestImportLegacyErrors(t *testing.T) {
	store := openTestStore(t)
	dir := t.TempDir()

	_, err := store.ImportLegacyJSON(filepath.Join(dir, "missing.json"), "snake", nil)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1, 2, 3]`), 0o600))
	_, err = store.ImportLegacyJSON(bad, "snake", nil)
	assert.Error(t, err)
}
