package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// legacyKey is the single-value format written by older builds.
const legacyKey = "high_score"

// ImportLegacyJSON imports a JSON high-score file into the store. Two
// layouts are accepted: {"easy": 120, "normal": 300} with one best per
// difficulty, and {"high_score": 300} which is recorded as normal.
// Keys in valid are the recognised difficulties; others are skipped.
// Returns the entries that were saved.
func (s *Store) ImportLegacyJSON(path, gameID string, valid []string) ([]ScoreEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", path, err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("storage: %s is not a high-score file: %w", path, err)
	}

	known := make(map[string]bool, len(valid))
	for _, d := range valid {
		known[d] = true
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var imported []ScoreEntry
	for _, key := range keys {
		score := raw[key]
		difficulty := strings.ToLower(key)
		if difficulty == legacyKey {
			difficulty = "normal"
		}
		if !known[difficulty] || score <= 0 {
			continue
		}

		entry, err := s.SaveScore(ScoreEntry{
			GameID:     gameID,
			Difficulty: difficulty,
			Player:     "import",
			Score:      score,
		})
		if err != nil {
			return imported, err
		}
		imported = append(imported, entry)
	}

	return imported, nil
}
