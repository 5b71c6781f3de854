package config

import "testing"

func TestPresetCycle(t *testing.T) {
	if DifficultyEasy.Next() != DifficultyNormal {
		t.Errorf("easy.Next() = %s", DifficultyEasy.Next())
	}
	if DifficultyHard.Next() != DifficultyEasy {
		t.Errorf("hard.Next() should wrap to easy, got %s", DifficultyHard.Next())
	}
	if DifficultyEasy.Prev() != DifficultyHard {
		t.Errorf("easy.Prev() should wrap to hard, got %s", DifficultyEasy.Prev())
	}
	if DifficultyPreset("bogus").Next() != DifficultyNormal {
		t.Error("unknown preset should fall back to normal")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in    string
		want  DifficultyPreset
		valid bool
	}{
		{"easy", DifficultyEasy, true},
		{" HARD ", DifficultyHard, true},
		{"", "", false},
		{"fixed", "fixed", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if ok != tc.valid || (ok && got != tc.want) {
			t.Errorf("ParsePreset(%q) = %q, %v; expected %q, %v", tc.in, got, ok, tc.want, tc.valid)
		}
	}
}

func TestPresetTitle(t *testing.T) {
	if DifficultyNormal.Title() != "Normal" {
		t.Errorf("Title() = %q", DifficultyNormal.Title())
	}
}

func TestMoveIntervalProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		MoveEveryTicks:    7,
		MinMoveEveryTicks: 4,
		SpeedupEveryFood:  5,
		ScoreMultiplier:   2,
	})

	tests := []struct {
		food     int
		expected int
	}{
		{0, 7},
		{4, 7},
		{5, 6},
		{10, 5},
		{15, 4},
		{100, 4}, // clamped at minimum
	}
	for _, tc := range tests {
		if got := dm.MoveInterval(tc.food); got != tc.expected {
			t.Errorf("MoveInterval(%d) = %d, expected %d", tc.food, got, tc.expected)
		}
	}

	if dm.Level(0) != 0 || dm.Level(100) != 1 {
		t.Errorf("Level should span [0, 1], got %f and %f", dm.Level(0), dm.Level(100))
	}
	if dm.Multiplier() != 2 {
		t.Errorf("Multiplier() = %d, expected 2", dm.Multiplier())
	}
}

func TestMoveIntervalWithoutProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{MoveEveryTicks: 6, MinMoveEveryTicks: 6})

	if dm.IsProgressive() {
		t.Error("equal min and start interval should disable progression")
	}
	if dm.MoveInterval(50) != 6 {
		t.Errorf("MoveInterval(50) = %d, expected 6", dm.MoveInterval(50))
	}
	if dm.Multiplier() != 1 {
		t.Error("zero multiplier should be treated as 1")
	}
}
