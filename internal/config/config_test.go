package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultSnakeConfig(), cfg); diff != "" {
		t.Errorf("embedded snake.yaml differs from DefaultSnakeConfig (-builtin +embedded):\n%s", diff)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultSnakeConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"tiny board", func(c *SnakeConfig) { c.Board.Width = 3 }},
		{"bad cell width", func(c *SnakeConfig) { c.Board.CellWidth = 3 }},
		{"minimum wider than board", func(c *SnakeConfig) { c.Board.MinWidth = c.Board.Width + 1 }},
		{"minimum taller than board", func(c *SnakeConfig) { c.Board.MinHeight = c.Board.Height + 1 }},
		{"missing difficulty", func(c *SnakeConfig) { delete(c.Difficulties, DifficultyHard) }},
		{"zero move interval", func(c *SnakeConfig) {
			d := c.Difficulties[DifficultyEasy]
			d.MoveEveryTicks = 0
			c.Difficulties[DifficultyEasy] = d
		}},
		{"min above start", func(c *SnakeConfig) {
			d := c.Difficulties[DifficultyNormal]
			d.MinMoveEveryTicks = d.MoveEveryTicks + 1
			c.Difficulties[DifficultyNormal] = d
		}},
		{"chance above one", func(c *SnakeConfig) {
			d := c.Difficulties[DifficultyHard]
			d.PowerUpChance = 1.5
			c.Difficulties[DifficultyHard] = d
		}},
		{"all weights zero", func(c *SnakeConfig) {
			for k, v := range c.PowerUps.Kinds {
				v.Weight = 0
				c.PowerUps.Kinds[k] = v
			}
		}},
		{"snake longer than board", func(c *SnakeConfig) { c.Snake.InitialLength = 20 }},
		{"unknown default difficulty", func(c *SnakeConfig) { c.DefaultDifficulty = "insane" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("board:\n  width: 20\n  wrap: false\nscoring:\n  food_points: 7\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Board.Width)
	assert.False(t, cfg.Board.Wrap)
	assert.Equal(t, 7, cfg.Scoring.FoodPoints)
	// Untouched keys keep their defaults
	assert.Equal(t, DefaultSnakeConfig().Board.Height, cfg.Board.Height)
	assert.Equal(t, DefaultSnakeConfig().Difficulties, cfg.Difficulties)
}

func TestLoadFilePartialEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte(`difficulties:
  hard:
    move_every_ticks: 3
powerups:
  kinds:
    ghost:
      weight: 40
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	def := DefaultSnakeConfig()

	wantHard := def.Difficulties[DifficultyHard]
	wantHard.MoveEveryTicks = 3
	assert.Equal(t, wantHard, cfg.Difficulties[DifficultyHard])
	assert.Equal(t, def.Difficulties[DifficultyEasy], cfg.Difficulties[DifficultyEasy])
	assert.Equal(t, def.Difficulties[DifficultyNormal], cfg.Difficulties[DifficultyNormal])

	wantGhost := def.PowerUps.Kinds["ghost"]
	wantGhost.Weight = 40
	assert.Equal(t, wantGhost, cfg.PowerUps.Kinds["ghost"])
	assert.Equal(t, def.PowerUps.Kinds["speed"], cfg.PowerUps.Kinds["speed"])
}

func TestLoadFilePartialEntryStillValidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	// The merged entry has min 2 above the new start of 1.
	data := []byte("difficulties:\n  hard:\n    move_every_ticks: 1\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "min_move_every_ticks exceeds move_every_ticks")
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("board: [1, 2"), 0o600))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("board:\n  width: 2\n"), 0o600))
	_, err = LoadFile(invalid)
	assert.ErrorContains(t, err, "at least 5x5")
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_difficulty: hard\n"), 0o600))

	cfg, src, err := LoadSnake(path)
	require.NoError(t, err)
	assert.Equal(t, SourceCustom, src)
	assert.Equal(t, DifficultyHard, cfg.DefaultDifficulty)

	_, _, err = LoadSnake(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSourceFile(t *testing.T) {
	assert.Equal(t, "/tmp/x.yaml", SourceCustom.File("/tmp/x.yaml"))
	assert.Equal(t, filepath.Join("configs", "snake.yaml"), SourceLocal.File(""))
	assert.Equal(t, UserConfigPath("snake.yaml"), SourceUser.File(""))
	assert.Empty(t, SourceEmbedded.File("/tmp/x.yaml"))
	assert.Empty(t, SourceBuiltin.File(""))
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := Marshal(DefaultSnakeConfig())
	require.NoError(t, err)

	cfg, err := parse(out)
	require.NoError(t, err)
	assert.Equal(t, DefaultSnakeConfig(), cfg)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("SNAKE_FPS", "30")
	t.Setenv("SNAKE_DIFFICULTY", "hard")
	t.Setenv("SNAKE_MUTE", "true")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, 30, e.FPS)
	assert.Equal(t, "hard", e.Difficulty)
	assert.True(t, e.Mute)
	assert.Empty(t, e.DBPath)
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("SNAKE_FPS", "fast")

	_, err := ParseEnv()
	assert.Error(t, err)
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	assert.Equal(t, DifficultyEasy, cfg.DefaultDifficulty)

	ApplyPreset(&cfg, "unknown")
	assert.Equal(t, DifficultyEasy, cfg.DefaultDifficulty)
}
