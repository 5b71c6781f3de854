package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/audio"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

// soundVolume is the linear gain for sound effects.
const soundVolume = 0.4

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play the game",
	Long: `Start playing. The default variant "snake" opens on a menu with a
difficulty selector and a tutorial; "snake_classic" starts a run right away.

Controls:
  Arrows/WASD/HJKL  - Steer
  Enter/Space       - Select
  P/Esc             - Pause
  B                 - Back to menu (while paused or after game over)
  R                 - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slow start, x1 points
  normal - Medium start, x2 points
  hard   - Fast start, x3 points

Examples:
  snake play
  snake play --difficulty hard
  snake play snake_classic --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(snake.VariantArcade)
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	rc := core.DefaultConfig()
	width, height := rc.ScreenW, rc.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		app.logger.Warn("scores disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := openAudio()
	defer player.Close()

	return tui.Run(game, tui.Options{
		Store:  store,
		Audio:  player,
		Logger: app.logger,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	})
}

// openAudio returns a speaker-backed player, or a silent one when muted
// or when no audio device is available.
func openAudio() audio.Player {
	if flagMute {
		return audio.Nop{}
	}
	p := audio.NewSoundPlayer(soundVolume)
	if err := p.Init(); err != nil {
		app.logger.Warn("sound disabled", "error", err)
		return audio.Nop{}
	}
	return p
}
