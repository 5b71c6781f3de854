package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/registry"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
	flagScoresTUI        bool
	flagClearYes         bool
	flagImportVariant    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the best runs for a variant, optionally for one difficulty.

Examples:
  snake scores
  snake scores --difficulty hard
  snake scores snake_classic --limit 20
  snake scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var scoresImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import high scores from a JSON file",
	Long: `Import best scores kept by older builds. Accepted layouts:

  {"easy": 120, "normal": 300, "hard": 80}
  {"high_score": 300}    (recorded as normal)

Examples:
  snake scores import ~/.snake_highscores.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScoresImport,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear [variant]",
	Short: "Delete all scores of a variant",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScoresClear,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show one difficulty: easy, normal, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")

	scoresImportCmd.Flags().StringVar(&flagImportVariant, "variant", string(snake.VariantArcade), "Variant the scores belong to")
	scoresClearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "Confirm deletion")

	scoresCmd.AddCommand(scoresImportCmd)
	scoresCmd.AddCommand(scoresClearCmd)
}

// variantArg returns the variant named in args or the default one, and
// checks that it is registered.
func variantArg(args []string) (string, error) {
	gameID := string(snake.VariantArcade)
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", gameID)
	}
	return gameID, nil
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	difficulty := ""
	if flagScoresDifficulty != "" {
		preset, ok := config.ParsePreset(flagScoresDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", flagScoresDifficulty)
		}
		difficulty = string(preset)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		rc := core.DefaultConfig()
		width, height := rc.ScreenW, rc.ScreenH
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, game.Title(), difficulty, width, height)
	}

	scores, err := store.TopScores(gameID, difficulty, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	best, err := store.HighScores(gameID)
	if err != nil {
		return fmt.Errorf("retrieving high scores: %w", err)
	}

	printScores(cmd.OutOrStdout(), game.Title(), gameID, difficulty, scores, best)
	return nil
}

// printScores writes the plain-text score table.
func printScores(out io.Writer, title, gameID, difficulty string, scores []storage.ScoreEntry, best map[string]int) {
	header := fmt.Sprintf("High Scores - %s", title)
	if difficulty != "" {
		header += " (" + config.DifficultyPreset(difficulty).Title() + ")"
	}
	fmt.Fprintln(out, header)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'snake play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Length", "Level", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "------", "-----", "------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6s  %-12s  %s\n",
			i+1, e.Score, e.Length, config.DifficultyPreset(e.Difficulty).Title(), e.Player,
			e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	for _, p := range config.Presets() {
		if score, ok := best[string(p)]; ok {
			fmt.Fprintf(out, "Best %s: %d\n", p.Title(), score)
		}
	}
}

func runScoresImport(cmd *cobra.Command, args []string) error {
	gameID, err := variantArg([]string{flagImportVariant})
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	valid := make([]string, 0, len(config.Presets()))
	for _, p := range config.Presets() {
		valid = append(valid, string(p))
	}

	imported, err := store.ImportLegacyJSON(args[0], gameID, valid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(imported) == 0 {
		fmt.Fprintln(out, "Nothing to import.")
		return nil
	}
	for _, e := range imported {
		fmt.Fprintf(out, "Imported %s: %d\n", config.DifficultyPreset(e.Difficulty).Title(), e.Score)
	}
	app.logger.Info("scores imported", "file", args[0], "count", len(imported))
	return nil
}

func runScoresClear(cmd *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}
	if !flagClearYes {
		return fmt.Errorf("refusing to delete scores of %s without --yes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Scores of %s cleared.\n", gameID)
	app.logger.Info("scores cleared", "game", gameID)
	return nil
}
