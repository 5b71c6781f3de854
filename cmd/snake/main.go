// snake is a terminal snake game with power-ups, particles and persistent
// high scores, playable locally or over SSH.
//
// Usage:
//
//	snake play [variant]     - Play (default variant: snake)
//	snake list               - List available variants
//	snake scores [variant]   - Show high scores
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Load game settings from a YAML file
//	--log-level <lvl>   - debug, info, warn or error
//	--mute              - Disable sound
//
// Every global flag may also be set through a SNAKE_* environment variable;
// flags given on the command line win.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/logging"
)

const defaultDBPath = "~/.snake/scores.db"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
	flagDifficulty string
)

// app holds what PersistentPreRunE prepared for the subcommands.
var app struct {
	cfg      config.SnakeConfig
	source   config.Source
	logger   *log.Logger
	closeLog func() error
}

func main() {
	err := rootCmd.Execute()
	if app.closeLog != nil {
		app.closeLog() //nolint:errcheck // Nothing left to report to
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal snake game with power-ups, particle effects and
high scores kept per difficulty.

Available commands:
  play     - Play the game
  list     - Show the available variants
  scores   - View and manage high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_classic --difficulty hard
  snake scores --difficulty normal
  snake serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to game config YAML")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Log file used while playing")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup overlays environment settings on flags the user did not pass,
// loads the game config and prepares logging.
func setup(cmd *cobra.Command, _ []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	applyEnv(cmd, env)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, src, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	app.cfg = cfg
	app.source = src
	snake.SetConfig(cfg)

	// serve logs to stderr; everything else keeps the terminal for the TUI
	if cmd == serveCmd {
		app.logger = logging.New(os.Stderr, flagLogLevel, "snake-ssh")
		app.closeLog = func() error { return nil }
	} else {
		logger, closeFn, logErr := logging.NewFileLogger(flagLogFile, flagLogLevel)
		if logErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
		}
		app.logger = logger
		app.closeLog = closeFn
	}
	app.logger.Debug("config loaded", "source", src, "difficulty", cfg.DefaultDifficulty)
	return nil
}

// applyEnv copies set environment values onto flags that were not given
// explicitly.
func applyEnv(cmd *cobra.Command, env config.Env) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if env.FPS > 0 && !changed("fps") {
		flagFPS = env.FPS
	}
	if env.DBPath != "" && !changed("db") {
		flagDBPath = env.DBPath
	}
	if env.ConfigPath != "" && !changed("config") {
		flagConfig = env.ConfigPath
	}
	if env.LogLevel != "" && !changed("log-level") {
		flagLogLevel = env.LogLevel
	}
	if env.LogFile != "" && !changed("log-file") {
		flagLogFile = env.LogFile
	}
	if env.Mute && !changed("mute") {
		flagMute = true
	}
	if env.Difficulty != "" && !changed("difficulty") {
		flagDifficulty = env.Difficulty
	}
	if env.SSHAddr != "" && !changed("ssh") {
		flagSSHAddr = env.SSHAddr
	}
}
