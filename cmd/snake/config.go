package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML, after applying --config,
--difficulty and SNAKE_* environment settings. The output is a valid
config file and can be saved as a starting point:

  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Default difficulty to write")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out, err := config.Marshal(app.cfg)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# source: %s", app.source)
	if path := app.source.File(flagConfig); path != "" {
		fmt.Fprintf(w, " (%s)", path)
	}
	fmt.Fprintln(w)
	_, err = w.Write(out)
	return err
}
