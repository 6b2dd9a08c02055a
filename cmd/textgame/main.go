// textgame is a five-level choose-your-path story played in the terminal.
//
// Usage:
//
//	textgame                 - Play (same as "textgame play")
//	textgame play            - Play one story locally
//	textgame serve           - Start SSH server for remote play
//	textgame levels          - Print the level catalog
//	textgame runs            - Show journaled play-throughs
//
// Global flags:
//
//	--config <path>  - Game config YAML (default: search ~/.textgame, ./configs)
//	--db <path>      - Run journal database (default: none, nothing is recorded)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-textgame/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "textgame",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textgame",
	Short: "A five-level terminal story with two choices per level",
	Long: `textgame walks you through five short scenes. Each scene offers two
choices; every choice moves your score up or down by one. After the
last scene your score decides whether you make it out.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  levels   - Print the level catalog
  runs     - Show journaled play-throughs

Examples:
  textgame
  textgame play --db ~/.textgame/runs.db
  textgame serve --ssh :2222
  textgame runs --db ~/.textgame/runs.db`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal database (empty disables journaling)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runsCmd)
}

// loadConfig resolves the game config from --config and the search path.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
