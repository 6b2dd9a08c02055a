package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-textgame/internal/asset"
	"github.com/vovakirdan/tui-textgame/internal/platform/tui"
	"github.com/vovakirdan/tui-textgame/internal/storage"
	"github.com/vovakirdan/tui-textgame/internal/story"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the story",
	Long: `Start a new play-through. Nothing is resumed: every run begins at
level 1 with a score of 0.

Controls:
  1 / 2        - Choose the left / right option
  Left/Right   - Move focus, Enter chooses the focused option
  Mouse click  - Choose the clicked option
  R            - Play again (on the ending screen)
  Ctrl+S       - Save a text screenshot to ~/.textgame/screenshots
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Examples:
  textgame play
  textgame play --config ./my-textgame.yaml
  textgame play --db ~/.textgame/runs.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := gameCfg.Display.Width*2, gameCfg.Display.Height+1
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	assets, err := asset.Load()
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			// Play goes on without a journal
			logger.Warn("could not open run journal", "path", flagDBPath, "error", err)
			store = nil
		}
	}

	runErr := tui.Run(tui.Options{
		Levels: story.Default(),
		Assets: assets,
		Store:  store,
		Config: gameCfg.Runtime(width, height),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
