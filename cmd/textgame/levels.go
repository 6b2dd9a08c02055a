package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-textgame/internal/story"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level catalog",
	Long:  `Shows every level with its description and both options.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := story.Default()

	fmt.Printf("%d levels:\n", levels.Len())
	fmt.Println()

	for i, lvl := range levels.Levels() {
		fmt.Printf("  %d. %s\n", i+1, lvl.Title)
		fmt.Printf("     %s\n", lvl.Description)
		for c, opt := range lvl.Options {
			fmt.Printf("     [%s] %-18s %+d  (image %s)\n", story.Choice(c), opt.Caption, opt.Score, opt.Image)
		}
		fmt.Println()
	}

	fmt.Println("Run 'textgame play' to play.")
}
