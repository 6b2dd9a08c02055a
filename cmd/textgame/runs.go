package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-textgame/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show journaled play-throughs",
	Long: `Display recent finished runs and totals from the run journal.
Requires --db pointing at a journal written by play or serve.

Examples:
  textgame runs --db ~/.textgame/runs.db
  textgame runs --db ./runs.db --limit 25
  textgame runs --db ./runs.db --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVarP(&flagRunsLimit, "limit", "n", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every journaled run")
}

func runRuns(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("runs needs --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run journal: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Run journal cleared.")
		return nil
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'textgame play --db %s' to record one.\n", flagDBPath)
		return nil
	}

	fmt.Printf("  %-16s  %-5s  %-8s  %-9s  %s\n", "Date", "Score", "Ending", "Choices", "Player")
	fmt.Printf("  %-16s  %-5s  %-8s  %-9s  %s\n", "----", "-----", "------", "-------", "------")
	for _, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-16s  %-5d  %-8s  %-9s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Ending, r.Choices, player)
	}

	st, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Worst: %d  Average: %.1f\n", st.Runs, st.BestScore, st.WorstScore, st.AvgScore)

	endings := make([]string, 0, len(st.ByEnding))
	for e := range st.ByEnding {
		endings = append(endings, e)
	}
	sort.Strings(endings)
	for _, e := range endings {
		fmt.Printf("  %-8s %d\n", e, st.ByEnding[e])
	}
	return nil
}
