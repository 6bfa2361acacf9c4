package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/welldone/internal/registry"
	"github.com/vovakirdan/welldone/internal/storage"
)

var (
	flagClear  bool
	flagRecent int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show round history",
	Long: `Display the top 10 rounds for a layout, or a summary of every layout
when none is given. --recent lists the latest rounds across all layouts.

Examples:
  welldone scores
  welldone scores --recent 5
  welldone scores classic
  welldone scores compact --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded rounds of the layout")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "List the N most recent rounds across all layouts")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening round database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecent > 0 {
		if err := printRecent(os.Stdout, store, flagRecent); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
		return
	}

	layoutID := args[0]
	if !registry.Exists(layoutID) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layoutID)
		fmt.Fprintln(os.Stderr, "Run 'welldone list' to see available layouts.")
		os.Exit(1)
	}

	if flagClear {
		if err := store.ClearRounds(layoutID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared round history for %s.\n", layoutID)
		return
	}

	if err := printLayout(store, layoutID); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}
}

func printLayout(store *storage.Store, layoutID string) error {
	rounds, err := store.TopRounds(layoutID, 10)
	if err != nil {
		return err
	}

	title := layoutID
	for _, l := range registry.List() {
		if l.ID == layoutID {
			title = l.Title
		}
	}
	fmt.Printf("Best rounds - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'welldone play %s' to set the first score!\n", layoutID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Orders", "Missed", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "------", "-----", "----")

	for i, r := range rounds {
		level := r.Difficulty
		if level == "" {
			level = "normal"
		}
		fmt.Printf("  %-4d  %-6d  %-6d  %-6d  %-6s  %s\n",
			i+1, r.Score, r.OrdersServed, r.PlatesMissed, level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(layoutID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllLayoutStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-6s  %-6s  %-6s  %s\n", "Layout", "Rounds", "Best", "Avg", "Last played")
	fmt.Printf("  %-12s  %-6s  %-6s  %-6s  %s\n", "------", "------", "----", "---", "-----------")
	for _, l := range registry.List() {
		st, ok := all[l.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-6d  %-6.1f  %s\n",
			l.ID, st.Rounds, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRecent(w io.Writer, store *storage.Store, limit int) error {
	rounds, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-12s  %-6s  %-6s  %-6s  %s\n", "Layout", "Score", "Orders", "Missed", "Date")
	fmt.Fprintf(w, "  %-12s  %-6s  %-6s  %-6s  %s\n", "------", "-----", "------", "------", "----")
	for _, r := range rounds {
		fmt.Fprintf(w, "  %-12s  %-6d  %-6d  %-6d  %s\n",
			r.LayoutID, r.Score, r.OrdersServed, r.PlatesMissed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
