// welldone is a terminal kitchen-rush game: chop, cook and plate ingredients
// against the clock to fill the order queue.
//
// Usage:
//
//	welldone list              - List available kitchen layouts
//	welldone play [layout]     - Cook in a layout (menu when omitted)
//	welldone scores [layout]   - Show round history for a layout
//	welldone layout <layout>   - Print the resolved layout YAML
//	welldone serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible order queues
//	--db <path>         - Set database path (default: ~/.welldone/scores.db)
//	--log-file <path>   - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register the built-in layouts
	_ "github.com/vovakirdan/welldone/internal/layouts"
	"github.com/vovakirdan/welldone/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "welldone",
	Short: "welldone - a kitchen rush in your terminal",
	Long: `welldone is a terminal cooking game. Grab ingredients, chop them on
the board, batch them in the pot and serve plates that match the order queue
before the round clock runs out.

Available commands:
  list     - Show all kitchen layouts
  play     - Cook in a layout (menu when no layout is given)
  scores   - View round history
  layout   - Print a layout as YAML
  serve    - Start SSH server for remote play

Examples:
  welldone list
  welldone play classic
  welldone play --difficulty hard
  welldone scores compact
  welldone serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(serveCmd)
}

// openLogger returns a logger writing to --log-file, or a discarding one.
// The TUI owns the terminal, so logs never go to stdout.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the round history. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round database: %v\n", err)
		return nil
	}
	return store
}
