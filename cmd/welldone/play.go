package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/core"
	"github.com/vovakirdan/welldone/internal/platform/tui"
	"github.com/vovakirdan/welldone/internal/registry"
	"github.com/vovakirdan/welldone/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Cook in a kitchen layout",
	Long: `Start a round in the given layout. Without a layout, an interactive
menu lets you pick one; after each round you return to the menu.

Controls:
  WASD/Arrows  - Move the chef
  F/E          - Pick up or place an ingredient
  G            - Pick up or put down a plate
  Space        - Chop the ingredient on the board
  P/Esc        - Pause
  R            - Restart the round
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer rounds, faster chopping
  normal - Layout timing as configured
  hard   - Shorter rounds, slower chopping

Examples:
  welldone play
  welldone play classic
  welldone play compact --difficulty hard
  welldone play classic --config ./my-kitchen.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom layout YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if len(args) == 0 {
		runMenuLoop(store, rc, logger)
		return
	}

	layoutID := args[0]
	if !registry.Exists(layoutID) {
		fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", layoutID)
		fmt.Fprintln(os.Stderr, "Run 'welldone list' to see available layouts.")
		os.Exit(1)
	}

	if err := playLayout(layoutID, config.DifficultyPreset(flagDifficulty), store, rc, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playLayout loads a layout, applies the difficulty and runs one session.
func playLayout(layoutID string, difficulty config.DifficultyPreset, store *storage.Store, rc core.RuntimeConfig, logger *log.Logger) error {
	cfg, err := registry.Load(layoutID, flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, difficulty); err != nil {
		return err
	}

	logger.Info("round started", "layout", layoutID, "difficulty", difficulty, "seed", rc.Seed)
	round := tui.Round{
		LayoutID:   layoutID,
		Difficulty: string(difficulty),
		Logger:     logger,
	}
	if err := tui.Run(cfg, store, rc, round); err != nil {
		return fmt.Errorf("running round: %w", err)
	}
	return nil
}

// runMenuLoop shows the layout picker until the user quits.
func runMenuLoop(store *storage.Store, rc core.RuntimeConfig, logger *log.Logger) {
	for {
		menuResult, err := tui.RunMenu(store, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size changes
		rc = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.LayoutID == "" {
			return
		}

		difficulty := menuResult.Difficulty
		if flagDifficulty != "" {
			difficulty = config.DifficultyPreset(flagDifficulty)
		}

		// Fresh order queue for each round unless a seed was given
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		if err := playLayout(menuResult.LayoutID, difficulty, store, rc, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
