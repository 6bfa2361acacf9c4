package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/welldone/internal/config"
	"github.com/vovakirdan/welldone/internal/registry"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <layout>",
	Short: "Print a layout as YAML",
	Long: `Print the fully resolved layout, after config overlays and the
difficulty preset, as YAML. The output is a starting point for --config.

Examples:
  welldone layout classic
  welldone layout compact --difficulty easy > ~/.welldone/configs/compact.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom layout YAML")
	layoutCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runLayout(_ *cobra.Command, args []string) {
	cfg, err := registry.Load(args[0], flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
