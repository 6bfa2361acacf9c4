package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/welldone/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all kitchen layouts",
	Long:  `Shows every registered kitchen layout with its station count and ingredients.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, l := range layouts {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Stations", "Ingredients")
	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "--------", "-----------")

	for _, l := range layouts {
		fmt.Printf("  %-*s  %-*s  %-8d  %s\n", maxIDLen, l.ID, maxTitleLen, l.Title, l.Stations, strings.Join(l.Ingredients, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'welldone play <id>' to start cooking.")
}
