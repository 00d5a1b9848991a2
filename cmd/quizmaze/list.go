package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quiz-maze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available game modes",
	Long:  `Shows every game mode registered in quizmaze.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'quizmaze play <id>' to play.")
}
