package main

import (
	"fmt"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/razor-flap/internal/games/flap" // registers the built-in themes
	"github.com/vovakirdan/razor-flap/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all available themes",
	Long:  `Shows the visual themes registered with the game.`,
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	themes := registry.List()

	if len(themes) == 0 {
		fmt.Fprintln(out, "No themes available.")
		return
	}

	fmt.Fprintln(out, "Available themes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, t := range themes {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, t.ID, t.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arcade play --theme <id>' or press T in game.")
}
