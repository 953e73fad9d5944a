package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered 2048 variant with its board size and target tile.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	base := t2048.LoadOptions()

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Board", "Target", "Title")
	fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "-----", "------", "-----")

	for _, g := range games {
		board, target := "-", "-"
		if v, err := t2048.LookupVariant(g.ID); err == nil {
			opts := v.Options(base)
			board = fmt.Sprintf("%dx%d", opts.Size, opts.Size)
			target = "none"
			if opts.WinValue > 0 {
				target = fmt.Sprint(opts.WinValue)
			}
		}
		fmt.Printf("  %-*s  %-5s  %-6s  %s\n", maxIDLen, g.ID, board, target, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a variant.")
}
