package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-clangen/internal/storage"
)

var clansCmd = &cobra.Command{
	Use:   "clans",
	Short: "List saved clans",
	Long: `Display every saved clan, most recently played first.

Examples:
  clangen clans
  clangen clans --db ./saves.db`,
	Args: cobra.NoArgs,
	Run:  runClans,
}

func runClans(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	clans, err := store.ListClans()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading clans: %v\n", err)
		os.Exit(1)
	}

	if len(clans) == 0 {
		fmt.Println("No saved clans.")
		fmt.Println()
		fmt.Println("Run 'clangen' and pick 'Make New Clan' to found one.")
		return
	}

	maxNameLen := len("Clan")
	for _, c := range clans {
		if n := len(c.Name) + len("Clan"); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxNameLen, "Clan", "Moons", "Cats", "Last played")
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxNameLen, "----", "-----", "----", "-----------")

	for _, c := range clans {
		played := "never"
		if !c.LastLoaded.IsZero() {
			played = c.LastLoaded.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-*s  %-6d  %-6d  %s\n", maxNameLen, c.Name+"Clan", c.Moons, c.Living, played)
	}
}
