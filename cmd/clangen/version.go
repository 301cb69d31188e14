package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("clangen %s", version)
		if commit != "" {
			fmt.Printf(" (%s)", commit)
		}
		fmt.Println()
	},
}

// versionLabel is the short build id drawn in the corner of every screen.
func versionLabel() string {
	if len(commit) > 8 {
		return commit[:8]
	}
	if commit != "" {
		return commit
	}
	return version
}
