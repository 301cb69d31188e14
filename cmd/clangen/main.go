// clangen is a terminal cat-clan life simulation.
//
// Usage:
//
//	clangen                  - Play the game
//	clangen clans            - List saved clans
//	clangen serve            - Start SSH server for remote play
//	clangen version          - Print version information
//
// Global flags:
//
//	--fps <rate>        - Frame cap (default: from settings, 30)
//	--seed <value>      - RNG seed for reproducible clans
//	--db <path>         - Save database (default: ~/.clangen/saves.db)
//	--settings <path>   - Settings file to load and save
//	--log-dir <path>    - Directory for per-run log files
//	--no-presence       - Disable Discord rich presence
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagSettings   string
	flagLogDir     string
	flagLogLevel   string
	flagNoPresence bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clangen",
	Short: "Clan Generator - raise a clan of warrior cats in your terminal",
	Long: `Clan Generator lets you found a clan of warrior cats and follow it
moon by moon: kits grow into apprentices and warriors, leaders lose
lives and deputies take their place.

Available commands:
  clans    - List saved clans
  serve    - Start SSH server for remote play
  version  - Print version information

Examples:
  clangen
  clangen --seed 42
  clangen --no-presence
  clangen serve --ssh :2222`,
	Run: runGame,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame cap (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.clangen/saves.db", "Path to the save database")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogDir, "log-dir", "~/.clangen/logs", "Directory for log files (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "debug", "Minimum log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagNoPresence, "no-presence", false, "Disable Discord rich presence")

	rootCmd.AddCommand(clansCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
