// flappy is a five-level Flappy Bird style game for kids, playable in the
// terminal or in a window.
//
// Usage:
//
//	flappy play [level]      - Play in the terminal, with a level select menu
//	flappy window [level]    - Play in a window
//	flappy levels            - List levels and which are unlocked
//	flappy progress          - Show unlock progress
//	flappy progress reset    - Lock every level but the first
//	flappy scores [level]    - Show run history
//	flappy scores clear [n]  - Delete run history
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible pipes
//	--db <path>        - Set database path (default: $XDG_DATA_HOME/flappy-kids/flappy.db)
//	--config <path>    - Load level catalog from a YAML file
//	--save <backend>   - Progress backend: sqlite, gdata or memory (gdata in the browser)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSave     string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Kids - tap, fly, and unlock levels",
	Long: `Flappy Kids is a five-level flying game. Flap between the pipes,
reach the score target and the next level unlocks.

Available commands:
  play      - Play in the terminal
  window    - Play in a window
  levels    - Show the level catalog
  progress  - Show or reset unlock progress
  scores    - View run history

Examples:
  flappy play
  flappy play 2 --seed 42
  flappy window
  flappy progress reset
  flappy scores 1`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default under XDG data home)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSave, "save", defaultSave, "Progress backend: sqlite, gdata, memory")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}
