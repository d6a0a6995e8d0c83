package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-kids/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [level]",
	Short: "Play in a window",
	Long: `Open the game in a resizable window. Without a level the level
select screen is shown.

Controls:
  Space/Up/W/Click/Tap  - Flap
  1-5                   - Pick a level
  P                     - Pause
  R                     - Restart after a run ends
  Enter                 - Next level after a win
  Esc                   - Back to level select
  Q                     - Quit

Examples:
  flappy window
  flappy window 2 --save gdata`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, args []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	sess := e.session()
	direct, err := selectFromArgs(sess, args)
	if err != nil {
		return err
	}
	return window.Run(sess, e.runtime, e.logger, direct)
}
