//go:build !js

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-kids/internal/platform/tui"
	"github.com/vovakirdan/flappy-kids/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. Without a level the level select
menu opens; finishing or leaving a run returns to it.

Controls:
  Space/Up/W   - Flap (mouse click works too)
  P            - Pause
  R            - Restart after a run ends
  Enter        - Next level after a win
  B/Esc        - Back to level select
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play 3
  flappy play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	e, err := setup(true)
	if err != nil {
		return err
	}
	defer e.Close()

	sess := e.session()
	direct, err := selectFromArgs(sess, args)
	if err != nil {
		return err
	}

	cfg := e.runtime
	for {
		if !direct {
			menu, err := tui.RunMenu(sess, cfg)
			if err != nil {
				return err
			}
			cfg = menu.Config

			if menu.Quit {
				return nil
			}
			if menu.WantsScoreboard {
				db, ok := e.runStore()
				if !ok {
					continue
				}
				goBack, err := tui.RunScoreboard(db, sess.Catalog().Levels(), sess.Selected(), cfg.ScreenW, cfg.ScreenH)
				if err != nil {
					return err
				}
				if !goBack {
					return nil
				}
				continue
			}
		}
		direct = false

		res, err := tui.Run(sess, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config
		if !res.Back {
			return nil
		}
	}
}

// selectFromArgs applies an optional 1-based level argument.
func selectFromArgs(sess *session.Session, args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	level, err := parseLevel(args[0], sess.Catalog().Count())
	if err != nil {
		return false, err
	}
	if !sess.Select(level) {
		return false, fmt.Errorf("level %d is locked, finish level %d first", level+1, sess.Progress().Unlocked+1)
	}
	return true, nil
}
