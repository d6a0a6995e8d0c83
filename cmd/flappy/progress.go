//go:build !js

package main

import (
	"fmt"

	progressbar "github.com/charmbracelet/bubbles/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show unlock progress",
	Long: `Shows how many levels are unlocked.

Examples:
  flappy progress
  flappy progress reset
  flappy progress --save gdata`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Lock every level but the first",
	Args:  cobra.NoArgs,
	RunE:  runProgressReset,
}

func init() {
	progressCmd.AddCommand(progressResetCmd)
	rootCmd.AddCommand(progressCmd)
}

func runProgress(_ *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	store := e.progressStore()
	p := store.Load()
	pct := store.Percent(p)

	bar := progressbar.New(progressbar.WithGradient("#FB923C", "#FBBF24"), progressbar.WithWidth(40))
	fmt.Printf("Unlocked: level %d of %d\n", p.Unlocked+1, store.MaxLevel()+1)
	fmt.Println(bar.ViewAs(pct / 100))
	return nil
}

func runProgressReset(_ *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.progressStore().Reset(); err != nil {
		return fmt.Errorf("cannot reset progress: %w", err)
	}
	fmt.Println("Progress reset. Only level 1 is unlocked.")
	return nil
}
