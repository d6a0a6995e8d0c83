package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-kids/internal/config"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level catalog",
	Long:  `Shows every level with its difficulty settings and whether it is unlocked.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func init() {
	rootCmd.AddCommand(levelsCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	e, err := setup(false)
	if err != nil {
		return err
	}
	defer e.Close()

	catalog := config.NewCatalog(e.config)
	p := e.progressStore().Load()

	// Calculate column widths
	nameLen := len("Name")
	for _, lvl := range catalog.Levels() {
		nameLen = max(nameLen, len(lvl.Name))
	}

	fmt.Printf("  %-3s  %-*s  %6s  %4s  %7s  %6s  %8s  %s\n",
		"#", nameLen, "Name", "Speed", "Gap", "Gravity", "Target", "Spawn", "Status")
	fmt.Printf("  %-3s  %-*s  %6s  %4s  %7s  %6s  %8s  %s\n",
		"-", nameLen, "----", "-----", "---", "-------", "------", "-----", "------")

	for i, lvl := range catalog.Levels() {
		status := "locked"
		if p.IsUnlocked(i) {
			status = "unlocked"
		}
		fmt.Printf("  %-3d  %-*s  %6.1f  %4.0f  %7.2f  %6d  %8s  %s\n",
			i+1, nameLen, lvl.Name, lvl.ScrollSpeed, lvl.GapHeight, lvl.Gravity,
			lvl.ScoreTarget, catalog.SpawnInterval(i), status)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play <level>' to play an unlocked level.")
	return nil
}
