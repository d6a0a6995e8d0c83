//go:build !js

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-kids/internal/config"
	"github.com/vovakirdan/flappy-kids/internal/games/flappy"
	"github.com/vovakirdan/flappy-kids/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show run history",
	Long: `Without a level, summarizes every level. With a level, shows its
top 10 runs.

Examples:
  flappy scores
  flappy scores 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear [level]",
	Short: "Delete run history",
	Long: `Deletes the recorded runs of one level, or of every level when no
level is given. Unlock progress is kept.

Examples:
  flappy scores clear 2
  flappy scores clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScoresClear,
}

func init() {
	scoresCmd.AddCommand(scoresClearCmd)
	rootCmd.AddCommand(scoresCmd)
}

var errNoHistory = errors.New("run history is unavailable, check --db")

// openRuns sets up the environment and requires the SQLite history.
func openRuns() (*env, *storage.Store, error) {
	e, err := setup(false)
	if err != nil {
		return nil, nil, err
	}
	db, ok := e.runStore()
	if !ok {
		e.Close()
		return nil, nil, errNoHistory
	}
	return e, db, nil
}

func runScores(_ *cobra.Command, args []string) error {
	e, db, err := openRuns()
	if err != nil {
		return err
	}
	defer e.Close()

	catalog := config.NewCatalog(e.config)
	if len(args) == 0 {
		return printStats(db, catalog)
	}

	level, err := parseLevel(args[0], catalog.Count())
	if err != nil {
		return err
	}
	runs, err := db.TopRuns(level, 10)
	if err != nil {
		return fmt.Errorf("cannot read runs: %w", err)
	}

	fmt.Printf("Top runs - Level %d: %s\n", level+1, catalog.Level(level).Name)
	if best, err := db.BestScore(level); err == nil && best > 0 {
		fmt.Printf("Best: %d\n", best)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'flappy play %d' to set the first score!\n", level+1)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-14s  %-7s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-14s  %-7s  %s\n", "----", "-----", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-14s  %-7s  %s\n",
			i+1, r.Score, r.Outcome, r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(db *storage.Store, catalog *config.Catalog) error {
	stats, err := db.Stats(flappy.OutcomeLevelComplete.String())
	if err != nil {
		return fmt.Errorf("cannot read stats: %w", err)
	}
	byLevel := make(map[int]int, len(stats))
	for i, s := range stats {
		byLevel[s.Level] = i
	}

	fmt.Printf("  %-3s  %-14s  %5s  %6s  %4s\n", "#", "Level", "Runs", "Clears", "Best")
	fmt.Printf("  %-3s  %-14s  %5s  %6s  %4s\n", "-", "-----", "----", "------", "----")
	for i, lvl := range catalog.Levels() {
		runs, clears, best := 0, 0, 0
		if j, ok := byLevel[i]; ok {
			runs, clears, best = stats[j].Runs, stats[j].Completions, stats[j].Best
		}
		fmt.Printf("  %-3d  %-14s  %5d  %6d  %4d\n", i+1, lvl.Name, runs, clears, best)
	}
	return nil
}

func runScoresClear(_ *cobra.Command, args []string) error {
	e, db, err := openRuns()
	if err != nil {
		return err
	}
	defer e.Close()

	catalog := config.NewCatalog(e.config)
	levels := make([]int, 0, catalog.Count())
	if len(args) == 1 {
		level, err := parseLevel(args[0], catalog.Count())
		if err != nil {
			return err
		}
		levels = append(levels, level)
	} else {
		for i := range catalog.Count() {
			levels = append(levels, i)
		}
	}

	for _, level := range levels {
		if err := db.ClearRuns(level); err != nil {
			return fmt.Errorf("cannot clear level %d: %w", level+1, err)
		}
		e.logger.Debug("cleared runs", "level", level+1)
	}
	if len(levels) == 1 {
		fmt.Printf("Cleared run history of level %d.\n", levels[0]+1)
	} else {
		fmt.Println("Cleared run history of all levels.")
	}
	return nil
}
