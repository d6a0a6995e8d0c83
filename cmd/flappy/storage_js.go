//go:build js

package main

import (
	"errors"
	"os"
)

// defaultSave maps progress to the browser's localStorage.
const defaultSave = saveGdata

// openHistory reports no history: SQLite does not build for the browser.
func openHistory() (history, error) {
	return nil, nil
}

func openLogFile() (*os.File, error) {
	return nil, errors.New("no log file in the browser")
}

func init() {
	// The page has no command line, so the window is the default.
	rootCmd.RunE = runWindow
}
