//go:build !js

package main

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/vovakirdan/flappy-kids/internal/config"
	"github.com/vovakirdan/flappy-kids/internal/storage"
)

// defaultSave keeps progress next to the run history.
const defaultSave = saveSQLite

// openHistory opens the SQLite run history.
func openHistory() (history, error) {
	db, err := storage.Open(dbPath())
	if err != nil {
		return nil, err
	}
	return db, nil
}

// runStore returns the SQLite store behind the history, if any.
func (e *env) runStore() (*storage.Store, bool) {
	db, ok := e.history.(*storage.Store)
	return db, ok
}

func dbPath() string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if p, err := xdg.DataFile(filepath.Join(config.AppName, "flappy.db")); err == nil {
		return p
	}
	return filepath.Join("~", "."+config.AppName, "flappy.db")
}

func openLogFile() (*os.File, error) {
	p, err := xdg.StateFile(filepath.Join(config.AppName, "flappy.log"))
	if err != nil {
		return nil, err
	}
	return os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
