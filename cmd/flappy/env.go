package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-kids/internal/config"
	"github.com/vovakirdan/flappy-kids/internal/core"
	"github.com/vovakirdan/flappy-kids/internal/progress"
	"github.com/vovakirdan/flappy-kids/internal/session"
)

// Progress backends selectable with --save.
const (
	saveSQLite = "sqlite"
	saveGdata  = "gdata"
	saveMemory = "memory"
)

// history is a run history that can also hold progress.
type history interface {
	progress.KV
	session.RunRecorder
	Close() error
}

// env holds what every command shares: config, logger and storage.
type env struct {
	config  config.FlappyConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	history history // nil unless the run history is available
	kv      progress.KV
	logFile *os.File
}

// setup loads config and opens storage. With toFile set, logs go to the
// state file so they do not tear the alternate screen.
func setup(toFile bool) (*env, error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return nil, err
	}
	e := &env{config: cfg}

	var w io.Writer = os.Stderr
	if toFile {
		if f, err := openLogFile(); err == nil {
			e.logFile = f
			w = f
		} else {
			w = io.Discard
		}
	}
	e.logger = log.NewWithOptions(w, log.Options{ReportTimestamp: true, Prefix: "flappy"})
	e.logger.SetLevel(lvl)

	e.runtime = core.DefaultConfig()
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		e.runtime.ScreenW = tw
		e.runtime.ScreenH = th
	}
	e.runtime.TickRate = flagFPS
	e.runtime.Seed = flagSeed
	if e.runtime.Seed == 0 {
		e.runtime.Seed = time.Now().UnixNano()
	}

	e.openStorage()
	return e, nil
}

// openStorage picks the progress backend. Anything that cannot be opened
// degrades to memory so the game still runs.
func (e *env) openStorage() {
	// The run history lives in SQLite whatever holds progress.
	h, err := openHistory()
	switch {
	case err != nil:
		e.logger.Warn("run history unavailable", "error", err)
	case h == nil:
		e.logger.Debug("run history not supported on this platform")
	default:
		e.history = h
	}

	switch flagSave {
	case saveSQLite:
		if e.history != nil {
			e.kv = e.history
		}
	case saveGdata:
		if kv, err := progress.OpenGdata(config.AppName); err == nil {
			e.kv = kv
		} else {
			e.logger.Warn("gdata unavailable", "error", err)
		}
	case saveMemory:
	default:
		e.logger.Warn("unknown save backend", "save", flagSave)
	}

	if e.kv == nil {
		e.logger.Info("progress kept in memory only")
		e.kv = progress.NewMemoryKV()
	}
}

// progressStore returns a store over the selected backend.
func (e *env) progressStore() *progress.Store {
	return progress.NewStore(e.kv, config.NewCatalog(e.config).MaxIndex(), e.logger)
}

// session creates a game session wired to storage.
func (e *env) session() *session.Session {
	opts := session.Options{
		Config:   e.config,
		Seed:     e.runtime.Seed,
		Progress: e.progressStore(),
		Logger:   e.logger,
	}
	if e.history != nil {
		opts.Runs = e.history
	}
	return session.New(opts)
}

// Close releases storage and the log file.
func (e *env) Close() {
	if e.history != nil {
		if err := e.history.Close(); err != nil {
			e.logger.Warn("cannot close database", "error", err)
		}
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// parseLevel converts a 1-based level argument to an index.
func parseLevel(arg string, count int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("level must be a number from 1 to %d, got %q", count, arg)
	}
	return n - 1, nil
}
