// Package session hosts a game: level selection and unlock rules, run
// start and teardown, short status messages, and recording finished runs.
// Both front ends drive the game through a Session.
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-kids/internal/canvas"
	"github.com/vovakirdan/flappy-kids/internal/config"
	"github.com/vovakirdan/flappy-kids/internal/core"
	"github.com/vovakirdan/flappy-kids/internal/games/flappy"
	"github.com/vovakirdan/flappy-kids/internal/progress"
)

// StatusDuration is how long a status message stays visible.
const StatusDuration = 1500 * time.Millisecond

// Status messages shown after a run ends.
const (
	MsgGameOver      = "Oops! Try again."
	MsgLevelComplete = "Level complete!"
	MsgProgressReset = "Progress reset."
)

// RunRecorder keeps the history of finished runs. *storage.Store implements it.
type RunRecorder interface {
	RecordRun(r flappy.Result) error
	// BestScore returns the highest recorded score for a level, 0 if none.
	BestScore(level int) (int, error)
}

// Options configures a Session.
type Options struct {
	Config   config.FlappyConfig
	Seed     int64
	Progress *progress.Store
	Runs     RunRecorder // Optional
	Logger   *log.Logger // Optional
	Now      func() time.Time
}

// Session owns the game and everything that outlives a single run.
type Session struct {
	catalog  *config.Catalog
	game     *flappy.Game
	controls *flappy.Controls
	progress *progress.Store
	runs     RunRecorder
	best     map[int]int
	logger   *log.Logger
	now      func() time.Time
	clock    FrameClock

	unlocked progress.Progress
	selected int

	status      string
	statusUntil time.Time
}

// New creates a session and loads saved progress. The selection starts at
// the highest unlocked level.
func New(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	catalog := config.NewCatalog(opts.Config)
	game := flappy.New(opts.Config, catalog, opts.Seed)

	s := &Session{
		catalog:  catalog,
		game:     game,
		controls: flappy.NewControls(game, opts.Config.Bird.Flash(), opts.Now),
		progress: opts.Progress,
		runs:     opts.Runs,
		best:     make(map[int]int),
		logger:   opts.Logger,
		now:      opts.Now,
	}
	game.SetHooks(flappy.Hooks{
		OnGameOver:      s.onGameOver,
		OnLevelComplete: s.onLevelComplete,
	})

	s.unlocked = s.progress.Load()
	s.selected = s.unlocked.Unlocked
	return s
}

// Catalog returns the level table.
func (s *Session) Catalog() *config.Catalog { return s.catalog }

// Game returns the hosted game.
func (s *Session) Game() *flappy.Game { return s.game }

// Progress returns the current unlock state.
func (s *Session) Progress() progress.Progress { return s.unlocked }

// Percent returns the unlocked share of the game in [0, 100].
func (s *Session) Percent() float64 { return s.progress.Percent(s.unlocked) }

// Selected returns the selected level index.
func (s *Session) Selected() int { return s.selected }

// Select chooses a level. The index is clamped; locked levels are refused.
func (s *Session) Select(level int) bool {
	level = s.catalog.Clamp(level)
	if !s.unlocked.IsUnlocked(level) {
		s.setStatus(fmt.Sprintf("Level %d is locked.", level+1))
		return false
	}
	s.selected = level
	return true
}

// MoveSelection moves the cursor by delta, stopping at the last unlocked level.
func (s *Session) MoveSelection(delta int) {
	s.selected = core.Clamp(s.selected+delta, 0, s.unlocked.Unlocked)
}

// Start begins a fresh run of the selected level and returns the token
// the front end must pass to Frame.
func (s *Session) Start() Token {
	s.game.Reset(s.selected)
	s.controls.Reset()
	s.logger.Debug("run started", "level", s.selected)
	return s.clock.Acquire()
}

// HasNext reports whether a completed run can continue to another level.
func (s *Session) HasNext() bool {
	return s.game.Outcome() == flappy.OutcomeLevelComplete && s.game.Level() < s.catalog.MaxIndex()
}

// Next starts the following level after a completed run. It reports false
// after a loss and after the last level.
func (s *Session) Next() (Token, bool) {
	if !s.HasNext() {
		return 0, false
	}
	if !s.Select(s.game.Level() + 1) {
		return 0, false
	}
	return s.Start(), true
}

// RetryReady reports whether a tap may restart a finished run. The tap that
// ended the run must not restart it, so this waits for the status message
// to expire.
func (s *Session) RetryReady() bool {
	return !s.game.Running() && s.game.Outcome() != flappy.OutcomeContinue && s.Status() == ""
}

// Best returns the best recorded score for a level, or 0 without history.
func (s *Session) Best(level int) int {
	if s.runs == nil {
		return 0
	}
	level = s.catalog.Clamp(level)
	if best, ok := s.best[level]; ok {
		return best
	}
	best, err := s.runs.BestScore(level)
	if err != nil {
		s.logger.Warn("cannot read best score", "level", level, "error", err)
		return 0
	}
	s.best[level] = best
	return best
}

// Stop tears down the active loop. Frames already in flight are ignored.
func (s *Session) Stop() {
	s.clock.Release()
}

// Active reports whether tok belongs to the running loop.
func (s *Session) Active(tok Token) bool {
	return s.clock.Valid(tok)
}

// Frame advances the game using the time elapsed since the previous frame
// of the same loop. Stale tokens are dropped.
func (s *Session) Frame(tok Token, now time.Time) flappy.Outcome {
	dt, ok := s.clock.Delta(tok, now)
	if !ok {
		return flappy.OutcomeContinue
	}
	return s.game.Tick(dt)
}

// Input applies one frame of player input to the game.
func (s *Session) Input(in core.InputFrame) bool {
	return s.controls.Apply(in)
}

// Render draws the current frame, including the flap highlight.
func (s *Session) Render(dst canvas.Surface) {
	s.game.Render(dst, s.controls.Flashing())
}

// ResetProgress locks every level but the first.
func (s *Session) ResetProgress() error {
	s.unlocked = progress.Progress{}
	s.selected = 0
	s.setStatus(MsgProgressReset)
	if err := s.progress.Reset(); err != nil {
		s.logger.Warn("cannot reset progress", "error", err)
		return err
	}
	return nil
}

// Status returns the current status message, or "" once it has expired.
func (s *Session) Status() string {
	if s.status == "" || !s.now().Before(s.statusUntil) {
		return ""
	}
	return s.status
}

func (s *Session) setStatus(msg string) {
	s.status = msg
	s.statusUntil = s.now().Add(StatusDuration)
}

func (s *Session) onGameOver(r flappy.Result) {
	s.setStatus(MsgGameOver)
	s.record(r)
}

func (s *Session) onLevelComplete(r flappy.Result) {
	s.setStatus(MsgLevelComplete)

	next := max(s.unlocked.Unlocked, min(s.catalog.MaxIndex(), r.Level+1))
	s.unlocked = progress.Progress{Unlocked: next}
	if _, err := s.progress.Complete(r.Level); err != nil {
		s.logger.Warn("cannot save progress", "error", err)
	}
	s.record(r)
}

// record stores a finished run. Failures are logged, never shown.
func (s *Session) record(r flappy.Result) {
	s.logger.Info("run finished",
		"level", r.Level,
		"score", r.Score,
		"outcome", r.Outcome.String(),
		"duration", r.Duration.Round(time.Millisecond),
	)
	if s.runs == nil {
		return
	}
	if err := s.runs.RecordRun(r); err != nil {
		s.logger.Warn("cannot record run", "error", err)
		return
	}
	if best, ok := s.best[r.Level]; ok {
		s.best[r.Level] = max(best, r.Score)
	}
}
