// Package progress persists which levels the player has unlocked.
//
// Progress is stored as a small JSON object under a fixed key in a
// key-value backend. Loading never fails: anything missing or malformed
// falls back to only the first level being unlocked.
package progress

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-kids/internal/core"
)

// Key is the storage key progress is written under.
const Key = "flappy_kids_progress_v1"

// KV is the minimal persistence capability the store needs.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// Progress is the highest unlocked level index.
type Progress struct {
	Unlocked int `json:"unlocked"`
}

// IsUnlocked reports whether a level may be played.
func (p Progress) IsUnlocked(level int) bool {
	return level >= 0 && level <= p.Unlocked
}

// Store reads and writes Progress through a KV backend.
type Store struct {
	kv       KV
	maxLevel int
	logger   *log.Logger
}

// NewStore creates a store for levels 0..maxLevel. A nil logger discards output.
func NewStore(kv KV, maxLevel int, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{kv: kv, maxLevel: max(maxLevel, 0), logger: logger}
}

// MaxLevel returns the highest level index progress can reach.
func (s *Store) MaxLevel() int {
	return s.maxLevel
}

// Load returns the saved progress, clamped to the valid range.
// Missing, unreadable or malformed data yields level 0.
func (s *Store) Load() Progress {
	data, ok, err := s.kv.Get(Key)
	if err != nil {
		s.logger.Warn("cannot read progress", "error", err)
		return Progress{}
	}
	if !ok {
		return Progress{}
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("ignoring malformed progress", "error", err)
		return Progress{}
	}
	return s.clamp(p.Unlocked)
}

// Save writes the given level as the unlocked level. Last write wins.
func (s *Store) Save(level int) error {
	data, err := json.Marshal(s.clamp(level))
	if err != nil {
		return fmt.Errorf("progress: cannot encode: %w", err)
	}
	if err := s.kv.Set(Key, data); err != nil {
		return fmt.Errorf("progress: cannot save: %w", err)
	}
	return nil
}

// Complete records that level was beaten and unlocks the next one.
// Progress never goes backwards.
func (s *Store) Complete(level int) (Progress, error) {
	cur := s.Load()
	next := max(cur.Unlocked, min(s.maxLevel, level+1))
	if next == cur.Unlocked {
		return cur, nil
	}
	if err := s.Save(next); err != nil {
		return cur, err
	}
	s.logger.Info("level unlocked", "level", next)
	return s.clamp(next), nil
}

// Reset locks every level except the first.
func (s *Store) Reset() error {
	return s.Save(0)
}

// Percent returns how much of the game is unlocked, in [0, 100].
func (s *Store) Percent(p Progress) float64 {
	return float64(s.clamp(p.Unlocked).Unlocked+1) / float64(s.maxLevel+1) * 100
}

func (s *Store) clamp(level int) Progress {
	return Progress{Unlocked: core.Clamp(level, 0, s.maxLevel)}
}
