package config

import (
	"testing"
	"time"
)

func TestCatalogClampsIndex(t *testing.T) {
	c := NewCatalog(DefaultFlappyConfig())

	tests := []struct {
		index    int
		expected string
	}{
		{-3, "Sunny Start"},
		{0, "Sunny Start"},
		{2, "Cloud Hop"},
		{4, "Storm Chaser"},
		{99, "Storm Chaser"},
	}

	for _, tc := range tests {
		if got := c.Level(tc.index).Name; got != tc.expected {
			t.Errorf("Level(%d) = %q, expected %q", tc.index, got, tc.expected)
		}
	}
	if c.Count() != 5 || c.MaxIndex() != 4 {
		t.Errorf("Count()=%d MaxIndex()=%d, expected 5 and 4", c.Count(), c.MaxIndex())
	}
}

func TestCatalogDifficultyNeverRegresses(t *testing.T) {
	c := NewCatalog(DefaultFlappyConfig())

	for i := 1; i < c.Count(); i++ {
		prev, cur := c.Level(i-1), c.Level(i)
		if cur.ScoreTarget < prev.ScoreTarget {
			t.Errorf("level %d target %d < level %d target %d", i, cur.ScoreTarget, i-1, prev.ScoreTarget)
		}
		if cur.ScrollSpeed < prev.ScrollSpeed {
			t.Errorf("level %d speed %v < level %d speed %v", i, cur.ScrollSpeed, i-1, prev.ScrollSpeed)
		}
	}
}

func TestCatalogScoreTargets(t *testing.T) {
	c := NewCatalog(DefaultFlappyConfig())
	for i := 0; i < c.Count(); i++ {
		if want := 10 + i*5; c.Level(i).ScoreTarget != want {
			t.Errorf("level %d target = %d, expected %d", i, c.Level(i).ScoreTarget, want)
		}
	}
}

func TestSpawnInterval(t *testing.T) {
	c := NewCatalog(DefaultFlappyConfig())

	if got := c.SpawnInterval(0); got != 1200*time.Millisecond {
		t.Errorf("SpawnInterval(0) = %v, expected 1.2s", got)
	}
	if got := c.SpawnInterval(4); got != 880*time.Millisecond {
		t.Errorf("SpawnInterval(4) = %v, expected 880ms", got)
	}
}

func TestSpawnIntervalFloor(t *testing.T) {
	cfg := DefaultFlappyConfig()
	cfg.Spawn.IntervalStepMS = 500
	c := NewCatalog(cfg)

	for i := 0; i < c.Count()+10; i++ {
		got := c.SpawnInterval(i)
		if got < 400*time.Millisecond {
			t.Errorf("SpawnInterval(%d) = %v, below the 400ms floor", i, got)
		}
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	cfg := DefaultFlappyConfig()
	c := NewCatalog(cfg)

	cfg.Levels[0].GapHeight = 1
	levels := c.Levels()
	levels[1].GapHeight = 1

	if c.Level(0).GapHeight != 160 || c.Level(1).GapHeight != 150 {
		t.Error("catalog should not share storage with its inputs or outputs")
	}
}
