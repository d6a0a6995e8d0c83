package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-kids/internal/config"
	"github.com/vovakirdan/flappy-kids/internal/core"
	"github.com/vovakirdan/flappy-kids/internal/games/flappy"
	"github.com/vovakirdan/flappy-kids/internal/progress"
	"github.com/vovakirdan/flappy-kids/internal/session"
)

func newTestSession(unlocked int) *session.Session {
	return newTestSessionAt(unlocked, nil)
}

func newTestSessionAt(unlocked int, now func() time.Time) *session.Session {
	kv := progress.NewMemoryKV()
	store := progress.NewStore(kv, 4, nil)
	store.Save(unlocked)
	return session.New(session.Options{
		Config:   config.DefaultFlappyConfig(),
		Seed:     1,
		Progress: store,
		Now:      now,
	})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 25, TickRate: 60, Seed: 1}
}

func started(t *testing.T, sess *session.Session) Model {
	t.Helper()
	next, cmd := NewModel(sess, testConfig()).Update(startMsg{})
	if cmd == nil {
		t.Fatal("starting a run should schedule a tick")
	}
	return next.(Model)
}

func TestModelTicksAdvanceGame(t *testing.T) {
	sess := newTestSession(0)
	m := started(t, sess)

	t0 := time.Unix(100, 0)
	for i := 0; i < 10; i++ {
		next, cmd := m.Update(TickMsg{Time: t0.Add(time.Duration(i) * 16 * time.Millisecond), Token: m.token})
		if cmd == nil {
			t.Fatal("active ticks should reschedule")
		}
		m = next.(Model)
	}
	if sess.Game().State().Bird.Y <= 320 {
		t.Error("bird should have fallen after several frames")
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	sess := newTestSession(0)
	m := started(t, sess)
	old := m.token

	next, _ := m.Update(startMsg{})
	m = next.(Model)
	if m.token == old {
		t.Fatal("restart should acquire a new token")
	}

	if _, cmd := m.Update(TickMsg{Time: time.Unix(100, 0), Token: old}); cmd != nil {
		t.Error("stale ticks must not reschedule")
	}
}

func TestModelFlapKey(t *testing.T) {
	sess := newTestSession(0)
	m := started(t, sess)

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if sess.Game().State().Bird.VY >= 0 {
		t.Error("space should flap")
	}
}

func TestModelMouseFlap(t *testing.T) {
	sess := newTestSession(0)
	m := started(t, sess)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if sess.Game().State().Bird.VY >= 0 {
		t.Error("click should flap")
	}
}

func TestModelBackStopsLoop(t *testing.T) {
	sess := newTestSession(0)
	m := started(t, sess)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(Model)
	if !m.back || cmd == nil {
		t.Fatal("esc should leave the play screen")
	}
	if sess.Active(m.token) {
		t.Error("leaving should release the frame clock")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	sess := newTestSession(0)
	m := started(t, sess)
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	before := sess.Game().State()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if sess.Game().State().Bird != before.Bird {
		t.Error("resizing must not reset the run")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen should be 100x39, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	sess := newTestSession(0)
	m := started(t, sess)

	view := m.View()
	if !strings.Contains(view, "Score") || !strings.Contains(view, "Level 1") {
		t.Error("view should show the HUD and footer")
	}
}

type fixedBest int

func (fixedBest) RecordRun(flappy.Result) error { return nil }
func (b fixedBest) BestScore(int) (int, error)  { return int(b), nil }

func TestModelFooterShowsBest(t *testing.T) {
	store := progress.NewStore(progress.NewMemoryKV(), 4, nil)
	sess := session.New(session.Options{
		Config:   config.DefaultFlappyConfig(),
		Seed:     1,
		Progress: store,
		Runs:     fixedBest(7),
	})
	m := started(t, sess)
	if !strings.Contains(m.footer(), "Best 7") {
		t.Errorf("footer should show the best score, got %q", m.footer())
	}
}

func TestMenuSelectsUnlockedLevels(t *testing.T) {
	sess := newTestSession(2)
	m := NewMenuModel(sess, testConfig())

	next, _ := m.Update(runeKey('4'))
	m = next.(MenuModel)
	if m.start {
		t.Fatal("locked level should not start")
	}

	next, cmd := m.Update(runeKey('2'))
	m = next.(MenuModel)
	if !m.start || cmd == nil || sess.Selected() != 1 {
		t.Errorf("digit 2 should start level 2, selected %d", sess.Selected())
	}
	if r := menuResult(m); !r.Start || r.Quit {
		t.Errorf("unexpected menu result %+v", r)
	}
}

func TestMenuNavigationAndReset(t *testing.T) {
	sess := newTestSession(2)
	m := NewMenuModel(sess, testConfig())
	if sess.Selected() != 2 {
		t.Fatalf("menu should open on the highest unlocked level, got %d", sess.Selected())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	if sess.Selected() != 2 {
		t.Error("cursor should stop at the last unlocked level")
	}

	if !strings.Contains(m.View(), "60%") {
		t.Error("menu should show progress percent")
	}

	next, _ = m.Update(runeKey('r'))
	m = next.(MenuModel)
	if sess.Progress().Unlocked != 0 || sess.Selected() != 0 {
		t.Error("r should reset progress")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(newTestSession(0), testConfig())
	next, _ := m.Update(runeKey('q'))
	if r := menuResult(next.(MenuModel)); !r.Quit {
		t.Errorf("q should quit, got %+v", r)
	}
}

func TestMenuStatusExpiresWithoutKeypress(t *testing.T) {
	clock := time.Unix(100, 0)
	sess := newTestSessionAt(1, func() time.Time { return clock })
	m := NewMenuModel(sess, testConfig())

	next, cmd := m.Update(runeKey('r'))
	m = next.(MenuModel)
	if cmd == nil {
		t.Fatal("reset should schedule the status to expire")
	}
	if !strings.Contains(m.View(), session.MsgProgressReset) {
		t.Error("menu should show the reset status")
	}

	// Tick lands while the status is still live: keep waiting.
	next, cmd = m.Update(statusExpiredMsg{})
	m = next.(MenuModel)
	if cmd == nil {
		t.Error("a live status should re-arm the expiry tick")
	}

	clock = clock.Add(session.StatusDuration)
	next, cmd = m.Update(statusExpiredMsg{})
	m = next.(MenuModel)
	if cmd != nil {
		t.Error("an expired status needs no further ticks")
	}
	if strings.Contains(m.View(), session.MsgProgressReset) {
		t.Error("status should be gone after it expires")
	}
}

func TestMenuLockedLevelSchedulesExpiry(t *testing.T) {
	m := NewMenuModel(newTestSession(0), testConfig())
	next, cmd := m.Update(runeKey('3'))
	if cmd == nil {
		t.Fatal("picking a locked level should schedule the status to expire")
	}
	if r := menuResult(next.(MenuModel)); r.Start {
		t.Error("locked level must not start")
	}
}
