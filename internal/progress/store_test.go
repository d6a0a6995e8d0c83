package progress

import (
	"errors"
	"testing"
)

type brokenKV struct{}

func (brokenKV) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk on fire") }
func (brokenKV) Set(string, []byte) error         { return errors.New("disk on fire") }

func TestLoadDefaultsToFirstLevel(t *testing.T) {
	s := NewStore(NewMemoryKV(), 4, nil)
	if p := s.Load(); p.Unlocked != 0 {
		t.Errorf("fresh store should unlock level 0, got %d", p.Unlocked)
	}
}

func TestSaveLoadClamps(t *testing.T) {
	tests := []struct {
		saved    int
		expected int
	}{
		{-10, 0},
		{-1, 0},
		{0, 0},
		{2, 2},
		{4, 4},
		{5, 4},
		{7, 4},
		{1 << 30, 4},
	}

	for _, tc := range tests {
		s := NewStore(NewMemoryKV(), 4, nil)
		if err := s.Save(tc.saved); err != nil {
			t.Fatalf("Save(%d) failed: %v", tc.saved, err)
		}
		if got := s.Load().Unlocked; got != tc.expected {
			t.Errorf("Save(%d); Load() = %d, expected %d", tc.saved, got, tc.expected)
		}
	}
}

func TestSaveWritesJSON(t *testing.T) {
	kv := NewMemoryKV()
	s := NewStore(kv, 4, nil)
	if err := s.Save(7); err != nil {
		t.Fatal(err)
	}

	data, ok, _ := kv.Get(Key)
	if !ok || string(data) != `{"unlocked":4}` {
		t.Errorf("unexpected stored value %q", data)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []string{
		``,
		`not json`,
		`{"unlocked":"x"}`,
		`{"unlocked":1.5}`,
		`[1,2,3]`,
		`"3"`,
	}

	for _, raw := range tests {
		kv := NewMemoryKV()
		kv.Set(Key, []byte(raw))
		s := NewStore(kv, 4, nil)
		if got := s.Load().Unlocked; got != 0 {
			t.Errorf("Load() with %q = %d, expected 0", raw, got)
		}
	}
}

func TestLoadOutOfRangeStored(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(Key, []byte(`{"unlocked":99}`))
	if got := NewStore(kv, 4, nil).Load().Unlocked; got != 4 {
		t.Errorf("stored 99 should clamp to 4, got %d", got)
	}

	kv.Set(Key, []byte(`{"unlocked":-3}`))
	if got := NewStore(kv, 4, nil).Load().Unlocked; got != 0 {
		t.Errorf("stored -3 should clamp to 0, got %d", got)
	}
}

func TestLoadBackendError(t *testing.T) {
	s := NewStore(brokenKV{}, 4, nil)
	if got := s.Load().Unlocked; got != 0 {
		t.Errorf("read failure should yield 0, got %d", got)
	}
	if err := s.Save(2); err == nil {
		t.Error("write failure should be reported")
	}
}

func TestCompleteIsMonotonic(t *testing.T) {
	s := NewStore(NewMemoryKV(), 4, nil)

	steps := []struct {
		completed int
		expected  int
	}{
		{0, 1},
		{2, 3},
		{0, 3},
		{3, 4},
		{4, 4},
		{9, 4},
	}
	for _, st := range steps {
		p, err := s.Complete(st.completed)
		if err != nil {
			t.Fatalf("Complete(%d) failed: %v", st.completed, err)
		}
		if p.Unlocked != st.expected || s.Load().Unlocked != st.expected {
			t.Errorf("Complete(%d) = %d, expected %d", st.completed, p.Unlocked, st.expected)
		}
	}
}

func TestResetAndPercent(t *testing.T) {
	s := NewStore(NewMemoryKV(), 4, nil)
	s.Save(4)

	if pct := s.Percent(s.Load()); pct != 100 {
		t.Errorf("all unlocked should be 100%%, got %v", pct)
	}
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	if pct := s.Percent(s.Load()); pct != 20 {
		t.Errorf("fresh progress should be 20%%, got %v", pct)
	}
}

func TestIsUnlocked(t *testing.T) {
	p := Progress{Unlocked: 2}
	for level, want := range map[int]bool{-1: false, 0: true, 2: true, 3: false} {
		if got := p.IsUnlocked(level); got != want {
			t.Errorf("IsUnlocked(%d) = %v, expected %v", level, got, want)
		}
	}
}
