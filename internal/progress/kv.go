package progress

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// MemoryKV keeps values in memory. Used in tests and when no persistent
// backend can be opened.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

// Get implements KV.
func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Set implements KV.
func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

// GdataKV stores values through gdata, which maps to per-user app data on
// desktop and to localStorage in the browser.
type GdataKV struct {
	m      *gdata.Manager
	object string
}

// gdataObject groups every key this app writes.
const gdataObject = "save"

// OpenGdata opens the gdata storage for the given application name.
func OpenGdata(appName string) (*GdataKV, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("progress: cannot open gdata: %w", err)
	}
	return NewGdataKV(m), nil
}

// NewGdataKV wraps an existing manager.
func NewGdataKV(m *gdata.Manager) *GdataKV {
	return &GdataKV{m: m, object: gdataObject}
}

// Get implements KV.
func (g *GdataKV) Get(key string) ([]byte, bool, error) {
	if !g.m.ObjectPropExists(g.object, key) {
		return nil, false, nil
	}
	data, err := g.m.LoadObjectProp(g.object, key)
	if err != nil {
		return nil, false, fmt.Errorf("progress: cannot load %s: %w", key, err)
	}
	return data, true, nil
}

// Set implements KV.
func (g *GdataKV) Set(key string, value []byte) error {
	if err := g.m.SaveObjectProp(g.object, key, value); err != nil {
		return fmt.Errorf("progress: cannot save %s: %w", key, err)
	}
	return nil
}
