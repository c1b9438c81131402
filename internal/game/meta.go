package game

import (
	"encoding/json"
	"sort"
	"sync"
)

// Meta is cross-playthrough state: the ending gallery. Shared by every
// session on the server, so unlike the per-session stores it locks itself.
type Meta struct {
	mu       sync.Mutex
	Unlocked map[string]bool `json:"unlocked_endings"`
}

// NewMeta returns an empty gallery.
func NewMeta() *Meta {
	return &Meta{Unlocked: make(map[string]bool)}
}

// UnlockEnding records that an ending has been reached. Reports whether it
// was newly unlocked.
func (m *Meta) UnlockEnding(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Unlocked[id] {
		return false
	}
	m.Unlocked[id] = true
	return true
}

// EndingUnlocked reports gallery membership.
func (m *Meta) EndingUnlocked(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Unlocked[id]
}

// UnlockedEndings returns the gallery contents in stable order.
func (m *Meta) UnlockedEndings() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.Unlocked))
	for id := range m.Unlocked {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Snapshot serializes the gallery.
func (m *Meta) Snapshot() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return json.Marshal(struct {
		Unlocked map[string]bool `json:"unlocked_endings"`
	}{m.Unlocked})
}

// LoadMetaSnapshot restores a gallery from its serialized form.
func LoadMetaSnapshot(data []byte) (*Meta, error) {
	m := NewMeta()
	if len(data) == 0 {
		return m, nil
	}
	var raw struct {
		Unlocked map[string]bool `json:"unlocked_endings"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Unlocked != nil {
		m.Unlocked = raw.Unlocked
	}
	return m, nil
}
