package game

import (
	"encoding/json"
	"log"

	"RacketHearts/internal/story"
)

// Affection bounds. Every write path clamps into this range.
const (
	AffectionMin = 0
	AffectionMax = 100
)

// Relationship is the mutable per-character state: an affection score and
// whether the player has met them.
type Relationship struct {
	Affection int  `json:"affection"`
	Met       bool `json:"met"`
}

// AffectionChange is one queued UI notification: the clamped delta that was
// actually applied, not the amount requested.
type AffectionChange struct {
	CharacterID string `json:"character_id"`
	Delta       int    `json:"delta"`
}

// Relationships tracks relationship state for the whole cast. Not
// self-locking; the owning Session serializes access.
type Relationships struct {
	lib     *story.Library
	byID    map[string]*Relationship
	changes []AffectionChange
}

// NewRelationships seeds a store from the authored roster. The player is
// never tracked.
func NewRelationships(lib *story.Library) *Relationships {
	r := &Relationships{lib: lib, byID: make(map[string]*Relationship)}
	for id, c := range lib.Characters {
		if id == story.PlayerID {
			continue
		}
		r.byID[id] = &Relationship{Affection: c.InitialAffection}
	}
	return r
}

func (r *Relationships) get(id string) *Relationship {
	rel, ok := r.byID[id]
	if !ok {
		log.Printf("[story] unknown character %q in relationship op", id)
		return nil
	}
	return rel
}

// Affection returns the character's current score, or 0 for an unknown id.
func (r *Relationships) Affection(id string) int {
	if rel := r.get(id); rel != nil {
		return rel.Affection
	}
	return 0
}

// HasMet reports whether the character has been met.
func (r *Relationships) HasMet(id string) bool {
	rel, ok := r.byID[id]
	return ok && rel.Met
}

// SetAffection is the single write path for affection. The value is clamped
// to [AffectionMin, AffectionMax]; a net change queues exactly one
// AffectionChange carrying the applied delta.
func (r *Relationships) SetAffection(id string, value int) {
	rel := r.get(id)
	if rel == nil {
		return
	}
	if value < AffectionMin {
		value = AffectionMin
	} else if value > AffectionMax {
		value = AffectionMax
	}
	delta := value - rel.Affection
	if delta == 0 {
		return
	}
	rel.Affection = value
	r.changes = append(r.changes, AffectionChange{CharacterID: id, Delta: delta})
}

// Increase raises affection by amount. Non-positive amounts are ignored.
func (r *Relationships) Increase(id string, amount int) {
	if amount <= 0 {
		return
	}
	if rel := r.get(id); rel != nil {
		r.SetAffection(id, rel.Affection+amount)
	}
}

// Decrease lowers affection by amount. Non-positive amounts are ignored.
func (r *Relationships) Decrease(id string, amount int) {
	if amount <= 0 {
		return
	}
	if rel := r.get(id); rel != nil {
		r.SetAffection(id, rel.Affection-amount)
	}
}

// MarkMet records a first meeting. Met only ever goes true; Reset is the
// sole way back.
func (r *Relationships) MarkMet(id string) {
	if rel := r.get(id); rel != nil {
		rel.Met = true
	}
}

// DrainChanges returns the queued affection notifications and empties the
// queue.
func (r *Relationships) DrainChanges() []AffectionChange {
	out := r.changes
	r.changes = nil
	return out
}

// Reset restores every character to authored initial values and drops any
// queued changes.
func (r *Relationships) Reset() {
	r.changes = nil
	for id, rel := range r.byID {
		rel.Affection = r.lib.Characters[id].InitialAffection
		rel.Met = false
	}
}

// Snapshot copies the per-character state. The change queue is transient
// UI state and is not captured.
func (r *Relationships) Snapshot() map[string]*Relationship {
	out := make(map[string]*Relationship, len(r.byID))
	for id, rel := range r.byID {
		cp := *rel
		out[id] = &cp
	}
	return out
}

// Load replaces the store contents from a snapshot. Characters absent from
// the snapshot keep authored initial values; snapshot entries for unknown
// characters are dropped with a warning.
func (r *Relationships) Load(snap map[string]*Relationship) {
	r.Reset()
	for id, rel := range snap {
		cur, ok := r.byID[id]
		if !ok {
			log.Printf("[story] snapshot has unknown character %q; dropping", id)
			continue
		}
		v := rel.Affection
		if v < AffectionMin {
			v = AffectionMin
		} else if v > AffectionMax {
			v = AffectionMax
		}
		cur.Affection = v
		cur.Met = rel.Met
	}
}

// MarshalJSON serializes only the per-character table.
func (r *Relationships) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}
