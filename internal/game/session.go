package game

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"RacketHearts/internal/story"
)

// Session is one player's live game: the authored content plus the two
// mutable stores, guarded by a single mutex. All exported operations lock;
// unexported helpers assume the lock is held.
type Session struct {
	ID      string
	Graph   *story.Graph
	Library *story.Library
	Tuning  Tuning
	Meta    *Meta

	Progress      *Progress
	Relationships *Relationships

	Mu sync.Mutex

	typingTimer *time.Timer
	typingGen   int
	lastSeen    time.Time
}

// NewSession starts a fresh playthrough and enters the start node.
func NewSession(id string, graph *story.Graph, lib *story.Library, tuning Tuning, meta *Meta) *Session {
	s := &Session{
		ID:       id,
		Graph:    graph,
		Library:  lib,
		Tuning:   tuning.Normalize(),
		Meta:     meta,
		lastSeen: time.Now(),
	}
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.reset()
	return s
}

// Reset discards all playthrough state and begins again at the start node.
// Meta survives; that is the point of Meta.
func (s *Session) Reset() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.reset()
}

func (s *Session) reset() {
	s.stopTyping()
	s.Progress = NewProgress(s.Library.StartNodeID)
	s.Relationships = NewRelationships(s.Library)
	s.enterNode(s.Library.StartNodeID)
}

// Node returns the current main-walk node, or nil when the walk has run
// off the authored content.
func (s *Session) node() *story.Node {
	return s.Graph.Node(s.Progress.NodeID)
}

// enterNode performs the node-entry sequence: move the cursor, update the
// scene, apply entry effects in order, then surface any minigame. Effects
// may themselves transition (side quest start, quest end, ending); when
// that happens the rest of the sequence belongs to the new node and this
// invocation stops.
func (s *Session) enterNode(id story.NodeID) {
	node := s.Graph.Node(id)
	if node == nil {
		log.Printf("[story] enter of missing node %q; staying at %q", id, s.Progress.NodeID)
		return
	}
	s.Progress.NodeID = id
	s.Progress.PartIndex = 0
	if node.SceneID != "" {
		s.Progress.SceneID = node.SceneID
	}
	s.applyEffects(id, node.Effects)
	if s.Progress.NodeID != id || s.Progress.ActiveEndingID != "" {
		return
	}
	if node.MinigameID != "" {
		s.Progress.ActiveMinigameID = node.MinigameID
	}
}

// Advance moves the main walk one step: next text part first, then the
// node transition. Waits (without error) on choices, pending minigames,
// and active endings; a terminal node is a stop, not a crash.
func (s *Session) Advance() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.Progress.ActiveEndingID != "" {
		return
	}
	node := s.node()
	if node == nil {
		log.Printf("[story] advance with no current node (%q)", s.Progress.NodeID)
		return
	}
	if s.Progress.PartIndex < len(node.Text)-1 {
		s.Progress.PartIndex++
		return
	}
	if s.Progress.ActiveMinigameID != "" {
		return
	}
	if len(node.Choices) > 0 {
		return
	}
	if node.NextID != "" {
		s.enterNode(node.NextID)
		return
	}
	log.Printf("[story] advance on terminal node %s; walk is stuck", node.ID)
}

// ChoiceView is one selectable option, carrying the index the client must
// echo back. Indexes refer to the authored choice list, so hidden choices
// leave gaps.
type ChoiceView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// VisibleChoices returns the current node's choices whose conditions hold.
// Only meaningful on the last text part.
func (s *Session) VisibleChoices() []ChoiceView {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.visibleChoices()
}

func (s *Session) visibleChoices() []ChoiceView {
	node := s.node()
	if node == nil || s.Progress.ActiveEndingID != "" {
		return nil
	}
	if s.Progress.PartIndex < len(node.Text)-1 {
		return nil
	}
	var out []ChoiceView
	for i, c := range node.Choices {
		if s.evalCondition(c.Condition) {
			out = append(out, ChoiceView{Index: i, Text: c.Text})
		}
	}
	return out
}

// SelectChoice applies the indexed choice: its effects first, then the
// transition. A hidden or out-of-range choice is refused, which also
// covers clients replaying stale indexes.
func (s *Session) SelectChoice(index int) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.Progress.ActiveEndingID != "" || s.Progress.ActiveMinigameID != "" {
		return
	}
	node := s.node()
	if node == nil {
		return
	}
	if s.Progress.PartIndex < len(node.Text)-1 {
		log.Printf("[story] choice before last text part on %s", node.ID)
		return
	}
	if index < 0 || index >= len(node.Choices) {
		log.Printf("[story] choice index %d out of range on %s", index, node.ID)
		return
	}
	choice := node.Choices[index]
	if !s.evalCondition(choice.Condition) {
		log.Printf("[story] choice %d on %s is hidden; refused", index, node.ID)
		return
	}
	s.applyEffects(node.ID, choice.Effects)
	if s.Progress.NodeID != node.ID || s.Progress.ActiveEndingID != "" {
		return
	}
	if choice.NextID != "" {
		s.enterNode(choice.NextID)
	}
}

// CompleteMinigame resolves the pending minigame. The id must match the
// one surfaced at node entry; the result lands in a flag and the walk
// resumes on the node's NextID.
func (s *Session) CompleteMinigame(id string, won bool) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.Progress.ActiveMinigameID == "" {
		log.Printf("[story] minigame completion with none pending")
		return
	}
	if id != s.Progress.ActiveMinigameID {
		log.Printf("[story] minigame completion for %q but %q is pending", id, s.Progress.ActiveMinigameID)
		return
	}
	node := s.node()
	s.Progress.ActiveMinigameID = ""
	s.Progress.SetFlag("minigame_"+id+"_won", won)
	if node == nil || node.NextID == "" {
		log.Printf("[story] minigame %s has nowhere to resume; falling back to %s", id, s.Library.StartNodeID)
		s.enterNode(s.Library.StartNodeID)
		return
	}
	s.enterNode(node.NextID)
}

// evalCondition evaluates a condition against the stores. Fail-closed:
// nil is true, everything unexpected is false.
func (s *Session) evalCondition(c *story.Condition) (ok bool) {
	if c == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[story] condition %s panicked: %v", c.Kind, r)
			ok = false
		}
	}()
	switch c.Kind {
	case story.CondHasMet:
		return s.Relationships.HasMet(c.CharacterID)
	case story.CondAffectionAbove:
		return s.Relationships.Affection(c.CharacterID) > c.Threshold
	case story.CondAffectionBelow:
		return s.Relationships.Affection(c.CharacterID) < c.Threshold
	case story.CondFlagEquals:
		v, set := s.Progress.Flag(c.Flag)
		return set && flagEquals(v, c.Value)
	case story.CondAllOf:
		for i := range c.All {
			if !s.evalCondition(&c.All[i]) {
				return false
			}
		}
		return true
	default:
		log.Printf("[story] unknown condition kind %q; treating as false", c.Kind)
		return false
	}
}

// flagEquals compares flag values across the numeric types JSON decoding
// produces. Snapshots round-trip authored ints into float64.
func flagEquals(a, b interface{}) bool {
	if a == b {
		return true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

// Touch refreshes the idle clock.
func (s *Session) Touch() {
	s.Mu.Lock()
	s.lastSeen = time.Now()
	s.Mu.Unlock()
}

// IdleSince reports how long the session has gone without traffic.
func (s *Session) IdleSince(now time.Time) time.Duration {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Snapshot captures the full playthrough (progress + relationships) as
// JSON. Loading a snapshot restores state verbatim; entry effects of the
// current node are not replayed.
type Snapshot struct {
	Progress      *Progress                `json:"progress"`
	Relationships map[string]*Relationship `json:"relationships"`
}

// Snapshot serializes the session's playthrough state.
func (s *Session) Snapshot() ([]byte, error) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return json.Marshal(Snapshot{
		Progress:      s.Progress,
		Relationships: s.Relationships.Snapshot(),
	})
}

// Load replaces the playthrough state from a snapshot. Any in-flight
// typing timer dies with the old state.
func (s *Session) Load(data []byte) error {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if snap.Progress == nil {
		snap.Progress = NewProgress(s.Library.StartNodeID)
	}
	if snap.Progress.Flags == nil {
		snap.Progress.Flags = make(map[string]interface{})
	}
	if snap.Progress.Transcripts == nil {
		snap.Progress.Transcripts = make(map[string][]TranscriptEntry)
	}
	s.stopTyping()
	s.Progress = snap.Progress
	s.Relationships = NewRelationships(s.Library)
	s.Relationships.Load(snap.Relationships)
	if s.Progress.Conversation != nil && s.Progress.Conversation.Typing {
		s.armTypingTimer(s.Progress.Conversation.NodeID)
	}
	return nil
}
