package game

import (
	"testing"

	"RacketHearts/internal/story"
)

func snapshotNodes() map[story.NodeID]*story.Node {
	return map[story.NodeID]*story.Node{
		"start": {
			SceneID: "s1",
			Text:    []string{"x"},
			Effects: story.Effects(
				story.IncreaseAffection("a", 7),
				story.SetFlag("count", 1),
				story.UnlockPhone(),
			),
			NextID: "mid",
		},
		"mid": {SceneID: "s2", Text: []string{"one", "two"}, NextID: "end"},
		"end": {Text: []string{"fin"}, Effects: story.Effects(story.ResolveEnding())},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestSession(testLibrary(), snapshotNodes())
	s.Advance() // -> mid
	s.Advance() // mid part 2
	s.Mu.Lock()
	s.Progress.SetFlag("note", "kept")
	s.Mu.Unlock()

	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	restored := newTestSession(testLibrary(), snapshotNodes())
	if err := restored.Load(data); err != nil {
		t.Fatalf("load: %v", err)
	}

	if restored.Progress.NodeID != "mid" || restored.Progress.PartIndex != 1 {
		t.Errorf("position lost: %s/%d", restored.Progress.NodeID, restored.Progress.PartIndex)
	}
	if restored.Progress.SceneID != "s2" {
		t.Errorf("scene lost: %q", restored.Progress.SceneID)
	}
	if !restored.Progress.PhoneUnlocked {
		t.Error("phone unlock lost")
	}
	if got := restored.Relationships.Affection("a"); got != 17 {
		t.Errorf("affection lost: %d", got)
	}
	if v, ok := restored.Progress.Flag("note"); !ok || v != "kept" {
		t.Errorf("flag lost: %v %v", v, ok)
	}
}

func TestLoadDoesNotReplayEntryEffects(t *testing.T) {
	s := newTestSession(testLibrary(), snapshotNodes())
	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	restored := newTestSession(testLibrary(), snapshotNodes())
	if err := restored.Load(data); err != nil {
		t.Fatalf("load: %v", err)
	}
	// Construction ran start's effects once (10+7); loading the snapshot
	// of that state must not run them again.
	if got := restored.Relationships.Affection("a"); got != 17 {
		t.Errorf("entry effects replayed on load: %d", got)
	}
	if v, _ := restored.Progress.Flag("count"); !flagEquals(v, 1) {
		t.Errorf("flag effect replayed or lost: %v", v)
	}
}

func TestNumericFlagsSurviveJSONRoundTrip(t *testing.T) {
	s := newTestSession(testLibrary(), snapshotNodes())
	data, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	restored := newTestSession(testLibrary(), snapshotNodes())
	if err := restored.Load(data); err != nil {
		t.Fatalf("load: %v", err)
	}
	// JSON turns the authored int into float64; condition evaluation
	// must still match.
	if !restored.evalCondition(story.FlagEquals("count", 1)) {
		t.Error("numeric flag comparison broke after round trip")
	}
}

func TestLoadGarbageFails(t *testing.T) {
	s := newTestSession(testLibrary(), snapshotNodes())
	if err := s.Load([]byte("{nope")); err == nil {
		t.Error("garbage snapshot loaded without error")
	}
	// Session must still be usable.
	if s.Progress == nil || s.Progress.NodeID == "" {
		t.Error("failed load corrupted the session")
	}
}
