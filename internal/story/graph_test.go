package story

import (
	"strings"
	"testing"
)

func TestNewGraphForcesKeyAsCanonicalID(t *testing.T) {
	g := NewGraph(map[NodeID]*Node{
		"a": {ID: "stale", Text: []string{"x"}, NextID: "b"},
		"b": {Text: []string{"y"}, Effects: Effects(ResolveEnding())},
	})
	n := g.Node("a")
	if n == nil {
		t.Fatal("node a missing")
	}
	if n.ID != "a" {
		t.Errorf("declared id not rewritten: got %q", n.ID)
	}
}

func TestNewGraphLaterSetsWin(t *testing.T) {
	g := NewGraph(
		map[NodeID]*Node{"a": {Text: []string{"old"}}},
		map[NodeID]*Node{"a": {Text: []string{"new"}}},
	)
	if got := g.Node("a").Text[0]; got != "new" {
		t.Errorf("later set should win, got %q", got)
	}
}

func TestNodeLookupMissing(t *testing.T) {
	g := NewGraph(map[NodeID]*Node{})
	if g.Node("nope") != nil {
		t.Error("missing node should be nil")
	}
	if g.Node("") != nil {
		t.Error("empty id should be nil")
	}
}

func TestLintFindsDanglingReferences(t *testing.T) {
	g := NewGraph(map[NodeID]*Node{
		"a": {Text: []string{"x"}, NextID: "ghost"},
		"b": {Text: []string{"y"}, Choices: []Choice{{Text: "go", NextID: "phantom"}}},
		"c": {Text: []string{"z"}},
	})
	problems := strings.Join(g.Lint(), "\n")
	for _, want := range []string{"ghost", "phantom", "terminal"} {
		if !strings.Contains(problems, want) {
			t.Errorf("lint missing %q in:\n%s", want, problems)
		}
	}
}

func TestLintAcceptsDeliberateTerminals(t *testing.T) {
	g := NewGraph(map[NodeID]*Node{
		"quest_end": {Text: []string{"x"}, Effects: Effects(EndSideQuest())},
		"ending":    {Effects: Effects(ResolveEnding())},
		"msg_last":  {Text: []string{"bye"}, TypingDelayMs: 500},
	})
	if problems := g.Lint(); len(problems) != 0 {
		t.Errorf("unexpected lint problems: %v", problems)
	}
}

func TestDefaultGraphLintsClean(t *testing.T) {
	g := DefaultGraph()
	if problems := g.Lint(); len(problems) != 0 {
		t.Errorf("shipped content has lint problems: %v", problems)
	}
}

func TestDefaultLibraryReferencesResolve(t *testing.T) {
	lib := DefaultLibrary()
	g := DefaultGraph()

	if g.Node(lib.StartNodeID) == nil {
		t.Fatalf("start node %q missing", lib.StartNodeID)
	}
	if _, ok := lib.Endings[lib.FallbackEndingID]; !ok {
		t.Errorf("fallback ending %q not authored", lib.FallbackEndingID)
	}
	for _, id := range lib.RomanceOrder {
		c, ok := lib.Characters[id]
		if !ok {
			t.Errorf("romance order names unknown character %q", id)
			continue
		}
		if !c.LoveInterest {
			t.Errorf("romance order includes non love interest %q", id)
		}
		if _, ok := lib.Endings[id+"_good"]; !ok {
			t.Errorf("love interest %q has no authored ending", id)
		}
	}
	for _, q := range lib.Quests {
		if g.Node(q.EntryNodeID) == nil {
			t.Errorf("quest %s entry node %q missing", q.ID, q.EntryNodeID)
		}
		if q.CompletedFlag == "" {
			t.Errorf("quest %s has no completed flag", q.ID)
		}
		if _, ok := lib.Characters[q.CharacterID]; !ok {
			t.Errorf("quest %s names unknown character %q", q.ID, q.CharacterID)
		}
	}
	for _, m := range lib.Messages {
		if g.Node(m.StartNodeID) == nil {
			t.Errorf("message %s start node %q missing", m.ID, m.StartNodeID)
		}
		if _, ok := lib.Characters[m.CharacterID]; !ok {
			t.Errorf("message %s names unknown character %q", m.ID, m.CharacterID)
		}
	}
	for _, ev := range lib.Calendar {
		if ev.SceneID != "" {
			if _, ok := lib.Scenes[ev.SceneID]; !ok {
				t.Errorf("calendar event %s names unknown scene %q", ev.ID, ev.SceneID)
			}
		}
	}
}

func TestUpcomingEvents(t *testing.T) {
	lib := &Library{Calendar: []CalendarEvent{
		{ID: "late", Day: 5, Title: "Late"},
		{ID: "now", Day: 2, Title: "Now"},
		{ID: "soon", Day: 3, Title: "Soon"},
		{ID: "past", Day: 1, Title: "Past"},
	}}
	got := lib.UpcomingEvents(2, 2)
	if len(got) != 2 || got[0].ID != "now" || got[1].ID != "soon" {
		t.Errorf("unexpected events: %+v", got)
	}
}
