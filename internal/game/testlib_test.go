package game

import (
	"RacketHearts/internal/story"
)

// testLibrary builds a minimal cast and content table for engine tests.
func testLibrary() *story.Library {
	return &story.Library{
		Characters: map[string]story.Character{
			story.PlayerID: {ID: story.PlayerID, Name: "You"},
			"a":            {ID: "a", Name: "Ann", InitialAffection: 10, LoveInterest: true},
			"b":            {ID: "b", Name: "Ben", InitialAffection: 0, LoveInterest: true},
			"npc":          {ID: "npc", Name: "Coach"},
		},
		Scenes: map[string]story.Scene{
			"s1": {ID: "s1", Name: "One"},
			"s2": {ID: "s2", Name: "Two"},
		},
		Endings: map[string]story.Ending{
			"a_good":     {ID: "a_good", CharacterID: "a", Name: "Ann", Good: true},
			"b_good":     {ID: "b_good", CharacterID: "b", Name: "Ben", Good: true},
			"normal_end": {ID: "normal_end", Name: "Normal"},
		},
		RomanceOrder:     []string{"a", "b"},
		StartNodeID:      "start",
		FallbackEndingID: "normal_end",
	}
}

// newTestSession wires a session around the given nodes. The graph must
// contain a "start" node.
func newTestSession(lib *story.Library, nodes map[story.NodeID]*story.Node) *Session {
	graph := story.NewGraph(nodes)
	return NewSession("test", graph, lib, DefaultTuning(), NewMeta())
}

func startNode() *story.Node {
	return &story.Node{SceneID: "s1", Text: []string{"hello"}}
}
