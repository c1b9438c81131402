package story

// DefaultLibrary assembles the authored content for the shipped game.
func DefaultLibrary() *Library {
	return &Library{
		Characters:       SeedCharacters(),
		Scenes:           SeedScenes(),
		Endings:          SeedEndings(),
		Calendar:         SeedCalendar(),
		Quests:           SeedQuestTriggers(),
		Messages:         SeedMessageTriggers(),
		RomanceOrder:     SeedRomanceOrder(),
		StartNodeID:      "start",
		FallbackEndingID: "normal_end",
	}
}

// DefaultGraph merges the authored node sets into the play graph. Main
// story first; side quests and message threads layer on top in the shared
// namespace.
func DefaultGraph() *Graph {
	return NewGraph(SeedMainStory(), SeedSideQuests(), SeedMessageThreads())
}
