package story

// SeedQuestTriggers defines the side-quest gates checked at checkpoint
// nodes, in priority order. A quest's terminal node must set the
// completed flag and end the quest; the completed flag is what keeps a
// quest from firing twice.
func SeedQuestTriggers() []QuestTrigger {
	return []QuestTrigger{
		{
			ID:            "quest_rei_extra",
			CharacterID:   "captain_rei",
			Threshold:     35,
			CompletedFlag: "completed_quest_rei_extra",
			EntryNodeID:   "sq_rei_1",
		},
		{
			ID:            "quest_sora_late",
			CharacterID:   "teammate_sora",
			Threshold:     35,
			CompletedFlag: "completed_quest_sora_late",
			EntryNodeID:   "sq_sora_1",
		},
		{
			ID:            "quest_kaito_return",
			CharacterID:   "senior_kaito",
			Threshold:     25,
			RequiredFlag:  HasMet("senior_kaito"),
			CompletedFlag: "completed_quest_kaito_return",
			EntryNodeID:   "sq_kaito_1",
		},
	}
}

// SeedSideQuests defines the side-quest sub-graphs. They share the node
// namespace with the main story; only the walk cursor distinguishes them.
func SeedSideQuests() map[NodeID]*Node {
	return map[NodeID]*Node{
		// Rei: extra practice after dark.
		"sq_rei_1": {
			SceneID:     "court_main",
			CharacterID: "captain_rei",
			Expression:  "tired",
			Text: []string{
				"The courts have emptied but the lights are still on. Rei is alone at the service line, basket after basket.",
				"\"You're still here. Good. Hold the basket — and don't tell Coach.\"",
			},
			Choices: []Choice{
				{
					Text:    "Stay and feed her serves until the lights cut out.",
					NextID:  "sq_rei_2",
					Effects: Effects(IncreaseAffection("captain_rei", 5)),
				},
				{
					Text:   "\"You should rest too, captain.\"",
					NextID: "sq_rei_2",
				},
			},
		},
		"sq_rei_2": {
			SceneID:     "court_main",
			CharacterID: "captain_rei",
			Expression:  "vulnerable",
			Text: []string{
				"Between serves she rolls her right shoulder, wincing when she thinks you aren't looking.",
				"\"Old injury. It's why I serve underhand in matches. If the team knew, they'd stop trusting the armband.\"",
			},
			Effects: Effects(SetFlag("knows_rei_injury", true)),
			NextID:  "sq_rei_3",
		},
		"sq_rei_3": {
			SceneID:     "court_main",
			CharacterID: "captain_rei",
			Text: []string{
				"\"So now you know. One person is enough.\"",
				"She kills the court lights and you walk to the gate in easy silence.",
			},
			Effects: Effects(
				SetFlag("completed_quest_rei_extra", true),
				EndSideQuest(),
			),
		},

		// Sora: why she is always late.
		"sq_sora_1": {
			SceneID:     "vending_wall",
			CharacterID: "teammate_sora",
			Expression:  "sheepish",
			Text: []string{
				"You catch Sora sprinting out the gate the moment practice ends, gym bag half-zipped.",
				"\"It's not what it looks like! Okay it's exactly what it looks like. Come on, if you're coming.\"",
			},
			NextID: "sq_sora_2",
		},
		"sq_sora_2": {
			SceneID:     "riverside",
			CharacterID: "teammate_sora",
			Expression:  "soft",
			Text: []string{
				"She leads you to the riverside court, where a pack of grade-schoolers mobs her the second she arrives.",
				"\"My little brother's whole class. Nobody else will teach them. That's why I'm late everywhere, every day.\"",
				"You spend an hour feeding tiny lobs to tiny players. It's the best practice all week.",
			},
			Effects: Effects(
				IncreaseAffection("teammate_sora", 5),
				SetFlag("completed_quest_sora_late", true),
				EndSideQuest(),
			),
		},

		// Kaito: why he quit, and whether he comes back.
		"sq_kaito_1": {
			SceneID:     "court_back",
			CharacterID: "senior_kaito",
			Expression:  "guarded",
			Text: []string{
				"Kaito's racket bag sits open on the bench. Inside, a trophy photo, face down.",
				"\"Regional finals, last year. Match point for. I double-faulted three times and watched my partner cry at the net.\"",
				"\"I quit before the club could ask me to.\"",
			},
			Choices: []Choice{
				{
					Text:    "\"Then play the rally you never finished. Against me.\"",
					NextID:  "sq_kaito_2",
					Effects: Effects(IncreaseAffection("senior_kaito", 5)),
				},
				{
					Text:   "\"Nobody asked you to carry that alone.\"",
					NextID: "sq_kaito_2",
				},
			},
		},
		"sq_kaito_2": {
			SceneID:     "court_back",
			CharacterID: "senior_kaito",
			Expression:  "open",
			Text: []string{
				"You rally until neither of you can lift an arm. He's laughing by the end. It sounds out of practice.",
				"\"Tell your captain,\" he says finally, \"that if the club still wants a has-been, I'll come to morning practice.\"",
			},
			Effects: Effects(
				SetFlag("kaito_rejoined", true),
				SetFlag("completed_quest_kaito_return", true),
				EndSideQuest(),
			),
		},
	}
}
