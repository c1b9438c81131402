package story

// SeedMessageTriggers defines the scheduled phone messages. Triggers are
// evaluated when the day advances; a trigger whose day has arrived and
// whose condition holds lands in the unread inbox exactly once.
func SeedMessageTriggers() []MessageTrigger {
	return []MessageTrigger{
		{
			ID:          "msg_rei_schedule",
			CharacterID: "captain_rei",
			Day:         3,
			Condition:   HasMet("captain_rei"),
			StartNodeID: "msg_rei_1",
			Title:       "Tomorrow's ranking match",
		},
		{
			ID:          "msg_sora_doubles",
			CharacterID: "teammate_sora",
			Day:         3,
			Condition:   HasMet("teammate_sora"),
			StartNodeID: "msg_sora_1",
			Title:       "partner!!!!",
		},
		{
			ID:          "msg_kaito_night",
			CharacterID: "senior_kaito",
			Day:         5,
			Condition:   AllOf(HasMet("senior_kaito"), AffectionAbove("senior_kaito", 15)),
			StartNodeID: "msg_kaito_1",
			Title:       "the back court",
		},
	}
}

// SeedMessageThreads defines the phone conversation sub-graphs. Incoming
// bubbles carry TypingDelayMs; the conversation walk holds on them until
// the delay elapses. A terminal node closes the thread and persists the
// transcript.
func SeedMessageThreads() map[NodeID]*Node {
	return map[NodeID]*Node{
		// Rei, night before the ranking match.
		"msg_rei_1": {
			CharacterID:   "captain_rei",
			Text:          []string{"Ranking match tomorrow. Court B, fourth period ends, be warmed up before I get there."},
			TypingDelayMs: 1100,
			NextID:        "msg_rei_2",
		},
		"msg_rei_2": {
			CharacterID:   "captain_rei",
			Text:          []string{"Also. You hit better when you stop thinking. Just so you know that I know."},
			TypingDelayMs: 1400,
			Choices: []Choice{
				{
					Text:    "Was that almost a compliment, captain?",
					NextID:  "msg_rei_3",
					Effects: Effects(IncreaseAffection("captain_rei", 3)),
				},
				{
					Text:   "Understood. Warmed up by fourth period.",
					NextID: "msg_rei_3",
				},
			},
		},
		"msg_rei_3": {
			CharacterID:   "captain_rei",
			Text:          []string{"Good night. Don't be late."},
			TypingDelayMs: 900,
		},

		// Sora, same evening.
		"msg_sora_1": {
			CharacterID:   "teammate_sora",
			Text:          []string{"PARTNER. big news. huge. i found a vending machine that gives TWO drinks if you hit the button exactly right"},
			TypingDelayMs: 700,
			NextID:        "msg_sora_2",
		},
		"msg_sora_2": {
			CharacterID:   "teammate_sora",
			Text:          []string{"this information is only for doubles partners. use it wisely"},
			TypingDelayMs: 800,
			Choices: []Choice{
				{
					Text:    "Split the second drink with me tomorrow and we have a deal.",
					NextID:  "msg_sora_3",
					Effects: Effects(IncreaseAffection("teammate_sora", 3)),
				},
				{
					Text:   "That's definitely stealing, Sora.",
					NextID: "msg_sora_3",
				},
			},
		},
		"msg_sora_3": {
			CharacterID:   "teammate_sora",
			Text:          []string{"knew i picked the right partner. ok sleeping now. GROW STRONGER"},
			TypingDelayMs: 600,
		},

		// Kaito, late, two days before the final.
		"msg_kaito_1": {
			CharacterID:   "senior_kaito",
			Text:          []string{"It's Aoyama. Got your number from the club group. Apparently I'm in the club group now."},
			TypingDelayMs: 1600,
			NextID:        "msg_kaito_2",
		},
		"msg_kaito_2": {
			CharacterID:   "senior_kaito",
			Text:          []string{"The back court is free at six tomorrow morning. If you want to see what a real first serve looks like before the tournament."},
			TypingDelayMs: 1800,
			Choices: []Choice{
				{
					Text:    "Six sharp. Bring the serve, I'll bring the returns.",
					NextID:  "msg_kaito_3",
					Effects: Effects(IncreaseAffection("senior_kaito", 3)),
				},
				{
					Text:   "Six in the MORNING? ...fine. Fine.",
					NextID: "msg_kaito_3",
				},
			},
		},
		"msg_kaito_3": {
			CharacterID:   "senior_kaito",
			Text:          []string{"Don't oversleep. I only say things like this once."},
			TypingDelayMs: 1200,
		},
	}
}
