package story

// SeedMainStory defines the main route of the season: tryouts, practice,
// the ranking match, festival eve, and the prefectural final. Checkpoint
// nodes carry check_side_quests; the final checkpoint resolves the ending.
func SeedMainStory() map[NodeID]*Node {
	return map[NodeID]*Node{
		"start": {
			Type:       NodeEventTitle,
			SceneID:    "school_gate",
			EventTitle: "Day 1 — Tryouts",
			Audio:      &AudioCue{BGM: "bgm_morning"},
			NextID:     "gate_1",
		},
		"gate_1": {
			SceneID: "school_gate",
			Text: []string{
				"The tryout notice has been up for a week: TENNIS CLUB — ALL YEARS WELCOME. BRING YOUR OWN GRIP TAPE.",
				"You've read it eleven times. Today you finally brought a racket.",
			},
			NextID: "gate_2",
		},
		"gate_2": {
			SceneID:     "school_gate",
			CharacterID: "teammate_sora",
			Expression:  "panicked",
			Text: []string{
				"Something fast and shouting collides with your shoulder. A racket bag skids across the pavement.",
				"\"Sorry sorry sorry — tryouts! Are you going? Tell me you're going, I can't be the only first-year!\"",
			},
			Effects: Effects(SetMet("teammate_sora")),
			Choices: []Choice{
				{
					Text:    "\"I'm going. Walk with me?\"",
					NextID:  "tryouts_title",
					Effects: Effects(IncreaseAffection("teammate_sora", 5)),
				},
				{
					Text:   "\"Watch where you're running.\"",
					NextID: "tryouts_title",
				},
			},
		},
		"tryouts_title": {
			Type:       NodeEventTitle,
			SceneID:    "court_main",
			EventTitle: "Tryouts",
			Audio:      &AudioCue{BGM: "bgm_court", SFX: "sfx_whistle"},
			NextID:     "tryouts_1",
		},
		"tryouts_1": {
			SceneID:     "court_main",
			CharacterID: "captain_rei",
			Expression:  "neutral",
			Text: []string{
				"A third-year with a captain's armband looks up from a clipboard. Her eyes go to your grip before your face.",
				"\"Takahara. Captain. We run tryouts on the real court, not the wall. Problem with that?\"",
			},
			Effects: Effects(SetMet("captain_rei")),
			NextID:  "tryouts_2",
		},
		"tryouts_2": {
			SceneID:     "court_main",
			CharacterID: "captain_rei",
			Text:        []string{"\"One rally. Show me you can keep a ball alive.\""},
			Choices: []Choice{
				{
					Text:    "\"Just one? I was hoping for more.\"",
					NextID:  "rally_minigame",
					Effects: Effects(IncreaseAffection("captain_rei", 3)),
				},
				{
					Text:   "\"I'll try not to embarrass myself.\"",
					NextID: "rally_minigame",
				},
			},
		},
		"rally_minigame": {
			SceneID:    "court_main",
			Text:       []string{"She feeds you a ball. It comes harder than anything you hit with at the wall."},
			MinigameID: "rally_tryout",
			NextID:     "rally_after",
		},
		"rally_after": {
			SceneID:     "court_main",
			CharacterID: "captain_rei",
			Text: []string{
				"\"Fine. You're in. Practice is every day after sixth period.\"",
				"\"Put your number in the club phone group. Coach posts the schedule there.\"",
			},
			Effects: Effects(UnlockPhone(), AdvanceDay(1)),
			NextID:  "day2_title",
		},
		"day2_title": {
			Type:       NodeEventTitle,
			SceneID:    "court_main",
			EventTitle: "Day 2 — First Practice",
			NextID:     "practice_1",
		},
		"practice_1": {
			SceneID:     "court_main",
			CharacterID: "coach_ishida",
			Text: []string{
				"\"New blood! Good. Nets don't hang themselves and the ball hopper has a hole in it.\"",
				"Practice scatters across the courts. Everyone finds something to do.",
			},
			NextID: "practice_2",
		},
		"practice_2": {
			SceneID: "court_main",
			Text:    []string{"Where do you spend the afternoon?"},
			Choices: []Choice{
				{
					Text:    "Help the captain drag the court after drills.",
					NextID:  "practice_rei",
					Effects: Effects(IncreaseAffection("captain_rei", 5)),
				},
				{
					Text:    "Hit cross-courts with Sora until you both drop.",
					NextID:  "practice_sora",
					Effects: Effects(IncreaseAffection("teammate_sora", 5)),
				},
				{
					Text:   "Check out whoever is hitting alone on the back court.",
					NextID: "practice_kaito",
				},
			},
		},
		"practice_rei": {
			SceneID:     "court_main",
			CharacterID: "captain_rei",
			Expression:  "soft",
			Text: []string{
				"Rei drags in silence for a while, then: \"Most first-years vanish when the brooms come out.\"",
				"\"Don't make me expect this.\"",
			},
			NextID: "checkpoint_day2",
		},
		"practice_sora": {
			SceneID:     "court_main",
			CharacterID: "teammate_sora",
			Expression:  "grin",
			Text: []string{
				"Forty minutes later you're both flat on the baseline, laughing at nothing.",
				"\"Doubles,\" Sora wheezes. \"You and me. I've decided.\"",
			},
			NextID: "checkpoint_day2",
		},
		"practice_kaito": {
			SceneID:     "court_back",
			CharacterID: "senior_kaito",
			Expression:  "guarded",
			Text: []string{
				"A tall third-year serves alone, no armband, no club shirt. The serve is the best you've ever seen in person.",
				"\"I'm not in the club,\" he says, before you can ask. \"Aoyama. I just... use the court.\"",
			},
			Effects: Effects(SetMet("senior_kaito"), IncreaseAffection("senior_kaito", 5)),
			NextID:  "checkpoint_day2",
		},
		"checkpoint_day2": {
			SceneID: "clubroom",
			Text:    []string{"The first days blur into drills, sore wrists, and the smell of new balls."},
			Effects: Effects(AdvanceDay(2), CheckSideQuests()),
			NextID:  "ranking_title",
		},
		"ranking_title": {
			Type:       NodeEventTitle,
			SceneID:    "court_back",
			EventTitle: "Day 4 — Ranking Match",
			Audio:      &AudioCue{BGM: "bgm_match"},
			NextID:     "ranking_1",
		},
		"ranking_1": {
			SceneID:     "court_back",
			CharacterID: "captain_rei",
			Text: []string{
				"\"Intra-club ranking decides who enters prefecturals. You're up.\"",
				"Across the net, a second-year spins his racket and smirks.",
			},
			Choices: []Choice{
				{Text: "Play it safe. Keep every ball in.", NextID: "ranking_minigame"},
				{Text: "Go for winners. Make him move.", NextID: "ranking_minigame"},
			},
		},
		"ranking_minigame": {
			SceneID:    "court_back",
			Text:       []string{"First to four games."},
			MinigameID: "ranking_match",
			NextID:     "ranking_after",
		},
		"ranking_after": {
			SceneID:     "court_back",
			CharacterID: "captain_rei",
			Text: []string{
				"Rei writes your name onto the tournament roster without looking up.",
				"\"Don't get comfortable. Prefecturals are in three days.\"",
			},
			Effects: Effects(SetFlag("ranked_in", true), IncreaseAffection("captain_rei", 3), AdvanceDay(2)),
			NextID:  "festival_title",
		},
		"festival_title": {
			Type:       NodeEventTitle,
			SceneID:    "festival_eve",
			EventTitle: "Day 6 — Festival Eve",
			Audio:      &AudioCue{BGM: "bgm_festival"},
			NextID:     "festival_1",
		},
		"festival_1": {
			SceneID: "festival_eve",
			Text: []string{
				"Practice ends early. Lanterns go up along the riverside and half the school drifts toward the stalls.",
				"The evening is yours.",
			},
			Choices: []Choice{
				{
					Text:      "Find Rei before she can invent more work for herself.",
					NextID:    "festival_rei",
					Condition: AffectionAbove("captain_rei", 30),
					Effects:   Effects(IncreaseAffection("captain_rei", 10)),
				},
				{
					Text:      "Let Sora drag you to every single stall.",
					NextID:    "festival_sora",
					Condition: AffectionAbove("teammate_sora", 30),
					Effects:   Effects(IncreaseAffection("teammate_sora", 10)),
				},
				{
					Text:      "Look for Kaito. He won't be at the stalls.",
					NextID:    "festival_kaito",
					Condition: AllOf(HasMet("senior_kaito"), AffectionAbove("senior_kaito", 20)),
					Effects:   Effects(IncreaseAffection("senior_kaito", 10)),
				},
				{
					Text:   "Walk the stalls alone and turn in early.",
					NextID: "festival_alone",
				},
			},
		},
		"festival_rei": {
			SceneID:     "festival_eve",
			CharacterID: "captain_rei",
			Expression:  "soft",
			Text: []string{
				"You find her at the quiet end of the river, armband off for once.",
				"\"If you tell anyone the captain ate three candy apples, the morning run doubles.\"",
			},
			NextID: "checkpoint_festival",
		},
		"festival_sora": {
			SceneID:     "festival_eve",
			CharacterID: "teammate_sora",
			Expression:  "grin",
			Text: []string{
				"Sora wins a goldfish, loses the goldfish, and wins it back. You carry the bag.",
				"\"Best partner,\" she says, and means more than the goldfish.",
			},
			NextID: "checkpoint_festival",
		},
		"festival_kaito": {
			SceneID:     "riverside",
			CharacterID: "senior_kaito",
			Expression:  "open",
			Text: []string{
				"He's on the riverside path, away from the lanterns, tossing a worn ball and catching it.",
				"\"I used to come here after losses,\" he says. \"Haven't needed to in a while. Tonight I just... wanted to.\"",
			},
			NextID: "checkpoint_festival",
		},
		"festival_alone": {
			SceneID: "festival_eve",
			Text:    []string{"The lanterns are beautiful even alone. Tomorrow decides the season; sleep matters more than goldfish."},
			NextID:  "checkpoint_festival",
		},
		"checkpoint_festival": {
			SceneID: "riverside",
			Text:    []string{"The lanterns drift out over the water. One more sunrise until the tournament."},
			Effects: Effects(CheckSideQuests(), AdvanceDay(1)),
			NextID:  "final_title",
		},
		"final_title": {
			Type:       NodeEventTitle,
			SceneID:    "stadium",
			EventTitle: "Day 7 — Prefectural Tournament",
			Audio:      &AudioCue{BGM: "bgm_final", SFX: "sfx_crowd"},
			NextID:     "final_1",
		},
		"final_1": {
			SceneID:     "stadium",
			CharacterID: "coach_ishida",
			Text: []string{
				"\"Whatever happens out there,\" Coach says, \"you already gave this club its best season in years.\"",
				"Your name crackles over the stadium speakers.",
			},
			NextID: "final_minigame",
		},
		"final_minigame": {
			SceneID:    "stadium",
			Text:       []string{"Center court. Best of three sets."},
			MinigameID: "prefectural_final",
			NextID:     "final_after",
		},
		"final_after": {
			SceneID: "stadium",
			Text: []string{
				"Win or lose, the whole club is waiting at the fence when you walk off court.",
				"The season is over. What it meant is just beginning.",
			},
			NextID: "final_day_checkpoint",
		},
		"final_day_checkpoint": {
			SceneID: "ending_screen",
			Effects: Effects(ResolveEnding()),
		},
	}
}
