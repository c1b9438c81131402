package story

// PlayerID is the reserved id for the player character. Never a love
// interest and never tracked in the relationship store.
const PlayerID = "player"

// SeedCharacters defines the cast of the tennis club story.
func SeedCharacters() map[string]Character {
	return map[string]Character{
		PlayerID: {
			ID:   PlayerID,
			Name: "You",
		},
		"captain_rei": {
			ID:               "captain_rei",
			Name:             "Rei Takahara",
			Description:      "Third-year captain of the tennis club. Demands more from herself than from anyone else.",
			InitialAffection: 20,
			LoveInterest:     true,
		},
		"teammate_sora": {
			ID:               "teammate_sora",
			Name:             "Sora Minami",
			Description:      "First-year doubles partner. Loud, fast, chronically late.",
			InitialAffection: 5,
			LoveInterest:     true,
		},
		"senior_kaito": {
			ID:               "senior_kaito",
			Name:             "Kaito Aoyama",
			Description:      "Retired former ace who still haunts the courts after class.",
			InitialAffection: 0,
			LoveInterest:     true,
		},
		"coach_ishida": {
			ID:          "coach_ishida",
			Name:        "Coach Ishida",
			Description: "Keeps the club alive on a budget of nothing.",
		},
	}
}

// SeedRomanceOrder fixes the scan order for ending resolution. Declared
// order breaks nothing here (ties fall through to the universal ending),
// but resolution must not depend on map iteration.
func SeedRomanceOrder() []string {
	return []string{"captain_rei", "teammate_sora", "senior_kaito"}
}

// SeedScenes defines the backgrounds the story plays against.
func SeedScenes() map[string]Scene {
	return map[string]Scene{
		"court_main":    {ID: "court_main", Name: "Main Court", Background: "bg_court_main"},
		"court_back":    {ID: "court_back", Name: "Back Court", Background: "bg_court_back"},
		"clubroom":      {ID: "clubroom", Name: "Clubroom", Background: "bg_clubroom"},
		"school_gate":   {ID: "school_gate", Name: "School Gate", Background: "bg_school_gate"},
		"vending_wall":  {ID: "vending_wall", Name: "Vending Machines", Background: "bg_vending_wall"},
		"riverside":     {ID: "riverside", Name: "Riverside Path", Background: "bg_riverside"},
		"stadium":       {ID: "stadium", Name: "Prefectural Stadium", Background: "bg_stadium"},
		"rooftop":       {ID: "rooftop", Name: "School Rooftop", Background: "bg_rooftop"},
		"festival_eve":  {ID: "festival_eve", Name: "Festival Eve", Background: "bg_festival_eve"},
		"ending_screen": {ID: "ending_screen", Name: "Epilogue", Background: "bg_black"},
	}
}

// SeedEndings defines every authored ending. Character endings follow the
// id convention characterID + "_good".
func SeedEndings() map[string]Ending {
	return map[string]Ending{
		"captain_rei_good": {
			ID:          "captain_rei_good",
			CharacterID: "captain_rei",
			Name:        "Match Point",
			Good:        true,
			CGPath:      "cg/ending_rei.png",
			Text: []string{
				"The stadium empties slowly after the final. Rei stays on the baseline, racket still in hand.",
				"\"I never asked anyone to stay for extra practice before,\" she says. \"Stay anyway.\"",
				"You do. You always will.",
			},
		},
		"teammate_sora_good": {
			ID:          "teammate_sora_good",
			CharacterID: "teammate_sora",
			Name:        "Doubles Forever",
			Good:        true,
			CGPath:      "cg/ending_sora.png",
			Text: []string{
				"Sora is, for once, early. She's waiting at the gate with two racket bags.",
				"\"Partners don't quit when the season ends,\" she grins. \"So. Riverside court?\"",
				"The sun is barely up. You go anyway.",
			},
		},
		"senior_kaito_good": {
			ID:          "senior_kaito_good",
			CharacterID: "senior_kaito",
			Name:        "One More Rally",
			Good:        true,
			CGPath:      "cg/ending_kaito.png",
			Text: []string{
				"Kaito meets you at the back court after the closing ceremony, racket over his shoulder.",
				"\"I told myself I was done with this game,\" he says. \"Turns out I was only done playing it alone.\"",
			},
		},
		"normal_end": {
			ID:   "normal_end",
			Name: "Season's End",
			Text: []string{
				"The tournament ends, the nets come down, and the club photo goes up on the wall.",
				"Nothing extraordinary happened this season. But you were there for all of it, and that counts for something.",
			},
		},
	}
}

// SeedCalendar defines the phone app's schedule for the season.
func SeedCalendar() []CalendarEvent {
	return []CalendarEvent{
		{ID: "cal_tryouts", Day: 1, TimeOfDay: "afternoon", Title: "Club Tryouts", SceneID: "court_main", Icon: "racket"},
		{ID: "cal_first_practice", Day: 2, TimeOfDay: "afternoon", Title: "First Full Practice", SceneID: "court_main", CharacterID: "captain_rei", Icon: "racket"},
		{ID: "cal_ranking_match", Day: 4, TimeOfDay: "afternoon", Title: "Intra-club Ranking Match", SceneID: "court_back", Major: true, Icon: "trophy"},
		{ID: "cal_festival_eve", Day: 6, TimeOfDay: "evening", Title: "Festival Eve", Description: "Lanterns by the river after practice.", SceneID: "festival_eve", Icon: "lantern"},
		{ID: "cal_prefecturals", Day: 7, TimeOfDay: "morning", Title: "Prefectural Tournament", SceneID: "stadium", Major: true, Icon: "trophy"},
	}
}
