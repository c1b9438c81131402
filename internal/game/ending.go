package game

import (
	"log"

	"RacketHearts/internal/story"
)

// resolveEnding scans the love interests in the authored romance order and
// activates an ending. The rules:
//
//   - a character qualifies at affection >= the tuned threshold;
//   - the unique maximum among qualifiers wins;
//   - no qualifier, or a tie at the maximum, resolves to the universal
//     ending;
//   - a winner whose ending id (characterID + "_good") is unauthored also
//     resolves to the universal ending, with a warning.
//
// Activating an ending suspends the main walk until a reset or load.
func (s *Session) resolveEnding() {
	if s.Progress.ActiveEndingID != "" {
		log.Printf("[story] ending resolution with %q already active", s.Progress.ActiveEndingID)
		return
	}
	winner := ""
	best := -1
	tied := false
	for _, id := range s.Library.RomanceOrder {
		aff := s.Relationships.Affection(id)
		if aff < s.Tuning.EndingThreshold {
			continue
		}
		switch {
		case aff > best:
			winner, best, tied = id, aff, false
		case aff == best:
			tied = true
		}
	}

	endingID := s.Library.FallbackEndingID
	if winner != "" && !tied {
		id := winner + "_good"
		if _, ok := s.Library.Endings[id]; ok {
			endingID = id
		} else {
			log.Printf("[story] ending %q not authored; using %s", id, endingID)
		}
	}
	if _, ok := s.Library.Endings[endingID]; !ok {
		log.Printf("[story] fallback ending %q not authored either", endingID)
	}

	s.stopTyping()
	s.Progress.Conversation = nil
	if s.Progress.InSideQuest {
		s.Progress.LeaveSideQuest()
	}
	s.Progress.ActiveMinigameID = ""
	s.Progress.ActiveEndingID = endingID
	s.Meta.UnlockEnding(endingID)
	log.Printf("[story] ending resolved: %s (winner %q, best %d, tied %v)", endingID, winner, best, tied)
}

// ActiveEnding returns the resolved ending, if one is active.
func (s *Session) ActiveEnding() (story.Ending, bool) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.Progress.ActiveEndingID == "" {
		return story.Ending{}, false
	}
	e, ok := s.Library.Endings[s.Progress.ActiveEndingID]
	return e, ok
}
