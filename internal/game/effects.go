package game

import (
	"log"

	"RacketHearts/internal/story"
)

// applyEffects interprets an effect list in declared order. Each effect
// sees the state left by the one before it, and each is isolated: a
// panicking effect is logged and skipped, the rest still run.
func (s *Session) applyEffects(origin story.NodeID, effects []story.Effect) {
	for i := range effects {
		s.applyEffect(origin, effects[i])
	}
}

func (s *Session) applyEffect(origin story.NodeID, e story.Effect) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[story] effect %s at %s panicked: %v", e.Kind, origin, r)
		}
	}()
	switch e.Kind {
	case story.EffectIncreaseAffection:
		s.Relationships.Increase(e.CharacterID, e.Amount)
	case story.EffectDecreaseAffection:
		s.Relationships.Decrease(e.CharacterID, e.Amount)
	case story.EffectSetMet:
		s.Relationships.MarkMet(e.CharacterID)
	case story.EffectSetFlag:
		s.Progress.SetFlag(e.Flag, e.Value)
	case story.EffectClearFlag:
		s.Progress.ClearFlag(e.Flag)
	case story.EffectAdvanceDay:
		s.advanceDay(e.Days)
	case story.EffectUnlockPhone:
		s.Progress.PhoneUnlocked = true
	case story.EffectCheckSideQuests:
		s.checkSideQuests(origin)
	case story.EffectEndSideQuest:
		s.endSideQuest()
	case story.EffectResolveEnding:
		s.resolveEnding()
	default:
		log.Printf("[story] unknown effect kind %q at %s; skipped", e.Kind, origin)
	}
}
