package story

// EffectKind names one operation in the fixed effect vocabulary.
type EffectKind string

const (
	EffectIncreaseAffection EffectKind = "increase_affection"
	EffectDecreaseAffection EffectKind = "decrease_affection"
	EffectSetMet            EffectKind = "set_met"
	EffectSetFlag           EffectKind = "set_flag"
	EffectClearFlag         EffectKind = "clear_flag"
	EffectAdvanceDay        EffectKind = "advance_day"
	EffectUnlockPhone       EffectKind = "unlock_phone"
	// EffectCheckSideQuests evaluates the side-quest triggers at a checkpoint
	// node. At most one quest fires; if none does, the node's default next
	// governs as usual.
	EffectCheckSideQuests EffectKind = "check_side_quests"
	// EffectEndSideQuest marks the current side quest done and resumes the
	// main walk at the stored return address.
	EffectEndSideQuest EffectKind = "end_side_quest"
	// EffectResolveEnding scans relationship state and activates an ending.
	// The one place an effect, not a node transition, decides the next screen.
	EffectResolveEnding EffectKind = "resolve_ending"
)

// Effect is one state mutation, as data. The game layer interprets it
// against the stores; every mutation goes through the stores' own clamped
// setters, never direct field writes.
type Effect struct {
	Kind        EffectKind  `json:"kind"`
	CharacterID string      `json:"character_id,omitempty"`
	Amount      int         `json:"amount,omitempty"`
	Flag        string      `json:"flag,omitempty"`
	Value       interface{} `json:"value,omitempty"`
	Days        int         `json:"days,omitempty"`
}

// Effects builds an ordered effect list from its arguments. Order is
// preserved and significant: later effects observe earlier ones.
func Effects(effects ...Effect) []Effect { return effects }

// IncreaseAffection raises a character's affection by amount (clamped by the
// relationship store).
func IncreaseAffection(characterID string, amount int) Effect {
	return Effect{Kind: EffectIncreaseAffection, CharacterID: characterID, Amount: amount}
}

// DecreaseAffection lowers a character's affection by amount.
func DecreaseAffection(characterID string, amount int) Effect {
	return Effect{Kind: EffectDecreaseAffection, CharacterID: characterID, Amount: amount}
}

// SetMet marks a character as met. Met is monotonic until a full reset.
func SetMet(characterID string) Effect {
	return Effect{Kind: EffectSetMet, CharacterID: characterID}
}

// SetFlag sets a progress flag to a bool, number, or string value.
func SetFlag(flag string, value interface{}) Effect {
	return Effect{Kind: EffectSetFlag, Flag: flag, Value: value}
}

// ClearFlag removes a progress flag.
func ClearFlag(flag string) Effect {
	return Effect{Kind: EffectClearFlag, Flag: flag}
}

// AdvanceDay moves the in-game calendar forward. Day advance is also the
// sole point at which message triggers are evaluated.
func AdvanceDay(days int) Effect {
	return Effect{Kind: EffectAdvanceDay, Days: days}
}

// UnlockPhone enables the phone feature.
func UnlockPhone() Effect { return Effect{Kind: EffectUnlockPhone} }

// CheckSideQuests marks a checkpoint: evaluate quest triggers here.
func CheckSideQuests() Effect { return Effect{Kind: EffectCheckSideQuests} }

// EndSideQuest returns the walk to the main story.
func EndSideQuest() Effect { return Effect{Kind: EffectEndSideQuest} }

// ResolveEnding runs ending resolution and suspends the main walk.
func ResolveEnding() Effect { return Effect{Kind: EffectResolveEnding} }
