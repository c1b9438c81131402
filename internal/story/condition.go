package story

// ConditionKind names one predicate in the fixed condition vocabulary.
type ConditionKind string

const (
	CondHasMet         ConditionKind = "has_met"
	CondAffectionAbove ConditionKind = "affection_above"
	CondAffectionBelow ConditionKind = "affection_below"
	CondFlagEquals     ConditionKind = "flag_equals"
	// CondAllOf is true when every sub-condition is true. The data-shaped
	// equivalent of the inline && predicates the content vocabulary needs.
	CondAllOf ConditionKind = "all_of"
)

// Condition is a side-effect-free predicate over progress and relationship
// state, as data. Evaluation lives in the game layer and is fail-closed:
// anything that goes wrong reads as false.
type Condition struct {
	Kind        ConditionKind `json:"kind"`
	CharacterID string        `json:"character_id,omitempty"`
	Threshold   int           `json:"threshold,omitempty"`
	Flag        string        `json:"flag,omitempty"`
	Value       interface{}   `json:"value,omitempty"`
	All         []Condition   `json:"all,omitempty"`
}

// HasMet is true once the character has been met.
func HasMet(characterID string) *Condition {
	return &Condition{Kind: CondHasMet, CharacterID: characterID}
}

// AffectionAbove is true when the character's affection is strictly above
// threshold.
func AffectionAbove(characterID string, threshold int) *Condition {
	return &Condition{Kind: CondAffectionAbove, CharacterID: characterID, Threshold: threshold}
}

// AffectionBelow is true when the character's affection is strictly below
// threshold.
func AffectionBelow(characterID string, threshold int) *Condition {
	return &Condition{Kind: CondAffectionBelow, CharacterID: characterID, Threshold: threshold}
}

// FlagEquals is true when the progress flag holds exactly value.
func FlagEquals(flag string, value interface{}) *Condition {
	return &Condition{Kind: CondFlagEquals, Flag: flag, Value: value}
}

// AllOf combines conditions conjunctively.
func AllOf(conditions ...*Condition) *Condition {
	all := make([]Condition, 0, len(conditions))
	for _, c := range conditions {
		if c != nil {
			all = append(all, *c)
		}
	}
	return &Condition{Kind: CondAllOf, All: all}
}
