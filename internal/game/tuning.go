package game

// Tuning holds the numeric knobs the server operator can override from a
// JSON config file. Zero values are replaced by defaults at load time.
type Tuning struct {
	// EndingThreshold is the minimum affection for a character ending.
	EndingThreshold int `json:"ending_threshold"`
	// CalendarLookaheadDays bounds the phone schedule view.
	CalendarLookaheadDays int `json:"calendar_lookahead_days"`
	// TypingDelayScale stretches or shrinks authored message typing delays.
	TypingDelayScale float64 `json:"typing_delay_scale"`
}

// DefaultTuning returns the shipped values.
func DefaultTuning() Tuning {
	return Tuning{
		EndingThreshold:       80,
		CalendarLookaheadDays: 3,
		TypingDelayScale:      1.0,
	}
}

// Normalize fills zeroed fields with defaults so a partial JSON override
// never turns a knob off entirely.
func (t Tuning) Normalize() Tuning {
	def := DefaultTuning()
	if t.EndingThreshold <= 0 {
		t.EndingThreshold = def.EndingThreshold
	}
	if t.CalendarLookaheadDays <= 0 {
		t.CalendarLookaheadDays = def.CalendarLookaheadDays
	}
	if t.TypingDelayScale <= 0 {
		t.TypingDelayScale = def.TypingDelayScale
	}
	return t
}
