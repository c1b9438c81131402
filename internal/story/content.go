package story

import "sort"

// Character is static authored data for one cast member.
type Character struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	InitialAffection int    `json:"initial_affection"`
	LoveInterest     bool   `json:"love_interest"`
}

// Scene names a background location. Opaque to the engine; the client maps
// the id to an image.
type Scene struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
}

// Ending is one authored final outcome.
type Ending struct {
	ID          string   `json:"id"`
	CharacterID string   `json:"character_id,omitempty"` // empty for the universal ending
	Name        string   `json:"name"`
	Text        []string `json:"text"`
	CGPath      string   `json:"cg_path,omitempty"`
	Good        bool     `json:"good"`
}

// CalendarEvent is a schedule entry shown in the phone app.
type CalendarEvent struct {
	ID          string `json:"id"`
	Day         int    `json:"day"`
	TimeOfDay   string `json:"time_of_day,omitempty"` // morning, afternoon, evening
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SceneID     string `json:"scene_id,omitempty"`
	CharacterID string `json:"character_id,omitempty"`
	Major       bool   `json:"major,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// QuestTrigger gates a side quest behind relationship state. Triggers are
// evaluated in declared order at checkpoint nodes; the first qualifying,
// not-yet-completed trigger fires, and at most one fires per checkpoint.
type QuestTrigger struct {
	ID            string     `json:"id"`
	CharacterID   string     `json:"character_id"`
	Threshold     int        `json:"threshold"`                // minimum affection, inclusive
	RequiredFlag  *Condition `json:"required_flag,omitempty"`  // optional extra gate
	CompletedFlag string     `json:"completed_flag"`           // set by the quest's terminal node
	EntryNodeID   NodeID     `json:"entry_node_id"`
}

// MessageTrigger schedules an incoming phone message. Its sub-graph lives in
// the same node namespace but is walked on the conversation cursor.
type MessageTrigger struct {
	ID          string     `json:"id"`
	CharacterID string     `json:"character_id"`
	Day         int        `json:"day"`
	Condition   *Condition `json:"condition,omitempty"`
	StartNodeID NodeID     `json:"start_node_id"`
	Title       string     `json:"title"`
}

// Library bundles all static authored content for one game.
type Library struct {
	Characters map[string]Character
	Scenes     map[string]Scene
	Endings    map[string]Ending
	Calendar   []CalendarEvent
	Quests     []QuestTrigger
	Messages   []MessageTrigger

	// RomanceOrder fixes the iteration order for ending resolution. Map
	// iteration order is not a tie-break policy.
	RomanceOrder []string

	// StartNodeID is where a new game begins and the known-safe fallback
	// when a walk must recover.
	StartNodeID NodeID

	// FallbackEndingID is the universal ending used when no character
	// qualifies, qualifying characters tie, or an ending id is unauthored.
	FallbackEndingID string
}

// Character returns the authored character, or a zero value and false.
func (l *Library) Character(id string) (Character, bool) {
	c, ok := l.Characters[id]
	return c, ok
}

// UpcomingEvents returns calendar events in [day, day+lookahead), soonest
// first.
func (l *Library) UpcomingEvents(day, lookahead int) []CalendarEvent {
	var events []CalendarEvent
	for _, ev := range l.Calendar {
		if ev.Day >= day && ev.Day < day+lookahead {
			events = append(events, ev)
		}
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Day < events[j].Day })
	return events
}

// MessageTrigger returns the trigger with the given id, or nil.
func (l *Library) MessageTrigger(id string) *MessageTrigger {
	for i := range l.Messages {
		if l.Messages[i].ID == id {
			return &l.Messages[i]
		}
	}
	return nil
}
