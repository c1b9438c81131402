package game

import (
	"RacketHearts/internal/story"
)

// NodeView is the current beat as the client should draw it: one text
// part at a time.
type NodeView struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	SceneID     string          `json:"scene_id,omitempty"`
	CharacterID string          `json:"character_id,omitempty"`
	Expression  string          `json:"expression,omitempty"`
	Text        string          `json:"text,omitempty"`
	Part        int             `json:"part"`
	Parts       int             `json:"parts"`
	EventTitle  string          `json:"event_title,omitempty"`
	Audio       *story.AudioCue `json:"audio,omitempty"`
}

// RelationshipView pairs live relationship state with the authored name.
type RelationshipView struct {
	Name         string `json:"name"`
	Affection    int    `json:"affection"`
	Met          bool   `json:"met"`
	LoveInterest bool   `json:"love_interest"`
}

// ConversationView is the open phone thread.
type ConversationView struct {
	TriggerID   string            `json:"trigger_id"`
	CharacterID string            `json:"character_id"`
	Typing      bool              `json:"typing"`
	Transcript  []TranscriptEntry `json:"transcript,omitempty"`
	Replies     []ChoiceView      `json:"replies,omitempty"`
}

// EndingView is the resolved ending, ready to roll.
type EndingView struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Text   []string `json:"text"`
	CGPath string   `json:"cg_path,omitempty"`
	Good   bool     `json:"good"`
}

// View is one consistent snapshot of everything the client renders,
// assembled under a single lock acquisition.
type View struct {
	Day           int    `json:"day"`
	SceneID       string `json:"scene_id,omitempty"`
	PhoneUnlocked bool   `json:"phone_unlocked"`
	InSideQuest   bool   `json:"in_side_quest"`

	Node       *NodeView    `json:"node,omitempty"`
	Choices    []ChoiceView `json:"choices,omitempty"`
	MinigameID string       `json:"minigame_id,omitempty"`

	Relationships    map[string]RelationshipView `json:"relationships"`
	AffectionChanges []AffectionChange           `json:"affection_changes,omitempty"`

	Inbox        []InboxEntry      `json:"inbox,omitempty"`
	Conversation *ConversationView `json:"conversation,omitempty"`

	Calendar []story.CalendarEvent `json:"calendar,omitempty"`

	Ending          *EndingView `json:"ending,omitempty"`
	UnlockedEndings []string    `json:"unlocked_endings,omitempty"`
}

// RenderView assembles the client state. Draining the affection queue is
// the one side effect: each change is reported exactly once.
func (s *Session) RenderView() View {
	s.Mu.Lock()
	defer s.Mu.Unlock()

	v := View{
		Day:              s.Progress.Day,
		SceneID:          s.Progress.SceneID,
		PhoneUnlocked:    s.Progress.PhoneUnlocked,
		InSideQuest:      s.Progress.InSideQuest,
		MinigameID:       s.Progress.ActiveMinigameID,
		AffectionChanges: s.Relationships.DrainChanges(),
		Relationships:    make(map[string]RelationshipView),
		UnlockedEndings:  s.Meta.UnlockedEndings(),
	}

	for id, rel := range s.Relationships.byID {
		c := s.Library.Characters[id]
		v.Relationships[id] = RelationshipView{
			Name:         c.Name,
			Affection:    rel.Affection,
			Met:          rel.Met,
			LoveInterest: c.LoveInterest,
		}
	}

	if node := s.node(); node != nil && s.Progress.ActiveEndingID == "" {
		nv := &NodeView{
			ID:          string(node.ID),
			Type:        string(node.Type),
			SceneID:     node.SceneID,
			CharacterID: node.CharacterID,
			Expression:  node.Expression,
			Part:        s.Progress.PartIndex,
			Parts:       len(node.Text),
			EventTitle:  node.EventTitle,
			Audio:       node.Audio,
		}
		if nv.Type == "" {
			nv.Type = string(story.NodeDialogue)
		}
		if s.Progress.PartIndex < len(node.Text) {
			nv.Text = node.Text[s.Progress.PartIndex]
		}
		v.Node = nv
		v.Choices = s.visibleChoices()
	}

	if s.Progress.PhoneUnlocked {
		v.Inbox = s.inbox()
		v.Calendar = s.Library.UpcomingEvents(s.Progress.Day, s.Tuning.CalendarLookaheadDays)
	}

	if conv := s.Progress.Conversation; conv != nil {
		cv := &ConversationView{
			TriggerID:  conv.TriggerID,
			Typing:     conv.Typing,
			Transcript: conv.Transcript,
			Replies:    s.replyChoices(),
		}
		if t := s.Library.MessageTrigger(conv.TriggerID); t != nil {
			cv.CharacterID = t.CharacterID
		}
		v.Conversation = cv
	}

	if id := s.Progress.ActiveEndingID; id != "" {
		if e, ok := s.Library.Endings[id]; ok {
			v.Ending = &EndingView{ID: e.ID, Name: e.Name, Text: e.Text, CGPath: e.CGPath, Good: e.Good}
		} else {
			v.Ending = &EndingView{ID: id}
		}
	}

	return v
}
