package game

import (
	"log"

	"RacketHearts/internal/story"
)

// TranscriptEntry is one bubble of a phone conversation. Sender is a
// character id, or story.PlayerID for the player's replies.
type TranscriptEntry struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Conversation is an in-flight phone thread. It lives in Progress so a
// save taken mid-conversation resumes where it left off; the typing timer
// itself is transient and owned by the Session.
type Conversation struct {
	TriggerID  string            `json:"trigger_id"`
	NodeID     story.NodeID      `json:"node_id"`
	Typing     bool              `json:"typing"`
	Transcript []TranscriptEntry `json:"transcript,omitempty"`
}

// Progress is the story-walk state: where the player is, what they have
// done, and everything the phone knows. Not self-locking; the owning
// Session serializes access.
type Progress struct {
	NodeID    story.NodeID `json:"node_id"`
	PartIndex int          `json:"part_index,omitempty"` // within the node's Text
	SceneID   string       `json:"scene_id,omitempty"`

	Flags map[string]interface{} `json:"flags"`
	Day   int                    `json:"day"`

	PhoneUnlocked bool `json:"phone_unlocked,omitempty"`

	// Side-quest suspension. InSideQuest true implies ReturnNodeID set;
	// the pair changes together or not at all.
	InSideQuest  bool         `json:"in_side_quest,omitempty"`
	ReturnNodeID story.NodeID `json:"return_node_id,omitempty"`

	ActiveEndingID   string `json:"active_ending_id,omitempty"`
	ActiveMinigameID string `json:"active_minigame_id,omitempty"`

	// Message delivery state. A trigger id lives in exactly one of
	// Unread/Read once delivered; unread to read is one-way.
	Unread      []string                     `json:"unread,omitempty"`
	Read        []string                     `json:"read,omitempty"`
	Transcripts map[string][]TranscriptEntry `json:"transcripts,omitempty"`

	Conversation *Conversation `json:"conversation,omitempty"`
}

// NewProgress returns day-one state positioned at the start node.
func NewProgress(start story.NodeID) *Progress {
	return &Progress{
		NodeID:      start,
		Flags:       make(map[string]interface{}),
		Day:         1,
		Transcripts: make(map[string][]TranscriptEntry),
	}
}

// Flag returns a progress flag and whether it is set.
func (p *Progress) Flag(name string) (interface{}, bool) {
	v, ok := p.Flags[name]
	return v, ok
}

// SetFlag stores a flag value (bool, number, or string).
func (p *Progress) SetFlag(name string, value interface{}) {
	if p.Flags == nil {
		p.Flags = make(map[string]interface{})
	}
	p.Flags[name] = value
}

// ClearFlag removes a flag. Clearing an absent flag is a no-op.
func (p *Progress) ClearFlag(name string) {
	delete(p.Flags, name)
}

// EnterSideQuest suspends the main walk. Refused while already suspended;
// side quests do not nest.
func (p *Progress) EnterSideQuest(returnTo story.NodeID) bool {
	if p.InSideQuest {
		log.Printf("[story] side quest start refused: already in one (return %s)", p.ReturnNodeID)
		return false
	}
	p.InSideQuest = true
	p.ReturnNodeID = returnTo
	return true
}

// LeaveSideQuest ends the suspension and returns the stored return address.
// Both fields clear together.
func (p *Progress) LeaveSideQuest() (story.NodeID, bool) {
	if !p.InSideQuest {
		log.Printf("[story] side quest end with none active")
		return "", false
	}
	ret := p.ReturnNodeID
	p.InSideQuest = false
	p.ReturnNodeID = ""
	return ret, true
}

// Delivered reports whether a message trigger has already fired.
func (p *Progress) Delivered(triggerID string) bool {
	return contains(p.Unread, triggerID) || contains(p.Read, triggerID)
}

// Deliver puts a trigger in the unread inbox. Re-delivery is refused.
func (p *Progress) Deliver(triggerID string) bool {
	if p.Delivered(triggerID) {
		return false
	}
	p.Unread = append(p.Unread, triggerID)
	return true
}

// MarkRead moves a trigger from unread to read. Already-read stays read.
func (p *Progress) MarkRead(triggerID string) {
	for i, id := range p.Unread {
		if id == triggerID {
			p.Unread = append(p.Unread[:i], p.Unread[i+1:]...)
			if !contains(p.Read, triggerID) {
				p.Read = append(p.Read, triggerID)
			}
			return
		}
	}
	if !contains(p.Read, triggerID) {
		log.Printf("[story] mark-read for undelivered trigger %q", triggerID)
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
