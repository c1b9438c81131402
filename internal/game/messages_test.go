package game

import (
	"testing"
	"time"

	"RacketHearts/internal/story"
)

func messageLibrary() *story.Library {
	lib := testLibrary()
	lib.Messages = []story.MessageTrigger{
		{ID: "t1", CharacterID: "a", Day: 2, StartNodeID: "m1", Title: "hey"},
		{ID: "t2", CharacterID: "b", Day: 2, Condition: story.FlagEquals("gate", true), StartNodeID: "m1", Title: "later"},
	}
	return lib
}

func messageNodes() map[story.NodeID]*story.Node {
	return map[story.NodeID]*story.Node{
		"start": {SceneID: "s1", Text: []string{"x"}, Effects: story.Effects(story.UnlockPhone())},
		"m1":    {CharacterID: "a", Text: []string{"hi"}, TypingDelayMs: 1, NextID: "m2"},
		"m2": {
			CharacterID:   "a",
			Text:          []string{"you up?"},
			TypingDelayMs: 1,
			Choices: []story.Choice{
				{Text: "always", NextID: "m3", Effects: story.Effects(story.IncreaseAffection("a", 3))},
			},
		},
		"m3": {CharacterID: "a", Text: []string{"good night"}, TypingDelayMs: 1},
	}
}

// waitFor polls cond (called with the session lock held) until it holds.
func waitFor(t *testing.T, s *Session, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.Mu.Lock()
		ok := cond()
		s.Mu.Unlock()
		if ok {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestDeliveryOnlyOnDayAdvance(t *testing.T) {
	s := newTestSession(messageLibrary(), messageNodes())
	if len(s.Inbox()) != 0 {
		t.Fatal("inbox not empty on day 1")
	}
	s.AdvanceDays(1)
	inbox := s.Inbox()
	if len(inbox) != 1 || inbox[0].TriggerID != "t1" || inbox[0].Read {
		t.Fatalf("unexpected inbox after delivery: %+v", inbox)
	}
	// Advancing again must not re-deliver.
	s.AdvanceDays(1)
	if got := len(s.Inbox()); got != 1 {
		t.Errorf("trigger delivered twice: %d entries", got)
	}
}

func TestReadNeverReturnsToUnread(t *testing.T) {
	s := newTestSession(messageLibrary(), messageNodes())
	s.AdvanceDays(1)
	s.OpenConversation("t1")
	// Further day advances re-evaluate triggers; a read thread must not
	// come back as unread.
	s.AdvanceDays(3)
	for _, e := range s.Inbox() {
		if e.TriggerID == "t1" && !e.Read {
			t.Error("read thread returned to unread")
		}
	}
	s.Mu.Lock()
	unread := append([]string(nil), s.Progress.Unread...)
	s.Mu.Unlock()
	for _, id := range unread {
		if id == "t1" {
			t.Error("t1 still in the unread set")
		}
	}
}

func TestConditionGatesDeliveryUntilItHolds(t *testing.T) {
	s := newTestSession(messageLibrary(), messageNodes())
	s.AdvanceDays(1)
	for _, e := range s.Inbox() {
		if e.TriggerID == "t2" {
			t.Fatal("gated trigger delivered")
		}
	}
	// Once the flag is set, the next day advance delivers the overdue
	// trigger.
	s.Mu.Lock()
	s.Progress.SetFlag("gate", true)
	s.Mu.Unlock()
	s.AdvanceDays(1)
	found := false
	for _, e := range s.Inbox() {
		if e.TriggerID == "t2" {
			found = true
		}
	}
	if !found {
		t.Error("overdue trigger not delivered once condition held")
	}
}

func TestOpenRequiresPhoneAndDelivery(t *testing.T) {
	nodes := messageNodes()
	nodes["start"].Effects = nil // phone stays locked
	s := newTestSession(messageLibrary(), nodes)
	s.AdvanceDays(1)
	s.OpenConversation("t1")
	s.Mu.Lock()
	conv := s.Progress.Conversation
	s.Mu.Unlock()
	if conv != nil {
		t.Error("conversation opened with phone locked")
	}

	s2 := newTestSession(messageLibrary(), messageNodes())
	s2.OpenConversation("t1") // not delivered yet
	s2.Mu.Lock()
	conv = s2.Progress.Conversation
	s2.Mu.Unlock()
	if conv != nil {
		t.Error("undelivered conversation opened")
	}
}

func TestConversationWalkAndTranscript(t *testing.T) {
	s := newTestSession(messageLibrary(), messageNodes())
	s.AdvanceDays(1)
	s.OpenConversation("t1")

	for _, e := range s.Inbox() {
		if e.TriggerID == "t1" && !e.Read {
			t.Error("opened thread still unread")
		}
	}

	// The walk types m1, chains to m2, and waits on the reply.
	waitFor(t, s, "reply choices", func() bool {
		conv := s.Progress.Conversation
		return conv != nil && !conv.Typing && conv.NodeID == "m2"
	})
	s.Mu.Lock()
	transcript := append([]TranscriptEntry(nil), s.Progress.Conversation.Transcript...)
	s.Mu.Unlock()
	if len(transcript) != 2 || transcript[0].Text != "hi" || transcript[1].Text != "you up?" {
		t.Fatalf("unexpected transcript: %+v", transcript)
	}
	if transcript[0].Sender != "a" {
		t.Errorf("wrong sender %q", transcript[0].Sender)
	}

	replies := s.ReplyChoices()
	if len(replies) != 1 {
		t.Fatalf("want 1 reply, got %+v", replies)
	}
	s.ChooseReply(0)

	// The reply lands as a player bubble, its effects apply, and the
	// terminal bubble finishes the thread.
	waitFor(t, s, "conversation end", func() bool {
		return s.Progress.Conversation == nil
	})
	if got := s.Relationships.Affection("a"); got != 13 {
		t.Errorf("reply effects not applied: %d", got)
	}
	s.Mu.Lock()
	stored := s.Progress.Transcripts["t1"]
	s.Mu.Unlock()
	if len(stored) != 4 {
		t.Fatalf("stored transcript has %d entries: %+v", len(stored), stored)
	}
	if stored[2].Sender != story.PlayerID || stored[2].Text != "always" {
		t.Errorf("player bubble wrong: %+v", stored[2])
	}
	if stored[3].Text != "good night" {
		t.Errorf("terminal bubble wrong: %+v", stored[3])
	}
}

func TestCloseDuringTypingResumesOnReopen(t *testing.T) {
	nodes := messageNodes()
	nodes["m1"].TypingDelayMs = 50
	s := newTestSession(messageLibrary(), nodes)
	s.AdvanceDays(1)
	s.OpenConversation("t1")
	s.CloseConversation()

	s.Mu.Lock()
	conv := s.Progress.Conversation
	typing := conv != nil && conv.Typing
	s.Mu.Unlock()
	if !typing {
		t.Fatal("closed conversation lost its typing state")
	}

	s.OpenConversation("t1")
	waitFor(t, s, "bubble after reopen", func() bool {
		conv := s.Progress.Conversation
		return conv != nil && len(conv.Transcript) > 0
	})
}

func TestSkipTypingRevealsBubbleNow(t *testing.T) {
	nodes := messageNodes()
	nodes["m1"].TypingDelayMs = 60000 // would never fire during the test
	s := newTestSession(messageLibrary(), nodes)
	s.AdvanceDays(1)
	s.OpenConversation("t1")

	s.Mu.Lock()
	typing := s.Progress.Conversation != nil && s.Progress.Conversation.Typing
	s.Mu.Unlock()
	if !typing {
		t.Fatal("conversation not typing")
	}

	s.SkipTyping()
	s.Mu.Lock()
	conv := s.Progress.Conversation
	got := len(conv.Transcript)
	s.Mu.Unlock()
	if got == 0 {
		t.Fatal("skip did not reveal the bubble")
	}
	// The skipped timer must never fire a duplicate.
	waitFor(t, s, "walk to reach the reply node", func() bool {
		conv := s.Progress.Conversation
		return conv != nil && !conv.Typing && conv.NodeID == "m2"
	})
	s.Mu.Lock()
	transcript := append([]TranscriptEntry(nil), s.Progress.Conversation.Transcript...)
	s.Mu.Unlock()
	if len(transcript) != 2 {
		t.Errorf("duplicate or missing bubbles: %+v", transcript)
	}
}

func TestFinishedThreadDoesNotRestart(t *testing.T) {
	s := newTestSession(messageLibrary(), messageNodes())
	s.AdvanceDays(1)
	s.OpenConversation("t1")
	waitFor(t, s, "reply choices", func() bool {
		conv := s.Progress.Conversation
		return conv != nil && !conv.Typing && conv.NodeID == "m2"
	})
	s.ChooseReply(0)
	waitFor(t, s, "conversation end", func() bool {
		return s.Progress.Conversation == nil
	})
	affection := s.Relationships.Affection("a")

	s.OpenConversation("t1")
	s.Mu.Lock()
	conv := s.Progress.Conversation
	s.Mu.Unlock()
	if conv != nil {
		t.Error("finished thread restarted")
	}
	if got := s.Relationships.Affection("a"); got != affection {
		t.Errorf("reopening a finished thread re-applied effects: %d != %d", got, affection)
	}
}
