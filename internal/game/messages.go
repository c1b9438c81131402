package game

import (
	"log"
	"time"

	"RacketHearts/internal/story"
)

// advanceDay moves the calendar and runs message delivery. Delivery is
// evaluated only here: a trigger whose day has arrived and whose condition
// holds lands in the unread inbox exactly once, ever.
func (s *Session) advanceDay(days int) {
	if days <= 0 {
		log.Printf("[story] day advance of %d ignored", days)
		return
	}
	s.Progress.Day += days
	for i := range s.Library.Messages {
		t := &s.Library.Messages[i]
		if t.Day > s.Progress.Day || s.Progress.Delivered(t.ID) {
			continue
		}
		if !s.evalCondition(t.Condition) {
			continue
		}
		if s.Progress.Deliver(t.ID) {
			log.Printf("[story] message %s from %s delivered on day %d", t.ID, t.CharacterID, s.Progress.Day)
		}
	}
}

// AdvanceDays is the out-of-band day skip (debug and test clients). Same
// delivery semantics as the advance_day effect.
func (s *Session) AdvanceDays(days int) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.Progress.ActiveEndingID != "" {
		return
	}
	s.advanceDay(days)
}

// InboxEntry is one thread in the phone's message list.
type InboxEntry struct {
	TriggerID   string `json:"trigger_id"`
	CharacterID string `json:"character_id"`
	Title       string `json:"title"`
	Read        bool   `json:"read"`
}

// Inbox lists delivered threads, unread first, each group in delivery
// order.
func (s *Session) Inbox() []InboxEntry {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.inbox()
}

func (s *Session) inbox() []InboxEntry {
	var out []InboxEntry
	add := func(ids []string, read bool) {
		for _, id := range ids {
			t := s.Library.MessageTrigger(id)
			if t == nil {
				log.Printf("[story] delivered trigger %q has no authored entry", id)
				continue
			}
			out = append(out, InboxEntry{TriggerID: id, CharacterID: t.CharacterID, Title: t.Title, Read: read})
		}
	}
	add(s.Progress.Unread, false)
	add(s.Progress.Read, true)
	return out
}

// OpenConversation opens a delivered thread. Opening an unread thread
// marks it read and starts the conversation walk; reopening the thread
// currently in flight resumes it; a finished thread keeps its stored
// transcript and nothing restarts.
func (s *Session) OpenConversation(triggerID string) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.Progress.ActiveEndingID != "" {
		return
	}
	if !s.Progress.PhoneUnlocked {
		log.Printf("[story] open of %q with phone locked", triggerID)
		return
	}
	t := s.Library.MessageTrigger(triggerID)
	if t == nil {
		log.Printf("[story] open of unknown trigger %q", triggerID)
		return
	}
	if !s.Progress.Delivered(triggerID) {
		log.Printf("[story] open of undelivered trigger %q", triggerID)
		return
	}
	if conv := s.Progress.Conversation; conv != nil {
		if conv.TriggerID == triggerID {
			if conv.Typing && s.typingTimer == nil {
				s.armTypingTimer(conv.NodeID)
			}
			return
		}
		// Switching threads abandons the old walk; keep what was shown.
		s.stopTyping()
		s.Progress.Transcripts[conv.TriggerID] = conv.Transcript
		s.Progress.Conversation = nil
	}
	s.Progress.MarkRead(triggerID)
	if _, done := s.Progress.Transcripts[triggerID]; done {
		return
	}
	s.Progress.Conversation = &Conversation{TriggerID: triggerID}
	s.conversationEnter(t.StartNodeID)
}

// conversationEnter moves the conversation cursor. Incoming bubbles with a
// typing delay hold here until the timer fires; everything else lands in
// the transcript immediately and the walk continues.
func (s *Session) conversationEnter(id story.NodeID) {
	conv := s.Progress.Conversation
	if conv == nil {
		return
	}
	node := s.Graph.Node(id)
	if node == nil {
		log.Printf("[story] conversation %s hit missing node %q; closing", conv.TriggerID, id)
		s.finishConversation()
		return
	}
	conv.NodeID = id
	if node.TypingDelayMs > 0 {
		conv.Typing = true
		s.armTypingTimer(id)
		return
	}
	s.deliverBubble(node)
}

// armTypingTimer schedules the bubble for the node currently typing. The
// generation counter makes stale fires (after a close, switch, or load)
// harmless.
func (s *Session) armTypingTimer(id story.NodeID) {
	node := s.Graph.Node(id)
	if node == nil {
		return
	}
	delay := time.Duration(float64(node.TypingDelayMs)*s.Tuning.TypingDelayScale) * time.Millisecond
	s.typingGen++
	gen := s.typingGen
	s.typingTimer = time.AfterFunc(delay, func() {
		s.Mu.Lock()
		defer s.Mu.Unlock()
		s.onTypingDone(gen, id)
	})
}

func (s *Session) onTypingDone(gen int, id story.NodeID) {
	if gen != s.typingGen {
		return
	}
	s.typingTimer = nil
	conv := s.Progress.Conversation
	if conv == nil || conv.NodeID != id || !conv.Typing {
		return
	}
	conv.Typing = false
	node := s.Graph.Node(id)
	if node == nil {
		s.finishConversation()
		return
	}
	s.deliverBubble(node)
}

// deliverBubble appends the node's text to the transcript, applies its
// entry effects, and continues the walk: wait on choices, chain into the
// next bubble, or finish on a terminal.
func (s *Session) deliverBubble(node *story.Node) {
	conv := s.Progress.Conversation
	if conv == nil {
		return
	}
	sender := node.CharacterID
	if sender == "" {
		sender = story.PlayerID
	}
	for _, part := range node.Text {
		conv.Transcript = append(conv.Transcript, TranscriptEntry{Sender: sender, Text: part})
	}
	s.applyEffects(node.ID, node.Effects)
	if s.Progress.Conversation != conv {
		return
	}
	if len(node.Choices) > 0 {
		return
	}
	if node.NextID != "" {
		s.conversationEnter(node.NextID)
		return
	}
	s.finishConversation()
}

// ReplyChoices returns the selectable replies for the open conversation.
// Empty while a bubble is still typing.
func (s *Session) ReplyChoices() []ChoiceView {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.replyChoices()
}

func (s *Session) replyChoices() []ChoiceView {
	conv := s.Progress.Conversation
	if conv == nil || conv.Typing {
		return nil
	}
	node := s.Graph.Node(conv.NodeID)
	if node == nil {
		return nil
	}
	var out []ChoiceView
	for i, c := range node.Choices {
		if s.evalCondition(c.Condition) {
			out = append(out, ChoiceView{Index: i, Text: c.Text})
		}
	}
	return out
}

// ChooseReply sends the indexed reply: the choice text becomes a player
// bubble, the choice effects apply, and the walk continues at its target.
func (s *Session) ChooseReply(index int) {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	conv := s.Progress.Conversation
	if conv == nil || conv.Typing || s.Progress.ActiveEndingID != "" {
		return
	}
	node := s.Graph.Node(conv.NodeID)
	if node == nil {
		return
	}
	if index < 0 || index >= len(node.Choices) {
		log.Printf("[story] reply index %d out of range on %s", index, node.ID)
		return
	}
	choice := node.Choices[index]
	if !s.evalCondition(choice.Condition) {
		log.Printf("[story] reply %d on %s is hidden; refused", index, node.ID)
		return
	}
	conv.Transcript = append(conv.Transcript, TranscriptEntry{Sender: story.PlayerID, Text: choice.Text})
	s.applyEffects(node.ID, choice.Effects)
	if s.Progress.Conversation != conv {
		return
	}
	if choice.NextID == "" {
		s.finishConversation()
		return
	}
	s.conversationEnter(choice.NextID)
}

// SkipTyping reveals the currently typing bubble immediately, the way a
// tap skips a text crawl. No-op when nothing is typing.
func (s *Session) SkipTyping() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	conv := s.Progress.Conversation
	if conv == nil || !conv.Typing {
		return
	}
	s.stopTyping()
	conv.Typing = false
	node := s.Graph.Node(conv.NodeID)
	if node == nil {
		s.finishConversation()
		return
	}
	s.deliverBubble(node)
}

// CloseConversation puts the phone away. The walk stays in Progress (a
// half-read thread resumes on reopen); only the timer is torn down.
func (s *Session) CloseConversation() {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.stopTyping()
}

// finishConversation persists the transcript under the trigger id and
// clears the conversation pointer.
func (s *Session) finishConversation() {
	conv := s.Progress.Conversation
	if conv == nil {
		return
	}
	s.stopTyping()
	s.Progress.Transcripts[conv.TriggerID] = conv.Transcript
	s.Progress.Conversation = nil
	log.Printf("[story] conversation %s finished (%d entries)", conv.TriggerID, len(conv.Transcript))
}

// stopTyping cancels any scheduled bubble. Conversation state is left
// alone; a node still marked typing re-arms on resume.
func (s *Session) stopTyping() {
	s.typingGen++
	if s.typingTimer != nil {
		s.typingTimer.Stop()
		s.typingTimer = nil
	}
}
