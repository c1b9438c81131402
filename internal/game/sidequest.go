package game

import (
	"log"

	"RacketHearts/internal/story"
)

// checkSideQuests runs the trigger scan at a checkpoint node. Triggers are
// evaluated in authored order and at most one fires; its entry node takes
// over the walk and the checkpoint's own next becomes the return address.
// Inside a side quest the scan is skipped entirely: quests do not nest.
func (s *Session) checkSideQuests(at story.NodeID) {
	if s.Progress.InSideQuest {
		return
	}
	node := s.Graph.Node(at)
	if node == nil {
		log.Printf("[story] side quest check from missing node %q", at)
		return
	}
	for i := range s.Library.Quests {
		q := &s.Library.Quests[i]
		if _, done := s.Progress.Flag(q.CompletedFlag); done {
			continue
		}
		if s.Relationships.Affection(q.CharacterID) < q.Threshold {
			continue
		}
		if !s.evalCondition(q.RequiredFlag) {
			continue
		}
		if s.Graph.Node(q.EntryNodeID) == nil {
			log.Printf("[story] quest %s entry node %q missing; skipped", q.ID, q.EntryNodeID)
			continue
		}
		if !s.Progress.EnterSideQuest(node.NextID) {
			return
		}
		log.Printf("[story] side quest %s starts (return %s)", q.ID, node.NextID)
		s.enterNode(q.EntryNodeID)
		return
	}
}

// endSideQuest resumes the main walk at the stored return address. A
// missing or dangling address falls back to the start node, the one id
// guaranteed to exist; the story restarts rather than wedging.
func (s *Session) endSideQuest() {
	ret, ok := s.Progress.LeaveSideQuest()
	if !ok {
		return
	}
	if ret == "" || s.Graph.Node(ret) == nil {
		log.Printf("[story] side quest return %q missing; falling back to %s", ret, s.Library.StartNodeID)
		ret = s.Library.StartNodeID
	}
	s.enterNode(ret)
}
