// Package story implements the dialogue graph model for the narrative engine:
// nodes, choices, and the effect/condition mini-language, plus the authored
// content tables (characters, scenes, endings, triggers).
//
// The graph is static authored data, merged and validated at boot time.
// Effects and conditions are tagged data interpreted by the game layer, so
// content stays serializable and inspectable.
package story

import (
	"fmt"
	"log"
)

// NodeID uniquely identifies a node in the dialogue graph.
type NodeID string

// NodeType categorizes how a node is presented.
type NodeType string

const (
	// NodeDialogue is an ordinary dialogue or narration beat.
	NodeDialogue NodeType = "dialogue"
	// NodeEventTitle is a full-screen interstitial title card. Presentation
	// only: entry, effects, and advance behave exactly like dialogue.
	NodeEventTitle NodeType = "event_title"
)

// AudioCue names background music or a sound effect to start on node entry.
// Pass-through notification for the client; the engine never interprets it.
type AudioCue struct {
	BGM string `json:"bgm,omitempty"`
	SFX string `json:"sfx,omitempty"`
}

// Choice is a player-selectable branch out of a node.
type Choice struct {
	Text      string     `json:"text"`
	NextID    NodeID     `json:"next_id"`
	Condition *Condition `json:"condition,omitempty"` // hidden entirely when false
	Effects   []Effect   `json:"effects,omitempty"`   // applied once, on selection
}

// Node is a single beat in the dialogue graph.
//
// Text holds the dialogue parts in order; multi-part nodes require one
// advance per part, and transition logic only applies after the last part.
// A node with no choices, no NextID, and no MinigameID is terminal.
type Node struct {
	ID            NodeID    `json:"id"`
	Type          NodeType  `json:"type,omitempty"` // empty means dialogue
	SceneID       string    `json:"scene_id"`
	CharacterID   string    `json:"character_id,omitempty"` // empty means narration
	Expression    string    `json:"expression,omitempty"`   // cosmetic sprite variant
	Text          []string  `json:"text,omitempty"`
	EventTitle    string    `json:"event_title,omitempty"`
	Choices       []Choice  `json:"choices,omitempty"`
	NextID        NodeID    `json:"next_id,omitempty"`
	MinigameID    string    `json:"minigame_id,omitempty"`
	TypingDelayMs int       `json:"typing_delay_ms,omitempty"` // message threads only
	Audio         *AudioCue `json:"audio,omitempty"`
	Effects       []Effect  `json:"effects,omitempty"` // applied once, on entry
}

// IsTerminal reports whether the node offers no way forward.
func (n *Node) IsTerminal() bool {
	return len(n.Choices) == 0 && n.NextID == "" && n.MinigameID == ""
}

// Graph is the merged, immutable dialogue graph.
type Graph struct {
	Nodes map[NodeID]*Node
}

// NewGraph merges the provided node sets into one graph: main story, side
// quests, and message threads share the namespace, and later sets win on
// key collision. The map key is the canonical node ID: a
// node whose declared ID disagrees with its key is rewritten to the key, so
// stale declared IDs cannot cause silent drift.
func NewGraph(sets ...map[NodeID]*Node) *Graph {
	g := &Graph{Nodes: make(map[NodeID]*Node)}
	for _, set := range sets {
		for id, node := range set {
			if node == nil {
				continue
			}
			if node.ID != "" && node.ID != id {
				log.Printf("[story] node keyed %q declares id %q; using key", id, node.ID)
			}
			node.ID = id
			if _, dup := g.Nodes[id]; dup {
				log.Printf("[story] node %q redefined by a later content set", id)
			}
			g.Nodes[id] = node
		}
	}
	return g
}

// Node returns the node with the given id, or nil if there is none. A
// missing id is an expected end-of-content condition, not an error.
func (g *Graph) Node(id NodeID) *Node {
	if id == "" {
		return nil
	}
	return g.Nodes[id]
}

// Lint reports authoring problems: dangling references and terminal nodes.
// Graph integrity is an authoring-time concern; callers log these at boot
// and the engine stays fail-soft at runtime.
func (g *Graph) Lint() []string {
	var problems []string
	for id, node := range g.Nodes {
		if node.NextID != "" && g.Nodes[node.NextID] == nil {
			problems = append(problems, fmt.Sprintf("node %s: next %q does not exist", id, node.NextID))
		}
		for i, choice := range node.Choices {
			if choice.NextID == "" {
				problems = append(problems, fmt.Sprintf("node %s: choice %d has no target", id, i))
			} else if g.Nodes[choice.NextID] == nil {
				problems = append(problems, fmt.Sprintf("node %s: choice %d targets %q which does not exist", id, i, choice.NextID))
			}
		}
		if node.IsTerminal() && !endsWalk(node) {
			problems = append(problems, fmt.Sprintf("node %s: terminal (no choices, next, or minigame)", id))
		}
	}
	return problems
}

// endsWalk reports whether a terminal node is deliberately terminal: it ends
// a side quest, resolves an ending, or closes a message thread (message
// terminals persist the transcript, so plain terminals are normal there).
func endsWalk(n *Node) bool {
	for _, e := range n.Effects {
		if e.Kind == EffectEndSideQuest || e.Kind == EffectResolveEnding {
			return true
		}
	}
	return n.TypingDelayMs > 0
}
