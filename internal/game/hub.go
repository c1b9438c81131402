package game

import (
	"log"
	"sync"
	"time"

	"RacketHearts/internal/story"
)

// Hub owns the live sessions, keyed by session id. Creation is lazy: the
// first lookup for an id starts a fresh playthrough.
type Hub struct {
	Mu       sync.Mutex
	Sessions map[string]*Session

	graph   *story.Graph
	library *story.Library
	tuning  Tuning
	meta    *Meta
}

// NewHub creates a hub serving the given content.
func NewHub(graph *story.Graph, lib *story.Library, tuning Tuning, meta *Meta) *Hub {
	return &Hub{
		Sessions: map[string]*Session{},
		graph:    graph,
		library:  lib,
		tuning:   tuning.Normalize(),
		meta:     meta,
	}
}

// Get returns the session for id, creating it on first use.
func (h *Hub) Get(id string) *Session {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	s, ok := h.Sessions[id]
	if !ok {
		s = NewSession(id, h.graph, h.library, h.tuning, h.meta)
		h.Sessions[id] = s
		log.Printf("[story] session %s created", id)
	}
	s.Touch()
	return s
}

// Sweep drops sessions idle longer than ttl and reports how many died.
func (h *Hub) Sweep(ttl time.Duration) int {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	now := time.Now()
	dropped := 0
	for id, s := range h.Sessions {
		if s.IdleSince(now) > ttl {
			s.Mu.Lock()
			s.stopTyping()
			s.Mu.Unlock()
			delete(h.Sessions, id)
			dropped++
			log.Printf("[story] session %s expired", id)
		}
	}
	return dropped
}

// Meta exposes the shared cross-playthrough state.
func (h *Hub) Meta() *Meta { return h.meta }
