package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"RacketHearts/internal/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// statePushInterval paces the periodic state frames. Typing timers and
// other background work land on the client through these.
const statePushInterval = 250 * time.Millisecond

const storageTimeout = 5 * time.Second

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type choosePayload struct {
	Index int `json:"index"`
}

type minigamePayload struct {
	ID  string `json:"id"`
	Won bool   `json:"won"`
}

type dayPayload struct {
	Days int `json:"days"`
}

type openPayload struct {
	TriggerID string `json:"trigger_id"`
}

type slotPayload struct {
	Slot int `json:"slot"`
}

type stateEnvelope struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	game.View
}

type errorEnvelope struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func randSessionID() string {
	return fmt.Sprintf("s%08x", rand.Uint32())
}

func serveWS(a *App, w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = randSessionID()
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	sess := a.Hub.Get(sessionID)
	log.Printf("[ws] session %s connected", sessionID)

	inbound := make(chan inboundMessage)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var msg inboundMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				log.Printf("[ws] session %s bad frame: %v", sessionID, err)
				continue
			}
			select {
			case inbound <- msg:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(statePushInterval)
	defer tick.Stop()

	lastEnding := ""
	push := func() bool {
		view := sess.RenderView()
		if view.Ending != nil && view.Ending.ID != lastEnding {
			lastEnding = view.Ending.ID
			a.persistMeta()
		}
		env := stateEnvelope{Type: "state", SessionID: sessionID, View: view}
		if err := conn.WriteJSON(env); err != nil {
			return false
		}
		return true
	}

	if !push() {
		return
	}
	for {
		select {
		case msg := <-inbound:
			sess.Touch()
			if err := a.handleInbound(sess, sessionID, msg); err != nil {
				_ = conn.WriteJSON(errorEnvelope{Type: "error", Message: err.Error()})
			}
			if !push() {
				return
			}
		case <-tick.C:
			if !push() {
				return
			}
		case <-done:
			log.Printf("[ws] session %s disconnected", sessionID)
			return
		}
	}
}

// handleInbound dispatches one client message. Engine-level refusals are
// silent (logged server-side, state frame follows anyway); only storage
// failures surface as error frames.
func (a *App) handleInbound(sess *game.Session, sessionID string, msg inboundMessage) error {
	switch msg.Type {
	case "advance":
		sess.Advance()

	case "choose":
		var p choosePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("choose payload: %w", err)
		}
		sess.SelectChoice(p.Index)

	case "minigame:complete":
		var p minigamePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("minigame payload: %w", err)
		}
		sess.CompleteMinigame(p.ID, p.Won)

	case "day:advance":
		var p dayPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("day payload: %w", err)
		}
		sess.AdvanceDays(p.Days)

	case "messages:open":
		var p openPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("open payload: %w", err)
		}
		sess.OpenConversation(p.TriggerID)

	case "messages:choose":
		var p choosePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("reply payload: %w", err)
		}
		sess.ChooseReply(p.Index)

	case "messages:advance":
		sess.SkipTyping()

	case "messages:close":
		sess.CloseConversation()

	case "game:new":
		sess.Reset()

	case "game:save":
		var p slotPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("save payload: %w", err)
		}
		return a.saveSlot(sess, sessionID, p.Slot)

	case "game:load":
		var p slotPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return fmt.Errorf("load payload: %w", err)
		}
		return a.loadSlot(sess, sessionID, p.Slot)

	default:
		log.Printf("[ws] session %s unknown message type %q", sessionID, msg.Type)
	}
	return nil
}

func (a *App) saveSlot(sess *game.Session, sessionID string, slot int) error {
	snapshot, err := sess.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(snapshot, &snap); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	day, sceneID := 1, ""
	if snap.Progress != nil {
		day, sceneID = snap.Progress.Day, snap.Progress.SceneID
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	if err := a.Store.SaveSlot(ctx, sessionID, slot, snapshot, day, sceneID); err != nil {
		return err
	}
	log.Printf("[ws] session %s saved slot %d (day %d)", sessionID, slot, day)
	return nil
}

func (a *App) loadSlot(sess *game.Session, sessionID string, slot int) error {
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	snapshot, err := a.Store.LoadSlot(ctx, sessionID, slot)
	if err != nil {
		return err
	}
	if err := sess.Load(snapshot); err != nil {
		return fmt.Errorf("load slot %d: %w", slot, err)
	}
	log.Printf("[ws] session %s loaded slot %d", sessionID, slot)
	return nil
}
