package server

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"RacketHearts/internal/game"
	"RacketHearts/internal/storage"
	"RacketHearts/internal/story"
)

func testApp(t *testing.T) *App {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	lib := story.DefaultLibrary()
	graph := story.DefaultGraph()
	return &App{
		Cfg:     Config{},
		Hub:     game.NewHub(graph, lib, game.DefaultTuning(), game.NewMeta()),
		Store:   store,
		Library: lib,
	}
}

func inbound(t *testing.T, typ string, payload interface{}) inboundMessage {
	t.Helper()
	msg := inboundMessage{Type: typ}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		msg.Payload = raw
	}
	return msg
}

func TestHandleInboundAdvance(t *testing.T) {
	app := testApp(t)
	sess := app.Hub.Get("s1")

	before := sess.RenderView().Node.ID
	if err := app.handleInbound(sess, "s1", inbound(t, "advance", nil)); err != nil {
		t.Fatalf("advance: %v", err)
	}
	after := sess.RenderView().Node.ID
	if before == after {
		t.Errorf("advance did not move: %s", after)
	}
}

func TestHandleInboundSaveLoadRoundTrip(t *testing.T) {
	app := testApp(t)
	sess := app.Hub.Get("s1")

	// Walk a few beats in, then save.
	for i := 0; i < 3; i++ {
		_ = app.handleInbound(sess, "s1", inbound(t, "advance", nil))
	}
	movedTo := sess.RenderView().Node.ID
	if err := app.handleInbound(sess, "s1", inbound(t, "game:save", slotPayload{Slot: 0})); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Start over, then load the save back.
	if err := app.handleInbound(sess, "s1", inbound(t, "game:new", nil)); err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := sess.RenderView().Node.ID; got == movedTo {
		t.Fatalf("new game did not reset (still at %s)", got)
	}
	if err := app.handleInbound(sess, "s1", inbound(t, "game:load", slotPayload{Slot: 0})); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := sess.RenderView().Node.ID; got != movedTo {
		t.Errorf("load landed at %s, want %s", got, movedTo)
	}
}

func TestHandleInboundLoadEmptySlotErrors(t *testing.T) {
	app := testApp(t)
	sess := app.Hub.Get("s1")
	if err := app.handleInbound(sess, "s1", inbound(t, "game:load", slotPayload{Slot: 7})); err == nil {
		t.Error("empty slot load should error")
	}
}

func TestHandleInboundBadPayload(t *testing.T) {
	app := testApp(t)
	sess := app.Hub.Get("s1")
	msg := inboundMessage{Type: "choose", Payload: []byte(`{broken`)}
	if err := app.handleInbound(sess, "s1", msg); err == nil {
		t.Error("broken payload should error")
	}
}

func TestHandleInboundUnknownTypeIgnored(t *testing.T) {
	app := testApp(t)
	sess := app.Hub.Get("s1")
	if err := app.handleInbound(sess, "s1", inbound(t, "nonsense", nil)); err != nil {
		t.Errorf("unknown type should be ignored, got %v", err)
	}
}
