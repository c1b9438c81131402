package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	snapshot := []byte(`{"progress":{"day":3}}`)
	if err := store.SaveSlot(ctx, "sess", 0, snapshot, 3, "court_main"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.LoadSlot(ctx, "sess", 0)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(snapshot) {
		t.Errorf("round trip mismatch: %s", got)
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveSlot(ctx, "sess", 1, []byte("old"), 1, "a"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SaveSlot(ctx, "sess", 1, []byte("new"), 5, "b"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.LoadSlot(ctx, "sess", 1)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("overwrite lost: %s", got)
	}
	slots, err := store.ListSlots(ctx, "sess")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slots) != 1 || slots[0].Day != 5 || slots[0].SceneID != "b" {
		t.Errorf("slot metadata wrong: %+v", slots)
	}
}

func TestSlotRange(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, slot := range []int{-1, MaxSlot + 1} {
		if err := store.SaveSlot(ctx, "sess", slot, []byte("x"), 1, ""); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("slot %d: want ErrSlotOutOfRange, got %v", slot, err)
		}
		if _, err := store.LoadSlot(ctx, "sess", slot); !errors.Is(err, ErrSlotOutOfRange) {
			t.Errorf("load slot %d: want ErrSlotOutOfRange, got %v", slot, err)
		}
	}
}

func TestEmptySlot(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.LoadSlot(context.Background(), "sess", 4); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("want ErrSlotEmpty, got %v", err)
	}
}

func TestSlotsAreScopedBySession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveSlot(ctx, "one", 0, []byte("mine"), 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.LoadSlot(ctx, "two", 0); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("slot leaked across sessions: %v", err)
	}
}

func TestDeleteSlot(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.SaveSlot(ctx, "sess", 2, []byte("x"), 1, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.DeleteSlot(ctx, "sess", 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.LoadSlot(ctx, "sess", 2); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("slot survived delete: %v", err)
	}
	// Deleting an empty slot is fine.
	if err := store.DeleteSlot(ctx, "sess", 2); err != nil {
		t.Errorf("double delete: %v", err)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	got, err := store.LoadMeta(ctx)
	if err != nil {
		t.Fatalf("load empty meta: %v", err)
	}
	if got != nil {
		t.Errorf("fresh store has meta: %s", got)
	}
	if err := store.SaveMeta(ctx, []byte(`{"unlocked_endings":{"a_good":true}}`)); err != nil {
		t.Fatalf("save meta: %v", err)
	}
	if err := store.SaveMeta(ctx, []byte(`{"unlocked_endings":{"a_good":true,"b_good":true}}`)); err != nil {
		t.Fatalf("save meta again: %v", err)
	}
	got, err = store.LoadMeta(ctx)
	if err != nil {
		t.Fatalf("load meta: %v", err)
	}
	if string(got) != `{"unlocked_endings":{"a_good":true,"b_good":true}}` {
		t.Errorf("meta mismatch: %s", got)
	}
}
