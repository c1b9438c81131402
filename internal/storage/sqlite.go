// Package storage persists save slots and the cross-playthrough meta
// blob in SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Save slots are numbered 0 through MaxSlot inclusive.
const MaxSlot = 9

// ErrSlotOutOfRange rejects slot numbers outside 0..MaxSlot.
var ErrSlotOutOfRange = errors.New("save slot out of range")

// ErrSlotEmpty reports a load from a slot with no save in it.
var ErrSlotEmpty = errors.New("save slot is empty")

const schema = `
CREATE TABLE IF NOT EXISTS save_slots (
	session_id TEXT    NOT NULL,
	slot       INTEGER NOT NULL,
	snapshot   BLOB    NOT NULL,
	day        INTEGER NOT NULL DEFAULT 1,
	scene_id   TEXT    NOT NULL DEFAULT '',
	saved_at   INTEGER NOT NULL,
	PRIMARY KEY (session_id, slot)
);
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);
`

const metaKey = "meta"

// Store is the SQLite-backed save database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the save database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func checkSlot(slot int) error {
	if slot < 0 || slot > MaxSlot {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	return nil
}

// SlotInfo describes one occupied save slot for the load screen.
type SlotInfo struct {
	Slot    int       `json:"slot"`
	Day     int       `json:"day"`
	SceneID string    `json:"scene_id"`
	SavedAt time.Time `json:"saved_at"`
}

// SaveSlot upserts a snapshot into a slot. Day and scene are denormalized
// for the load screen so listing never parses snapshots.
func (s *Store) SaveSlot(ctx context.Context, sessionID string, slot int, snapshot []byte, day int, sceneID string) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO save_slots (session_id, slot, snapshot, day, scene_id, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (session_id, slot) DO UPDATE SET
		   snapshot = excluded.snapshot,
		   day      = excluded.day,
		   scene_id = excluded.scene_id,
		   saved_at = excluded.saved_at`,
		sessionID, slot, snapshot, day, sceneID, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	return nil
}

// LoadSlot returns the snapshot stored in a slot.
func (s *Store) LoadSlot(ctx context.Context, sessionID string, slot int) ([]byte, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	row := s.db.QueryRowContext(
		ctx,
		`SELECT snapshot FROM save_slots WHERE session_id = ? AND slot = ?`,
		sessionID, slot,
	)
	var snapshot []byte
	if err := row.Scan(&snapshot); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %d", ErrSlotEmpty, slot)
		}
		return nil, fmt.Errorf("load slot %d: %w", slot, err)
	}
	return snapshot, nil
}

// ListSlots returns the occupied slots for a session in slot order.
func (s *Store) ListSlots(ctx context.Context, sessionID string) ([]SlotInfo, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT slot, day, scene_id, saved_at FROM save_slots WHERE session_id = ? ORDER BY slot`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var out []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var savedAt int64
		if err := rows.Scan(&info.Slot, &info.Day, &info.SceneID, &savedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		info.SavedAt = time.UnixMilli(savedAt)
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return out, nil
}

// DeleteSlot empties a slot. Deleting an empty slot is a no-op.
func (s *Store) DeleteSlot(ctx context.Context, sessionID string, slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(
		ctx,
		`DELETE FROM save_slots WHERE session_id = ? AND slot = ?`,
		sessionID, slot,
	); err != nil {
		return fmt.Errorf("delete slot %d: %w", slot, err)
	}
	return nil
}

// SaveMeta upserts the serialized meta blob.
func (s *Store) SaveMeta(ctx context.Context, blob []byte) error {
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		metaKey, blob,
	); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	return nil
}

// LoadMeta returns the stored meta blob, or nil when none exists yet.
func (s *Store) LoadMeta(ctx context.Context) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaKey)
	var blob []byte
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load meta: %w", err)
	}
	return blob, nil
}
