// Package history persists query history and local presets in SQLite.
// Storage lives outside the core pipeline: adapters and transforms never
// touch it.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// maxStoredQueryLen caps the query text we keep per history row.
const maxStoredQueryLen = 500

var (
	storeDB   *sql.DB
	storeOnce sync.Once
	storeErr  error
)

// openStoreDB opens (or creates) the SQLite store. Cfg.DataDir overrides the
// default ~/.go_sourcing location.
func openStoreDB() (*sql.DB, error) {
	storeOnce.Do(func() {
		dir := engine.Cfg.DataDir
		if dir == "" {
			dir = filepath.Join(os.Getenv("HOME"), ".go_sourcing")
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			storeErr = fmt.Errorf("history: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "sourcing.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			storeErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initStoreSchema(db); err != nil {
			storeErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		storeDB = db
	})
	return storeDB, storeErr
}

func initStoreSchema(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		platform_id TEXT NOT NULL,
		query       TEXT NOT NULL,
		score       INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`); err != nil {
		return err
	}
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS presets (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		platform_id TEXT NOT NULL,
		payload     TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`)
	return err
}

// Append records one build_query run and prunes old rows past the configured
// history limit.
func Append(_ context.Context, platformID, query string, score int) error {
	db, err := openStoreDB()
	if err != nil {
		return err
	}

	engine.IncrHistoryWrites()
	now := time.Now().UTC().Format(time.RFC3339)
	query = engine.TruncateRunes(query, maxStoredQueryLen, "…")
	if _, err := db.Exec(
		`INSERT INTO history (platform_id, query, score, created_at) VALUES (?, ?, ?, ?)`,
		platformID, query, score, now,
	); err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}

	if limit := engine.Cfg.HistoryLimit; limit > 0 {
		if _, err := db.Exec(
			`DELETE FROM history WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)`,
			limit,
		); err != nil {
			return fmt.Errorf("history: prune: %w", err)
		}
	}
	return nil
}

// List returns the most recent history entries, newest first.
func List(_ context.Context, limit int) ([]engine.HistoryEntry, error) {
	db, err := openStoreDB()
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	engine.IncrHistoryReads()

	rows, err := db.Query(
		`SELECT id, platform_id, query, score, created_at FROM history ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	entries := []engine.HistoryEntry{}
	for rows.Next() {
		var e engine.HistoryEntry
		if err := rows.Scan(&e.ID, &e.PlatformID, &e.Query, &e.Score, &e.CreatedAt); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// SavePreset stores a named payload. The payload is serialized as JSON so
// future optional fields round-trip untouched.
func SavePreset(_ context.Context, name, platformID string, payload engine.QueryPayload) (*engine.Preset, error) {
	if name == "" {
		return nil, errors.New("history: preset name is required")
	}
	db, err := openStoreDB()
	if err != nil {
		return nil, err
	}

	engine.IncrPresetSaves()
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("history: marshal payload: %w", err)
	}

	p := engine.Preset{
		ID:         uuid.NewString(),
		Name:       name,
		PlatformID: platformID,
		Payload:    payload,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := db.Exec(
		`INSERT INTO presets (id, name, platform_id, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.PlatformID, string(raw), p.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("history: insert preset: %w", err)
	}
	return &p, nil
}

// ListPresets returns all stored presets, newest first. Rows with a corrupt
// payload are skipped, not fatal.
func ListPresets(_ context.Context) ([]engine.Preset, error) {
	db, err := openStoreDB()
	if err != nil {
		return nil, err
	}

	engine.IncrPresetLoads()
	rows, err := db.Query(
		`SELECT id, name, platform_id, payload, created_at FROM presets ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query presets: %w", err)
	}
	defer rows.Close()

	presets := []engine.Preset{}
	for rows.Next() {
		var p engine.Preset
		var raw string
		if err := rows.Scan(&p.ID, &p.Name, &p.PlatformID, &raw, &p.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(raw), &p.Payload); err != nil {
			continue
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// DeletePreset removes a preset by id. Deleting an unknown id is an error so
// the caller can report it.
func DeletePreset(_ context.Context, id string) error {
	if id == "" {
		return errors.New("history: preset id is required")
	}
	db, err := openStoreDB()
	if err != nil {
		return err
	}

	res, err := db.Exec(`DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("history: delete preset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("history: preset %q not found", id)
	}
	return nil
}
