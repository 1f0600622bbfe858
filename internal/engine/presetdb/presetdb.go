// Package presetdb is the optional shared preset store: a PostgreSQL table
// teams point at via DATABASE_URL. When it is not configured the preset tools
// fall back to the local SQLite store.
package presetdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// Package-level singleton, set from main.go.
var presetDB *PresetDB

// Set sets the package-level preset DB instance.
func Set(db *PresetDB) { presetDB = db }

// Get returns the package-level preset DB instance (may be nil).
func Get() *PresetDB { return presetDB }

// PresetDB holds the pgx connection pool for shared preset storage.
type PresetDB struct {
	pool *pgxpool.Pool
}

// Connect creates a pgx pool and bootstraps the presets table.
func Connect(ctx context.Context, databaseURL string) (*PresetDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db := &PresetDB{pool: pool}
	if err := db.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	slog.Info("shared preset store connected", slog.String("addr", config.ConnConfig.Host))
	return db, nil
}

func (db *PresetDB) Close() {
	db.pool.Close()
}

func (db *PresetDB) initSchema(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS sourcing_presets (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		platform_id TEXT NOT NULL,
		payload     JSONB NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

// Save stores a named payload and returns the stored preset.
func (db *PresetDB) Save(ctx context.Context, name, platformID string, payload engine.QueryPayload) (*engine.Preset, error) {
	if name == "" {
		return nil, errors.New("presetdb: preset name is required")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("presetdb: marshal payload: %w", err)
	}

	p := engine.Preset{
		ID:         uuid.NewString(),
		Name:       name,
		PlatformID: platformID,
		Payload:    payload,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := db.pool.Exec(ctx,
		`INSERT INTO sourcing_presets (id, name, platform_id, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Name, p.PlatformID, raw, p.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("presetdb: insert: %w", err)
	}
	return &p, nil
}

// List returns all shared presets, newest first. Rows with a corrupt payload
// are skipped.
func (db *PresetDB) List(ctx context.Context) ([]engine.Preset, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, platform_id, payload, created_at::text
		 FROM sourcing_presets ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("presetdb: query: %w", err)
	}
	defer rows.Close()

	presets := []engine.Preset{}
	for rows.Next() {
		var p engine.Preset
		var raw []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.PlatformID, &raw, &p.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal(raw, &p.Payload); err != nil {
			continue
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// Delete removes a preset by id, erroring on an unknown id.
func (db *PresetDB) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("presetdb: preset id is required")
	}
	tag, err := db.pool.Exec(ctx, `DELETE FROM sourcing_presets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("presetdb: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("presetdb: preset %q not found", id)
	}
	return nil
}
