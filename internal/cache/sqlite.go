package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"artistdesk/internal/model"
)

// ErrMiss is returned when no snapshot exists for the requested key.
var ErrMiss = errors.New("cache miss")

const (
	kindRoster    = "roster"
	kindDashboard = "dashboard"
)

// SQLiteCache implements Cache on a local SQLite database.
type SQLiteCache struct {
	db *sqlx.DB
}

// NewSQLiteCache opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteCache(dbPath string) (*SQLiteCache, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// SQLite allows a single writer; a lone connection also keeps
	// in-memory databases on one handle.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	c := &SQLiteCache{db: db}
	if err := c.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// Close closes the underlying database connection.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (c *SQLiteCache) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := c.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = c.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := c.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

func (c *SQLiteCache) save(ctx context.Context, kind string, artistID int, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s snapshot: %w", kind, err)
	}

	const query = `
		INSERT INTO snapshots (id, kind, artist_id, payload, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(kind, artist_id) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at`

	_, err = c.db.ExecContext(ctx, query,
		uuid.NewString(), kind, artistID, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving %s snapshot: %w", kind, err)
	}
	return nil
}

func (c *SQLiteCache) load(ctx context.Context, kind string, artistID int, out interface{}) (time.Time, error) {
	var row struct {
		Payload   string    `db:"payload"`
		FetchedAt time.Time `db:"fetched_at"`
	}

	const query = `
		SELECT payload, fetched_at FROM snapshots
		WHERE kind = ? AND artist_id = ?`

	err := c.db.GetContext(ctx, &row, query, kind, artistID)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrMiss
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("loading %s snapshot: %w", kind, err)
	}

	if err := json.Unmarshal([]byte(row.Payload), out); err != nil {
		return time.Time{}, fmt.Errorf("unmarshaling %s snapshot: %w", kind, err)
	}
	return row.FetchedAt, nil
}

// SaveRoster replaces the cached artist list.
func (c *SQLiteCache) SaveRoster(ctx context.Context, artists []model.Artist) error {
	return c.save(ctx, kindRoster, 0, artists)
}

// LoadRoster returns the cached artist list.
func (c *SQLiteCache) LoadRoster(ctx context.Context) ([]model.Artist, time.Time, error) {
	var artists []model.Artist
	fetchedAt, err := c.load(ctx, kindRoster, 0, &artists)
	if err != nil {
		return nil, time.Time{}, err
	}
	return artists, fetchedAt, nil
}

// SaveDashboard replaces the cached snapshot for one artist.
func (c *SQLiteCache) SaveDashboard(ctx context.Context, artistID int, dash model.Dashboard) error {
	return c.save(ctx, kindDashboard, artistID, dash)
}

// LoadDashboard returns the cached snapshot for one artist.
func (c *SQLiteCache) LoadDashboard(ctx context.Context, artistID int) (model.Dashboard, time.Time, error) {
	var dash model.Dashboard
	fetchedAt, err := c.load(ctx, kindDashboard, artistID, &dash)
	if err != nil {
		return model.Dashboard{}, time.Time{}, err
	}
	return dash, fetchedAt, nil
}

// Prune removes snapshots older than maxAge.
func (c *SQLiteCache) Prune(ctx context.Context, maxAge time.Duration) error {
	cutoff := time.Now().UTC().Add(-maxAge)
	_, err := c.db.ExecContext(ctx, "DELETE FROM snapshots WHERE fetched_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("pruning snapshots: %w", err)
	}
	return nil
}
