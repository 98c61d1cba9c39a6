// Package sqlite provides SQLite-based persistent storage for heropath.
// Uses WAL mode for crash-safe writes; a single local state file holds the
// whole engine state.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer; there is exactly one user anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Scalar engine state (points, streak, guard dates) as key-value.
		// Missing keys read as zero values — the engine self-heals from
		// partial or corrupt documents.
		`CREATE TABLE IF NOT EXISTS progress (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Append-only period archives.
		`CREATE TABLE IF NOT EXISTS weekly_history (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			week_start TEXT NOT NULL,
			total      INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_history (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			month TEXT NOT NULL,
			total INTEGER NOT NULL
		)`,

		// Journey cache, one row per calendar month.
		`CREATE TABLE IF NOT EXISTS journeys (
			month_key TEXT PRIMARY KEY,
			stages    TEXT NOT NULL,
			built_at  INTEGER NOT NULL
		)`,

		// Durable per-tap activity log.
		`CREATE TABLE IF NOT EXISTS activity_log (
			id     TEXT PRIMARY KEY,
			ts     INTEGER NOT NULL,
			label  TEXT NOT NULL,
			points INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_ts ON activity_log(ts)`,

		// Notifications for the UI shell.
		`CREATE TABLE IF NOT EXISTS notifications (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			type       TEXT NOT NULL,
			title      TEXT NOT NULL,
			body       TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			shown      BOOLEAN DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notif_created ON notifications(created_at)`,
	}

	for i, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// SetProgress stores a progress key-value pair.
func (d *DB) SetProgress(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO progress (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetProgress retrieves a progress value by key.
// Returns "" if key not found.
func (d *DB) GetProgress(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM progress WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}
