// Package database persists settings, timer presets, and the session
// history in a local sqlite file.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite handle. Methods are safe for the single
// UI goroutine; sqlite serializes the rest.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open initializes the connection and schema.
func Open(ctx context.Context, filepath string) (*Database, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db, dbFile: filepath}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error { return d.DB.Close() }

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			total_seconds INTEGER NOT NULL,
			phases TEXT DEFAULT '[]',
			target_cycles INTEGER DEFAULT 0,
			timeout_action TEXT DEFAULT 'MESSAGE',
			action_payload TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			total_seconds INTEGER DEFAULT 0,
			elapsed_seconds INTEGER DEFAULT 0,
			cycles INTEGER DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME,
			completed INTEGER DEFAULT 0
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	d.migrate(ctx)
	return nil
}

// migrate applies additive columns for databases created by older
// builds. Errors are ignored: the column already existing is the
// common case.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE presets ADD COLUMN action_payload TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE sessions ADD COLUMN cycles INTEGER DEFAULT 0")
}
