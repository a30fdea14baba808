package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			deadline TEXT,
			reminder_time TEXT,
			repeat TEXT DEFAULT 'none',
			priority TEXT DEFAULT 'Normal',
			status TEXT DEFAULT 'Pending',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			streak INTEGER DEFAULT 0,
			last_checked TEXT
		);`,
		// Progression lives in one JSON blob per profile; the engine owns
		// the shape, storage only round-trips it.
		`CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return nil
}
