package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const ProfileKey = "main_user"

type ProgressRepo struct {
	db *sql.DB
}

func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Get(ctx context.Context, key string) (*Progress, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM progress WHERE key = ?`, key)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("progress get: %w", err)
	}

	var p Progress
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("progress unmarshal: %w", err)
	}
	return &p, nil
}

// GetOrCreate returns the main progress record, seeding a fresh one anchored
// to todayISO when none exists yet.
func (r *ProgressRepo) GetOrCreate(ctx context.Context, todayISO string) (*Progress, error) {
	p, err := r.Get(ctx, ProfileKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	p = NewProgress(todayISO)
	if err := r.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProgressRepo) Save(ctx context.Context, p *Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("progress marshal: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO progress (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data
	`, ProfileKey, string(data))
	if err != nil {
		return fmt.Errorf("progress save: %w", err)
	}
	return nil
}
