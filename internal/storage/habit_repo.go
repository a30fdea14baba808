package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type HabitRepo struct {
	db *sql.DB
}

func NewHabitRepo(db *sql.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

func (r *HabitRepo) Insert(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (name, streak, last_checked)
		VALUES (?, 0, NULL)
	`, name)
	if err != nil {
		return 0, fmt.Errorf("habit insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("habit last insert id: %w", err)
	}
	return id, nil
}

func (r *HabitRepo) Get(ctx context.Context, id int64) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, streak, last_checked
		FROM habits
		WHERE id = ?
	`, id)

	return scanHabitRow(row)
}

// ListAll returns every habit, newest first.
func (r *HabitRepo) ListAll(ctx context.Context) ([]Habit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, streak, last_checked
		FROM habits
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var out []Habit
	for rows.Next() {
		h, err := scanHabitRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("habit list rows: %w", err)
	}
	return out, nil
}

func (r *HabitRepo) UpdateCheckIn(ctx context.Context, id int64, streak int, lastChecked string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE habits SET streak = ?, last_checked = ? WHERE id = ?
	`, streak, lastChecked, id)
	if err != nil {
		return fmt.Errorf("habit update check-in: %w", err)
	}
	return nil
}

func (r *HabitRepo) Rename(ctx context.Context, id int64, name string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("habit rename: %w", err)
	}
	return nil
}

func (r *HabitRepo) ResetStreak(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE habits SET streak = 0, last_checked = NULL WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("habit reset streak: %w", err)
	}
	return nil
}

func (r *HabitRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("habit delete: %w", err)
	}
	return nil
}

func scanHabitRow(row scanner) (*Habit, error) {
	var (
		id          int64
		name        string
		streak      int
		lastChecked sql.NullString
	)

	if err := row.Scan(&id, &name, &streak, &lastChecked); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit scan: %w", err)
	}

	var last *string
	if lastChecked.Valid {
		v := lastChecked.String
		last = &v
	}

	return &Habit{
		ID:          id,
		Name:        name,
		Streak:      streak,
		LastChecked: last,
	}, nil
}
