package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Title        string
	Deadline     *string
	ReminderTime *string
	Repeat       string
	Priority     string
	Status       string
	CreatedAt    string
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	return insertTask(ctx, r.db, in)
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, deadline, reminder_time, repeat, priority, status, created_at
		FROM tasks
		WHERE id = ?
	`, id)

	return scanTaskRow(row)
}

// ListAll returns every task, newest first.
func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, deadline, reminder_time, repeat, priority, status, created_at
		FROM tasks
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// ListByDeadline returns tasks whose deadline matches the ISO date exactly.
func (r *TaskRepo) ListByDeadline(ctx context.Context, dateISO string) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, deadline, reminder_time, repeat, priority, status, created_at
		FROM tasks
		WHERE deadline = ?
		ORDER BY created_at DESC, id DESC
	`, dateISO)
	if err != nil {
		return nil, fmt.Errorf("task list by deadline: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list by deadline rows: %w", err)
	}
	return out, nil
}

func (r *TaskRepo) UpdatePriority(ctx context.Context, id int64, priority string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET priority = ? WHERE id = ?`, priority, id)
	if err != nil {
		return fmt.Errorf("task update priority: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

// CompleteAndReplace finishes a task in one transaction: the row is marked
// done, the successor (for a repeating task) is inserted, and the finished
// row is removed. Returns the successor id, 0 when there is none.
func (r *TaskRepo) CompleteAndReplace(ctx context.Context, id int64, successor *TaskInsert) (int64, error) {
	var nextID int64
	err := InTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE tasks SET status = 'Done' WHERE id = ?`, id); err != nil {
			return fmt.Errorf("task mark done: %w", err)
		}
		if successor != nil {
			var err error
			nextID, err = insertTask(ctx, tx, *successor)
			if err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
			return fmt.Errorf("task delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return nextID, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertTask(ctx context.Context, q execer, in TaskInsert) (int64, error) {
	res, err := q.ExecContext(ctx, `
		INSERT INTO tasks (title, deadline, reminder_time, repeat, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.Title, in.Deadline, in.ReminderTime, in.Repeat, in.Priority, in.Status, in.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		id        int64
		title     string
		deadline  sql.NullString
		reminder  sql.NullString
		repeat    string
		priority  string
		status    string
		createdAt string
	)

	if err := row.Scan(&id, &title, &deadline, &reminder, &repeat, &priority, &status, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	var due *string
	if deadline.Valid {
		v := deadline.String
		due = &v
	}
	var rem *string
	if reminder.Valid {
		v := reminder.String
		rem = &v
	}

	return &Task{
		ID:           id,
		Title:        title,
		Deadline:     due,
		ReminderTime: rem,
		Repeat:       repeat,
		Priority:     priority,
		Status:       status,
		CreatedAt:    createdAt,
	}, nil
}

func scanTaskRows(rows *sql.Rows) (*Task, error) {
	return scanTaskRow(rows)
}
