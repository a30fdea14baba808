package engine

import (
	"context"
	"fmt"
	"strings"

	"strive/internal/storage"
)

type AddTaskInput struct {
	Title        string
	Deadline     string
	ReminderTime string
	Repeat       string
}

type AddTaskResult struct {
	TaskID           int64
	Priority         Priority
	Score            int
	EstimatedMinutes int
	XP               XPResult
}

// AddTask stores a new pending task, scores it, and credits creation XP.
func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (*AddTaskResult, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	rep := RepeatNone
	if v := strings.TrimSpace(in.Repeat); v != "" {
		rep = Repeat(strings.ToLower(v))
		if !rep.IsValid() {
			return nil, fmt.Errorf("invalid repeat rule: %q", in.Repeat)
		}
	}

	now := s.now()
	createdAt := now.UTC().Format(timestampLayout)
	score, priority := Score(title, in.Deadline, createdAt, now)

	var deadline, reminder *string
	if d := strings.TrimSpace(in.Deadline); d != "" {
		deadline = strPtr(d)
	}
	if r := strings.TrimSpace(in.ReminderTime); r != "" {
		reminder = strPtr(r)
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Title:        title,
		Deadline:     deadline,
		ReminderTime: reminder,
		Repeat:       string(rep),
		Priority:     string(priority),
		Status:       string(StatusPending),
		CreatedAt:    createdAt,
	})
	if err != nil {
		return nil, err
	}

	p, err := s.getProgress(ctx)
	if err != nil {
		return nil, err
	}
	xp := AddXP(p, XPTaskAdded, "Task added")
	if err := s.progress.Save(ctx, p); err != nil {
		return nil, err
	}

	return &AddTaskResult{
		TaskID:           id,
		Priority:         priority,
		Score:            score,
		EstimatedMinutes: EstimateMinutes(title),
		XP:               xp,
	}, nil
}

// AddHabit stores a new habit with an empty streak.
func (s *Service) AddHabit(ctx context.Context, name string) (int64, error) {
	n, err := normalizeName(name)
	if err != nil {
		return 0, err
	}
	return s.habits.Insert(ctx, n)
}
