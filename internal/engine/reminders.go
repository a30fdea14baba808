package engine

import (
	"context"
	"strings"
	"time"

	"strive/internal/storage"
)

// DueReminders returns the tasks whose reminder fires at the current
// minute. A bare "HH:MM" reminder matches any day's wall clock, a reminder
// carrying a date must match "YYYY-MM-DD HH:MM" exactly. Done tasks never
// fire.
func DueReminders(tasks []storage.Task, now time.Time) []storage.Task {
	nowMinute := now.Format(dateClockLayout)
	nowClock := now.Format(clockLayout)

	var due []storage.Task
	for _, t := range tasks {
		if t.Status == string(StatusDone) {
			continue
		}
		r := strings.TrimSpace(strVal(t.ReminderTime))
		if r == "" {
			continue
		}
		if len(r) == len(clockLayout) {
			if r == nowClock {
				due = append(due, t)
			}
			continue
		}
		if r == nowMinute {
			due = append(due, t)
		}
	}
	return due
}

// DueNow returns the stored tasks whose reminder fires right now.
func (s *Service) DueNow(ctx context.Context) ([]storage.Task, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return DueReminders(tasks, s.now()), nil
}
