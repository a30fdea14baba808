package engine

import (
	"context"
	"fmt"

	"strive/internal/storage"
)

// CompleteResult reports everything one completion touched.
type CompleteResult struct {
	TaskID       int64
	Title        string
	XP           XPResult
	Unlocked     []UnlockResult
	NextTaskID   int64  // successor id for a repeating task, 0 otherwise
	NextDeadline string // successor deadline, "" when there is none
}

const (
	earlyBirdHour        = 8
	nightOwlHour         = 22
	speedDemonDailyTasks = 5
)

// CompleteTask finishes a task. The row is marked done, the successor for a
// repeating task is created and the finished row is removed, all in one
// transaction. XP, daily counters and achievements are settled afterwards.
func (s *Service) CompleteTask(ctx context.Context, id int64) (*CompleteResult, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, NotFoundError{Kind: "task", ID: id}
	}
	if task.Status == string(StatusDone) {
		return nil, fmt.Errorf("task %d is already done", id)
	}

	now := s.now()
	var successor *storage.TaskInsert
	var nextDeadline string
	if next, ok := NextOccurrence(*task, now); ok {
		next.CreatedAt = now.UTC().Format(timestampLayout)
		successor = &next
		nextDeadline = strVal(next.Deadline)
	}

	nextID, err := s.tasks.CompleteAndReplace(ctx, id, successor)
	if err != nil {
		return nil, err
	}

	p, err := s.getProgress(ctx)
	if err != nil {
		return nil, err
	}
	res := &CompleteResult{
		TaskID:       id,
		Title:        task.Title,
		XP:           RecordTaskCompletion(p, now),
		NextTaskID:   nextID,
		NextDeadline: nextDeadline,
	}

	if hour := now.Hour(); hour < earlyBirdHour {
		if u := UnlockAchievement(p, AchEarlyBird); u != nil {
			res.Unlocked = append(res.Unlocked, *u)
		}
	} else if hour >= nightOwlHour {
		if u := UnlockAchievement(p, AchNightOwl); u != nil {
			res.Unlocked = append(res.Unlocked, *u)
		}
	}
	if p.Stats.TasksCompletedToday >= speedDemonDailyTasks {
		if u := UnlockAchievement(p, AchSpeedDemon); u != nil {
			res.Unlocked = append(res.Unlocked, *u)
		}
	}

	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	res.Unlocked = append(res.Unlocked, CheckAchievements(p, tasks, habits)...)

	if err := s.progress.Save(ctx, p); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteTask removes a task without completing it. No XP, no successor.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return NotFoundError{Kind: "task", ID: id}
	}
	return s.tasks.Delete(ctx, id)
}
