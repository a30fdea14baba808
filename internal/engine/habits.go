package engine

import (
	"context"
)

// HabitCheckResult reports a habit check-in plus its progression effects.
type HabitCheckResult struct {
	HabitID        int64
	Name           string
	AlreadyChecked bool
	Streak         int
	XP             XPResult
	Unlocked       []UnlockResult
}

// CheckHabit checks a habit for today. Checking twice on the same day
// reports AlreadyChecked without error and awards nothing.
func (s *Service) CheckHabit(ctx context.Context, id int64) (*HabitCheckResult, error) {
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, NotFoundError{Kind: "habit", ID: id}
	}

	updated, check := CheckIn(*h, s.now())
	if !check.Checked {
		return &HabitCheckResult{HabitID: id, Name: h.Name, AlreadyChecked: true, Streak: h.Streak}, nil
	}
	if err := s.habits.UpdateCheckIn(ctx, id, updated.Streak, strVal(updated.LastChecked)); err != nil {
		return nil, err
	}

	p, err := s.getProgress(ctx)
	if err != nil {
		return nil, err
	}
	res := &HabitCheckResult{
		HabitID: id,
		Name:    h.Name,
		Streak:  updated.Streak,
		XP:      RecordHabitCheck(p, s.now()),
	}

	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	res.Unlocked = CheckAchievements(p, tasks, habits)

	if err := s.progress.Save(ctx, p); err != nil {
		return nil, err
	}
	return res, nil
}

// RenameHabit changes a habit's name, streak untouched.
func (s *Service) RenameHabit(ctx context.Context, id int64, name string) error {
	n, err := normalizeName(name)
	if err != nil {
		return err
	}
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return NotFoundError{Kind: "habit", ID: id}
	}
	return s.habits.Rename(ctx, id, n)
}

// ResetHabitStreak zeroes the streak and clears the last-checked date.
func (s *Service) ResetHabitStreak(ctx context.Context, id int64) error {
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return NotFoundError{Kind: "habit", ID: id}
	}
	return s.habits.ResetStreak(ctx, id)
}

// DeleteHabit removes a habit entirely.
func (s *Service) DeleteHabit(ctx context.Context, id int64) error {
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return NotFoundError{Kind: "habit", ID: id}
	}
	return s.habits.Delete(ctx, id)
}
