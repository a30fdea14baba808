package engine

import (
	"context"
	"fmt"
)

// Focus master unlocks at two lifetime hours of recorded focus.
const focusMasterMinutes = 120

// RecordFocus credits a finished focus session with XP and unlocks the
// focus badge once the lifetime total crosses two hours.
func (s *Service) RecordFocus(ctx context.Context, minutes int) (*XPResult, []UnlockResult, error) {
	if minutes <= 0 {
		return nil, nil, fmt.Errorf("focus minutes must be positive, got %d", minutes)
	}

	p, err := s.getProgress(ctx)
	if err != nil {
		return nil, nil, err
	}
	xp := RecordFocusMinutes(p, minutes, s.now())

	var unlocked []UnlockResult
	if p.TotalFocusMinutes >= focusMasterMinutes {
		if u := UnlockAchievement(p, AchFocusMaster); u != nil {
			unlocked = append(unlocked, *u)
		}
	}

	if err := s.progress.Save(ctx, p); err != nil {
		return nil, nil, err
	}
	return &xp, unlocked, nil
}

// UseFreeze consumes one streak freeze. ok is false when the stash is
// empty, remaining is the count left either way.
func (s *Service) UseFreeze(ctx context.Context) (ok bool, remaining int, err error) {
	p, err := s.getProgress(ctx)
	if err != nil {
		return false, 0, err
	}
	if !UseStreakFreeze(p) {
		return false, p.StreakFreezes, nil
	}
	if err := s.progress.Save(ctx, p); err != nil {
		return false, 0, err
	}
	return true, p.StreakFreezes, nil
}

// EarnFreeze adds one streak freeze and returns the new count.
func (s *Service) EarnFreeze(ctx context.Context) (int, error) {
	p, err := s.getProgress(ctx)
	if err != nil {
		return 0, err
	}
	EarnStreakFreeze(p)
	if err := s.progress.Save(ctx, p); err != nil {
		return 0, err
	}
	return p.StreakFreezes, nil
}
