package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"strive/internal/storage"
)

// Challenge difficulty tiers, chosen by level band.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	beginnerMaxLevel     = 3
	intermediateMaxLevel = 10
)

var challengePools = map[string][]string{
	DifficultyBeginner: {
		"Complete 3 tasks today",
		"Check off one habit",
		"Add a task with a deadline",
		"Review your task list",
		"Set a reminder for tomorrow",
	},
	DifficultyIntermediate: {
		"Complete 5 tasks today",
		"Maintain all habit streaks",
		"Tackle your highest priority task first",
		"Spend 25 minutes in focus mode",
		"Clear all overdue tasks",
	},
	DifficultyAdvanced: {
		"Complete 8+ tasks today",
		"Achieve a 7-day streak on all habits",
		"Complete all critical priority tasks",
		"Spend 2 hours in deep focus",
		"Help someone else with their goals",
	},
}

var challengeXP = map[string]int{
	DifficultyBeginner:     50,
	DifficultyIntermediate: 100,
	DifficultyAdvanced:     200,
}

// NewDailyChallenge draws a challenge suited to the given level and stamps
// it with today's date.
func NewDailyChallenge(level int, today time.Time, rng *rand.Rand) storage.Challenge {
	difficulty := DifficultyAdvanced
	switch {
	case level <= beginnerMaxLevel:
		difficulty = DifficultyBeginner
	case level <= intermediateMaxLevel:
		difficulty = DifficultyIntermediate
	}

	pool := challengePools[difficulty]
	return storage.Challenge{
		Text:       pool[rng.Intn(len(pool))],
		Difficulty: difficulty,
		XPReward:   challengeXP[difficulty],
		Date:       FormatDate(DateOf(today)),
	}
}

// DailyChallenge returns today's challenge and whether it is already
// completed, generating and persisting a fresh one when the stored
// challenge is stale or missing.
func (s *Service) DailyChallenge(ctx context.Context) (*storage.Challenge, bool, error) {
	p, err := s.getProgress(ctx)
	if err != nil {
		return nil, false, err
	}

	todayISO := FormatDate(DateOf(s.now()))
	if p.DailyChallenge != nil && p.DailyChallenge.Date == todayISO {
		return p.DailyChallenge, p.ChallengeCompleted, nil
	}

	ch := NewDailyChallenge(p.Level, s.now(), s.rng)
	p.DailyChallenge = &ch
	p.ChallengeCompleted = false
	if err := s.progress.Save(ctx, p); err != nil {
		return nil, false, err
	}
	return p.DailyChallenge, false, nil
}

// CompleteChallenge awards today's challenge XP, once per day.
func (s *Service) CompleteChallenge(ctx context.Context) (*XPResult, error) {
	p, err := s.getProgress(ctx)
	if err != nil {
		return nil, err
	}

	todayISO := FormatDate(DateOf(s.now()))
	if p.DailyChallenge == nil || p.DailyChallenge.Date != todayISO {
		return nil, errors.New("no challenge generated for today")
	}
	if p.ChallengeCompleted {
		return nil, errors.New("today's challenge is already completed")
	}

	p.ChallengeCompleted = true
	res := AddXP(p, p.DailyChallenge.XPReward, "Daily challenge: "+p.DailyChallenge.Text)
	if err := s.progress.Save(ctx, p); err != nil {
		return nil, err
	}
	return &res, nil
}
