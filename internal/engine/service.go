package engine

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"strings"
	"time"

	"strive/internal/storage"
)

type Service struct {
	db       *sql.DB
	tasks    *storage.TaskRepo
	habits   *storage.HabitRepo
	progress *storage.ProgressRepo

	now func() time.Time
	rng *rand.Rand
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:       db,
		tasks:    storage.NewTaskRepo(db),
		habits:   storage.NewHabitRepo(db),
		progress: storage.NewProgressRepo(db),
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock pins the service clock. Tests use it to make day math
// deterministic.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithRand pins the random source used for daily challenges.
func (s *Service) WithRand(rng *rand.Rand) *Service {
	s.rng = rng
	return s
}

func (s *Service) TaskRepo() *storage.TaskRepo         { return s.tasks }
func (s *Service) HabitRepo() *storage.HabitRepo       { return s.habits }
func (s *Service) ProgressRepo() *storage.ProgressRepo { return s.progress }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("name is required")
	}
	return n, nil
}

// getProgress loads the progress record and applies the daily rotation,
// persisting immediately when the day rolled over.
func (s *Service) getProgress(ctx context.Context) (*storage.Progress, error) {
	p, err := s.progress.GetOrCreate(ctx, FormatDate(DateOf(s.now())))
	if err != nil {
		return nil, err
	}
	if RotateDailyStats(p, s.now()) {
		if err := s.progress.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ListTasks returns every stored task, newest first.
func (s *Service) ListTasks(ctx context.Context) ([]storage.Task, error) {
	return s.tasks.ListAll(ctx)
}

// TasksOnDate returns tasks whose deadline is exactly the given ISO date.
func (s *Service) TasksOnDate(ctx context.Context, dateISO string) ([]storage.Task, error) {
	return s.tasks.ListByDeadline(ctx, dateISO)
}

// ListHabits returns every stored habit, newest first.
func (s *Service) ListHabits(ctx context.Context) ([]storage.Habit, error) {
	return s.habits.ListAll(ctx)
}

// Overview aggregates everything the status screen shows.
type Overview struct {
	Level               int
	XP                  int
	Next                LevelProgress
	AchievementsEarned  int
	AchievementsTotal   int
	StreakFreezes       int
	ConsecutiveDays     int
	TotalTasksCompleted int
	TotalFocusMinutes   int
	TasksCompletedToday int
	HabitsCheckedToday  int
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	p, err := s.getProgress(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{
		Level:               p.Level,
		XP:                  p.XP,
		Next:                ProgressToNextLevel(p),
		AchievementsEarned:  len(p.Achievements),
		AchievementsTotal:   len(Achievements),
		StreakFreezes:       p.StreakFreezes,
		ConsecutiveDays:     p.ConsecutiveDays,
		TotalTasksCompleted: p.TotalTasksCompleted,
		TotalFocusMinutes:   p.TotalFocusMinutes,
		TasksCompletedToday: p.Stats.TasksCompletedToday,
		HabitsCheckedToday:  p.Stats.HabitsCheckedToday,
	}, nil
}
