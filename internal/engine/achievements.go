package engine

import (
	"context"

	"strive/internal/storage"
)

// Achievement ids. Unlocks are persisted on the progress record, so ids are
// the stable contract and must not change.
const (
	AchFirstTask      = "first_task"
	AchTaskMaster10   = "task_master_10"
	AchTaskMaster50   = "task_master_50"
	AchTaskMaster100  = "task_master_100"
	AchStreak3        = "streak_3"
	AchStreak7        = "streak_7"
	AchStreak30       = "streak_30"
	AchStreak100      = "streak_100"
	AchEarlyBird      = "early_bird"
	AchNightOwl       = "night_owl"
	AchSpeedDemon     = "speed_demon"
	AchConsistency    = "consistency"
	AchHabitCollector = "habit_collector"
	AchPerfectDay     = "perfect_day"
	AchComeback       = "comeback"
	AchFocusMaster    = "focus_master"
)

// Achievement is one badge definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	XP          int
}

// Achievements lists every badge in display order.
var Achievements = []Achievement{
	{ID: AchFirstTask, Name: "🎯 First Step", Description: "Complete your first task", XP: 50},
	{ID: AchTaskMaster10, Name: "📋 Task Master", Description: "Complete 10 tasks", XP: 100},
	{ID: AchTaskMaster50, Name: "🏆 Task Champion", Description: "Complete 50 tasks", XP: 500},
	{ID: AchTaskMaster100, Name: "👑 Task Legend", Description: "Complete 100 tasks", XP: 1000},
	{ID: AchStreak3, Name: "🔥 On Fire", Description: "3-day habit streak", XP: 75},
	{ID: AchStreak7, Name: "⚡ Week Warrior", Description: "7-day habit streak", XP: 150},
	{ID: AchStreak30, Name: "💎 Diamond Streak", Description: "30-day habit streak", XP: 500},
	{ID: AchStreak100, Name: "🌟 Century Club", Description: "100-day habit streak", XP: 2000},
	{ID: AchEarlyBird, Name: "🌅 Early Bird", Description: "Complete a task before 8 AM", XP: 100},
	{ID: AchNightOwl, Name: "🦉 Night Owl", Description: "Complete a task after 10 PM", XP: 100},
	{ID: AchSpeedDemon, Name: "⚡ Speed Demon", Description: "Complete 5 tasks in one day", XP: 200},
	{ID: AchConsistency, Name: "📅 Consistency King", Description: "Use app 7 days in a row", XP: 300},
	{ID: AchHabitCollector, Name: "🎨 Habit Collector", Description: "Track 5 different habits", XP: 150},
	{ID: AchPerfectDay, Name: "✨ Perfect Day", Description: "Complete all tasks in a day", XP: 500},
	{ID: AchComeback, Name: "💪 Comeback Kid", Description: "Complete 3 overdue tasks", XP: 200},
	{ID: AchFocusMaster, Name: "🧘 Focus Master", Description: "Spend 2 hours in focus mode", XP: 300},
}

// AchievementByID returns nil for unknown ids.
func AchievementByID(id string) *Achievement {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}

// UnlockResult pairs an unlocked badge with the XP it paid out.
type UnlockResult struct {
	Achievement Achievement
	XP          XPResult
}

// UnlockAchievement unlocks id once and awards its XP. Returns nil for
// unknown ids and for badges already unlocked.
func UnlockAchievement(p *storage.Progress, id string) *UnlockResult {
	if p.HasAchievement(id) {
		return nil
	}
	def := AchievementByID(id)
	if def == nil {
		return nil
	}
	p.Achievements = append(p.Achievements, id)
	xp := AddXP(p, def.XP, "Achievement: "+def.Name)
	return &UnlockResult{Achievement: *def, XP: xp}
}

// CheckAchievements evaluates the automatic rules against the current
// snapshots and unlocks anything newly earned, in a fixed order: task
// totals, habit streak tiers, habit count, then consecutive active days.
func CheckAchievements(p *storage.Progress, tasks []storage.Task, habits []storage.Habit) []UnlockResult {
	var unlocked []UnlockResult
	unlock := func(id string) {
		if res := UnlockAchievement(p, id); res != nil {
			unlocked = append(unlocked, *res)
		}
	}

	// Finished rows are deleted right after completion, so the lifetime
	// counter is the floor for the task thresholds.
	completed := 0
	for _, t := range tasks {
		if t.Status == string(StatusDone) {
			completed++
		}
	}
	completed = max(completed, p.TotalTasksCompleted)

	if completed >= 1 {
		unlock(AchFirstTask)
	}
	if completed >= 10 {
		unlock(AchTaskMaster10)
	}
	if completed >= 50 {
		unlock(AchTaskMaster50)
	}
	if completed >= 100 {
		unlock(AchTaskMaster100)
	}

	if len(habits) > 0 {
		maxStreak := 0
		for _, h := range habits {
			maxStreak = max(maxStreak, h.Streak)
		}
		if maxStreak >= 3 {
			unlock(AchStreak3)
		}
		if maxStreak >= 7 {
			unlock(AchStreak7)
		}
		if maxStreak >= 30 {
			unlock(AchStreak30)
		}
		if maxStreak >= 100 {
			unlock(AchStreak100)
		}
		if len(habits) >= 5 {
			unlock(AchHabitCollector)
		}
	}

	if p.ConsecutiveDays >= 7 {
		unlock(AchConsistency)
	}

	return unlocked
}

// AchievementStatus is a badge plus its unlock state, for display.
type AchievementStatus struct {
	Achievement
	Unlocked bool
}

// AchievementsOverview returns every badge with its unlock status, in
// display order.
func (s *Service) AchievementsOverview(ctx context.Context) ([]AchievementStatus, error) {
	p, err := s.getProgress(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AchievementStatus, 0, len(Achievements))
	for _, def := range Achievements {
		out = append(out, AchievementStatus{Achievement: def, Unlocked: p.HasAchievement(def.ID)})
	}
	return out, nil
}
