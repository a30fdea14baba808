package engine

import (
	"fmt"
	"time"

	"strive/internal/storage"
)

// XP awards for the ledger's record operations.
const (
	XPTaskAdded     = 5
	XPTaskCompleted = 10
	XPHabitChecked  = 15

	// Reaching level L+1 from level L costs L*100 XP.
	xpPerLevelStep = 100

	// One XP per five minutes of recorded focus.
	focusXPDivisor = 5
)

// XPResult reports one XP credit and the level it left the ledger at.
type XPResult struct {
	XPGained int
	TotalXP  int
	Level    int
	LevelUp  bool
	Reason   string
}

// LevelProgress reports how far into the current level the ledger is.
type LevelProgress struct {
	Into       int
	Needed     int
	Percentage float64
}

// LevelForXP computes the level reached with the given lifetime XP by
// walking the thresholds.
func LevelForXP(xp int) int {
	level := 1
	remaining := xp
	for remaining >= level*xpPerLevelStep {
		remaining -= level * xpPerLevelStep
		level++
	}
	return level
}

// XPFloorForLevel returns the lifetime XP needed to reach the given level.
func XPFloorForLevel(level int) int {
	total := 0
	for i := 1; i < level; i++ {
		total += i * xpPerLevelStep
	}
	return total
}

// AddXP credits xp to the ledger and recomputes the level.
func AddXP(p *storage.Progress, amount int, reason string) XPResult {
	before := p.Level
	p.XP += amount
	p.Level = LevelForXP(p.XP)
	return XPResult{
		XPGained: amount,
		TotalXP:  p.XP,
		Level:    p.Level,
		LevelUp:  p.Level > before,
		Reason:   reason,
	}
}

// ProgressToNextLevel measures the distance to the next level-up.
func ProgressToNextLevel(p *storage.Progress) LevelProgress {
	lp := LevelProgress{
		Into:   p.XP - XPFloorForLevel(p.Level),
		Needed: p.Level * xpPerLevelStep,
	}
	if lp.Needed > 0 {
		lp.Percentage = float64(lp.Into) / float64(lp.Needed) * 100
	}
	return lp
}

// RotateDailyStats zeroes the daily counters on the first ledger touch of a
// new day and maintains the consecutive-active-days count: exactly one day
// since the last active date extends the run, anything else restarts it at
// 1. Returns true when a rotation happened.
func RotateDailyStats(p *storage.Progress, today time.Time) bool {
	todayISO := FormatDate(DateOf(today))
	if p.Stats.LastResetDate == todayISO {
		return false
	}

	p.Stats = storage.DailyStats{LastResetDate: todayISO}
	p.ChallengeCompleted = false

	if last, ok := ParseDate(p.LastActiveDate); ok && DaysBetween(last, DateOf(today)) == 1 {
		p.ConsecutiveDays++
	} else {
		p.ConsecutiveDays = 1
	}
	p.LastActiveDate = todayISO
	return true
}

// RecordTaskCompletion counts one finished task and awards its XP.
func RecordTaskCompletion(p *storage.Progress, today time.Time) XPResult {
	RotateDailyStats(p, today)
	p.Stats.TasksCompletedToday++
	p.TotalTasksCompleted++
	return AddXP(p, XPTaskCompleted, "Task completed")
}

// RecordHabitCheck counts one habit check and awards its XP.
func RecordHabitCheck(p *storage.Progress, today time.Time) XPResult {
	RotateDailyStats(p, today)
	p.Stats.HabitsCheckedToday++
	return AddXP(p, XPHabitChecked, "Habit checked")
}

// RecordFocusMinutes credits focus time at one XP per five minutes.
func RecordFocusMinutes(p *storage.Progress, minutes int, today time.Time) XPResult {
	RotateDailyStats(p, today)
	p.TotalFocusMinutes += minutes
	return AddXP(p, minutes/focusXPDivisor, fmt.Sprintf("Focus time: %d min", minutes))
}

// UseStreakFreeze consumes one freeze, returns false when none remain.
func UseStreakFreeze(p *storage.Progress) bool {
	if p.StreakFreezes <= 0 {
		return false
	}
	p.StreakFreezes--
	return true
}

// EarnStreakFreeze adds one freeze to the stash.
func EarnStreakFreeze(p *storage.Progress) {
	p.StreakFreezes++
}
