package engine

import (
	"testing"

	"strive/internal/storage"
)

func TestUnlockAchievementOnce(t *testing.T) {
	p := newLedger()

	res := UnlockAchievement(p, AchFirstTask)
	if res == nil {
		t.Fatalf("first unlock=nil, want result")
	}
	if res.Achievement.Name != "🎯 First Step" {
		t.Fatalf("name=%q", res.Achievement.Name)
	}
	if res.XP.XPGained != 50 {
		t.Fatalf("xp=%d, want 50", res.XP.XPGained)
	}
	if res.XP.Reason != "Achievement: 🎯 First Step" {
		t.Fatalf("reason=%q", res.XP.Reason)
	}

	if again := UnlockAchievement(p, AchFirstTask); again != nil {
		t.Fatalf("second unlock=%v, want nil", again)
	}
	if p.XP != 50 {
		t.Fatalf("xp=%d, want 50 (no double award)", p.XP)
	}
}

func TestUnlockAchievementUnknownID(t *testing.T) {
	p := newLedger()
	if res := UnlockAchievement(p, "no_such_badge"); res != nil {
		t.Fatalf("unlock unknown id=%v, want nil", res)
	}
	if len(p.Achievements) != 0 {
		t.Fatalf("achievements=%v, want empty", p.Achievements)
	}
}

func TestCheckAchievementsTaskThresholds(t *testing.T) {
	p := newLedger()
	tasks := []storage.Task{{Title: "done one", Status: "Done"}}

	unlocked := CheckAchievements(p, tasks, nil)
	if len(unlocked) != 1 || unlocked[0].Achievement.ID != AchFirstTask {
		t.Fatalf("unlocked=%v, want [first_task]", unlocked)
	}
}

func TestCheckAchievementsUsesLifetimeCounter(t *testing.T) {
	// Completed rows are deleted, so snapshots rarely show Done tasks. The
	// lifetime counter must still trip the thresholds.
	p := newLedger()
	p.TotalTasksCompleted = 10

	unlocked := CheckAchievements(p, nil, nil)
	ids := unlockedIDs(unlocked)
	if !ids[AchFirstTask] || !ids[AchTaskMaster10] {
		t.Fatalf("unlocked=%v, want first_task and task_master_10", ids)
	}
	if ids[AchTaskMaster50] {
		t.Fatalf("task_master_50 unlocked at 10 completions")
	}
}

func TestCheckAchievementsStreakTiers(t *testing.T) {
	p := newLedger()
	habits := []storage.Habit{
		{Name: "run", Streak: 2},
		{Name: "read", Streak: 8},
	}

	ids := unlockedIDs(CheckAchievements(p, nil, habits))
	if !ids[AchStreak3] || !ids[AchStreak7] {
		t.Fatalf("unlocked=%v, want streak_3 and streak_7 from max streak", ids)
	}
	if ids[AchStreak30] {
		t.Fatalf("streak_30 unlocked at streak 8")
	}
}

func TestCheckAchievementsHabitCollector(t *testing.T) {
	p := newLedger()
	habits := make([]storage.Habit, 5)
	for i := range habits {
		habits[i] = storage.Habit{ID: int64(i + 1), Name: "h"}
	}

	ids := unlockedIDs(CheckAchievements(p, nil, habits))
	if !ids[AchHabitCollector] {
		t.Fatalf("habit_collector not unlocked with 5 habits")
	}
}

func TestCheckAchievementsConsistency(t *testing.T) {
	p := newLedger()
	p.ConsecutiveDays = 7

	ids := unlockedIDs(CheckAchievements(p, nil, nil))
	if !ids[AchConsistency] {
		t.Fatalf("consistency not unlocked at 7 consecutive days")
	}
}

func TestCheckAchievementsNothingNew(t *testing.T) {
	p := newLedger()
	p.TotalTasksCompleted = 1
	CheckAchievements(p, nil, nil)

	if again := CheckAchievements(p, nil, nil); len(again) != 0 {
		t.Fatalf("second pass unlocked=%v, want none", again)
	}
}

func TestAchievementByID(t *testing.T) {
	def := AchievementByID(AchFocusMaster)
	if def == nil {
		t.Fatalf("AchievementByID(focus_master)=nil")
	}
	if def.XP != 300 {
		t.Fatalf("xp=%d, want 300", def.XP)
	}
	if AchievementByID("bogus") != nil {
		t.Fatalf("AchievementByID(bogus) != nil")
	}
}

func unlockedIDs(results []UnlockResult) map[string]bool {
	ids := map[string]bool{}
	for _, r := range results {
		ids[r.Achievement.ID] = true
	}
	return ids
}
