package engine

import (
	"fmt"
	"strings"
)

// HabitInsight is coaching copy for a habit at its current streak.
type HabitInsight struct {
	Status        string
	Motivation    string
	NextMilestone int
	Tips          []string
}

// InsightForHabit maps the streak onto a status ladder and picks tips
// matched to the habit's activity.
func InsightForHabit(name string, streak int) HabitInsight {
	var ins HabitInsight
	switch {
	case streak == 0:
		ins.Status = "🌱 Just starting"
		ins.Motivation = "Every expert was once a beginner. Start today!"
		ins.NextMilestone = 3
	case streak < 7:
		ins.Status = "🔥 Building momentum"
		ins.Motivation = fmt.Sprintf("You're %d days away from your first week!", 7-streak)
		ins.NextMilestone = 7
	case streak < 30:
		ins.Status = "💪 Strong habit forming"
		ins.Motivation = "You're in the habit formation zone. Keep going!"
		ins.NextMilestone = 30
	case streak < 100:
		ins.Status = "⭐ Habit master"
		ins.Motivation = "This habit is part of your identity now!"
		ins.NextMilestone = 100
	default:
		ins.Status = "🏆 Legendary"
		ins.Motivation = "You're an inspiration! This is who you are."
		ins.NextMilestone = (streak/100 + 1) * 100
	}

	lower := strings.ToLower(name)
	switch {
	case containsAny(lower, "exercise", "workout", "gym", "run"):
		ins.Tips = []string{
			"Schedule it like a meeting",
			"Prepare your gear the night before",
			"Start with just 5 minutes if motivation is low",
		}
	case containsAny(lower, "read", "book"):
		ins.Tips = []string{
			"Keep your book visible",
			"Read during your morning coffee",
			"Try audiobooks for busy days",
		}
	case containsAny(lower, "meditate", "mindful"):
		ins.Tips = []string{
			"Same time, same place daily",
			"Use a guided meditation app",
			"Start with 2 minutes, not 20",
		}
	default:
		ins.Tips = []string{
			"Stack it with an existing habit",
			"Track it visually for motivation",
			"Celebrate small wins",
		}
	}
	return ins
}
