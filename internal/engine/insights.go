package engine

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"strive/internal/storage"
)

// Insights summarizes how the task list and habits are going.
type Insights struct {
	TotalTasks           int
	CompletedTasks       int
	OverdueTasks         int
	CompletionRate       float64
	ProcrastinationScore float64
	FocusAreas           []string
	Recommendations      []string
}

const maxRecommendations = 5

var wordPattern = regexp.MustCompile(`\w+`)

// Analyze summarizes completion, overdue pressure and recurring topics
// across the current tasks and habits, then assembles up to five
// recommendations. With no tasks at all it only suggests getting started.
func Analyze(tasks []storage.Task, habits []storage.Habit, today time.Time) Insights {
	ins := Insights{TotalTasks: len(tasks)}
	if len(tasks) == 0 {
		ins.Recommendations = []string{"Start by adding your first task to build momentum!"}
		return ins
	}

	pending := 0
	for _, t := range tasks {
		if t.Status == string(StatusDone) {
			ins.CompletedTasks++
			continue
		}
		pending++
		if due, ok := ParseDate(strVal(t.Deadline)); ok && due.Before(DateOf(today)) {
			ins.OverdueTasks++
		}
	}
	ins.CompletionRate = float64(ins.CompletedTasks) / float64(len(tasks)) * 100
	if pending > 0 {
		ins.ProcrastinationScore = min(100, float64(ins.OverdueTasks)/float64(pending)*100)
	}

	ins.FocusAreas = focusAreas(tasks)
	ins.Recommendations = recommendations(ins, habits)
	return ins
}

// focusAreas extracts the five most frequent meaningful title words.
// First-seen order breaks frequency ties.
func focusAreas(tasks []storage.Task) []string {
	counts := map[string]int{}
	var order []string
	for _, t := range tasks {
		for _, w := range wordPattern.FindAllString(strings.ToLower(t.Title), -1) {
			if len(w) <= 3 {
				continue
			}
			if _, seen := counts[w]; !seen {
				order = append(order, w)
			}
			counts[w]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > 5 {
		order = order[:5]
	}
	return order
}

func recommendations(ins Insights, habits []storage.Habit) []string {
	var recs []string

	switch {
	case ins.CompletionRate < 30:
		recs = append(recs,
			"🎯 Try breaking large tasks into smaller, manageable steps",
			"⏰ Set realistic deadlines to avoid overwhelm")
	case ins.CompletionRate < 60:
		recs = append(recs,
			"📈 You're making progress! Focus on consistency",
			"🔥 Consider using the Pomodoro technique for better focus")
	default:
		recs = append(recs,
			"🌟 Excellent completion rate! You're crushing it!",
			"🚀 Challenge yourself with more ambitious goals")
	}

	if ins.ProcrastinationScore > 50 {
		recs = append(recs,
			"⚠️ High procrastination detected. Try the 2-minute rule: if it takes less than 2 minutes, do it now",
			"🧠 Use the Eisenhower Matrix to prioritize urgent vs important tasks")
	}

	if ins.OverdueTasks > 3 {
		recs = append(recs, fmt.Sprintf("📌 You have %d overdue tasks. Tackle the smallest one first!", ins.OverdueTasks))
	}

	if len(habits) > 0 {
		total := 0
		for _, h := range habits {
			total += h.Streak
		}
		avg := float64(total) / float64(len(habits))
		if avg < 3 {
			recs = append(recs, "💪 Build momentum by maintaining a 7-day streak on one habit")
		} else if avg >= 7 {
			recs = append(recs, "🔥 Amazing habit streaks! Consider adding a new challenging habit")
		}
	} else {
		recs = append(recs, "✨ Start tracking a habit to build long-term success")
	}

	if len(ins.FocusAreas) > 0 {
		recs = append(recs, fmt.Sprintf("🎓 Your main focus is '%s'. Consider time-blocking for deep work", ins.FocusAreas[0]))
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// FocusScore rates a single day 0-100 from tasks completed (40), focus
// minutes against a two hour target (40) and habits checked (20).
func FocusScore(tasksToday, focusMinutes, habitsToday int) int {
	score := min(40, tasksToday*8)
	score += min(40, focusMinutes*40/120)
	score += min(20, habitsToday*10)
	return min(100, score)
}

// ProductivityInsights analyzes the current task list and habits.
func (s *Service) ProductivityInsights(ctx context.Context) (*Insights, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	habits, err := s.habits.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ins := Analyze(tasks, habits, s.now())
	return &ins, nil
}
