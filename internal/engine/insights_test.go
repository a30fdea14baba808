package engine

import (
	"strings"
	"testing"
	"time"

	"strive/internal/storage"
)

var insightsToday = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestAnalyzeNoTasks(t *testing.T) {
	ins := Analyze(nil, nil, insightsToday)
	if ins.TotalTasks != 0 {
		t.Fatalf("total=%d, want 0", ins.TotalTasks)
	}
	want := []string{"Start by adding your first task to build momentum!"}
	if len(ins.Recommendations) != 1 || ins.Recommendations[0] != want[0] {
		t.Fatalf("recommendations=%v, want %v", ins.Recommendations, want)
	}
}

func TestAnalyzeRates(t *testing.T) {
	tasks := []storage.Task{
		{Title: "a", Status: "Done"},
		{Title: "b", Status: "Pending", Deadline: strPtr("2024-05-20")},
		{Title: "c", Status: "Pending", Deadline: strPtr("2024-06-10")},
		{Title: "d", Status: "Pending"},
	}

	ins := Analyze(tasks, nil, insightsToday)
	if ins.CompletedTasks != 1 {
		t.Fatalf("completed=%d, want 1", ins.CompletedTasks)
	}
	if ins.CompletionRate != 25 {
		t.Fatalf("completion=%v, want 25", ins.CompletionRate)
	}
	if ins.OverdueTasks != 1 {
		t.Fatalf("overdue=%d, want 1", ins.OverdueTasks)
	}
	// 1 overdue of 3 pending.
	if ins.ProcrastinationScore < 33.3 || ins.ProcrastinationScore > 33.4 {
		t.Fatalf("procrastination=%v, want ~33.3", ins.ProcrastinationScore)
	}
}

func TestAnalyzeFocusAreas(t *testing.T) {
	tasks := []storage.Task{
		{Title: "write report draft", Status: "Pending"},
		{Title: "Report review", Status: "Pending"},
		{Title: "do it now", Status: "Pending"}, // all words too short
	}

	ins := Analyze(tasks, nil, insightsToday)
	if len(ins.FocusAreas) == 0 || ins.FocusAreas[0] != "report" {
		t.Fatalf("focus areas=%v, want report first", ins.FocusAreas)
	}
	for _, w := range ins.FocusAreas {
		if len(w) <= 3 {
			t.Fatalf("focus area %q too short", w)
		}
	}
}

func TestAnalyzeRecommendationBlocks(t *testing.T) {
	// All pending and overdue: low completion plus high procrastination.
	tasks := []storage.Task{
		{Title: "alpha work", Status: "Pending", Deadline: strPtr("2024-05-01")},
		{Title: "beta work", Status: "Pending", Deadline: strPtr("2024-05-02")},
	}

	ins := Analyze(tasks, nil, insightsToday)
	if len(ins.Recommendations) != 5 {
		t.Fatalf("recommendations=%d, want capped 5", len(ins.Recommendations))
	}
	if !strings.Contains(ins.Recommendations[0], "breaking large tasks") {
		t.Fatalf("first recommendation=%q, want low-completion advice", ins.Recommendations[0])
	}
	joined := strings.Join(ins.Recommendations, "\n")
	if !strings.Contains(joined, "2-minute rule") {
		t.Fatalf("missing procrastination advice in %v", ins.Recommendations)
	}
}

func TestAnalyzeHabitAdvice(t *testing.T) {
	tasks := []storage.Task{{Title: "solo item", Status: "Done"}}

	ins := Analyze(tasks, nil, insightsToday)
	if !containsString(ins.Recommendations, "✨ Start tracking a habit to build long-term success") {
		t.Fatalf("missing no-habit advice: %v", ins.Recommendations)
	}

	strong := []storage.Habit{{Name: "run", Streak: 10}}
	ins = Analyze(tasks, strong, insightsToday)
	if !containsString(ins.Recommendations, "🔥 Amazing habit streaks! Consider adding a new challenging habit") {
		t.Fatalf("missing strong-streak advice: %v", ins.Recommendations)
	}
}

func TestFocusScore(t *testing.T) {
	if got := FocusScore(0, 0, 0); got != 0 {
		t.Fatalf("FocusScore(0,0,0)=%d, want 0", got)
	}
	if got := FocusScore(5, 120, 2); got != 100 {
		t.Fatalf("FocusScore(5,120,2)=%d, want 100", got)
	}
	if got := FocusScore(2, 60, 1); got != 46 {
		t.Fatalf("FocusScore(2,60,1)=%d, want 46", got)
	}
	if got := FocusScore(50, 600, 50); got != 100 {
		t.Fatalf("FocusScore capped=%d, want 100", got)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
