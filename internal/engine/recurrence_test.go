package engine

import (
	"testing"
	"time"

	"strive/internal/storage"
)

var recurToday = time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

func TestNextOccurrenceDaily(t *testing.T) {
	task := storage.Task{Title: "water plants", Deadline: strPtr("2024-01-10"), Repeat: "daily"}

	next, ok := NextOccurrence(task, recurToday)
	if !ok {
		t.Fatalf("NextOccurrence ok=false, want true")
	}
	if got := strVal(next.Deadline); got != "2024-01-11" {
		t.Fatalf("deadline=%s, want 2024-01-11", got)
	}
	if next.Title != "water plants" {
		t.Fatalf("title=%s, want unchanged", next.Title)
	}
	if next.Repeat != "daily" {
		t.Fatalf("repeat=%s, want daily", next.Repeat)
	}
	if next.Status != "Pending" {
		t.Fatalf("status=%s, want Pending", next.Status)
	}
	if next.Priority != "Normal" {
		t.Fatalf("priority=%s, want Normal", next.Priority)
	}
}

func TestNextOccurrenceWeekly(t *testing.T) {
	task := storage.Task{Title: "weekly report", Deadline: strPtr("2024-01-10"), Repeat: "weekly"}

	next, ok := NextOccurrence(task, recurToday)
	if !ok {
		t.Fatalf("NextOccurrence ok=false, want true")
	}
	if got := strVal(next.Deadline); got != "2024-01-17" {
		t.Fatalf("deadline=%s, want 2024-01-17", got)
	}
}

func TestNextOccurrenceNonRepeating(t *testing.T) {
	for _, repeat := range []string{"none", "", "monthly"} {
		task := storage.Task{Title: "one-off", Repeat: repeat}
		if _, ok := NextOccurrence(task, recurToday); ok {
			t.Fatalf("NextOccurrence(repeat=%q) ok=true, want false", repeat)
		}
	}
}

func TestNextOccurrenceMissingDeadlineUsesToday(t *testing.T) {
	task := storage.Task{Title: "stretch", Repeat: "daily"}

	next, ok := NextOccurrence(task, recurToday)
	if !ok {
		t.Fatalf("NextOccurrence ok=false, want true")
	}
	if got := strVal(next.Deadline); got != "2024-01-11" {
		t.Fatalf("deadline=%s, want 2024-01-11", got)
	}

	task.Deadline = strPtr("not-a-date")
	next, _ = NextOccurrence(task, recurToday)
	if got := strVal(next.Deadline); got != "2024-01-11" {
		t.Fatalf("deadline after bad date=%s, want 2024-01-11", got)
	}
}

func TestNextOccurrenceReminderKeepsBareClock(t *testing.T) {
	task := storage.Task{
		Title:        "standup",
		Deadline:     strPtr("2024-01-10"),
		ReminderTime: strPtr("09:30"),
		Repeat:       "daily",
	}

	next, _ := NextOccurrence(task, recurToday)
	if got := strVal(next.ReminderTime); got != "09:30" {
		t.Fatalf("reminder=%s, want 09:30", got)
	}
}

func TestNextOccurrenceReminderReanchorsDate(t *testing.T) {
	task := storage.Task{
		Title:        "standup",
		Deadline:     strPtr("2024-01-10"),
		ReminderTime: strPtr("2024-01-10 09:30"),
		Repeat:       "daily",
	}

	next, _ := NextOccurrence(task, recurToday)
	if got := strVal(next.ReminderTime); got != "2024-01-11 09:30" {
		t.Fatalf("reminder=%s, want 2024-01-11 09:30", got)
	}
}

func TestNextOccurrenceNoReminder(t *testing.T) {
	task := storage.Task{Title: "stretch", Deadline: strPtr("2024-01-10"), Repeat: "daily"}

	next, _ := NextOccurrence(task, recurToday)
	if next.ReminderTime != nil {
		t.Fatalf("reminder=%q, want nil", strVal(next.ReminderTime))
	}
}

func TestNextOccurrenceCaseInsensitiveRepeat(t *testing.T) {
	task := storage.Task{Title: "drink water", Deadline: strPtr("2024-01-10"), Repeat: "Daily"}

	next, ok := NextOccurrence(task, recurToday)
	if !ok {
		t.Fatalf("NextOccurrence(Daily) ok=false, want true")
	}
	if next.Repeat != "daily" {
		t.Fatalf("repeat=%s, want normalized daily", next.Repeat)
	}
}
