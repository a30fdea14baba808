package engine

import (
	"testing"
	"time"

	"strive/internal/storage"
)

var streakToday = time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

func TestCheckInFirstTime(t *testing.T) {
	h := storage.Habit{ID: 1, Name: "meditate"}

	updated, res := CheckIn(h, streakToday)
	if !res.Checked {
		t.Fatalf("Checked=false, want true")
	}
	if updated.Streak != 1 {
		t.Fatalf("streak=%d, want 1", updated.Streak)
	}
	if got := strVal(updated.LastChecked); got != "2024-03-15" {
		t.Fatalf("last_checked=%s, want 2024-03-15", got)
	}
}

func TestCheckInConsecutiveDayExtends(t *testing.T) {
	h := storage.Habit{ID: 1, Name: "meditate", Streak: 6, LastChecked: strPtr("2024-03-14")}

	updated, res := CheckIn(h, streakToday)
	if !res.Checked {
		t.Fatalf("Checked=false, want true")
	}
	if updated.Streak != 7 {
		t.Fatalf("streak=%d, want 7", updated.Streak)
	}
	if res.PreviousStreak != 6 {
		t.Fatalf("previous=%d, want 6", res.PreviousStreak)
	}
}

func TestCheckInGapRestarts(t *testing.T) {
	h := storage.Habit{ID: 1, Name: "meditate", Streak: 12, LastChecked: strPtr("2024-03-12")}

	updated, res := CheckIn(h, streakToday)
	if !res.Checked {
		t.Fatalf("Checked=false, want true")
	}
	if updated.Streak != 1 {
		t.Fatalf("streak after 3-day gap=%d, want 1", updated.Streak)
	}
}

func TestCheckInSameDayNoOp(t *testing.T) {
	h := storage.Habit{ID: 1, Name: "meditate", Streak: 4, LastChecked: strPtr("2024-03-15")}

	updated, res := CheckIn(h, streakToday)
	if res.Checked {
		t.Fatalf("Checked=true, want false")
	}
	if updated.Streak != 4 {
		t.Fatalf("streak=%d, want unchanged 4", updated.Streak)
	}
}

func TestCheckInFutureDateKeepsStreak(t *testing.T) {
	h := storage.Habit{ID: 1, Name: "meditate", Streak: 9, LastChecked: strPtr("2024-03-20")}

	updated, res := CheckIn(h, streakToday)
	if !res.Checked {
		t.Fatalf("Checked=false, want true")
	}
	if updated.Streak != 9 {
		t.Fatalf("streak=%d, want kept 9", updated.Streak)
	}
	if got := strVal(updated.LastChecked); got != "2024-03-15" {
		t.Fatalf("last_checked=%s, want 2024-03-15", got)
	}
}

func TestCheckInUnparsableDateRestarts(t *testing.T) {
	h := storage.Habit{ID: 1, Name: "meditate", Streak: 30, LastChecked: strPtr("last tuesday")}

	updated, _ := CheckIn(h, streakToday)
	if updated.Streak != 1 {
		t.Fatalf("streak=%d, want 1", updated.Streak)
	}
}

func TestCheckInDatetimeLastCheckedSameDay(t *testing.T) {
	// A last-checked value with a time component on today's date is not the
	// bare ISO string, so the check-in proceeds but the streak stays put.
	h := storage.Habit{ID: 1, Name: "meditate", Streak: 5, LastChecked: strPtr("2024-03-15 07:00")}

	updated, res := CheckIn(h, streakToday)
	if !res.Checked {
		t.Fatalf("Checked=false, want true")
	}
	if updated.Streak != 5 {
		t.Fatalf("streak=%d, want 5", updated.Streak)
	}
	if got := strVal(updated.LastChecked); got != "2024-03-15" {
		t.Fatalf("last_checked=%s, want normalized 2024-03-15", got)
	}
}
