package engine

import (
	"time"

	"strive/internal/storage"
)

// CheckInResult reports the outcome of a habit check-in.
type CheckInResult struct {
	Checked        bool // false when the habit was already checked today
	Streak         int
	PreviousStreak int
}

// CheckIn applies one day's check-in to a habit. Checking twice on the same
// day is a no-op. A gap of exactly one day extends the streak, any longer
// gap restarts it at 1, as does an unparsable last-checked date. A
// last-checked date in the future keeps the streak and only moves the date
// forward to today.
func CheckIn(h storage.Habit, today time.Time) (storage.Habit, CheckInResult) {
	todayISO := FormatDate(DateOf(today))
	prev := h.Streak

	last := strVal(h.LastChecked)
	if last == todayISO {
		return h, CheckInResult{Checked: false, Streak: h.Streak, PreviousStreak: prev}
	}

	if last == "" {
		h.Streak = 1
	} else if lastDate, ok := ParseDate(last); !ok {
		h.Streak = 1
	} else {
		switch diff := DaysBetween(lastDate, DateOf(today)); {
		case diff == 1:
			h.Streak++
		case diff > 1:
			h.Streak = 1
		}
	}

	h.LastChecked = strPtr(todayISO)
	return h, CheckInResult{Checked: true, Streak: h.Streak, PreviousStreak: prev}
}
