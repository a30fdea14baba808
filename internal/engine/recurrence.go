package engine

import (
	"strings"
	"time"

	"strive/internal/storage"
)

// NextOccurrence builds the follow-up row for a repeating task that was just
// completed. The successor keeps the title and repeat rule and moves the
// deadline one day or one week past the old one; a missing or unparsable
// deadline advances from today instead. It starts Pending with the default
// priority. A reminder that carries a date is re-anchored to the new
// deadline, a bare "HH:MM" reminder is kept as-is.
func NextOccurrence(t storage.Task, today time.Time) (storage.TaskInsert, bool) {
	rep := ParseRepeat(t.Repeat)
	if !rep.Recurs() {
		return storage.TaskInsert{}, false
	}

	base, ok := ParseDate(strVal(t.Deadline))
	if !ok {
		base = DateOf(today)
	}

	step := 1
	if rep == RepeatWeekly {
		step = 7
	}
	nextDeadline := FormatDate(base.AddDate(0, 0, step))

	var reminder *string
	if r := strings.TrimSpace(strVal(t.ReminderTime)); r != "" {
		parts := strings.Fields(r)
		if len(parts) > 1 {
			reminder = strPtr(nextDeadline + " " + parts[len(parts)-1])
		} else {
			reminder = strPtr(r)
		}
	}

	return storage.TaskInsert{
		Title:        t.Title,
		Deadline:     strPtr(nextDeadline),
		ReminderTime: reminder,
		Repeat:       string(rep),
		Priority:     string(DefaultPriority),
		Status:       string(StatusPending),
	}, true
}
