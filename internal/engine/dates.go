package engine

import (
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
	dateClockLayout = "2006-01-02 15:04"
	timestampLayout = "2006-01-02 15:04:05"
)

// Stored date strings come from several writers, so parsing tries the common
// shapes before giving up.
var datetimeLayouts = []string{
	dateLayout,
	timestampLayout,
	"2006-01-02T15:04:05",
	dateClockLayout,
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDateTime parses a stored date or datetime string. Returns false for
// empty or unparsable input, the engine treats both as unset.
func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDate parses like ParseDateTime but drops the time of day.
func ParseDate(s string) (time.Time, bool) {
	t, ok := ParseDateTime(s)
	if !ok {
		return time.Time{}, false
	}
	return DateOf(t), true
}

// DateOf truncates t to midnight UTC. All calendar-day arithmetic in the
// engine runs on these normalized values.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns b minus a in whole calendar days.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// FormatDate renders t as an ISO date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
