package engine

import "strings"

type Repeat string

const (
	RepeatNone   Repeat = "none"
	RepeatDaily  Repeat = "daily"
	RepeatWeekly Repeat = "weekly"
)

func (r Repeat) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly:
		return true
	default:
		return false
	}
}

// Recurs reports whether completing a task with this rule spawns a follow-up.
func (r Repeat) Recurs() bool {
	return r == RepeatDaily || r == RepeatWeekly
}

// ParseRepeat is lenient: case and surrounding space are ignored, anything
// unrecognized means no repetition.
func ParseRepeat(input string) Repeat {
	switch Repeat(strings.ToLower(strings.TrimSpace(input))) {
	case RepeatDaily:
		return RepeatDaily
	case RepeatWeekly:
		return RepeatWeekly
	default:
		return RepeatNone
	}
}

type Status string

const (
	StatusPending Status = "Pending"
	StatusDone    Status = "Done"
)

type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityNormal   Priority = "Normal"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// DefaultPriority is assigned to new tasks before scoring runs.
const DefaultPriority = PriorityNormal

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string {
	return &s
}
