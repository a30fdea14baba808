package engine

import (
	"strings"
	"time"

	"strive/internal/storage"
)

// urgencyKeywords weight substring matches in task titles. Each hit adds
// weight*3 points, capped at 30 in total.
var urgencyKeywords = map[string]int{
	"urgent":    3,
	"asap":      3,
	"critical":  3,
	"important": 2,
	"meeting":   2,
	"deadline":  2,
	"review":    1,
	"email":     1,
}

// Score rates a task 0-100 from four weighted factors: deadline proximity
// (up to 40), title urgency keywords (up to 30), task age (up to 20) and
// title length (up to 10). The second return value is the priority band the
// score falls into.
func Score(title, deadline, createdAt string, now time.Time) (int, Priority) {
	score := 0
	today := DateOf(now)

	if due, ok := ParseDate(deadline); ok {
		daysUntil := DaysBetween(today, due)
		switch {
		case daysUntil < 0:
			score += 40
		case daysUntil == 0:
			score += 35
		case daysUntil == 1:
			score += 30
		case daysUntil <= 3:
			score += 25
		case daysUntil <= 7:
			score += 15
		default:
			score += max(0, 10-daysUntil/7)
		}
	}

	lower := strings.ToLower(title)
	keywordScore := 0
	for keyword, weight := range urgencyKeywords {
		if strings.Contains(lower, keyword) {
			keywordScore += weight * 3
		}
	}
	score += min(30, keywordScore)

	if created, ok := ParseDateTime(createdAt); ok {
		if age := int(now.Sub(created).Hours() / 24); age > 0 {
			score += min(20, age*2)
		}
	}

	score += min(10, len(strings.Fields(title)))

	score = min(100, score)
	return score, PriorityForScore(score)
}

// PriorityForScore maps a 0-100 score to its label band.
func PriorityForScore(score int) Priority {
	switch {
	case score >= 70:
		return PriorityCritical
	case score >= 50:
		return PriorityHigh
	case score >= 30:
		return PriorityNormal
	default:
		return PriorityLow
	}
}

// ScoreTask scores a stored task using its real creation time.
func ScoreTask(t storage.Task, now time.Time) (int, Priority) {
	return Score(t.Title, strVal(t.Deadline), t.CreatedAt, now)
}
