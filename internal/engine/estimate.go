package engine

import "strings"

// EstimateMinutes guesses how long a task will take from its title: word
// count sets the band, activity keywords override it.
func EstimateMinutes(title string) int {
	minutes := 120
	switch words := len(strings.Fields(title)); {
	case words <= 3:
		minutes = 15
	case words <= 6:
		minutes = 30
	case words <= 10:
		minutes = 60
	}

	lower := strings.ToLower(title)
	switch {
	case containsAny(lower, "meeting", "call", "standup"):
		minutes = 30
	case containsAny(lower, "research", "analyze", "review"):
		minutes = 90
	case containsAny(lower, "email", "message", "quick"):
		minutes = 10
	}
	return minutes
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
