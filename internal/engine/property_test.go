package engine

import (
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"strive/internal/storage"
)

var propBase = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

var propTitleWords = []string{
	"urgent", "review", "email", "meeting", "plan", "the",
	"quarterly", "report", "asap", "fix", "bug", "deadline",
}

// TestProperty_ScoreBounds verifies every score lands in [0, 100] and its
// label agrees with the band mapping.
func TestProperty_ScoreBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		words := rapid.SliceOfN(rapid.SampledFrom(propTitleWords), 1, 12).Draw(rt, "words")
		title := strings.Join(words, " ")

		deadline := ""
		if rapid.Bool().Draw(rt, "hasDeadline") {
			offset := rapid.IntRange(-30, 90).Draw(rt, "deadlineOffset")
			deadline = FormatDate(propBase.AddDate(0, 0, offset))
		}
		createdAge := rapid.IntRange(-5, 60).Draw(rt, "createdAge")
		created := propBase.AddDate(0, 0, -createdAge).Format("2006-01-02 15:04:05")

		score, label := Score(title, deadline, created, propBase)
		if score < 0 || score > 100 {
			rt.Fatalf("score %d out of range for title %q deadline %q created %q", score, title, deadline, created)
		}
		if label != PriorityForScore(score) {
			rt.Fatalf("label %s disagrees with band for score %d", label, score)
		}
	})
}

// TestProperty_LevelMonotonic verifies more lifetime XP never lowers the
// level, and a level's XP floor never exceeds the XP that produced it.
func TestProperty_LevelMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(0, 500_000).Draw(rt, "a")
		b := rapid.IntRange(0, 500_000).Draw(rt, "b")
		if a > b {
			a, b = b, a
		}

		la, lb := LevelForXP(a), LevelForXP(b)
		if la > lb {
			rt.Fatalf("LevelForXP(%d)=%d > LevelForXP(%d)=%d", a, la, b, lb)
		}
		if floor := XPFloorForLevel(la); floor > a {
			rt.Fatalf("XPFloorForLevel(%d)=%d exceeds xp %d", la, floor, a)
		}
	})
}

// TestProperty_CheckInLandsOnToday verifies a successful check-in always
// moves last-checked to today with a streak of 1, previous+1 or previous,
// and a second same-day check-in changes nothing.
func TestProperty_CheckInLandsOnToday(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		h := storage.Habit{ID: 1, Name: "habit", Streak: rapid.IntRange(0, 200).Draw(rt, "streak")}
		if rapid.Bool().Draw(rt, "hasLast") {
			offset := rapid.IntRange(-10, 10).Draw(rt, "lastOffset")
			h.LastChecked = strPtr(FormatDate(propBase.AddDate(0, 0, offset)))
		}

		updated, res := CheckIn(h, propBase)
		if !res.Checked {
			if strVal(h.LastChecked) != FormatDate(propBase) {
				rt.Fatalf("check-in refused but last_checked=%q is not today", strVal(h.LastChecked))
			}
			return
		}

		if s := updated.Streak; s != 1 && s != h.Streak+1 && s != h.Streak {
			rt.Fatalf("streak %d from %d, want 1, previous or previous+1", s, h.Streak)
		}
		if got := strVal(updated.LastChecked); got != FormatDate(propBase) {
			rt.Fatalf("last_checked=%s, want today", got)
		}

		again, res2 := CheckIn(updated, propBase)
		if res2.Checked {
			rt.Fatalf("second same-day check-in succeeded")
		}
		if again.Streak != updated.Streak {
			rt.Fatalf("second check-in changed streak %d -> %d", updated.Streak, again.Streak)
		}
	})
}

// TestProperty_RotationIdempotent verifies the second rotation on the same
// day is a no-op.
func TestProperty_RotationIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		resetAge := rapid.IntRange(0, 5).Draw(rt, "resetAge")
		p := storage.NewProgress(FormatDate(propBase.AddDate(0, 0, -resetAge)))
		p.ConsecutiveDays = rapid.IntRange(0, 30).Draw(rt, "run")
		if rapid.Bool().Draw(rt, "wasActive") {
			activeAge := rapid.IntRange(0, 5).Draw(rt, "activeAge")
			p.LastActiveDate = FormatDate(propBase.AddDate(0, 0, -activeAge))
		}

		RotateDailyStats(p, propBase)
		run, active, stats := p.ConsecutiveDays, p.LastActiveDate, p.Stats

		if RotateDailyStats(p, propBase) {
			rt.Fatalf("second rotation on same day reported a change")
		}
		if p.ConsecutiveDays != run || p.LastActiveDate != active || p.Stats != stats {
			rt.Fatalf("second rotation mutated state")
		}
	})
}

// TestProperty_SuccessorDeadlineAdvances verifies the successor deadline is
// exactly one repeat step past the old deadline.
func TestProperty_SuccessorDeadlineAdvances(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rep := rapid.SampledFrom([]string{"daily", "weekly"}).Draw(rt, "repeat")
		offset := rapid.IntRange(-30, 30).Draw(rt, "deadlineOffset")
		deadline := FormatDate(propBase.AddDate(0, 0, offset))
		task := storage.Task{Title: "t", Deadline: strPtr(deadline), Repeat: rep}

		next, ok := NextOccurrence(task, propBase)
		if !ok {
			rt.Fatalf("NextOccurrence(repeat=%s) refused", rep)
		}

		step := 1
		if rep == "weekly" {
			step = 7
		}
		old, _ := ParseDate(deadline)
		got, _ := ParseDate(strVal(next.Deadline))
		if want := old.AddDate(0, 0, step); !got.Equal(want) {
			rt.Fatalf("successor deadline %s, want %s", strVal(next.Deadline), FormatDate(want))
		}
	})
}
