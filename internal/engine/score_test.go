package engine

import (
	"testing"
	"time"

	"strive/internal/storage"
)

var scoreNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func TestScoreDeadlineBands(t *testing.T) {
	cases := []struct {
		deadline string
		want     int
	}{
		{"2024-01-09", 40}, // overdue
		{"2024-01-10", 35}, // today
		{"2024-01-11", 30}, // tomorrow
		{"2024-01-13", 25}, // within 3 days
		{"2024-01-17", 15}, // within a week
		{"2024-01-31", 7},  // 21 days out: 10 - 21/7
		{"2024-04-10", 0},  // far out
	}
	for _, c := range cases {
		got, _ := Score("x", c.deadline, "", scoreNow)
		want := c.want + 1 // one title word
		if got != want {
			t.Fatalf("Score(deadline=%s)=%d, want %d", c.deadline, got, want)
		}
	}
}

func TestScoreKeywordsCapAt30(t *testing.T) {
	// urgent(3)+asap(3)+critical(3)+important(2) = 11 weight, 33 raw points.
	got, _ := Score("urgent asap critical important", "", "", scoreNow)
	if got != 30+4 {
		t.Fatalf("Score=%d, want %d", got, 34)
	}
}

func TestScoreAgeFactor(t *testing.T) {
	created := scoreNow.AddDate(0, 0, -4).Format("2006-01-02 15:04:05")
	got, _ := Score("x", "", created, scoreNow)
	if got != 8+1 {
		t.Fatalf("Score(4 days old)=%d, want 9", got)
	}

	// Two weeks old saturates the age factor at 20.
	created = scoreNow.AddDate(0, 0, -14).Format("2006-01-02 15:04:05")
	got, _ = Score("x", "", created, scoreNow)
	if got != 20+1 {
		t.Fatalf("Score(14 days old)=%d, want 21", got)
	}
}

func TestScoreFutureCreatedAtIgnored(t *testing.T) {
	created := scoreNow.AddDate(0, 0, 30).Format("2006-01-02 15:04:05")
	got, _ := Score("x", "", created, scoreNow)
	if got != 1 {
		t.Fatalf("Score(future created_at)=%d, want 1", got)
	}
}

func TestScoreWordFactorCapAt10(t *testing.T) {
	got, _ := Score("a b c d e f g h i j k l m n", "", "", scoreNow)
	if got != 10 {
		t.Fatalf("Score(14 words)=%d, want 10", got)
	}
}

func TestScoreCapsAt100(t *testing.T) {
	created := scoreNow.AddDate(0, 0, -30).Format("2006-01-02 15:04:05")
	got, p := Score("urgent asap critical important meeting deadline review email now go", "2024-01-09", created, scoreNow)
	if got != 100 {
		t.Fatalf("Score=%d, want 100", got)
	}
	if p != PriorityCritical {
		t.Fatalf("priority=%s, want Critical", p)
	}
}

func TestPriorityForScoreBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Priority
	}{
		{100, PriorityCritical},
		{70, PriorityCritical},
		{69, PriorityHigh},
		{50, PriorityHigh},
		{49, PriorityNormal},
		{30, PriorityNormal},
		{29, PriorityLow},
		{0, PriorityLow},
	}
	for _, c := range cases {
		if got := PriorityForScore(c.score); got != c.want {
			t.Fatalf("PriorityForScore(%d)=%s, want %s", c.score, got, c.want)
		}
	}
}

func TestScoreTaskUsesStoredFields(t *testing.T) {
	task := storage.Task{
		Title:     "urgent review",
		Deadline:  strPtr("2024-01-10"),
		CreatedAt: "2024-01-08 09:00:00",
	}
	// 35 deadline + 12 keywords + 4 age + 2 words.
	got, p := ScoreTask(task, scoreNow)
	if got != 53 {
		t.Fatalf("ScoreTask=%d, want 53", got)
	}
	if p != PriorityHigh {
		t.Fatalf("priority=%s, want High", p)
	}
}

func TestScoreUnparsableDatesIgnored(t *testing.T) {
	got, p := Score("x", "soon", "whenever", scoreNow)
	if got != 1 {
		t.Fatalf("Score=%d, want 1", got)
	}
	if p != PriorityLow {
		t.Fatalf("priority=%s, want Low", p)
	}
}
