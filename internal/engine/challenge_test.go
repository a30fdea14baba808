package engine

import (
	"math/rand"
	"testing"
	"time"
)

var challengeToday = time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)

func TestNewDailyChallengeDifficultyByLevel(t *testing.T) {
	cases := []struct {
		level int
		want  string
		xp    int
	}{
		{1, DifficultyBeginner, 50},
		{3, DifficultyBeginner, 50},
		{4, DifficultyIntermediate, 100},
		{10, DifficultyIntermediate, 100},
		{11, DifficultyAdvanced, 200},
		{25, DifficultyAdvanced, 200},
	}
	rng := rand.New(rand.NewSource(1))
	for _, c := range cases {
		ch := NewDailyChallenge(c.level, challengeToday, rng)
		if ch.Difficulty != c.want {
			t.Fatalf("level %d difficulty=%s, want %s", c.level, ch.Difficulty, c.want)
		}
		if ch.XPReward != c.xp {
			t.Fatalf("level %d xp=%d, want %d", c.level, ch.XPReward, c.xp)
		}
		if ch.Date != "2024-07-01" {
			t.Fatalf("date=%s, want 2024-07-01", ch.Date)
		}
	}
}

func TestNewDailyChallengeDrawsFromPool(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		ch := NewDailyChallenge(5, challengeToday, rng)
		if !containsString(challengePools[DifficultyIntermediate], ch.Text) {
			t.Fatalf("challenge %q not in intermediate pool", ch.Text)
		}
	}
}
