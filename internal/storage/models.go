package storage

// Task is a persisted todo item. Date and time columns are TEXT end to end;
// the engine parses them leniently and treats unparsable values as unset.
type Task struct {
	ID           int64
	Title        string
	Deadline     *string
	ReminderTime *string
	Repeat       string
	Priority     string
	Status       string
	CreatedAt    string
}

// Habit is a tracked daily habit. LastChecked is an ISO date or nil when the
// habit has never been checked.
type Habit struct {
	ID          int64
	Name        string
	Streak      int
	LastChecked *string
}

// Progress is the single progression record, stored as one JSON blob.
type Progress struct {
	XP                  int        `json:"xp"`
	Level               int        `json:"level"`
	Achievements        []string   `json:"achievements"`
	StreakFreezes       int        `json:"streak_freezes"`
	DailyChallenge      *Challenge `json:"daily_challenge"`
	ChallengeCompleted  bool       `json:"challenge_completed"`
	LastActiveDate      string     `json:"last_active_date,omitempty"`
	ConsecutiveDays     int        `json:"consecutive_days"`
	TotalTasksCompleted int        `json:"total_tasks_completed"`
	TotalFocusMinutes   int        `json:"total_focus_time"`
	Stats               DailyStats `json:"stats"`
}

// DailyStats are the counters that reset on the first touch of a new day.
type DailyStats struct {
	TasksCompletedToday int    `json:"tasks_completed_today"`
	HabitsCheckedToday  int    `json:"habits_checked_today"`
	LastResetDate       string `json:"last_reset_date"`
}

// Challenge is the generated challenge for one day, kept inside the blob so
// it survives restarts without its own table.
type Challenge struct {
	Text       string `json:"challenge"`
	Difficulty string `json:"difficulty"`
	XPReward   int    `json:"xp_reward"`
	Date       string `json:"date"`
}

// DefaultStreakFreezes seeds a fresh progress record.
const DefaultStreakFreezes = 3

// NewProgress returns a level-1 record with the daily counters anchored to
// the given ISO date.
func NewProgress(todayISO string) *Progress {
	return &Progress{
		XP:            0,
		Level:         1,
		Achievements:  []string{},
		StreakFreezes: DefaultStreakFreezes,
		Stats:         DailyStats{LastResetDate: todayISO},
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (p *Progress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
