package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"strive/internal/engine"
	"strive/internal/storage"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	overview *engine.Overview
	tasks    []storage.Task
	scores   map[int64]int
	habits   []storage.Habit
	today    string

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	overview *engine.Overview
	tasks    []storage.Task
	scores   map[int64]int
	habits   []storage.Habit
	today    string
	err      error
}

type completedMsg struct {
	id  int64
	res *engine.CompleteResult
	err error
}

type checkedMsg struct {
	id  int64
	res *engine.HabitCheckResult
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		// Keep stored labels in step with deadlines that moved closer.
		if _, err := m.svc.RescorePriorities(m.ctx); err != nil {
			return loadedMsg{err: err}
		}
		ov, err := m.svc.Overview(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.ListTasks(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.ListHabits(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}

		now := time.Now()
		scores := make(map[int64]int, len(tasks))
		var pending []storage.Task
		for _, t := range tasks {
			if t.Status == "Done" {
				continue
			}
			score, _ := engine.ScoreTask(t, now)
			scores[t.ID] = score
			pending = append(pending, t)
		}
		sort.SliceStable(pending, func(i, j int) bool {
			if scores[pending[i].ID] != scores[pending[j].ID] {
				return scores[pending[i].ID] > scores[pending[j].ID]
			}
			return pending[i].ID < pending[j].ID
		})

		return loadedMsg{
			overview: ov,
			tasks:    pending,
			scores:   scores,
			habits:   habits,
			today:    engine.FormatDate(engine.DateOf(now)),
		}
	}
}

func (m boardModel) completeCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) checkCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CheckHabit(m.ctx, id)
		return checkedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.overview = msg.overview
		m.tasks = msg.tasks
		m.scores = msg.scores
		m.habits = msg.habits
		m.today = msg.today
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		log := fmt.Sprintf("Completed %q: +%d XP", msg.res.Title, msg.res.XP.XPGained)
		if msg.res.XP.LevelUp {
			log += fmt.Sprintf(" → level %d", msg.res.XP.Level)
		}
		for _, u := range msg.res.Unlocked {
			log += " " + u.Achievement.Name
		}
		m.lastLog = log
		return m, m.loadCmd()
	case checkedMsg:
		if msg.err != nil {
			m.lastLog = "Check failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.AlreadyChecked {
			m.lastLog = fmt.Sprintf("%q already checked today.", msg.res.Name)
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Checked %q: streak %d, +%d XP", msg.res.Name, msg.res.Streak, msg.res.XP.XPGained)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			rows := m.boardRows()
			if m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			rows := m.boardRows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			if row.isHabit {
				if row.checked {
					m.lastLog = "Already checked today."
					return m, nil
				}
				m.lastLog = fmt.Sprintf("Checking %q…", row.title)
				return m, m.checkCmd(row.id)
			}
			m.lastLog = fmt.Sprintf("Completing %d…", row.id)
			return m, m.completeCmd(row.id)
		}
	}
	return m, nil
}

type boardRow struct {
	id       int64
	title    string
	isHabit  bool
	checked  bool
	priority string
	deadline string
	streak   int
	score    int
}

func (m *boardModel) boardRows() []boardRow {
	var out []boardRow
	for _, t := range m.tasks {
		row := boardRow{
			id:       t.ID,
			title:    t.Title,
			priority: t.Priority,
			score:    m.scores[t.ID],
		}
		if t.Deadline != nil {
			row.deadline = *t.Deadline
		}
		out = append(out, row)
	}
	for _, h := range m.habits {
		out = append(out, boardRow{
			id:      h.ID,
			title:   h.Name,
			isHabit: true,
			checked: h.LastChecked != nil && *h.LastChecked == m.today,
			streak:  h.Streak,
		})
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	n := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < n; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.overview == nil {
		return "Strive — loading…"
	}
	ov := m.overview
	bar := progressBar(ov.Next.Into, ov.Next.Needed, 30)
	return fmt.Sprintf("Strive | Level %d | XP %d %s | 🔥 %d | 🧊 %d",
		ov.Level, ov.XP, bar, ov.ConsecutiveDays, ov.StreakFreezes)
}

func (m boardModel) renderSidebar() string {
	if m.overview == nil {
		return "Stats\n\nLoading…"
	}
	ov := m.overview
	lines := []string{"Today"}
	lines = append(lines, fmt.Sprintf("- tasks done: %d", ov.TasksCompletedToday))
	lines = append(lines, fmt.Sprintf("- habits checked: %d", ov.HabitsCheckedToday))
	focus := engine.FocusScore(ov.TasksCompletedToday, ov.TotalFocusMinutes, ov.HabitsCheckedToday)
	lines = append(lines, fmt.Sprintf("- focus score: %d/100", focus))
	lines = append(lines, "")
	lines = append(lines, "Lifetime")
	lines = append(lines, fmt.Sprintf("- tasks done: %d", ov.TotalTasksCompleted))
	lines = append(lines, fmt.Sprintf("- focus: %d min", ov.TotalFocusMinutes))
	lines = append(lines, fmt.Sprintf("- badges: %d/%d", ov.AchievementsEarned, ov.AchievementsTotal))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete/check")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	rows := m.boardRows()

	var out []string
	out = append(out, "Tasks")
	taskCount := 0
	for i, row := range rows {
		if row.isHabit {
			continue
		}
		taskCount++
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		due := ""
		if row.deadline != "" {
			due = " due " + row.deadline
		}
		out = append(out, fmt.Sprintf("%s%d %s [%s %d]%s", cursor, row.id, row.title, row.priority, row.score, due))
	}
	if taskCount == 0 {
		out = append(out, "(no pending tasks)")
	}

	out = append(out, "")
	out = append(out, "Habits")
	habitCount := 0
	for i, row := range rows {
		if !row.isHabit {
			continue
		}
		habitCount++
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := " "
		if row.checked {
			mark = "✓"
		}
		out = append(out, fmt.Sprintf("%s[%s] %s (streak %d)", cursor, mark, row.title, row.streak))
	}
	if habitCount == 0 {
		out = append(out, "(no habits)")
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
