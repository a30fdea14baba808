package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"strive/internal/config"
	"strive/internal/engine"
)

type focusPhase int

const (
	phaseWork focusPhase = iota
	phaseShortBreak
	phaseLongBreak
)

func (p focusPhase) label() string {
	switch p {
	case phaseWork:
		return "Work"
	case phaseShortBreak:
		return "Short break"
	default:
		return "Long break"
	}
}

type focusModel struct {
	ctx context.Context
	svc *engine.Service
	cfg config.Focus

	phase     focusPhase
	remaining int // seconds left in the current phase
	running   bool
	sessions  int // work sessions finished this run

	lastLog string
}

type tickMsg time.Time

type focusLoggedMsg struct {
	xp       *engine.XPResult
	unlocked []engine.UnlockResult
	err      error
}

func newFocusModel(ctx context.Context, svc *engine.Service, cfg config.Focus) focusModel {
	m := focusModel{
		ctx:     ctx,
		svc:     svc,
		cfg:     cfg,
		phase:   phaseWork,
		lastLog: "Press s to start.",
	}
	m.remaining = m.phaseSeconds(phaseWork)
	return m
}

func (m focusModel) phaseSeconds(p focusPhase) int {
	switch p {
	case phaseWork:
		return m.cfg.WorkMinutes * 60
	case phaseShortBreak:
		return m.cfg.ShortBreakMinutes * 60
	default:
		return m.cfg.LongBreakMinutes * 60
	}
}

// nextPhase picks what follows a finished work session or break.
func (m focusModel) nextPhase() focusPhase {
	if m.phase != phaseWork {
		return phaseWork
	}
	if m.sessions > 0 && m.sessions%m.cfg.SessionsUntilLongBreak == 0 {
		return phaseLongBreak
	}
	return phaseShortBreak
}

func (m focusModel) Init() tea.Cmd {
	return nil
}

func (m focusModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m focusModel) recordCmd(minutes int) tea.Cmd {
	return func() tea.Msg {
		xp, unlocked, err := m.svc.RecordFocus(m.ctx, minutes)
		return focusLoggedMsg{xp: xp, unlocked: unlocked, err: err}
	}
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.running {
			return m, nil
		}
		m.remaining--
		if m.remaining > 0 {
			return m, m.tickCmd()
		}
		return m.advance(true)
	case focusLoggedMsg:
		if msg.err != nil {
			m.lastLog = "Log failed: " + msg.err.Error()
			return m, nil
		}
		log := fmt.Sprintf("Logged %s: +%d XP", msg.xp.Reason, msg.xp.XPGained)
		if msg.xp.LevelUp {
			log += fmt.Sprintf(" → level %d", msg.xp.Level)
		}
		for _, u := range msg.unlocked {
			log += " " + u.Achievement.Name
		}
		m.lastLog = log
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "s":
			m.running = !m.running
			if m.running {
				m.lastLog = m.phase.label() + " running."
				return m, m.tickCmd()
			}
			m.lastLog = "Paused."
			return m, nil
		case "n":
			// Skipped work earns nothing.
			return m.advance(false)
		}
	}
	return m, nil
}

// advance moves to the next phase. A work session that actually ran to
// zero is recorded for XP; a skipped one is not.
func (m focusModel) advance(finished bool) (tea.Model, tea.Cmd) {
	var record tea.Cmd
	if m.phase == phaseWork && finished {
		m.sessions++
		record = m.recordCmd(m.cfg.WorkMinutes)
	} else if m.phase == phaseWork {
		m.lastLog = "Work session skipped."
	} else {
		m.lastLog = "Break over, back to work."
	}

	m.phase = m.nextPhase()
	m.remaining = m.phaseSeconds(m.phase)

	var cmds []tea.Cmd
	if record != nil {
		cmds = append(cmds, record)
	}
	if m.running {
		cmds = append(cmds, m.tickCmd())
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m focusModel) View() string {
	total := m.phaseSeconds(m.phase)
	elapsed := total - m.remaining
	bar := progressBar(elapsed, total, 30)

	state := "paused"
	if m.running {
		state = "running"
	}

	var b strings.Builder
	b.WriteString("Focus 🍅\n\n")
	b.WriteString(fmt.Sprintf("%s  %02d:%02d  %s (%s)\n", m.phase.label(), m.remaining/60, m.remaining%60, bar, state))
	b.WriteString(fmt.Sprintf("Sessions this run: %d\n", m.sessions))
	b.WriteString("\ns: start/pause   n: skip   q: quit\n")
	b.WriteString("\n" + m.lastLog + "\n")
	return b.String()
}
