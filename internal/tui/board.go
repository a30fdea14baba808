package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"strive/internal/config"
	"strive/internal/engine"
)

// RunBoard starts the interactive dashboard.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

// RunFocus starts the pomodoro timer.
func RunFocus(ctx context.Context, svc *engine.Service, focus config.Focus, out io.Writer) error {
	m := newFocusModel(ctx, svc, focus)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
