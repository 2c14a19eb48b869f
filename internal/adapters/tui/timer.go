package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/xvierd/tomato/internal/domain"
)

// Run starts the full-screen timer and blocks until the user quits or ctx is
// cancelled. It returns the cycle state at exit.
//
// While the program owns the terminal, logrus output goes to logOutput, or is
// discarded when logOutput is nil, so log lines never tear the frame.
func Run(ctx context.Context, opts Options, logOutput io.Writer) (domain.CycleState, error) {
	if logOutput == nil {
		logOutput = io.Discard
	}
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(logOutput)
	defer logrus.SetOutput(prevOut)

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return domain.CycleState{}, fmt.Errorf("failed to run TUI: %w", err)
	}

	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return domain.CycleState{}, nil
}
