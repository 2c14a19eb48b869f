// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/xvierd/tomato/internal/domain"
	"github.com/xvierd/tomato/internal/ports"
	"github.com/xvierd/tomato/internal/screen"
)

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// Options configures the timer model.
type Options struct {
	Settings domain.Settings
	// Tick is the real-time interval between ticks; each tick advances the
	// cycle by the same amount. Defaults to one second.
	Tick     time.Duration
	Notifier ports.PhaseNotifier
	Logger   *logrus.Entry
	Composer *screen.Composer
}

// Model is the bubbletea model of the full-screen timer.
type Model struct {
	settings domain.Settings
	state    domain.CycleState
	composer *screen.Composer
	keys     keyMap
	tick     time.Duration
	notifier ports.PhaseNotifier
	log      *logrus.Entry
	width    int
	height   int
	quitting bool
}

// NewModel creates a timer model at the start of a work phase.
func NewModel(opts Options) Model {
	tick := opts.Tick
	if tick < time.Second {
		tick = time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	composer := opts.Composer
	if composer == nil {
		composer = screen.NewComposer()
	}
	return Model{
		settings: opts.Settings,
		state:    domain.NewCycleState(),
		composer: composer,
		keys:     defaultKeyMap(),
		tick:     tick,
		notifier: opts.Notifier,
		log:      log,
	}
}

// State returns the current cycle state.
func (m Model) State() domain.CycleState {
	return m.state
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.tick)}
		tr := m.state.Advance(m.settings, domain.FromStd(m.tick))
		if tr != domain.TransitionNone {
			cmds = append(cmds, m.onTransition(tr))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.togglePause("key")
		}

	case tea.MouseMsg:
		ev := tea.MouseEvent(msg)
		inside := m.inPauseControl(ev.X, ev.Y)
		switch {
		case ev.Action == tea.MouseActionMotion:
			m.state.HoverOnPause = inside
		case ev.Action == tea.MouseActionPress && !ev.IsWheel() && inside:
			m.togglePause("click")
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the frame for the current terminal size.
func (m Model) View() string {
	if m.quitting || m.width == 0 {
		return ""
	}
	frame := m.composer.Compose(m.width, m.height, m.settings, m.state)
	return screen.Paint(strings.TrimSuffix(frame, "\n"), screen.Background(m.state.InBreak))
}

func (m Model) inPauseControl(x, y int) bool {
	r, ok := m.composer.PauseRect(m.width, m.height)
	return ok && r.Contains(x, y)
}

func (m *Model) togglePause(source string) {
	m.state.TogglePause()
	m.log.WithFields(logrus.Fields{
		"paused":  m.state.Paused,
		"source":  source,
		"elapsed": m.state.ElapsedInPhase.String(),
	}).Debug("pause toggled")
}

// onTransition logs the phase change and returns a command that sends the
// notification off the update loop.
func (m Model) onTransition(tr domain.Transition) tea.Cmd {
	phase := m.state.Phase(m.settings)
	target := m.state.Target(m.settings)

	m.log.WithFields(logrus.Fields{
		"phase":            phase,
		"target":           target.String(),
		"completed_cycles": m.state.CompletedCycles,
	}).Info("phase started")

	if m.notifier == nil {
		return nil
	}
	notifier, log := m.notifier, m.log
	return func() tea.Msg {
		if err := notifier.NotifyTransition(tr, phase, target); err != nil {
			log.WithError(err).Warn("failed to send notification")
		}
		return nil
	}
}
