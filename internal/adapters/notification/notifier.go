// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/tomato/internal/config"
	"github.com/xvierd/tomato/internal/domain"
	"github.com/xvierd/tomato/internal/ports"
)

var _ ports.PhaseNotifier = (*Notifier)(nil)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg    *config.NotificationConfig
	notify func(title, message string) error
	alert  func(title, message string) error
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg: cfg,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		alert: func(title, message string) error {
			return beeep.Alert(title, message, "")
		},
	}
}

// Notify displays a desktop notification if enabled. With sound enabled it
// raises an alert instead.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	if n.cfg.Sound {
		return n.alert(title, message)
	}
	return n.notify(title, message)
}

// NotifyTransition announces the phase that just started.
func (n *Notifier) NotifyTransition(tr domain.Transition, next domain.Phase, target domain.Duration) error {
	switch tr {
	case domain.TransitionToBreak:
		title := "🍅 Pomodoro Complete!"
		message := fmt.Sprintf("Time for a %s of %d minutes.", next.Label(), target.Minutes())
		return n.Notify(title, message)
	case domain.TransitionToWork:
		title := "☕ Break Over!"
		message := fmt.Sprintf("Back to work for %d minutes.", target.Minutes())
		return n.Notify(title, message)
	default:
		return nil
	}
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
