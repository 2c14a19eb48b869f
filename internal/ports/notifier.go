// Package ports defines the interfaces between the timer core and the
// infrastructure that reacts to it.
package ports

import "github.com/xvierd/tomato/internal/domain"

// PhaseNotifier is told about every phase change.
// This is a driven port (implemented by adapters).
type PhaseNotifier interface {
	// NotifyTransition announces that the timer moved into next, which
	// lasts target.
	NotifyTransition(tr domain.Transition, next domain.Phase, target domain.Duration) error
}
