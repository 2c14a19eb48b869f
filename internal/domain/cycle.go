package domain

// Phase is the classification of the current interval.
type Phase string

const (
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "short_break"
	PhaseLongBreak  Phase = "long_break"
)

// Label returns a human-readable label for the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// Transition describes what a call to Advance did.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionToBreak
	TransitionToWork
)

// CycleState is the mutable run-time state of the work/break cycle.
type CycleState struct {
	ElapsedInPhase  Duration
	CompletedCycles int
	Paused          bool
	InBreak         bool
	HoverOnPause    bool
}

// NewCycleState returns the state at process start: working, nothing elapsed.
func NewCycleState() CycleState {
	return CycleState{}
}

// Advance moves logical time forward by delta. While paused it does nothing.
// A phase ends only once its elapsed time is strictly greater than its target,
// so the countdown is seen at its lowest value before flipping.
func (c *CycleState) Advance(s Settings, delta Duration) Transition {
	if c.Paused {
		return TransitionNone
	}

	c.ElapsedInPhase = c.ElapsedInPhase.Add(delta)

	if c.InBreak {
		if c.ElapsedInPhase.Seconds() > c.breakTime(s).Seconds() {
			c.InBreak = false
			c.CompletedCycles++
			c.ElapsedInPhase = Duration{}
			return TransitionToWork
		}
		return TransitionNone
	}

	if c.ElapsedInPhase.Seconds() > s.WorkTime.Seconds() {
		c.InBreak = true
		c.ElapsedInPhase = Duration{}
		return TransitionToBreak
	}
	return TransitionNone
}

// TogglePause flips the pause flag.
func (c *CycleState) TogglePause() {
	c.Paused = !c.Paused
}

// InLongBreak reports whether the current break is a long one: the number of
// completed cycles is a nonzero multiple of the configured cycle count.
func (c CycleState) InLongBreak(s Settings) bool {
	if !c.InBreak || c.CompletedCycles == 0 {
		return false
	}
	return c.CompletedCycles%s.LongBreakCycles == 0
}

// Phase classifies the current interval.
func (c CycleState) Phase(s Settings) Phase {
	switch {
	case !c.InBreak:
		return PhaseWork
	case c.InLongBreak(s):
		return PhaseLongBreak
	default:
		return PhaseShortBreak
	}
}

// Target returns the nominal length of the current phase.
func (c CycleState) Target(s Settings) Duration {
	if c.InBreak {
		return c.breakTime(s)
	}
	return s.WorkTime
}

func (c CycleState) breakTime(s Settings) Duration {
	if c.InLongBreak(s) {
		return s.LongBreakTime
	}
	return s.ShortBreakTime
}

// RemainingTimeInState returns the time left in the phase plus one minute,
// so the floored minute count reads 1 during the final minute.
func (c CycleState) RemainingTimeInState(s Settings) Duration {
	return c.Target(s).Sub(c.ElapsedInPhase).Add(Minutes(1))
}

// FractionOfState returns elapsed / target for the current phase. It is not
// clamped.
func (c CycleState) FractionOfState(s Settings) float64 {
	return float64(c.ElapsedInPhase.Seconds()) / float64(c.Target(s).Seconds())
}

// CompletedWorkTime returns the work time done over the whole run. During a
// break the work phase that just ended counts in full; during work only the
// elapsed part of the current phase is added.
func (c CycleState) CompletedWorkTime(s Settings) Duration {
	base := Seconds(uint64(c.CompletedCycles) * s.WorkTime.Seconds())
	if c.InBreak {
		return base.Add(s.WorkTime)
	}
	return base.Add(c.ElapsedInPhase)
}
