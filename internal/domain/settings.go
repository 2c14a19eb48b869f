package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned when timer settings cannot drive a cycle.
var ErrInvalidSettings = errors.New("invalid timer settings")

// Settings holds the immutable timer configuration for a run.
type Settings struct {
	WorkTime        Duration
	ShortBreakTime  Duration
	LongBreakTime   Duration
	LongBreakCycles int
}

// DefaultSettings returns 25 minutes of work, 5 and 30 minute breaks,
// and a long break every 4 cycles.
func DefaultSettings() Settings {
	return Settings{
		WorkTime:        Minutes(25),
		ShortBreakTime:  Minutes(5),
		LongBreakTime:   Minutes(30),
		LongBreakCycles: 4,
	}
}

// NewSettings builds settings from whole minutes and a cycle count.
func NewSettings(workMinutes, shortBreakMinutes, longBreakMinutes uint64, longBreakCycles int) (Settings, error) {
	s := Settings{
		WorkTime:        Minutes(workMinutes),
		ShortBreakTime:  Minutes(shortBreakMinutes),
		LongBreakTime:   Minutes(longBreakMinutes),
		LongBreakCycles: longBreakCycles,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that every phase has a length and the long break
// schedule is defined.
func (s Settings) Validate() error {
	switch {
	case s.WorkTime.Seconds() == 0:
		return fmt.Errorf("%w: work time must be positive", ErrInvalidSettings)
	case s.ShortBreakTime.Seconds() == 0:
		return fmt.Errorf("%w: short break time must be positive", ErrInvalidSettings)
	case s.LongBreakTime.Seconds() == 0:
		return fmt.Errorf("%w: long break time must be positive", ErrInvalidSettings)
	case s.LongBreakCycles < 1:
		return fmt.Errorf("%w: long break cycles must be at least 1, got %d", ErrInvalidSettings, s.LongBreakCycles)
	}
	return nil
}
