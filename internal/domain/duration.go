package domain

import (
	"fmt"
	"time"
)

// Duration is a non-negative, whole-second span of logical time.
type Duration struct {
	seconds uint64
}

// Minutes creates a Duration of m minutes.
func Minutes(m uint64) Duration {
	return Duration{seconds: m * 60}
}

// Seconds creates a Duration of s seconds.
func Seconds(s uint64) Duration {
	return Duration{seconds: s}
}

// FromStd converts a time.Duration, truncating to whole seconds.
// Negative values become zero.
func FromStd(d time.Duration) Duration {
	if d <= 0 {
		return Duration{}
	}
	return Duration{seconds: uint64(d / time.Second)}
}

// Minutes returns the whole minutes in d, rounded down.
func (d Duration) Minutes() uint64 {
	return d.seconds / 60
}

// Seconds returns the exact number of seconds in d.
func (d Duration) Seconds() uint64 {
	return d.seconds
}

// Add returns d + o.
func (d Duration) Add(o Duration) Duration {
	return Duration{seconds: d.seconds + o.seconds}
}

// Sub returns d - o. Callers must ensure d >= o; an underflow is a defect
// and panics.
func (d Duration) Sub(o Duration) Duration {
	if o.seconds > d.seconds {
		panic(fmt.Sprintf("domain: duration underflow: %ds - %ds", d.seconds, o.seconds))
	}
	return Duration{seconds: d.seconds - o.seconds}
}

// Std converts d to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.seconds) * time.Second
}

// String formats the duration like time.Duration does.
func (d Duration) String() string {
	return d.Std().String()
}
