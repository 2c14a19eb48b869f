package screen

import "github.com/xvierd/tomato/internal/domain"

const countdownCaption = " minutes left  "

// Countdown shows the whole minutes remaining in the phase as two block
// digits above a caption.
type Countdown struct{}

// Size implements Section.
func (Countdown) Size() (int, int) {
	return 15, 7
}

// CharAt implements Section.
func (Countdown) CharAt(x, y int, s domain.Settings, c domain.CycleState) (rune, bool) {
	switch y {
	case glyphHeight - 1:
		if x >= 0 && x < 15 {
			return ' ', true
		}
		return 0, false
	case glyphHeight:
		return runeAt([]string{countdownCaption}, x, 0)
	}
	return blockNumber(c.RemainingTimeInState(s).Minutes(), x, y)
}
