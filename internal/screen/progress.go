package screen

import "github.com/xvierd/tomato/internal/domain"

const (
	progressWidth  = 101
	progressHeight = 5
	progressLast   = progressWidth - 1
	progressSpan   = 99
	labelColumn    = 48
	labelRow       = 2
)

// ProgressBar is a bordered bar labelled with the phase, filled in proportion
// to the elapsed fraction of the phase.
type ProgressBar struct{}

// Size implements Section.
func (ProgressBar) Size() (int, int) {
	return progressWidth, progressHeight
}

// CharAt implements Section.
func (ProgressBar) CharAt(x, y int, s domain.Settings, c domain.CycleState) (rune, bool) {
	if x < 0 || x > progressLast || y < 0 || y >= progressHeight {
		return 0, false
	}

	switch {
	case x == 0 && y == 0:
		return '┏', true
	case x == progressLast && y == 0:
		return '┓', true
	case x == 0 && y == progressHeight-1:
		return '┗', true
	case x == progressLast && y == progressHeight-1:
		return '┛', true
	case x == 0 || x == progressLast:
		return '┃', true
	case y == 0 || y == progressHeight-1:
		return '━', true
	}

	label := []rune("Work")
	if c.InBreak {
		label = []rune("Break")
	}
	if y == labelRow && x >= labelColumn && x < labelColumn+len(label) {
		return label[x-labelColumn], true
	}

	filled := int(progressSpan * c.FractionOfState(s))
	switch {
	case x == filled:
		return '▒', true
	case x+1 == filled:
		return '▓', true
	case x <= filled:
		return '█', true
	default:
		return ' ', true
	}
}
