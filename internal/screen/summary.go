package screen

import "github.com/xvierd/tomato/internal/domain"

// Summary is a bordered box with the completed cycle count and the total
// minutes of work done.
type Summary struct{}

// Size implements Section.
func (Summary) Size() (int, int) {
	return 23, 7
}

var summaryRows = []string{
	"▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒",
	"▒▒                   ▒▒",
	"▒▒     " + green("Completed:") + "    ▒▒",
	"▒▒    nn pomodoros   ▒▒",
	"▒▒    nnn minutes    ▒▒",
	"▒▒                   ▒▒",
	"▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒",
}

// CharAt implements Section.
func (Summary) CharAt(x, y int, s domain.Settings, c domain.CycleState) (rune, bool) {
	switch {
	case y == 3 && (x == 6 || x == 7):
		return digitAt(uint64(c.CompletedCycles), x-6), true
	case y == 4 && x >= 6 && x <= 8:
		return digitAt(c.CompletedWorkTime(s).Minutes(), x-6), true
	}
	return runeAt(summaryRows, x, y)
}
