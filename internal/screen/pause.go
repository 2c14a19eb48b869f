package screen

import (
	"strings"

	"github.com/xvierd/tomato/internal/domain"
)

const (
	pauseFill      = "░"
	pauseFillHover = "▓"
)

// PauseControl is the clickable button. It shows START while paused and a
// pause glyph while running; the fill darkens under the cursor.
type PauseControl struct{}

// Size implements Section.
func (PauseControl) Size() (int, int) {
	return 13, 7
}

// CharAt implements Section.
func (PauseControl) CharAt(x, y int, _ domain.Settings, c domain.CycleState) (rune, bool) {
	return runeAt(pauseRows(c), x, y)
}

func pauseRows(c domain.CycleState) []string {
	fill := pauseFill
	if c.HoverOnPause {
		fill = pauseFillHover
	}
	line := strings.Repeat(fill, 13)

	if c.Paused {
		four := strings.Repeat(fill, 4)
		start := four + green("START") + four
		return []string{line, line, line, start, line, line, line}
	}

	three := strings.Repeat(fill, 3)
	bars := three + red("██") + three + red("██") + three
	return []string{line, line, bars, bars, bars, line, line}
}
