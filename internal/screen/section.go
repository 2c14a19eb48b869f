// Package screen composes the full-screen timer display from fixed-size
// sections. Each section maps a grid coordinate to a character; the Composer
// lays the sections out and centers them in the terminal.
package screen

import (
	"strconv"

	"github.com/charmbracelet/x/ansi"
	"github.com/xvierd/tomato/internal/domain"
)

// Section is an independently laid-out rectangular region of the frame.
//
// CharAt returns false once x is past the end of row y. Styling markers
// embedded in a row are returned one rune at a time and do not occupy a
// column, so a row may yield more runes than its logical width.
type Section interface {
	// Size returns the logical width and height in terminal cells.
	Size() (width, height int)

	// CharAt returns the rune at (x, y) for the given settings and state.
	CharAt(x, y int, s domain.Settings, c domain.CycleState) (rune, bool)
}

var (
	greenFg   = ansi.Style{}.ForegroundColor(ansi.Green).String()
	redFg     = ansi.Style{}.ForegroundColor(ansi.Red).String()
	defaultFg = ansi.Style{}.DefaultForegroundColor().String()
)

// green wraps text in a foreground color run that leaves the background alone.
func green(text string) string {
	return greenFg + text + defaultFg
}

func red(text string) string {
	return redFg + text + defaultFg
}

// runeAt indexes rows as rune slices, reporting false outside them.
func runeAt(rows []string, x, y int) (rune, bool) {
	if y < 0 || y >= len(rows) || x < 0 {
		return 0, false
	}
	r := []rune(rows[y])
	if x >= len(r) {
		return 0, false
	}
	return r[x], true
}

// digitAt returns the i-th decimal digit of n counted from the left, or a
// space when n has fewer digits.
func digitAt(n uint64, i int) rune {
	s := strconv.FormatUint(n, 10)
	if i < 0 || i >= len(s) {
		return ' '
	}
	return rune(s[i])
}
