package screen

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var (
	workBackground  = ansi.TrueColor(0x14141E)
	breakBackground = ansi.TrueColor(0x145014)
)

// Background returns the frame background for the current phase.
func Background(inBreak bool) ansi.TrueColor {
	if inBreak {
		return breakBackground
	}
	return workBackground
}

// Paint sets bg at the start of every row of frame and resets styling at the
// end of it. Trailing newlines are preserved.
func Paint(frame string, bg ansi.Color) string {
	on := ansi.Style{}.BackgroundColor(bg).String()
	lines := strings.SplitAfter(frame, "\n")

	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		body, nl := strings.CutSuffix(line, "\n")
		b.WriteString(on)
		b.WriteString(body)
		b.WriteString(ansi.ResetStyle)
		if nl {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
