package screen

import (
	"strings"

	"github.com/xvierd/tomato/internal/domain"
)

// sectionGap is the number of blank rows between consecutive sections.
const sectionGap = 2

// Rect is a cell rectangle in terminal coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Placement is a section together with the cells it occupies.
type Placement struct {
	Section Section
	Rect    Rect
}

// Composer lays out an ordered list of sections and renders frames.
type Composer struct {
	sections []Section
}

// DefaultSections returns the timer display: countdown, summary, pause
// control and progress bar, top to bottom.
func DefaultSections() []Section {
	return []Section{Countdown{}, Summary{}, PauseControl{}, ProgressBar{}}
}

// NewComposer creates a composer for the given sections, or for
// DefaultSections when none are given.
func NewComposer(sections ...Section) *Composer {
	if len(sections) == 0 {
		sections = DefaultSections()
	}
	return &Composer{sections: sections}
}

// BlockHeight returns the number of rows the sections and their separators
// occupy.
func (c *Composer) BlockHeight() int {
	rows := 0
	for i, sec := range c.sections {
		if i > 0 {
			rows += sectionGap
		}
		_, h := sec.Size()
		rows += h
	}
	return rows
}

// Layout returns where each section lands in a terminal of the given size.
func (c *Composer) Layout(width, height int) []Placement {
	placements := make([]Placement, 0, len(c.sections))
	y := verticalPadding(height, c.BlockHeight())
	for i, sec := range c.sections {
		if i > 0 {
			y += sectionGap
		}
		w, h := sec.Size()
		placements = append(placements, Placement{
			Section: sec,
			Rect:    Rect{X: horizontalPadding(width, w), Y: y, Width: w, Height: h},
		})
		y += h
	}
	return placements
}

// PauseRect returns the screen rectangle of the pause control, if the
// composer has one.
func (c *Composer) PauseRect(width, height int) (Rect, bool) {
	for _, p := range c.Layout(width, height) {
		if _, ok := p.Section.(PauseControl); ok {
			return p.Rect, true
		}
	}
	return Rect{}, false
}

// Compose renders a full frame. Every row ends in a newline. Rows are not
// clipped when the terminal is smaller than the block.
func (c *Composer) Compose(width, height int, s domain.Settings, st domain.CycleState) string {
	blank := strings.Repeat(" ", max(width, 0)) + "\n"
	vpad := verticalPadding(height, c.BlockHeight())

	var b strings.Builder
	b.Grow((max(width, 0) + 1) * max(height, c.BlockHeight()))

	for i := 0; i < vpad; i++ {
		b.WriteString(blank)
	}

	for i, sec := range c.sections {
		if i > 0 {
			for g := 0; g < sectionGap; g++ {
				b.WriteString(blank)
			}
		}
		writeSection(&b, sec, width, s, st)
	}

	for i := 0; i < vpad; i++ {
		b.WriteString(blank)
	}

	return b.String()
}

// writeSection emits each row of sec padded on both sides. Columns are read
// until the section reports the end of the row rather than up to its width,
// since styling markers take no column.
func writeSection(b *strings.Builder, sec Section, width int, s domain.Settings, st domain.CycleState) {
	w, h := sec.Size()
	pad := strings.Repeat(" ", horizontalPadding(width, w))

	for y := 0; y < h; y++ {
		b.WriteString(pad)
		for x := 0; ; x++ {
			r, ok := sec.CharAt(x, y, s, st)
			if !ok {
				break
			}
			b.WriteRune(r)
		}
		b.WriteString(pad)
		b.WriteByte('\n')
	}
}

func horizontalPadding(termWidth, sectionWidth int) int {
	if termWidth <= sectionWidth {
		return 0
	}
	return (termWidth - sectionWidth) / 2
}

func verticalPadding(termHeight, blockHeight int) int {
	if termHeight <= blockHeight {
		return 0
	}
	return (termHeight - blockHeight) / 2
}
