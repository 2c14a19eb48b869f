package screen

const (
	glyphWidth  = 7
	glyphHeight = 6
)

// digitGlyphs holds a 7x6 block glyph for each decimal digit. The last row is
// blank and separates the number from its caption.
var digitGlyphs = [10][glyphHeight]string{
	{ // 0
		" █████ ",
		"██   ██",
		"██   ██",
		"██   ██",
		" █████ ",
		"       ",
	},
	{ // 1
		"  ███  ",
		" ████  ",
		"   ██  ",
		"   ██  ",
		" ██████",
		"       ",
	},
	{ // 2
		" █████ ",
		"     ██",
		" █████ ",
		"██     ",
		"███████",
		"       ",
	},
	{ // 3
		"██████ ",
		"     ██",
		" █████ ",
		"     ██",
		"██████ ",
		"       ",
	},
	{ // 4
		"██   ██",
		"██   ██",
		"███████",
		"     ██",
		"     ██",
		"       ",
	},
	{ // 5
		"███████",
		"██     ",
		"██████ ",
		"     ██",
		"██████ ",
		"       ",
	},
	{ // 6
		" █████ ",
		"██     ",
		"██████ ",
		"██   ██",
		" █████ ",
		"       ",
	},
	{ // 7
		"███████",
		"     ██",
		"    ██ ",
		"   ██  ",
		"   ██  ",
		"       ",
	},
	{ // 8
		" █████ ",
		"██   ██",
		" █████ ",
		"██   ██",
		" █████ ",
		"       ",
	},
	{ // 9
		" █████ ",
		"██   ██",
		" ██████",
		"     ██",
		" █████ ",
		"       ",
	},
}

// glyphRune returns the cell of digit d at (x, y), or a space for anything
// outside the table.
func glyphRune(d uint64, x, y int) rune {
	if d > 9 {
		return ' '
	}
	r, ok := runeAt(digitGlyphs[d][:], x, y)
	if !ok {
		return ' '
	}
	return r
}

// blockNumber renders n as two block digits separated by one blank column.
// Values above 99 render blank.
func blockNumber(n uint64, x, y int) (rune, bool) {
	if y < 0 || y >= glyphHeight {
		return 0, false
	}

	tens, ones := n/10, n%10
	if n > 99 {
		tens, ones = 10, 10
	}

	switch {
	case x >= 0 && x < glyphWidth:
		return glyphRune(tens, x, y), true
	case x == glyphWidth:
		return ' ', true
	case x > glyphWidth && x <= 2*glyphWidth:
		return glyphRune(ones, x-glyphWidth-1, y), true
	default:
		return 0, false
	}
}
