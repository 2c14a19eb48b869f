package screen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/tomato/internal/domain"
)

// renderRows reads every row of sec the way the composer does.
func renderRows(sec Section, s domain.Settings, c domain.CycleState) []string {
	_, h := sec.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; ; x++ {
			r, ok := sec.CharAt(x, y, s, c)
			if !ok {
				break
			}
			b.WriteRune(r)
		}
		rows[y] = b.String()
	}
	return rows
}

func plainRows(sec Section, s domain.Settings, c domain.CycleState) []string {
	rows := renderRows(sec, s, c)
	for i, r := range rows {
		rows[i] = ansi.Strip(r)
	}
	return rows
}

func TestSections_LogicalWidth(t *testing.T) {
	s := domain.DefaultSettings()
	states := map[string]domain.CycleState{
		"fresh":         {},
		"paused":        {Paused: true},
		"hover":         {HoverOnPause: true},
		"paused hover":  {Paused: true, HoverOnPause: true},
		"long break":    {InBreak: true, CompletedCycles: 4, ElapsedInPhase: domain.Minutes(10)},
		"many cycles":   {CompletedCycles: 250, ElapsedInPhase: domain.Minutes(24)},
		"end of phase":  {ElapsedInPhase: domain.Minutes(25)},
		"short break 1": {InBreak: true, CompletedCycles: 1, ElapsedInPhase: domain.Seconds(1)},
	}

	for name, st := range states {
		for _, sec := range DefaultSections() {
			w, h := sec.Size()
			rows := renderRows(sec, s, st)
			require.Len(t, rows, h)
			for y, row := range rows {
				assert.Equalf(t, w, ansi.StringWidth(row), "%s: %T row %d = %q", name, sec, y, row)
			}
		}
	}
}

func TestSections_OutsideBounds(t *testing.T) {
	s := domain.DefaultSettings()
	for _, sec := range DefaultSections() {
		_, h := sec.Size()
		_, ok := sec.CharAt(0, h, s, domain.CycleState{})
		assert.Falsef(t, ok, "%T row below the section", sec)
		_, ok = sec.CharAt(0, -1, s, domain.CycleState{})
		assert.Falsef(t, ok, "%T negative row", sec)
		_, ok = sec.CharAt(1000, 0, s, domain.CycleState{})
		assert.Falsef(t, ok, "%T column far past the row", sec)
	}
}

func TestBlockNumber(t *testing.T) {
	for y := 0; y < glyphHeight; y++ {
		for x := 0; x < glyphWidth; x++ {
			r, ok := blockNumber(47, x, y)
			require.True(t, ok)
			assert.Equal(t, []rune(digitGlyphs[4][y])[x], r)

			r, ok = blockNumber(47, x+glyphWidth+1, y)
			require.True(t, ok)
			assert.Equal(t, []rune(digitGlyphs[7][y])[x], r)
		}
		r, ok := blockNumber(47, glyphWidth, y)
		require.True(t, ok)
		assert.Equal(t, ' ', r)

		_, ok = blockNumber(47, 2*glyphWidth+1, y)
		assert.False(t, ok)
	}

	_, ok := blockNumber(47, 0, glyphHeight)
	assert.False(t, ok)
}

func TestBlockNumber_OutOfRangeIsBlank(t *testing.T) {
	for y := 0; y < glyphHeight; y++ {
		for x := 0; x <= 2*glyphWidth; x++ {
			r, ok := blockNumber(100, x, y)
			require.True(t, ok)
			assert.Equal(t, ' ', r)
		}
	}
}

func TestCountdown(t *testing.T) {
	s := domain.DefaultSettings()

	rows := plainRows(Countdown{}, s, domain.NewCycleState())
	want26 := digitGlyphs[2][0] + " " + digitGlyphs[6][0]
	assert.Equal(t, want26, rows[0])
	assert.Equal(t, strings.Repeat(" ", 15), rows[5])
	assert.Equal(t, " minutes left  ", rows[6])

	// Last second of the phase still reads one minute.
	rows = plainRows(Countdown{}, s, domain.CycleState{ElapsedInPhase: domain.Seconds(25*60 - 1)})
	assert.Equal(t, digitGlyphs[0][2]+" "+digitGlyphs[1][2], rows[2])

	long, err := domain.NewSettings(200, 5, 30, 4)
	require.NoError(t, err)
	rows = plainRows(Countdown{}, long, domain.NewCycleState())
	for y := 0; y < glyphHeight; y++ {
		assert.Equal(t, strings.Repeat(" ", 15), rows[y])
	}
}

func TestSummary(t *testing.T) {
	s := domain.DefaultSettings()

	rows := plainRows(Summary{}, s, domain.CycleState{CompletedCycles: 3, InBreak: true})
	assert.Equal(t, "▒▒     Completed:    ▒▒", rows[2])
	assert.Equal(t, "▒▒    3  pomodoros   ▒▒", rows[3])
	assert.Equal(t, "▒▒    100 minutes    ▒▒", rows[4])

	rows = plainRows(Summary{}, s, domain.CycleState{})
	assert.Equal(t, "▒▒    0  pomodoros   ▒▒", rows[3])
	assert.Equal(t, "▒▒    0   minutes    ▒▒", rows[4])

	// Counters wider than their slot are truncated, never overflow.
	rows = plainRows(Summary{}, s, domain.CycleState{CompletedCycles: 123})
	assert.Equal(t, "▒▒    12 pomodoros   ▒▒", rows[3])
	assert.Equal(t, "▒▒    307 minutes    ▒▒", rows[4])

	raw := renderRows(Summary{}, s, domain.CycleState{})
	assert.Contains(t, raw[2], greenFg+"Completed:"+defaultFg)
}

func TestPauseControl(t *testing.T) {
	s := domain.DefaultSettings()

	rows := plainRows(PauseControl{}, s, domain.CycleState{Paused: true})
	assert.Equal(t, "░░░░START░░░░", rows[3])
	assert.Equal(t, strings.Repeat("░", 13), rows[0])

	rows = plainRows(PauseControl{}, s, domain.CycleState{Paused: true, HoverOnPause: true})
	assert.Equal(t, "▓▓▓▓START▓▓▓▓", rows[3])

	rows = plainRows(PauseControl{}, s, domain.CycleState{})
	for _, y := range []int{2, 3, 4} {
		assert.Equal(t, "░░░██░░░██░░░", rows[y])
	}
	assert.NotContains(t, strings.Join(rows, ""), "START")

	raw := renderRows(PauseControl{}, s, domain.CycleState{})
	assert.Contains(t, raw[2], redFg+"██"+defaultFg)
}

func TestProgressBar(t *testing.T) {
	s := domain.Settings{
		WorkTime:        domain.Seconds(100),
		ShortBreakTime:  domain.Seconds(100),
		LongBreakTime:   domain.Seconds(200),
		LongBreakCycles: 4,
	}
	bar := ProgressBar{}

	rows := plainRows(bar, s, domain.CycleState{ElapsedInPhase: domain.Seconds(50)})
	assert.Equal(t, "┏"+strings.Repeat("━", 99)+"┓", rows[0])
	assert.Equal(t, "┗"+strings.Repeat("━", 99)+"┛", rows[4])

	// 99 * 0.5 floors to 49.
	row := []rune(rows[1])
	assert.Equal(t, '┃', row[0])
	assert.Equal(t, '█', row[1])
	assert.Equal(t, '█', row[47])
	assert.Equal(t, '▓', row[48])
	assert.Equal(t, '▒', row[49])
	assert.Equal(t, ' ', row[50])
	assert.Equal(t, '┃', row[100])

	assert.Equal(t, "Work", string([]rune(rows[2])[48:52]))

	rows = plainRows(bar, s, domain.CycleState{InBreak: true})
	assert.Equal(t, "Break", string([]rune(rows[2])[48:53]))
	assert.Equal(t, "┃"+strings.Repeat(" ", 99)+"┃", rows[1])

	rows = plainRows(bar, s, domain.CycleState{ElapsedInPhase: domain.Seconds(100)})
	assert.Equal(t, "┃"+strings.Repeat("█", 97)+"▓▒┃", rows[1])
}
