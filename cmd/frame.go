package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/domain"
	"github.com/xvierd/tomato/internal/screen"
)

const (
	fallbackWidth  = 120
	fallbackHeight = 40
)

var (
	frameWidth      int
	frameHeight     int
	frameElapsed    time.Duration
	frameCycles     int
	frameInBreak    bool
	framePaused     bool
	frameHover      bool
	frameBackground bool
)

var frameCmd = &cobra.Command{
	Use:   "frame [work short_break long_break long_break_cycles]",
	Short: "Print a single frame of the timer display",
	Long: `Render one frame for the given cycle state and print it to stdout
without taking over the terminal. Useful for previews and scripts.`,
	Args: validateTimerArgs,
	RunE: runFrame,
}

func init() {
	frameCmd.Flags().IntVar(&frameWidth, "width", 0, "Terminal width (default: detected)")
	frameCmd.Flags().IntVar(&frameHeight, "height", 0, "Terminal height (default: detected)")
	frameCmd.Flags().DurationVar(&frameElapsed, "elapsed", 0, "Time elapsed in the current phase")
	frameCmd.Flags().IntVar(&frameCycles, "cycles", 0, "Completed work cycles")
	frameCmd.Flags().BoolVar(&frameInBreak, "break", false, "Render a break phase")
	frameCmd.Flags().BoolVar(&framePaused, "paused", false, "Render the paused state")
	frameCmd.Flags().BoolVar(&frameHover, "hover", false, "Render the pause button under the cursor")
	frameCmd.Flags().BoolVar(&frameBackground, "background", false, "Paint the phase background color")
}

func runFrame(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(args)
	if err != nil {
		return err
	}

	if frameCycles < 0 {
		return fmt.Errorf("%w: --cycles must not be negative", errUsage)
	}

	state := domain.CycleState{
		ElapsedInPhase:  domain.FromStd(frameElapsed),
		CompletedCycles: frameCycles,
		Paused:          framePaused,
		InBreak:         frameInBreak,
		HoverOnPause:    frameHover,
	}
	if target := state.Target(settings); state.ElapsedInPhase.Seconds() > target.Seconds() {
		return fmt.Errorf("%w: --elapsed %s exceeds the %s length %s",
			errUsage, state.ElapsedInPhase, state.Phase(settings).Label(), target)
	}

	width, height := frameWidth, frameHeight
	if width <= 0 || height <= 0 {
		w, h := terminalSize()
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}

	frame := screen.NewComposer().Compose(width, height, settings, state)
	if frameBackground {
		frame = screen.Paint(frame, screen.Background(state.InBreak))
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), frame)
	return err
}

// terminalSize returns the size of the terminal on stdout, or a size that
// fits the whole display when stdout is not a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
