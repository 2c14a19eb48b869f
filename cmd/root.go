// Package cmd provides the CLI commands for the Tomato application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/adapters/notification"
	"github.com/xvierd/tomato/internal/adapters/tui"
	"github.com/xvierd/tomato/internal/config"
	"github.com/xvierd/tomato/internal/domain"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	configPath string
	verbose    bool
	logFile    string
	noNotify   bool

	appConfig *config.Config
)

// errUsage marks errors caused by malformed command line arguments.
var errUsage = errors.New("invalid arguments")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tomato [work short_break long_break long_break_cycles]",
	Short: "Tomato - a full-screen Pomodoro timer for the terminal",
	Long: `Tomato runs the Pomodoro cycle in a full-screen terminal display:
work, short break, and every few cycles a long break.

Pass no arguments to use the configured lengths (25/5/30 minutes, long break
every 4 cycles by default), or exactly four positive integers: work minutes,
short break minutes, long break minutes and cycles between long breaks.

Click the pause button or press p/space to pause, q to quit.`,
	Args:          validateTimerArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadConfig()
		configureLogging()
		return nil
	},
	RunE: runTimer,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		os.Exit(1)
	}
}

func init() {
	// Logs go to stderr so they never mix with frame output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default: ~/.tomato/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs here while the timer is on screen")
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications for this run")

	rootCmd.Version = Version
	rootCmd.Annotations = map[string]string{"commit": GitCommit, "date": BuildDate}
	rootCmd.SetVersionTemplate("Tomato\nVersion: {{.Version}}\nCommit: {{index .Annotations \"commit\"}}\nBuilt: {{index .Annotations \"date\"}}\n")

	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file, falling back to defaults when it cannot
// be read.
func loadConfig() {
	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.WithError(err).Warn("using default configuration")
		cfg = config.DefaultConfig()
	}
	appConfig = cfg
}

// configureLogging applies the configured level; --verbose wins.
func configureLogging() {
	level := logrus.InfoLevel
	if appConfig != nil {
		if l, err := logrus.ParseLevel(appConfig.Log.Level); err == nil {
			level = l
		}
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

// validateTimerArgs accepts no arguments or exactly four positive integers.
func validateTimerArgs(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 4:
		_, err := parseTimerArgs(args)
		return err
	default:
		return fmt.Errorf("%w: expected 0 or 4 arguments, got %d", errUsage, len(args))
	}
}

// parseTimerArgs turns work, short break and long break minutes plus the
// long break cycle count into settings.
func parseTimerArgs(args []string) (domain.Settings, error) {
	if len(args) != 4 {
		return domain.Settings{}, fmt.Errorf("%w: expected 4 arguments, got %d", errUsage, len(args))
	}

	names := [4]string{"work time", "short break time", "long break time", "long break cycles"}
	var values [4]uint64
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 32)
		if err != nil || v == 0 {
			return domain.Settings{}, fmt.Errorf("%w: %s must be a positive integer, got %q", errUsage, names[i], arg)
		}
		values[i] = v
	}

	s, err := domain.NewSettings(values[0], values[1], values[2], int(values[3]))
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %w", errUsage, err)
	}
	return s, nil
}

// resolveSettings prefers positional arguments over the config file.
func resolveSettings(args []string) (domain.Settings, error) {
	if len(args) > 0 {
		return parseTimerArgs(args)
	}
	cfg := appConfig
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s, err := cfg.Settings()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("invalid timer configuration: %w", err)
	}
	return s, nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// openLogOutput returns where logs go while the timer is on screen.
func openLogOutput() (io.Writer, func() error, error) {
	path := logFile
	if path == "" && appConfig != nil {
		path = appConfig.Log.File
	}
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, f.Close, nil
}

// runTimer runs the full-screen timer until the user quits.
func runTimer(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(args)
	if err != nil {
		return err
	}

	log := logrus.WithField("run_id", uuid.New().String())
	log.WithFields(logrus.Fields{
		"work":              settings.WorkTime.String(),
		"short_break":       settings.ShortBreakTime.String(),
		"long_break":        settings.LongBreakTime.String(),
		"long_break_cycles": settings.LongBreakCycles,
	}).Info("starting timer")

	notifyCfg := appConfig.Notifications
	if noNotify {
		notifyCfg.Enabled = false
	}

	out, closeLog, err := openLogOutput()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	final, err := tui.Run(setupSignalHandler(), tui.Options{
		Settings: settings,
		Notifier: notification.New(&notifyCfg),
		Logger:   log,
	}, out)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"completed_cycles": final.CompletedCycles,
		"work_time":        final.CompletedWorkTime(settings).String(),
	}).Info("timer stopped")

	return nil
}
