package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xvierd/tomato/internal/config"
)

var configForce bool

var (
	configTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C6FE0"))
	configKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#95A5A6")).Width(20)
	configValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
	// Only logging: the subcommands decide whether the file should exist.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configureLogging()
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderConfig(path, cfg))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
		if err := config.Save(path, config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// renderConfig formats cfg as an aligned key/value listing.
func renderConfig(path string, cfg *config.Config) string {
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "(discard)"
	}

	rows := [][2]string{
		{"work_duration", cfg.Timer.WorkDuration.String()},
		{"short_break", cfg.Timer.ShortBreak.String()},
		{"long_break", cfg.Timer.LongBreak.String()},
		{"long_break_cycles", fmt.Sprintf("%d", cfg.Timer.LongBreakCycles)},
		{"notifications", fmt.Sprintf("%t", cfg.Notifications.Enabled)},
		{"sound", fmt.Sprintf("%t", cfg.Notifications.Sound)},
		{"log_level", cfg.Log.Level},
		{"log_file", logFile},
	}

	var b strings.Builder
	b.WriteString(configTitleStyle.Render("🍅 " + path))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(configKeyStyle.Render(r[0]))
		b.WriteString(configValueStyle.Render(r[1]))
		b.WriteString("\n")
	}
	return b.String()
}
