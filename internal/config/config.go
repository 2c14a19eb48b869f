// Package config provides configuration management for Tomato.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/xvierd/tomato/internal/domain"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. TOMATO_TIMER_WORK_DURATION=50m.
const EnvPrefix = "TOMATO"

// Config holds all configuration for the Tomato application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Log           LogConfig          `mapstructure:"log"`
}

// TimerConfig holds the phase lengths and the long break schedule.
type TimerConfig struct {
	WorkDuration    time.Duration `mapstructure:"work_duration" validate:"gte=1m"`
	ShortBreak      time.Duration `mapstructure:"short_break" validate:"gte=1m"`
	LongBreak       time.Duration `mapstructure:"long_break" validate:"gte=1m"`
	LongBreakCycles int           `mapstructure:"long_break_cycles" validate:"gte=1"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// LogConfig controls where logs go while the timer owns the terminal.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			WorkDuration:    25 * time.Minute,
			ShortBreak:      5 * time.Minute,
			LongBreak:       30 * time.Minute,
			LongBreakCycles: 4,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// Validate checks the configuration against its field constraints.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Namespace(), fe.Tag()+"="+fe.Param(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Settings converts the timer section into domain settings.
func (c *Config) Settings() (domain.Settings, error) {
	s := domain.Settings{
		WorkTime:        domain.FromStd(c.Timer.WorkDuration),
		ShortBreakTime:  domain.FromStd(c.Timer.ShortBreak),
		LongBreakTime:   domain.FromStd(c.Timer.LongBreak),
		LongBreakCycles: c.Timer.LongBreakCycles,
	}
	if err := s.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

// Load reads the configuration file at path, creating it with defaults if it
// does not exist. An empty path means GetConfigPath. Environment variables
// prefixed with EnvPrefix override file values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes cfg to the configuration file at path.
func Save(path string, cfg *Config) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.Set("timer.work_duration", cfg.Timer.WorkDuration.String())
	v.Set("timer.short_break", cfg.Timer.ShortBreak.String())
	v.Set("timer.long_break", cfg.Timer.LongBreak.String())
	v.Set("timer.long_break_cycles", cfg.Timer.LongBreakCycles)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tomato", "config.toml"), nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("timer.work_duration", defaults.Timer.WorkDuration.String())
	v.SetDefault("timer.short_break", defaults.Timer.ShortBreak.String())
	v.SetDefault("timer.long_break", defaults.Timer.LongBreak.String())
	v.SetDefault("timer.long_break_cycles", defaults.Timer.LongBreakCycles)
	v.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	v.SetDefault("notifications.sound", defaults.Notifications.Sound)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)
}
