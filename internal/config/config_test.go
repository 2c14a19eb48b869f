package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timer.WorkDuration != 25*time.Minute {
		t.Errorf("WorkDuration = %v, want 25m", cfg.Timer.WorkDuration)
	}
	if cfg.Timer.ShortBreak != 5*time.Minute {
		t.Errorf("ShortBreak = %v, want 5m", cfg.Timer.ShortBreak)
	}
	if cfg.Timer.LongBreak != 30*time.Minute {
		t.Errorf("LongBreak = %v, want 30m", cfg.Timer.LongBreak)
	}
	if cfg.Timer.LongBreakCycles != 4 {
		t.Errorf("LongBreakCycles = %d, want 4", cfg.Timer.LongBreakCycles)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfig_Settings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timer.WorkDuration = 50 * time.Minute
	cfg.Timer.LongBreakCycles = 2

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, uint64(50), s.WorkTime.Minutes())
	assert.Equal(t, uint64(5), s.ShortBreakTime.Minutes())
	assert.Equal(t, uint64(30), s.LongBreakTime.Minutes())
	assert.Equal(t, 2, s.LongBreakCycles)

	cfg.Timer.LongBreakCycles = 0
	_, err = cfg.Settings()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"short work", func(c *Config) { c.Timer.WorkDuration = 30 * time.Second }, "WorkDuration"},
		{"zero cycles", func(c *Config) { c.Timer.LongBreakCycles = 0 }, "LongBreakCycles"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "long_break_cycles")
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[timer]",
		`work_duration = "50m"`,
		`short_break = "10m"`,
		`long_break = "20m"`,
		"long_break_cycles = 3",
		"",
		"[notifications]",
		"enabled = false",
		"",
		"[log]",
		`level = "debug"`,
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Minute, cfg.Timer.WorkDuration)
	assert.Equal(t, 10*time.Minute, cfg.Timer.ShortBreak)
	assert.Equal(t, 20*time.Minute, cfg.Timer.LongBreak)
	assert.Equal(t, 3, cfg.Timer.LongBreakCycles)
	assert.False(t, cfg.Notifications.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(path, DefaultConfig()))

	t.Setenv("TOMATO_TIMER_WORK_DURATION", "45m")
	t.Setenv("TOMATO_TIMER_LONG_BREAK_CYCLES", "6")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, cfg.Timer.WorkDuration)
	assert.Equal(t, 6, cfg.Timer.LongBreakCycles)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[timer]\nlong_break_cycles = 0\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LongBreakCycles")
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Timer.ShortBreak = 7 * time.Minute
	cfg.Log.File = "/tmp/tomato.log"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
