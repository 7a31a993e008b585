package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/yourusername/gitti/internal/log"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:       "catppuccin-mocha",
			SyntaxTheme: "monokai",
			Mouse:       true,
		},
		Diff: DiffConfig{
			ContextLines: 5,
		},
		Refresh: RefreshConfig{
			IntervalMs: 1000,
			PollMs:     100,
		},
		Keybindings: KeybindingsConfig{
			Quit:        []string{"q", "ctrl+c"},
			Help:        []string{"?"},
			Up:          []string{"up"},
			Down:        []string{"down"},
			CommitUp:    []string{"K", "shift+up"},
			CommitDown:  []string{"J", "shift+down"},
			ScrollUp:    []string{"k"},
			ScrollDown:  []string{"j"},
			PageUp:      []string{"pgup", "ctrl+u"},
			PageDown:    []string{"pgdown", "ctrl+d"},
			Top:         []string{"g", "home"},
			Bottom:      []string{"G", "end"},
			Branch:      []string{"b"},
			Select:      []string{"enter"},
			Cancel:      []string{"esc"},
			ToggleMouse: []string{"m"},
			CopyPath:    []string{"y"},
			CopyCommit:  []string{"Y"},
		},
		Performance: PerformanceConfig{
			MaxCommits:      1000,
			CacheTTLSeconds: 600,
		},
	}
}

// DefaultPath returns ~/.config/gitti/config.yaml, or "" if the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gitti", "config.yaml")
}

// Load reads the YAML file at path on top of DefaultConfig. An empty path
// means DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return config, nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			log.Debug(log.CatConfig, "no config file, using defaults", "path", path)
			return config, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	config.normalize()
	log.Info(log.CatConfig, "loaded config", "path", v.ConfigFileUsed())
	return config, nil
}

// normalize replaces nonsensical values with defaults.
func (c *Config) normalize() {
	d := DefaultConfig()
	if c.Diff.ContextLines < 0 {
		c.Diff.ContextLines = d.Diff.ContextLines
	}
	if c.Refresh.IntervalMs <= 0 {
		c.Refresh.IntervalMs = d.Refresh.IntervalMs
	}
	if c.Refresh.PollMs <= 0 {
		c.Refresh.PollMs = d.Refresh.PollMs
	}
	if c.Performance.MaxCommits <= 0 {
		c.Performance.MaxCommits = d.Performance.MaxCommits
	}
	if c.Performance.CacheTTLSeconds <= 0 {
		c.Performance.CacheTTLSeconds = d.Performance.CacheTTLSeconds
	}
}

// RefreshInterval is the minimum spacing between reconciliation ticks.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Refresh.IntervalMs) * time.Millisecond
}

// PollInterval is the bounded wait between event-loop wakeups.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Refresh.PollMs) * time.Millisecond
}

// CacheTTL is how long hunks of historical commits stay cached.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Performance.CacheTTLSeconds) * time.Second
}
