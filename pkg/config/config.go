package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DefaultAction string `yaml:"default_action"`
	DefaultFilter string `yaml:"default_filter"`
	ListFormat    string `yaml:"list_format"`

	// Search Settings
	SuggestMinChars   int `yaml:"suggest_min_chars"`
	SuggestLimit      int `yaml:"suggest_limit"`
	SuggestDebounceMS int `yaml:"suggest_debounce_ms"`

	// UI Settings
	ColorTheme          string `yaml:"color_theme"`
	NotificationSeconds int    `yaml:"notification_seconds"`
	TableWidth          int    `yaml:"table_width"`
	WatchConfig         bool   `yaml:"watch_config"`

	// Stats Counter
	CounterDurationMS int `yaml:"counter_duration_ms"`
	CounterTickMS     int `yaml:"counter_tick_ms"`

	// Links
	SiteBaseURL string `yaml:"site_base_url"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultAction:       "browse",
		DefaultFilter:       "all",
		ListFormat:          "table",
		SuggestMinChars:     2,
		SuggestLimit:        5,
		SuggestDebounceMS:   0,
		ColorTheme:          "auto",
		NotificationSeconds: 3,
		TableWidth:          0,
		WatchConfig:         true,
		CounterDurationMS:   2000,
		CounterTickMS:       16,
		SiteBaseURL:         "",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults restores essential values that are missing or out of range
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if !isValidDefaultAction(c.DefaultAction) {
		c.DefaultAction = defaults.DefaultAction
	}
	if c.DefaultFilter == "" {
		c.DefaultFilter = defaults.DefaultFilter
	}
	if !isValidListFormat(c.ListFormat) {
		c.ListFormat = defaults.ListFormat
	}
	if c.SuggestMinChars <= 0 {
		c.SuggestMinChars = defaults.SuggestMinChars
	}
	if c.SuggestLimit <= 0 {
		c.SuggestLimit = defaults.SuggestLimit
	}
	if c.SuggestDebounceMS < 0 {
		c.SuggestDebounceMS = 0
	}
	if c.ColorTheme == "" {
		c.ColorTheme = defaults.ColorTheme
	}
	if c.NotificationSeconds <= 0 {
		c.NotificationSeconds = defaults.NotificationSeconds
	}
	if c.CounterDurationMS <= 0 {
		c.CounterDurationMS = defaults.CounterDurationMS
	}
	if c.CounterTickMS <= 0 {
		c.CounterTickMS = defaults.CounterTickMS
	}
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidDefaultAction checks if the default action is valid
func isValidDefaultAction(action string) bool {
	validActions := []string{"browse", "list", "stats"}
	for _, valid := range validActions {
		if action == valid {
			return true
		}
	}
	return false
}

func isValidListFormat(format string) bool {
	switch format {
	case "table", "yaml", "json":
		return true
	}
	return false
}
