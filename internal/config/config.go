package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// ShellConfig holds shell integration configuration.
type ShellConfig struct {
	CacheTTL    string `mapstructure:"cache_ttl"`
	NoTodayIcon string `mapstructure:"no_today_icon"`
	ShowLabel   bool   `mapstructure:"show_label"`
}

// ThemeConfig holds colour configuration for the TUI.
// Preset "weather" picks sunny/cloudy/rainy from current conditions.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// WeatherConfig controls the ambient weather lookup.
type WeatherConfig struct {
	Enabled   bool     `mapstructure:"enabled"`
	Latitude  *float64 `mapstructure:"latitude"`  // nil = locate by IP
	Longitude *float64 `mapstructure:"longitude"` // nil = locate by IP
	Timeout   string   `mapstructure:"timeout"`
}

// Config holds the application configuration.
type Config struct {
	Storage      string        `mapstructure:"storage"`
	DataDir      string        `mapstructure:"data_dir"`
	LedgerKey    string        `mapstructure:"ledger_key"`
	MaxBytes     int64         `mapstructure:"max_bytes"`
	ConfirmDelay string        `mapstructure:"confirm_delay"`
	Variant      string        `mapstructure:"variant"`
	MaxWidth     int           `mapstructure:"max_width"`
	LogLevel     string        `mapstructure:"log_level"`
	DiaryDir     string        `mapstructure:"diary_dir"`
	Editor       string        `mapstructure:"editor"`
	Theme        ThemeConfig   `mapstructure:"theme"`
	Weather      WeatherConfig `mapstructure:"weather"`
	Shell        ShellConfig   `mapstructure:"shell"`
}

// DefaultDataDir returns the default data directory (~/.sunspot/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".sunspot")
	}
	return filepath.Join(home, ".sunspot")
}

// ConfirmDelayDuration parses ConfirmDelay, falling back to two seconds.
func (c *Config) ConfirmDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.ConfirmDelay)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// WeatherTimeout parses Weather.Timeout, falling back to five seconds.
func (c *Config) WeatherTimeout() time.Duration {
	d, err := time.ParseDuration(c.Weather.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "file")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("ledger_key", "sunspot-moods")
	v.SetDefault("max_bytes", 5*1024*1024)
	v.SetDefault("confirm_delay", "2s")
	v.SetDefault("variant", "card")
	v.SetDefault("max_width", 72)
	v.SetDefault("log_level", "warn")
	v.SetDefault("diary_dir", filepath.Join(DefaultDataDir(), "diary"))
	v.SetDefault("editor", "")
	v.SetDefault("theme.preset", "weather")
	v.SetDefault("weather.enabled", true)
	v.SetDefault("weather.timeout", "3s")
	v.SetDefault("shell.cache_ttl", "5m")
	v.SetDefault("shell.no_today_icon", "·")
	v.SetDefault("shell.show_label", false)

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "sunspot"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: SUNSPOT_STORAGE, SUNSPOT_DATA_DIR, etc.
	v.SetEnvPrefix("SUNSPOT")
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
