package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// PortalConfig holds the connection settings for the artist portal API.
type PortalConfig struct {
	// BaseURL is the root URL of the portal (e.g. https://portal.example.com).
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// TimeoutSec bounds every HTTP request.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`

	// PageSize is the number of rows per page in paginated tables.
	PageSize int `mapstructure:"page_size" yaml:"page_size"`

	// RefreshIntervalSec is how often the open artist's dashboard is
	// refetched in the background.
	RefreshIntervalSec int `mapstructure:"refresh_interval_sec" yaml:"refresh_interval_sec"`
}

// CacheConfig holds settings for the local snapshot cache.
type CacheConfig struct {
	// Path is the SQLite database file. Empty means the default under
	// the user config directory.
	Path string `mapstructure:"path" yaml:"path"`

	// Disabled turns the read-through cache off entirely.
	Disabled bool `mapstructure:"disabled" yaml:"disabled"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Portal  PortalConfig  `mapstructure:"portal" yaml:"portal"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/artistdesk/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "artistdesk", "config.yaml")
}

// DefaultCachePath returns the default SQLite cache location.
func DefaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "artistdesk.db")
	}
	return filepath.Join(home, ".config", "artistdesk", "cache.db")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Portal: PortalConfig{
			BaseURL:    "http://localhost:5000",
			TimeoutSec: 30,
		},
		Display: DisplayConfig{
			Theme:              "default",
			PageSize:           5,
			RefreshIntervalSec: 120,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("portal.base_url", "http://localhost:5000")
	v.SetDefault("portal.timeout_sec", 30)
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.page_size", 5)
	v.SetDefault("display.refresh_interval_sec", 120)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Display.PageSize <= 0 {
		cfg.Display.PageSize = 5
	}
	if cfg.Portal.TimeoutSec <= 0 {
		cfg.Portal.TimeoutSec = 30
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("portal", cfg.Portal)
	v.Set("display", cfg.Display)
	v.Set("cache", cfg.Cache)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
