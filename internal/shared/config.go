package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	UI    UIConfig    `toml:"ui"`
	Log   LogConfig   `toml:"log"`
	Theme ThemeConfig `toml:"theme"`
}

// UIConfig contains settings for the interactive list editor.
type UIConfig struct {
	LoadDelayMS int    `toml:"load_delay_ms"`
	Placeholder string `toml:"placeholder"`
	CharLimit   int    `toml:"char_limit"`
	AltScreen   bool   `toml:"alt_screen"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// ThemeConfig contains the hex colors used by the TUI palette.
type ThemeConfig struct {
	Title string `toml:"title"`
	OK    string `toml:"ok"`
	Error string `toml:"error"`
	Warn  string `toml:"warn"`
	Help  string `toml:"help"`
}

// LoadDelay returns the configured spinner delay. Negative values are treated as zero.
func (c UIConfig) LoadDelay() time.Duration {
	if c.LoadDelayMS < 0 {
		return 0
	}
	return time.Duration(c.LoadDelayMS) * time.Millisecond
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the values from [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w at %s", ErrConfigExists, path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveConfig loads the config at path when it exists and falls back to [DefaultConfig] otherwise.
//
// A file that exists but cannot be parsed is reported rather than silently ignored.
func ResolveConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
