package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.UI.LoadDelayMS != 1000 {
			t.Errorf("expected load delay 1000ms, got %d", config.UI.LoadDelayMS)
		}

		if config.UI.Placeholder != "Enter a task" {
			t.Errorf("expected placeholder 'Enter a task', got %s", config.UI.Placeholder)
		}

		if config.Log.Path != "./tmp/todo.log" {
			t.Errorf("expected log path ./tmp/todo.log, got %s", config.Log.Path)
		}

		if config.Theme.Error != "#FF0000" {
			t.Errorf("expected error color #FF0000, got %s", config.Theme.Error)
		}
	})

	t.Run("LoadDelay", func(t *testing.T) {
		tc := []struct {
			name string
			ms   int
			want time.Duration
		}{
			{name: "default", ms: 1000, want: time.Second},
			{name: "zero", ms: 0, want: 0},
			{name: "negative", ms: -5, want: 0},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got := UIConfig{LoadDelayMS: tt.ms}.LoadDelay()
				if got != tt.want {
					t.Errorf("LoadDelay() = %v, want %v", got, tt.want)
				}
			})
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if *config != *defaultConfig {
			t.Errorf("created config doesn't match default: %+v vs %+v", config, defaultConfig)
		}

		err = CreateConfigFile(configPath)
		if !errors.Is(err, ErrConfigExists) {
			t.Errorf("creating config file again should fail with ErrConfigExists, got %v", err)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[ui]
load_delay_ms = 250
alt_screen = true

[log]
level = "debug"

[theme]
title = "#FFFFFF"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.UI.LoadDelayMS != 250 {
			t.Errorf("expected load delay 250, got %d", config.UI.LoadDelayMS)
		}

		if !config.UI.AltScreen {
			t.Error("expected alt_screen to be true")
		}

		if config.Log.Level != "debug" {
			t.Errorf("expected log level debug, got %s", config.Log.Level)
		}

		if config.Theme.Title != "#FFFFFF" {
			t.Errorf("expected title color #FFFFFF, got %s", config.Theme.Title)
		}

		if config.UI.Placeholder != "Enter a task" {
			t.Errorf("expected missing keys to keep defaults, got placeholder %q", config.UI.Placeholder)
		}
	})

	t.Run("LoadConfig with malformed file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[ui\nload_delay_ms = "), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("ResolveConfig", func(t *testing.T) {
		t.Run("missing file uses defaults", func(t *testing.T) {
			config, err := ResolveConfig(filepath.Join(t.TempDir(), "nope.toml"))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.UI.LoadDelayMS != 1000 {
				t.Errorf("expected defaults, got %+v", config.UI)
			}
		})

		t.Run("empty path uses defaults", func(t *testing.T) {
			config, err := ResolveConfig("")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config == nil {
				t.Fatal("expected default config")
			}
		})

		t.Run("existing file is loaded", func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte("[ui]\nchar_limit = 10\n"), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			config, err := ResolveConfig(configPath)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if config.UI.CharLimit != 10 {
				t.Errorf("expected char limit 10, got %d", config.UI.CharLimit)
			}
		})
	})
}
