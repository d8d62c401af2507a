package shared

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLogger(t *testing.T) {
	t.Run("NewLogger writes to the given writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		logger.Info("hello", "key", "value")

		if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "key=value") {
			t.Errorf("unexpected log output: %q", buf.String())
		}
	})

	t.Run("NewFileLogger creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "todo.log")

		logger, closer, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("failed to create file logger: %v", err)
		}
		logger.Info("written to file")
		if err := closer.Close(); err != nil {
			t.Fatalf("failed to close log file: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(content), "written to file") {
			t.Errorf("expected log line in file, got %q", content)
		}
	})

	t.Run("NewFileLogger closer releases the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todo.log")

		_, closer, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("failed to create file logger: %v", err)
		}
		if err := closer.Close(); err != nil {
			t.Fatalf("first close failed: %v", err)
		}
		if err := closer.Close(); err == nil {
			t.Error("expected second close to report an already closed file")
		}
	})

	t.Run("NewFileLogger reports an unusable path", func(t *testing.T) {
		dir := t.TempDir()

		if _, _, err := NewFileLogger(dir); err == nil {
			t.Error("expected an error opening a directory as a log file")
		}
	})

	t.Run("ApplyLogLevel", func(t *testing.T) {
		tc := []struct {
			name    string
			level   string
			want    log.Level
			wantErr bool
		}{
			{name: "debug", level: "debug", want: log.DebugLevel},
			{name: "warn", level: "warn", want: log.WarnLevel},
			{name: "empty keeps current", level: "", want: log.InfoLevel},
			{name: "unknown", level: "loud", want: log.InfoLevel, wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				logger := NewLogger(&bytes.Buffer{})
				err := ApplyLogLevel(logger, tt.level)

				if tt.wantErr {
					if !errors.Is(err, ErrInvalidConfig) {
						t.Errorf("expected ErrInvalidConfig, got %v", err)
					}
				} else if err != nil {
					t.Errorf("unexpected error: %v", err)
				}

				if logger.GetLevel() != tt.want {
					t.Errorf("level = %v, want %v", logger.GetLevel(), tt.want)
				}
			})
		}
	})
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Errorf("expected unique IDs, got %s twice", a)
	}
	if len(a) != 36 {
		t.Errorf("expected 36 character UUID, got %q", a)
	}
}
