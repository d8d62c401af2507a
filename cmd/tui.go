package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/todo/internal/shared"
	"github.com/desertthunder/todo/internal/tasks"
	"github.com/desertthunder/todo/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive to-do list.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	config, err := r.resolveConfig(cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, logFile, err := shared.NewFileLogger(config.Log.Path)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	defer logFile.Close()
	if err := shared.ApplyLogLevel(fileLogger, config.Log.Level); err != nil {
		return err
	}
	r.SetLogger(shared.WithLogger(fileLogger, "session", shared.GenerateID()))

	editor := tasks.NewEditor(r.logger)
	model := ui.NewModel(editor, config, r.logger)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if config.UI.AltScreen || cmd.Bool("alt-screen") {
		opts = append(opts, tea.WithAltScreen())
	}

	r.logger.Info("starting tui", "config", r.configPath, "alt_screen", config.UI.AltScreen || cmd.Bool("alt-screen"))

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	r.logger.Info("tui closed", "tasks", editor.Len())
	return nil
}
