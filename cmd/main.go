package main

import (
	"context"
	"os"

	"github.com/desertthunder/todo/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.toml"

func main() {
	logger := shared.NewLogger(nil)

	config, err := shared.ResolveConfig(defaultConfigPath)
	if err != nil {
		logger.Warn("failed to load config, using defaults", "path", defaultConfigPath, "error", err)
		config = shared.DefaultConfig()
	}
	if err := shared.ApplyLogLevel(logger, config.Log.Level); err != nil {
		logger.Warn("ignoring log level", "error", err)
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: defaultConfigPath,
		Logger:     logger,
	})

	app := newApp(runner)

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// newApp builds the root command. With no subcommand it launches the TUI.
func newApp(r *Runner) *cli.Command {
	tui := tuiCommand(r)
	return &cli.Command{
		Name:                      "todo",
		Usage:                     "A paginated to-do list for the terminal",
		Version:                   "0.1.0",
		Flags:                     tui.Flags,
		Action:                    tui.Action,
		Commands:                  r.register(),
		DisableSliceFlagSeparator: true,
	}
}
