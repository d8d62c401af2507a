// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// tuiCommand returns the top-level TUI command for the interactive list editor.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive to-do list",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "alt-screen",
				Usage: "Run in the terminal's alternate screen buffer",
			},
		},
		Action: r.TUI,
	}
}

// renderCommand builds a list without a terminal and prints one page of it.
func renderCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Build a list from arguments and print a page of it",
		ArgsUsage: "[tasks...]",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: "Read tasks from standard input, one per line",
			},
			&cli.StringSliceFlag{
				Name:  "edit",
				Usage: "Replace a task, as ORDINAL=TEXT (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "delete",
				Usage: "Delete the task at ORDINAL (repeatable)",
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "Page to print",
				Value: 1,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, markdown, csv, or json",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
		},
		Action: r.Render,
	}
}

// configCommand manages the TOML configuration file.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the example configuration file",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigInit,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration as TOML",
				Flags:  []cli.Flag{configFlag()},
				Action: r.ConfigShow,
			},
		},
	}
}
