package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/todo/internal/formatter"
	"github.com/desertthunder/todo/internal/shared"
	"github.com/desertthunder/todo/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Render builds a list headlessly and prints the requested page.
//
// Tasks come from positional arguments, or standard input with --stdin, and are added in order.
// Edits run before deletes; both address tasks by their 1-based ordinal at the time they are applied.
func (r *Runner) Render(ctx context.Context, cmd *cli.Command) error {
	if _, err := r.resolveConfig(cmd); err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	items := cmd.Args().Slice()
	if cmd.Bool("stdin") {
		lines, err := r.readLines()
		if err != nil {
			return err
		}
		items = append(items, lines...)
	}

	logger := shared.WithLogger(r.logger, "command", "render")
	editor := tasks.NewEditor(logger)

	for _, item := range items {
		if err := editor.Add(item); err != nil {
			logger.Warn("skipping task", "text", item, "error", err)
		}
	}

	for _, edit := range cmd.StringSlice("edit") {
		if err := applyEdit(editor, edit); err != nil {
			if errors.Is(err, shared.ErrEmptyTask) {
				logger.Warn("skipping edit", "edit", edit, "error", err)
				continue
			}
			return err
		}
	}

	for _, del := range cmd.StringSlice("delete") {
		idx, err := parseOrdinal(del)
		if err != nil {
			return err
		}
		if err := editor.DeleteAt(idx); err != nil {
			return fmt.Errorf("%w: --delete %s: %w", shared.ErrInvalidArgument, del, err)
		}
	}

	editor.GoToPage(cmd.Int("page"))
	page := editor.Snapshot().Page

	logger.Debug("rendering page", "page", page.Number, "tasks", page.TotalTasks, "format", format)

	if format == formatter.JSON {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	data, err := formatter.Render(page, format)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// applyEdit parses ORDINAL=TEXT and replaces that task through an edit session.
func applyEdit(editor *tasks.Editor, edit string) error {
	ordinal, text, ok := strings.Cut(edit, "=")
	if !ok {
		return fmt.Errorf("%w: --edit %q must be ORDINAL=TEXT", shared.ErrInvalidArgument, edit)
	}

	idx, err := parseOrdinal(ordinal)
	if err != nil {
		return err
	}
	if err := editor.BeginEdit(idx); err != nil {
		return fmt.Errorf("%w: --edit %s: %w", shared.ErrInvalidArgument, edit, err)
	}

	editor.SetDraft(text)
	if err := editor.Submit(); err != nil {
		editor.CancelEdit()
		return err
	}
	return nil
}

// parseOrdinal converts a 1-based ordinal to a list index.
func parseOrdinal(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a task number", shared.ErrInvalidArgument, s)
	}
	return n - 1, nil
}

func (r *Runner) readLines() ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks from stdin: %w", err)
	}
	return lines, nil
}
