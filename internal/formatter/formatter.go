// package formatter renders a page of tasks to plain text, Markdown, or CSV
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/todo/internal/models"
	"github.com/desertthunder/todo/internal/shared"
)

// Format names an output format accepted by [Render].
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	JSON     Format = "json"
)

// ParseFormat maps a user-supplied name (case-insensitive, "md" accepted) to a [Format].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "markdown", "md":
		return Markdown, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
	}
}

// Render dispatches to the exporter for f. JSON is left to the caller's encoder.
func Render(page models.Page, f Format) ([]byte, error) {
	switch f {
	case Text:
		return ExportToText(page)
	case Markdown:
		return ExportToMarkdown(page)
	case CSV:
		return ExportToCSV(page)
	default:
		return nil, fmt.Errorf("%w: %q cannot be rendered as text", shared.ErrInvalidFlag, f)
	}
}

// ExportToCSV converts a Page to CSV with columns: No., Task
func ExportToCSV(page models.Page) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"No.", "Task"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, row := range page.Rows {
		record := []string{strconv.Itoa(row.Ordinal), row.Text.String()}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Page to a Markdown table under a "To-Do List" heading
func ExportToMarkdown(page models.Page) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# To-Do List\n\n")

	if len(page.Rows) == 0 {
		buf.WriteString("_No tasks on this page._\n\n")
	} else {
		buf.WriteString("| No. | Task |\n")
		buf.WriteString("| --: | ---- |\n")
		for _, row := range page.Rows {
			buf.WriteString(fmt.Sprintf("| %d | %s |\n", row.Ordinal, escapeCell(row.Text.String())))
		}
		buf.WriteString("\n")
	}

	buf.WriteString(fmt.Sprintf("**Page**: %d of %d\n", page.Number, page.TotalPages))
	buf.WriteString(fmt.Sprintf("**Tasks**: %d\n", page.TotalTasks))

	return buf.Bytes(), nil
}

// ExportToText converts a Page to plain text
func ExportToText(page models.Page) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("To-Do List\n")
	buf.WriteString(fmt.Sprintf("Page %d of %d (%d tasks)\n\n", page.Number, page.TotalPages, page.TotalTasks))

	for _, row := range page.Rows {
		buf.WriteString(fmt.Sprintf("%d. %s\n", row.Ordinal, row.Text))
	}

	return buf.Bytes(), nil
}

// escapeCell keeps a task from breaking out of its Markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
