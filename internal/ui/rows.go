package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/desertthunder/todo/internal/models"
)

const (
	ordinalWidth = 4
	actionsWidth = 15
	minTaskWidth = 20
	maxTaskWidth = 60
	actionsLabel = "[Edit] [Delete]"
)

// tableRows converts a page of [models.Row] into [table.Row] values.
func tableRows(page models.Page) []table.Row {
	rows := make([]table.Row, len(page.Rows))
	for i, r := range page.Rows {
		rows[i] = table.Row{strconv.Itoa(r.Ordinal), r.Text.String(), actionsLabel}
	}
	return rows
}

// tableColumns sizes the Task column to the widest task on the page, within the terminal width when known.
func tableColumns(page models.Page, termWidth int) []table.Column {
	widest := 0
	for _, r := range page.Rows {
		widest = max(widest, ansi.StringWidth(r.Text.String()))
	}

	limit := maxTaskWidth
	if termWidth > 0 {
		// two cells of padding per column
		limit = min(limit, termWidth-ordinalWidth-actionsWidth-6)
	}
	taskWidth := max(min(widest, limit), minTaskWidth)

	return []table.Column{
		{Title: "No.", Width: ordinalWidth},
		{Title: "Task", Width: taskWidth},
		{Title: "Actions", Width: actionsWidth},
	}
}
