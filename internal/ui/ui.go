package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/todo/internal/shared"
	"github.com/desertthunder/todo/internal/tasks"
)

// Focus names the widget that receives key presses.
type Focus int

const (
	InputFocus Focus = iota
	TableFocus
)

// Model represents the TUI application state.
type Model struct {
	editor  *tasks.Editor
	logger  *log.Logger
	palette *Palette
	delay   time.Duration
	ready   bool
	focus   Focus
	width   int
	height  int
	input   textinput.Model
	table   table.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
}

// NewModel creates a new TUI model around editor. A nil config uses [shared.DefaultConfig]; a nil logger discards output.
func NewModel(editor *tasks.Editor, config *shared.Config, logger *log.Logger) *Model {
	if config == nil {
		config = shared.DefaultConfig()
	}
	if logger == nil {
		logger = shared.NewDiscardLogger()
	}
	if editor == nil {
		editor = tasks.NewEditor(logger)
	}

	palette := NewThemePalette(config.Theme)

	ti := textinput.New()
	ti.Placeholder = config.UI.Placeholder
	ti.CharLimit = config.UI.CharLimit
	ti.Width = 40

	ts := table.DefaultStyles()
	ts.Header = ts.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	ts.Selected = palette.title.UnsetMarginBottom()

	tbl := table.New(
		table.WithColumns(tableColumns(editor.Snapshot().Page, 0)),
		table.WithHeight(tasks.PageSize+2),
		table.WithStyles(ts),
	)

	m := &Model{
		editor:  editor,
		logger:  logger,
		palette: palette,
		delay:   config.UI.LoadDelay(),
		focus:   InputFocus,
		input:   ti,
		table:   tbl,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(palette.title.UnsetMarginBottom())),
		help:    help.New(),
		keys:    newKeyMap(),
	}
	m.sync()
	return m
}

// Init starts the loading spinner and schedules the one-shot load delay.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForLoad(m.delay))
}

// Ready reports whether the loading delay has passed.
func (m *Model) Ready() bool { return m.ready }

// Focus returns the widget that currently receives key presses.
func (m *Model) Focus() Focus { return m.focus }

// Editor returns the list editor driven by this model.
func (m *Model) Editor() *tasks.Editor { return m.editor }

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-24, 20)
		m.sync()
		return m, nil

	case Msg:
		switch msg.kind {
		case MsgLoaded:
			m.ready = true
			m.logger.Info("list ready", "delay", m.delay)
			m.sync()
			return m, m.input.Focus()
		}
		return m, nil

	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.interrupt) {
			return m, tea.Quit
		}
		if !m.ready {
			return m, nil
		}
		if m.focus == TableFocus {
			return m.handleTableKeys(msg)
		}
		return m.handleInputKeys(msg)
	}

	if m.ready && m.focus == InputFocus {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI from the editor snapshot.
func (m *Model) View() string {
	if !m.ready {
		return fmt.Sprintf("\n  %s Loading...\n", m.spinner.View())
	}

	view := m.editor.Snapshot()

	var b strings.Builder
	b.WriteString(m.palette.title.Render("To-Do List"))
	b.WriteString("\n")
	b.WriteString(m.renderInput(view))
	b.WriteString("\n")
	if view.Error != "" {
		b.WriteString(m.palette.err.Render(view.Error))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderPager(view))
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp(view))
	return b.String()
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.submit):
		m.editor.SetDraft(m.input.Value())
		if err := m.editor.Submit(); err == nil {
			m.logger.Info("task saved", "tasks", m.editor.Len(), "page", m.editor.Page())
		}
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.cancel):
		m.editor.CancelEdit()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.focus):
		m.setFocus(TableFocus)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.editor.SetDraft(m.input.Value())
	return m, cmd
}

func (m *Model) handleTableKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.cancel):
		m.editor.CancelEdit()
		m.sync()
		return m, m.setFocus(InputFocus)

	case key.Matches(msg, m.keys.focus):
		return m, m.setFocus(InputFocus)

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
		m.keys.help.SetHelp("?", helpLabel(m.help.ShowAll))

	case key.Matches(msg, m.keys.up):
		if len(m.table.Rows()) > 0 {
			m.table.MoveUp(1)
		}

	case key.Matches(msg, m.keys.down):
		if len(m.table.Rows()) > 0 {
			m.table.MoveDown(1)
		}

	case key.Matches(msg, m.keys.edit):
		idx, ok := m.selectedIndex()
		if !ok {
			return m, nil
		}
		if err := m.editor.BeginEdit(idx); err != nil {
			m.logger.Error("edit failed", "index", idx, "error", err)
			return m, nil
		}
		m.sync()
		return m, m.setFocus(InputFocus)

	case key.Matches(msg, m.keys.remove):
		idx, ok := m.selectedIndex()
		if !ok {
			return m, nil
		}
		if err := m.editor.DeleteAt(idx); err != nil {
			m.logger.Error("delete failed", "index", idx, "error", err)
			return m, nil
		}
		m.logger.Info("task deleted", "tasks", m.editor.Len(), "page", m.editor.Page())
		m.sync()

	case key.Matches(msg, m.keys.prev):
		if m.editor.PrevPage() {
			m.table.SetCursor(0)
			m.sync()
		}

	case key.Matches(msg, m.keys.next):
		if m.editor.NextPage() {
			m.table.SetCursor(0)
			m.sync()
		}
	}

	return m, nil
}

// setFocus moves key handling between the input and the table.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == TableFocus {
		m.input.Blur()
		m.table.Focus()
		return nil
	}
	m.table.Blur()
	return m.input.Focus()
}

// selectedIndex maps the table cursor to a list index on the current page.
func (m *Model) selectedIndex() (int, bool) {
	rows := m.editor.Snapshot().Page.Rows
	c := m.table.Cursor()
	if c < 0 || c >= len(rows) {
		return 0, false
	}
	return rows[c].Index, true
}

// sync copies editor state into the widgets after an operation.
func (m *Model) sync() {
	view := m.editor.Snapshot()

	if m.input.Value() != view.Draft {
		m.input.SetValue(view.Draft)
	}

	m.table.SetColumns(tableColumns(view.Page, m.width))
	m.table.SetRows(tableRows(view.Page))
	if n := len(view.Page.Rows); n > 0 {
		if c := m.table.Cursor(); c < 0 || c >= n {
			m.table.SetCursor(max(min(c, n-1), 0))
		}
	}

	hasRows := len(view.Page.Rows) > 0
	m.keys.edit.SetEnabled(hasRows)
	m.keys.remove.SetEnabled(hasRows)
	m.keys.up.SetEnabled(hasRows)
	m.keys.down.SetEnabled(hasRows)
	m.keys.prev.SetEnabled(view.Page.HasPrev())
	m.keys.next.SetEnabled(view.Page.HasNext())
}

func (m *Model) renderInput(view tasks.View) string {
	button := m.palette.ok.Render(fmt.Sprintf("[ %s ]", view.Label))
	line := fmt.Sprintf("%s  %s", m.input.View(), button)

	if s, ok := m.editor.Session(); ok {
		line += "\n" + m.palette.warn.Render(fmt.Sprintf("editing task #%d", s.Index+1))
	}
	return line
}

func (m *Model) renderPager(view tasks.View) string {
	p := view.Page
	prev := m.palette.control("‹ Previous", p.HasPrev())
	next := m.palette.control("Next ›", p.HasNext())
	return fmt.Sprintf("%s   Page %d of %d   %s", prev, p.Number, p.TotalPages, next)
}

func (m *Model) renderHelp(view tasks.View) string {
	if m.help.ShowAll {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	if m.focus == TableFocus {
		return m.help.ShortHelpView(m.keys.tableHelp())
	}
	return m.help.ShortHelpView(m.keys.inputHelp(view.Mode == tasks.Editing))
}

func helpLabel(showAll bool) string {
	if showAll {
		return "less help"
	}
	return "more help"
}
