// package tasks implements the list editor: an in-memory, paginated to-do list.
//
// The core abstraction is Editor, which owns the task list, the draft input, the optional edit session,
// and the current page. Every operation is synchronous and leaves the editor in a consistent state.
package tasks

import (
	"fmt"
	"math"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/todo/internal/models"
	"github.com/desertthunder/todo/internal/shared"
)

// PageSize is the number of tasks shown per page.
const PageSize = 5

// EmptyTaskMessage is the inline message shown when a blank draft is submitted.
const EmptyTaskMessage = "Task cannot be empty"

// Mode is the state of the draft input.
type Mode int

const (
	Composing Mode = iota // submit appends a new task
	Editing               // submit replaces the task under edit
)

func (m Mode) String() string {
	switch m {
	case Editing:
		return "editing"
	default:
		return "composing"
	}
}

// SubmitLabel is the label of the submit button for this mode.
func (m Mode) SubmitLabel() string {
	if m == Editing {
		return "Update Task"
	}
	return "Add Task"
}

// EditSession records which task the draft will replace.
type EditSession struct {
	Index int
}

// View is everything a render surface needs, derived from editor state.
type View struct {
	Mode  Mode
	Label string
	Draft string
	Error string
	Page  models.Page
}

// Editor owns a task list and the state of the input used to change it.
//
// An Editor is not safe for concurrent use; it is driven by a single event stream.
type Editor struct {
	tasks   []models.Task
	draft   string
	errMsg  string
	session *EditSession
	page    int
	logger  *log.Logger
}

// NewEditor creates an empty Editor on page 1. A nil logger discards output.
func NewEditor(logger *log.Logger) *Editor {
	if logger == nil {
		logger = shared.NewDiscardLogger()
	}
	return &Editor{page: 1, logger: logger}
}

// SetDraft replaces the draft text. The error message is left alone until the next successful submit.
func (e *Editor) SetDraft(s string) { e.draft = s }

// Draft returns the current draft text.
func (e *Editor) Draft() string { return e.draft }

// Error returns the inline validation message, or "" when there is none.
func (e *Editor) Error() string { return e.errMsg }

// Mode reports whether the editor is composing a new task or editing an existing one.
func (e *Editor) Mode() Mode {
	if e.session != nil {
		return Editing
	}
	return Composing
}

// Session returns the active edit session, if any.
func (e *Editor) Session() (EditSession, bool) {
	if e.session == nil {
		return EditSession{}, false
	}
	return *e.session, true
}

// Tasks returns a copy of the task list.
func (e *Editor) Tasks() []models.Task { return slices.Clone(e.tasks) }

// Len returns the number of tasks.
func (e *Editor) Len() int { return len(e.tasks) }

// Page returns the current 1-based page number.
func (e *Editor) Page() int { return e.page }

// FirstIndex is the list index of the first slot on the current page.
func (e *Editor) FirstIndex() int { return models.PageStart(e.page, PageSize) }

// LastIndex is the exclusive upper bound of the current page's slots, saturating at [math.MaxInt].
func (e *Editor) LastIndex() int {
	first := e.FirstIndex()
	if first > math.MaxInt-PageSize {
		return math.MaxInt
	}
	return first + PageSize
}

// TotalPages is ceil(len/PageSize), never less than one.
func (e *Editor) TotalPages() int { return models.TotalPagesFor(len(e.tasks), PageSize) }

// HasPrev reports whether there is a page before the current one.
func (e *Editor) HasPrev() bool { return e.page > 1 }

// HasNext reports whether tasks exist past the current page.
func (e *Editor) HasNext() bool { return e.LastIndex() < len(e.tasks) }

// Submit commits the draft.
//
// A blank draft sets [EmptyTaskMessage] and returns [shared.ErrEmptyTask] without touching the list.
// While editing, the task under edit is replaced and the page is kept.
// Otherwise the task is appended, and the editor moves forward one page when the current page has overflowed.
func (e *Editor) Submit() error {
	task, err := models.NewTask(e.draft)
	if err != nil {
		e.errMsg = EmptyTaskMessage
		e.logger.Warn("rejected submit", "mode", e.Mode(), "error", err)
		return err
	}

	if e.session != nil {
		idx := e.session.Index
		e.tasks[idx] = task
		e.session = nil
		e.logger.Debug("updated task", "index", idx, "page", e.page)
	} else {
		e.tasks = append(e.tasks, task)
		if len(e.tasks) > e.LastIndex() {
			e.page++
		}
		e.logger.Debug("added task", "index", len(e.tasks)-1, "page", e.page)
	}

	e.draft = ""
	e.errMsg = ""
	return nil
}

// Add sets the draft to s and submits it.
func (e *Editor) Add(s string) error {
	e.SetDraft(s)
	return e.Submit()
}

// BeginEdit loads task i into the draft and starts an edit session for it.
func (e *Editor) BeginEdit(i int) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}

	e.draft = e.tasks[i].String()
	e.session = &EditSession{Index: i}
	e.logger.Debug("editing task", "index", i)
	return nil
}

// CancelEdit ends the edit session, if any, and clears the draft and error.
func (e *Editor) CancelEdit() {
	if e.session == nil {
		return
	}
	e.logger.Debug("cancelled edit", "index", e.session.Index)
	e.session = nil
	e.draft = ""
	e.errMsg = ""
}

// DeleteAt removes task i. When that empties the current page the editor moves back one page.
//
// An edit session on task i ends; a session on a later task follows it down by one.
func (e *Editor) DeleteAt(i int) error {
	if err := e.checkIndex(i); err != nil {
		return err
	}

	e.tasks = slices.Delete(e.tasks, i, i+1)

	if e.session != nil {
		switch {
		case e.session.Index == i:
			e.session = nil
		case e.session.Index > i:
			e.session.Index--
		}
	}

	if len(e.tasks) <= e.FirstIndex() && e.page > 1 {
		e.page--
	}

	e.logger.Debug("deleted task", "index", i, "page", e.page)
	return nil
}

// GoToPage sets the current page. Pages past the end are allowed and render empty; n below 1 becomes 1.
func (e *Editor) GoToPage(n int) {
	if n < 1 {
		n = 1
	}
	e.page = n
	e.logger.Debug("changed page", "page", n)
}

// PrevPage moves back one page when [Editor.HasPrev] and reports whether it moved.
func (e *Editor) PrevPage() bool {
	if !e.HasPrev() {
		return false
	}
	e.GoToPage(e.page - 1)
	return true
}

// NextPage moves forward one page when [Editor.HasNext] and reports whether it moved.
func (e *Editor) NextPage() bool {
	if !e.HasNext() {
		return false
	}
	e.GoToPage(e.page + 1)
	return true
}

// Visible returns a copy of the tasks on the current page.
func (e *Editor) Visible() []models.Task {
	first, last := e.bounds()
	return slices.Clone(e.tasks[first:last])
}

// Snapshot derives the render description of the current state.
func (e *Editor) Snapshot() View {
	first, last := e.bounds()
	rows := make([]models.Row, 0, last-first)
	for i := first; i < last; i++ {
		rows = append(rows, models.Row{Ordinal: i + 1, Index: i, Text: e.tasks[i]})
	}

	mode := e.Mode()
	return View{
		Mode:  mode,
		Label: mode.SubmitLabel(),
		Draft: e.draft,
		Error: e.errMsg,
		Page: models.Page{
			Number:     e.page,
			Size:       PageSize,
			TotalTasks: len(e.tasks),
			TotalPages: e.TotalPages(),
			Rows:       rows,
		},
	}
}

// bounds clips the current page's slot range to the list.
func (e *Editor) bounds() (int, int) {
	first := min(e.FirstIndex(), len(e.tasks))
	last := min(e.LastIndex(), len(e.tasks))
	return first, last
}

func (e *Editor) checkIndex(i int) error {
	if i < 0 || i >= len(e.tasks) {
		return fmt.Errorf("%w: %d (have %d tasks)", shared.ErrIndexOutOfRange, i, len(e.tasks))
	}
	return nil
}
