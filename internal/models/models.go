// package models defines the data model for the to-do list editor
package models

import (
	"math"
	"strings"

	"github.com/desertthunder/todo/internal/shared"
)

// Task is a single to-do entry.
type Task string

// NewTask trims s and returns it as a [Task], or [shared.ErrEmptyTask] when nothing is left.
func NewTask(s string) (Task, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", shared.ErrEmptyTask
	}
	return Task(t), nil
}

func (t Task) String() string { return string(t) }

// Row is a task as it appears in the rendered table.
type Row struct {
	Ordinal int  `json:"ordinal"` // 1-based position in the whole list
	Index   int  `json:"index"`   // 0-based position in the whole list
	Text    Task `json:"text"`
}

// Page is a window of Size tasks over a list of TotalTasks tasks.
type Page struct {
	Number     int   `json:"page"`
	Size       int   `json:"page_size"`
	TotalTasks int   `json:"total_tasks"`
	TotalPages int   `json:"total_pages"`
	Rows       []Row `json:"rows"`
}

// HasPrev reports whether a Previous control should be enabled.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a Next control should be enabled.
func (p Page) HasNext() bool { return p.Number < TotalPagesFor(p.TotalTasks, p.Size) }

// FirstIndex is the list index of the first slot on the page.
func (p Page) FirstIndex() int { return PageStart(p.Number, p.Size) }

// PageStart returns the list index of the first slot on 1-based page n.
//
// Pages so far past the end that the index would overflow saturate at [math.MaxInt].
func PageStart(n, size int) int {
	if n <= 1 || size <= 0 {
		return 0
	}
	if n-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (n - 1) * size
}

// TotalPagesFor returns ceil(n/size), never less than one.
func TotalPagesFor(n, size int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}
