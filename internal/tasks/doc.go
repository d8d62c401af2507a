// Package tasks implements the list editor behind the to-do TUI.
//
// # State
//
// An [Editor] owns four pieces of state:
//   - the task list, in insertion order
//   - the draft text and its inline error message
//   - an optional [EditSession] naming the task the draft will replace
//   - the current page, a window of [PageSize] tasks
//
// # Modes
//
// The draft is either [Composing] (submit appends) or [Editing] (submit replaces).
// [Editor.BeginEdit] moves to Editing; a successful [Editor.Submit], [Editor.CancelEdit],
// or deleting the task under edit moves back to Composing. A blank draft never changes the mode.
//
// # Pagination
//
// Appending past the end of the current page advances one page; deleting the last task on a page
// steps back one page. [Editor.GoToPage] accepts any page from 1 upward, including pages past the end.
//
// # Rendering
//
// [Editor.Snapshot] returns a [View] derived purely from state. The TUI and the formatters
// render from it and never read editor fields directly.
package tasks
