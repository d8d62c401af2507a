// Package ui implements the interactive to-do list using bubbletea's Elm architecture.
//
// A [Model] wraps a [tasks.Editor] and binds it to three bubbles widgets:
//  1. a textinput that composes new tasks and edits existing ones
//  2. a table showing the current page with No., Task, and Actions columns
//  3. a spinner shown during the one-shot load delay before the list appears
//
// Key presses are routed by [Focus]: the input owns typing, enter, and esc, while the table owns
// navigation, e/d for edit and delete, and ←/→ for paging. After every editor operation the widgets
// are re-synced from [tasks.Editor.Snapshot], so the view never holds state the editor does not.
package ui
