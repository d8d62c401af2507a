// Package models defines the value types shared by the list editor, the TUI, and the formatters.
//
//   - [Task] : a single to-do entry; plain text with no identity beyond its position
//   - [Row] : one rendered table row (ordinal, list index, text)
//   - [Page] : a fixed-size window over the task list with the derived pagination values
//
// These are plain values; nothing here owns state or talks to the outside world.
package models
