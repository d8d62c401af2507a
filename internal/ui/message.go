package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgLoaded MsgKind = iota
)

// loadedMsg is the constructor for [MsgLoaded]
func loadedMsg() Msg {
	return Msg{kind: MsgLoaded}
}

// waitForLoad delivers [MsgLoaded] once, after d.
func waitForLoad(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return loadedMsg()
	})
}
