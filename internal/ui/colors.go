package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/todo/internal/shared"
)

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

// NewThemePalette builds a [Palette] from configured colors, falling back to the defaults for blank entries.
func NewThemePalette(theme shared.ThemeConfig) *Palette {
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return NewPalette(
		pick(theme.Title, "#7D56F4"),
		pick(theme.OK, "#04B575"),
		pick(theme.Error, "#FF0000"),
		pick(theme.Warn, "#FFA500"),
		pick(theme.Help, "#626262"),
	)
}

// control renders a pagination control as active or disabled.
func (p *Palette) control(s string, enabled bool) string {
	if enabled {
		return p.ok.Render(s)
	}
	return p.help.Render(s)
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
