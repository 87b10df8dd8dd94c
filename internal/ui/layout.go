package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"artistdesk/internal/theme"
)

// Layout tracks the terminal dimensions and renders the frame shared by
// every screen: a header with the data-freshness badge, the content
// area, and a status bar of key hints. Dashboard screens additionally
// get a tab strip.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout for the given terminal size. The header
// and status bar each take one line.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the lines left for the content area between the
// header and the status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader renders the top bar: the title on the left, the
// freshness badge (live, cached, offline, loading) on the right, and
// header-colored padding between them.
func (l Layout) RenderHeader(title, freshness string) string {
	left := theme.HeaderStyle.Render(title)
	right := theme.HeaderStyle.Align(lipgloss.Right).Render(freshness)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		l.pad(theme.HeaderStyle, lipgloss.Width(left)+lipgloss.Width(right)),
		right,
	)
}

// RenderStatusBar renders the bottom bar of key hints, padded to the
// full terminal width.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		rendered,
		l.pad(theme.StatusBarStyle, lipgloss.Width(rendered)),
	)
}

// RenderTabStrip renders the dashboard tab labels with the active one
// highlighted in the header color.
func (l Layout) RenderTabStrip(labels []string, active int) string {
	var b strings.Builder
	for i, label := range labels {
		if i == active {
			b.WriteString(theme.HeaderStyle.Render(label))
		} else {
			b.WriteString(theme.HelpStyle.Render(" " + label + " "))
		}
		b.WriteString(" ")
	}
	return b.String()
}

// RenderWithFrame stacks the header, content area, and status bar into
// the final screen.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}

// pad fills the rest of a bar's width with its background color.
func (l Layout) pad(style lipgloss.Style, used int) string {
	gap := l.Width - used
	if gap < 0 {
		gap = 0
	}
	return style.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(style.GetBackground()).
			Render(""),
	)
}
