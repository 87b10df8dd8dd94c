package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestContentAreaExcludesChrome(t *testing.T) {
	l := NewLayout(80, 24)
	assert.Equal(t, 80, l.ContentWidth())
	assert.Equal(t, 22, l.ContentHeight())
}

func TestBarsFillTerminalWidth(t *testing.T) {
	l := NewLayout(60, 20)
	assert.Equal(t, 60, lipgloss.Width(l.RenderHeader("Artist Desk", "live")))
	assert.Equal(t, 60, lipgloss.Width(l.RenderStatusBar("q quit | ? help")))
}

func TestRenderTabStripShowsEveryLabel(t *testing.T) {
	l := NewLayout(80, 24)
	labels := []string{"1 Profile", "2 Activities", "3 Followers", "4 Links"}

	strip := l.RenderTabStrip(labels, 2)
	for _, label := range labels {
		assert.Contains(t, strip, label)
	}
}
