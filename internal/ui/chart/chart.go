package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"artistdesk/internal/theme"
	"artistdesk/internal/view"
)

// blocks are the partial-height bar glyphs, lowest to tallest.
var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Chart renders a growth series as a unicode bar sparkline with a
// labeled axis. A Chart holds its rendered state; when the underlying
// series changes, callers must Release the old chart and build a new
// one rather than mutate in place.
type Chart struct {
	title    string
	points   []view.TotalPoint
	width    int
	height   int
	released bool
}

// New builds a chart over the given points. Points are assumed to be in
// ascending date order.
func New(title string, points []view.TotalPoint, width, height int) *Chart {
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	return &Chart{
		title:  title,
		points: points,
		width:  width,
		height: height,
	}
}

// Release marks the chart as dead. A released chart renders nothing;
// this catches stale handles kept across a data reload.
func (c *Chart) Release() {
	c.released = true
	c.points = nil
}

// Released reports whether Release has been called.
func (c *Chart) Released() bool {
	return c.released
}

// View renders the chart.
func (c *Chart) View() string {
	if c.released {
		return ""
	}
	if len(c.points) == 0 {
		return theme.HelpStyle.Render(c.title + ": no data")
	}

	points := c.points
	if len(points) > c.width {
		points = points[len(points)-c.width:]
	}

	lo, hi := bounds(points)
	bars := make([]string, len(points))
	for i, p := range points {
		bars[i] = string(glyph(p.Value, lo, hi))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(c.title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorGreen).Render(strings.Join(bars, "")))
	b.WriteString("\n")
	b.WriteString(c.axis(points, lo, hi))
	return b.String()
}

// axis renders the range line under the bars.
func (c *Chart) axis(points []view.TotalPoint, lo, hi float64) string {
	left := view.ShortDate(points[0].Date)
	right := view.ShortDate(points[len(points)-1].Date)
	span := view.FormatCount(lo) + ".." + view.FormatCount(hi)

	gap := len(points) - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right + "  " + span
	return theme.HelpStyle.Render(line)
}

// Delta returns the change between the first and last point, for the
// trend indicator next to the chart.
func (c *Chart) Delta() float64 {
	if c.released || len(c.points) < 2 {
		return 0
	}
	return c.points[len(c.points)-1].Value - c.points[0].Value
}

func bounds(points []view.TotalPoint) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, p := range points {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi
}

func glyph(v, lo, hi float64) rune {
	if hi <= lo {
		return blocks[len(blocks)/2]
	}
	idx := int((v - lo) / (hi - lo) * float64(len(blocks)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(blocks) {
		idx = len(blocks) - 1
	}
	return blocks[idx]
}
