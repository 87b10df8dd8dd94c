package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"artistdesk/internal/view"
)

func points(values ...float64) []view.TotalPoint {
	out := make([]view.TotalPoint, len(values))
	for i, v := range values {
		out[i] = view.TotalPoint{Date: "2025-01-01", Value: v}
	}
	return out
}

func TestViewRendersBars(t *testing.T) {
	c := New("Followers", points(10, 20, 30), 40, 5)
	out := c.View()
	assert.Contains(t, out, "Followers")
	assert.Contains(t, out, "▁")
	assert.Contains(t, out, "█")
}

func TestViewEmptySeries(t *testing.T) {
	c := New("Followers", nil, 40, 5)
	assert.Contains(t, c.View(), "no data")
}

func TestFlatSeriesDoesNotDivideByZero(t *testing.T) {
	c := New("Followers", points(50, 50, 50), 40, 5)
	out := c.View()
	assert.NotEmpty(t, out)
	assert.Equal(t, 0.0, c.Delta())
}

func TestReleasedChartRendersNothing(t *testing.T) {
	c := New("Followers", points(1, 2), 40, 5)
	c.Release()
	assert.True(t, c.Released())
	assert.Empty(t, c.View())
	assert.Equal(t, 0.0, c.Delta())
}

func TestDelta(t *testing.T) {
	c := New("Followers", points(100, 120, 150), 40, 5)
	assert.Equal(t, 50.0, c.Delta())
}

func TestSeriesWiderThanChartKeepsNewestPoints(t *testing.T) {
	var vals []float64
	for i := 0; i < 100; i++ {
		vals = append(vals, float64(i))
	}
	c := New("Followers", points(vals...), 20, 5)
	out := c.View()
	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 2)
}
