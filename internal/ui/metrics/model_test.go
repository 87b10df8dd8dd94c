package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistdesk/internal/keys"
	"artistdesk/internal/model"
)

func ptr[T any](v T) *T { return &v }

func followerRow(id, platform int, date string, value float64) model.MetricRow {
	return model.MetricRow{
		ArtistMetricID: id,
		MetricTypeID:   model.MetricTypeFollowers,
		PlatformID:     ptr(platform),
		MetricDate:     date,
		Value:          ptr(value),
	}
}

func newTestModel(platforms ...model.Platform) Model {
	m := New(keys.DefaultKeyMap(), 10, 80, 24)
	m.SetReference(platforms, []model.MetricType{
		{MetricTypeID: model.MetricTypeFollowers, Name: "Followers"},
	})
	return m
}

func TestSummaryCardsRenderInPlatformOrder(t *testing.T) {
	m := newTestModel(
		model.Platform{PlatformID: 1, Name: "Instagram"},
		model.Platform{PlatformID: 2, Name: "Spotify"},
		model.Platform{PlatformID: 3, Name: "YouTube"},
	)
	m.SetData(model.MetricSummary{}, []model.MetricRow{
		followerRow(1, 3, "2025-03-01", 30),
		followerRow(2, 1, "2025-03-01", 10),
		followerRow(3, 2, "2025-03-01", 20),
	})

	first := m.renderCards()
	igPos := strings.Index(first, "Instagram")
	spPos := strings.Index(first, "Spotify")
	ytPos := strings.Index(first, "YouTube")
	require.True(t, igPos >= 0 && spPos >= 0 && ytPos >= 0)
	assert.Less(t, igPos, spPos)
	assert.Less(t, spPos, ytPos)

	for i := 0; i < 20; i++ {
		assert.Equal(t, first, m.renderCards())
	}
}

func TestSummaryCardsAggregateOverflowPlatforms(t *testing.T) {
	m := newTestModel(
		model.Platform{PlatformID: 1, Name: "Instagram"},
		model.Platform{PlatformID: 2, Name: "Spotify"},
		model.Platform{PlatformID: 3, Name: "YouTube"},
		model.Platform{PlatformID: 4, Name: "TikTok"},
		model.Platform{PlatformID: 5, Name: "Facebook"},
	)
	m.SetData(model.MetricSummary{}, []model.MetricRow{
		followerRow(1, 1, "2025-03-01", 10),
		followerRow(2, 2, "2025-03-01", 20),
		followerRow(3, 3, "2025-03-01", 30),
		followerRow(4, 4, "2025-03-01", 40),
		followerRow(5, 5, "2025-03-01", 50),
	})

	cards := m.renderCards()
	assert.Contains(t, cards, "Instagram")
	assert.Contains(t, cards, "YouTube")
	assert.NotContains(t, cards, "TikTok")
	assert.NotContains(t, cards, "Facebook")
	assert.Contains(t, cards, "Other platforms")
	assert.Contains(t, cards, "90")
}

func TestGrowthTrendIndicator(t *testing.T) {
	m := newTestModel(model.Platform{PlatformID: 1, Name: "Instagram"})

	m.SetData(model.MetricSummary{}, []model.MetricRow{
		followerRow(1, 1, "2025-03-01", 100),
		followerRow(2, 1, "2025-03-02", 250),
	})
	assert.Contains(t, m.View(), "▲ +150")

	m.SetData(model.MetricSummary{}, []model.MetricRow{
		followerRow(1, 1, "2025-03-01", 250),
		followerRow(2, 1, "2025-03-02", 100),
	})
	assert.Contains(t, m.View(), "▼ -150")
}

func TestSetSeriesDrivesCharts(t *testing.T) {
	m := newTestModel(model.Platform{PlatformID: 1, Name: "Instagram"})

	m.SetSeries(map[string][]model.MetricPoint{
		"followers": {
			{Date: "2025-03-01", Value: ptr(100.0)},
			{Date: "2025-03-02", Value: ptr(400.0)},
		},
		"likes": {
			{Date: "2025-03-01", Value: ptr(10.0)},
		},
	})

	require.NotNil(t, m.growth)
	assert.Equal(t, 300.0, m.growth.Delta())
	require.NotNil(t, m.engagement)
	assert.NotContains(t, m.engagement.View(), "no data")

	// Without a server-side series the charts fall back to the raw rows.
	m.SetSeries(nil)
	m.SetData(model.MetricSummary{}, []model.MetricRow{
		followerRow(1, 1, "2025-03-01", 100),
		followerRow(2, 1, "2025-03-02", 150),
	})
	assert.Equal(t, 50.0, m.growth.Delta())
}
