package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistdesk/internal/model"
)

func ptr[T any](v T) *T { return &v }

func row(id, platform int, date string, value float64) model.MetricRow {
	return model.MetricRow{
		ArtistMetricID: id,
		MetricTypeID:   model.MetricTypeFollowers,
		PlatformID:     ptr(platform),
		MetricDate:     date,
		Value:          ptr(value),
	}
}

func TestLatestPerPlatform(t *testing.T) {
	rows := []model.MetricRow{
		row(1, 1, "2025-01-01", 100),
		row(2, 1, "2025-02-01", 150),
		row(3, 2, "2025-01-15", 50),
		row(4, 2, "2024-12-01", 999),
	}

	latest := LatestPerPlatform(rows)
	require.Len(t, latest, 2)
	assert.Equal(t, 150.0, latest[1].Amount())
	assert.Equal(t, 50.0, latest[2].Amount())
}

func TestLatestPerPlatformSameDateLastWins(t *testing.T) {
	rows := []model.MetricRow{
		row(1, 1, "2025-03-01", 100),
		row(2, 1, "2025-03-01", 120),
	}

	latest := LatestPerPlatform(rows)
	assert.Equal(t, 120.0, latest[1].Amount())
}

func TestLatestPerPlatformNilPlatform(t *testing.T) {
	r := model.MetricRow{ArtistMetricID: 1, MetricDate: "2025-01-01", Value: ptr(10.0)}
	latest := LatestPerPlatform([]model.MetricRow{r})
	assert.Equal(t, 10.0, latest[0].Amount())
}

func TestTotal(t *testing.T) {
	latest := LatestPerPlatform([]model.MetricRow{
		row(1, 1, "2025-02-01", 150),
		row(2, 2, "2025-02-01", 50),
	})
	assert.Equal(t, 200.0, Total(latest))
	assert.Equal(t, 0.0, Total(nil))
}

func TestTotalExcept(t *testing.T) {
	latest := LatestPerPlatform([]model.MetricRow{
		row(1, 1, "2025-02-01", 150),
		row(2, 2, "2025-02-01", 50),
		row(3, 3, "2025-02-01", 25),
	})
	assert.Equal(t, 75.0, TotalExcept(latest, 1))
	assert.Equal(t, 25.0, TotalExcept(latest, 1, 2))
}

func TestDailyTotals(t *testing.T) {
	rows := []model.MetricRow{
		row(1, 1, "2025-01-02", 100),
		row(2, 2, "2025-01-02", 40),
		row(3, 1, "2025-01-01", 90),
		row(4, 1, "", 500),
	}

	points := DailyTotals(rows)
	require.Len(t, points, 2)
	assert.Equal(t, TotalPoint{Date: "2025-01-01", Value: 90}, points[0])
	assert.Equal(t, TotalPoint{Date: "2025-01-02", Value: 140}, points[1])
}

func TestFilterByMetricType(t *testing.T) {
	rows := []model.MetricRow{
		{ArtistMetricID: 1, MetricTypeID: 1},
		{ArtistMetricID: 2, MetricTypeID: 2},
		{ArtistMetricID: 3, MetricTypeID: 1},
	}

	got := FilterByMetricType(rows, 1)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ArtistMetricID)
	assert.Equal(t, 3, got[1].ArtistMetricID)
}

func TestFilterByCodes(t *testing.T) {
	rows := []model.MetricRow{
		{ArtistMetricID: 1, MetricCode: "likes"},
		{ArtistMetricID: 2, MetricCode: "followers"},
		{ArtistMetricID: 3, MetricCode: "shares"},
		{ArtistMetricID: 4, MetricCode: "comments"},
	}

	got := FilterByCodes(rows, "likes", "comments", "shares")
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ArtistMetricID)
	assert.Equal(t, 3, got[1].ArtistMetricID)
	assert.Equal(t, 4, got[2].ArtistMetricID)

	assert.Empty(t, FilterByCodes(rows))
}

func TestMergeSeries(t *testing.T) {
	series := map[string][]model.MetricPoint{
		"likes": {
			{Date: "2025-03-01", Value: ptr(10.0)},
			{Date: "2025-03-02", Value: ptr(20.0)},
		},
		"comments": {
			{Date: "2025-03-01", Value: ptr(5.0)},
			{Date: "bad date", Value: ptr(99.0)},
		},
		"shares": {
			{Date: "2025-03-02", Value: nil},
		},
	}

	points := MergeSeries(series, "likes", "comments", "shares")
	require.Len(t, points, 2)
	assert.Equal(t, TotalPoint{Date: "2025-03-01", Value: 15}, points[0])
	assert.Equal(t, TotalPoint{Date: "2025-03-02", Value: 20}, points[1])

	assert.Nil(t, MergeSeries(series, "streams"))
	assert.Nil(t, MergeSeries(nil, "likes"))
}

func TestSortHistory(t *testing.T) {
	rows := []model.MetricRow{
		row(1, 1, "2025-01-01", 10),
		row(3, 1, "2025-01-02", 30),
		row(2, 1, "2025-01-02", 20),
	}

	got := SortHistory(rows)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].ArtistMetricID)
	assert.Equal(t, 2, got[1].ArtistMetricID)
	assert.Equal(t, 1, got[2].ArtistMetricID)
}
