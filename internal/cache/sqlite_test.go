package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistdesk/internal/model"
)

func newTestCache(t *testing.T) *SQLiteCache {
	t.Helper()
	c, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRosterRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, _, err := c.LoadRoster(ctx)
	assert.ErrorIs(t, err, ErrMiss)

	artists := []model.Artist{
		{ID: 1, StageName: "Nova"},
		{ID: 2, StageName: "Echo"},
	}
	require.NoError(t, c.SaveRoster(ctx, artists))

	got, fetchedAt, err := c.LoadRoster(ctx)
	require.NoError(t, err)
	assert.Equal(t, artists, got)
	assert.WithinDuration(t, time.Now(), fetchedAt, time.Minute)
}

func TestRosterSaveReplacesPrevious(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SaveRoster(ctx, []model.Artist{{ID: 1, StageName: "Nova"}}))
	require.NoError(t, c.SaveRoster(ctx, []model.Artist{{ID: 2, StageName: "Echo"}}))

	got, _, err := c.LoadRoster(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Echo", got[0].StageName)
}

func TestDashboardPerArtist(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	dash := model.Dashboard{
		Profile: model.Artist{ID: 7, StageName: "Nova"},
		Metrics: model.DashboardMetrics{
			Summary: model.MetricSummary{"followers": 1200},
		},
	}
	require.NoError(t, c.SaveDashboard(ctx, 7, dash))

	got, _, err := c.LoadDashboard(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Nova", got.Profile.StageName)
	assert.Equal(t, 1200.0, got.Metrics.Summary["followers"])

	_, _, err = c.LoadDashboard(ctx, 8)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestPruneRemovesStaleSnapshots(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SaveRoster(ctx, []model.Artist{{ID: 1, StageName: "Nova"}}))

	// Nothing is older than an hour yet.
	require.NoError(t, c.Prune(ctx, time.Hour))
	_, _, err := c.LoadRoster(ctx)
	require.NoError(t, err)

	// A zero max age removes everything.
	require.NoError(t, c.Prune(ctx, 0))
	_, _, err = c.LoadRoster(ctx)
	assert.ErrorIs(t, err, ErrMiss)
}
