package refresh_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistdesk/internal/api"
	"artistdesk/internal/model"
	"artistdesk/internal/refresh"
	"artistdesk/tests/testutil"
)

func newPortal(t *testing.T, failing *atomic.Bool) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/artists", func(w http.ResponseWriter, r *http.Request) {
		if failing != nil && failing.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "portal down"})
			return
		}
		json.NewEncoder(w).Encode([]model.Artist{
			{ID: 1, StageName: "Nova"},
			{ID: 2, StageName: "Echo"},
		})
	})
	mux.HandleFunc("GET /api/artists/1/full_dashboard", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.Dashboard{
			Profile: model.Artist{ID: 1, StageName: "Nova"},
			Metrics: model.DashboardMetrics{
				Summary: model.MetricSummary{"followers": 1200},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// collect runs the wait command returned by Start and forwards results.
func collect(t *testing.T, r *refresh.Refresher) <-chan refresh.ResultMsg {
	t.Helper()

	cmd := r.Start()
	require.NotNil(t, cmd)

	out := make(chan refresh.ResultMsg, 4)
	go func() {
		for {
			msg := cmd()
			if msg == nil {
				return
			}
			out <- msg.(refresh.ResultMsg)
			cmd = r.WaitForNextResult()
		}
	}()
	return out
}

func waitFor(t *testing.T, ch <-chan refresh.ResultMsg) refresh.ResultMsg {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for refresh result")
		return refresh.ResultMsg{}
	}
}

func TestTriggerRefreshesRosterAndCache(t *testing.T) {
	srv := newPortal(t, nil)
	client := api.NewClient(srv.URL, "", 5*time.Second, nil)
	c := testutil.NewTestCache(t)

	r := refresh.New(client, c, 0, nil)
	t.Cleanup(r.Stop)
	results := collect(t, r)

	r.Trigger(0)
	msg := waitFor(t, results)

	require.NoError(t, msg.Error)
	require.Len(t, msg.Roster, 2)
	assert.Equal(t, "Nova", msg.Roster[0].StageName)

	cached, _, err := c.LoadRoster(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 2)
}

func TestTriggerWithArtistFetchesDashboard(t *testing.T) {
	srv := newPortal(t, nil)
	client := api.NewClient(srv.URL, "", 5*time.Second, nil)
	c := testutil.NewTestCache(t)

	r := refresh.New(client, c, 0, nil)
	t.Cleanup(r.Stop)
	results := collect(t, r)

	r.Trigger(1)
	msg := waitFor(t, results)

	require.NoError(t, msg.Error)
	assert.Equal(t, 1, msg.ArtistID)
	assert.Equal(t, "Nova", msg.Dashboard.Profile.StageName)
	assert.Equal(t, 1200.0, msg.Dashboard.Metrics.Summary["followers"])

	cached, _, err := c.LoadDashboard(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Nova", cached.Profile.StageName)

	assert.Equal(t, refresh.Idle, r.GetStatus().State)
}

func TestFailedRefreshReportsError(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)
	srv := newPortal(t, &failing)
	client := api.NewClient(srv.URL, "", 5*time.Second, nil)

	r := refresh.New(client, nil, 0, nil)
	t.Cleanup(r.Stop)
	results := collect(t, r)

	r.Trigger(0)
	msg := waitFor(t, results)

	require.Error(t, msg.Error)
	assert.Empty(t, msg.Roster)
	assert.Equal(t, refresh.Failed, r.GetStatus().State)

	// Recovery on the next trigger.
	failing.Store(false)
	r.Trigger(0)
	msg = waitFor(t, results)
	require.NoError(t, msg.Error)
	assert.Len(t, msg.Roster, 2)
}
