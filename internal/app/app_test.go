package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistdesk/internal/api"
	"artistdesk/internal/model"
	"artistdesk/internal/ui/artistlist"
	"artistdesk/internal/ui/links"
	"artistdesk/internal/ui/timeline"
)

// newDashboardPortal serves the endpoints hit when an artist dashboard
// opens. The consolidated payload deliberately mirrors the real
// serializer, which keys source ids as "id" and omits the artist and
// type ids; only the per-entity lists carry those.
func newDashboardPortal(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/artists/7/full_dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"profile": {"id": 7, "stageName": "Nova"},
			"activities": [{"id": 12, "title": "Album launch", "type": "Release", "date": "2025-04-01"}],
			"sources": [{"id": 3, "sourceName": "Instagram", "url": "https://instagram.com/nova"}],
			"metrics": {"summary": {"followers": 1200}, "series": {}}
		}`))
	})
	mux.HandleFunc("GET /api/metrics/rows/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("GET /api/activities/artist/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": 12,
			"artistId": 7,
			"activityTypeId": 4,
			"date": "2025-04-01",
			"title": "Album launch",
			"type": "Release"
		}]`))
	})
	mux.HandleFunc("GET /api/sources/7/sources", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"artistSourceId": 3,
			"artistId": 7,
			"sourceTypeId": 2,
			"sourceName": "Instagram",
			"url": "https://instagram.com/nova"
		}]`))
	})
	mux.HandleFunc("GET /api/metrics/summary/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"followers": 900}`))
	})
	mux.HandleFunc("GET /api/metrics/timeseries/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"date": "2025-04-01", "value": 900}]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// runCmd executes a command tree and returns the collected messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func openTestDashboard(t *testing.T) Model {
	t.Helper()
	srv := newDashboardPortal(t)
	client := api.NewClient(srv.URL, "", 0, nil)
	m := New(client, nil, nil, &model.AppConfig{}, "", nil)

	next, cmd := m.Update(artistlist.SelectedArtistMsg{ArtistID: 7})
	m = next.(Model)
	for _, msg := range runCmd(cmd) {
		next, _ = m.Update(msg)
		m = next.(Model)
	}
	return m
}

func pressKey(t *testing.T, m Model, key string) (Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	m = next.(Model)
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	return m, msgs[0]
}

func TestActivityEditCarriesRecordIdentifiers(t *testing.T) {
	m := openTestDashboard(t)
	m.tab = TabTimeline

	_, msg := pressKey(t, m, "e")
	edit, ok := msg.(timeline.EditActivityMsg)
	require.True(t, ok)
	assert.Equal(t, 12, edit.Activity.ID)
	assert.Equal(t, 7, edit.Activity.ArtistID)
	assert.Equal(t, 4, edit.Activity.ActivityTypeID)
}

func TestLinkEditCarriesRecordIdentifiers(t *testing.T) {
	m := openTestDashboard(t)
	m.tab = TabLinks

	_, msg := pressKey(t, m, "e")
	edit, ok := msg.(links.EditLinkMsg)
	require.True(t, ok)
	assert.Equal(t, 3, edit.Link.ArtistSourceID)
	assert.Equal(t, 7, edit.Link.ArtistID)
	assert.Equal(t, 2, edit.Link.SourceTypeID)
}

func TestMetricsReloadRefetchesSummaryAndSeries(t *testing.T) {
	m := openTestDashboard(t)
	m.tab = TabMetrics
	assert.Equal(t, 1200.0, m.summary["followers"])

	for _, msg := range runCmd(m.reloadCurrent()) {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	assert.Equal(t, 900.0, m.summary["followers"])
}
