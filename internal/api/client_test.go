package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistdesk/internal/model"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", 5*time.Second, nil)
}

func TestArtistsDecodesList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/artists", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]model.Artist{
			{ID: 1, StageName: "Nova"},
			{ID: 2, StageName: "Echo"},
		})
	}))

	artists, err := client.Artists(context.Background())
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "Nova", artists[0].StageName)
}

func TestDashboardDecodesConsolidatedPayload(t *testing.T) {
	// The consolidated serializer keys sources by "id" and omits the
	// sourceTypeId, artistId, and activityTypeId fields entirely.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/artists/7/full_dashboard", r.URL.Path)
		w.Write([]byte(`{
			"profile": {"id": 7, "stageName": "Nova"},
			"activities": [{"id": 1, "title": "Album launch", "type": "Release", "date": "2025-04-01"}],
			"sources": [{"id": 3, "sourceName": "Instagram", "url": "https://instagram.com/nova"}],
			"metrics": {
				"summary": {"followers": 1200, "views": 300},
				"series": {"followers": [{"date": "2025-04-01", "value": 1200}]}
			}
		}`))
	}))

	dash, err := client.Dashboard(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Nova", dash.Profile.StageName)
	require.Len(t, dash.Activities, 1)
	assert.Equal(t, 1200.0, dash.Metrics.Summary["followers"])
	require.Len(t, dash.Metrics.Series["followers"], 1)
}

func TestSourcesListCarriesEditIdentifiers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sources/7/sources", r.URL.Path)
		w.Write([]byte(`[{
			"artistSourceId": 3,
			"artistId": 7,
			"sourceTypeId": 2,
			"sourceName": "Instagram",
			"url": "https://instagram.com/nova",
			"handle": "@nova",
			"isPrimary": true
		}]`))
	}))

	links, err := client.Sources(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, 3, links[0].ArtistSourceID)
	assert.Equal(t, 7, links[0].ArtistID)
	assert.Equal(t, 2, links[0].SourceTypeID)
	assert.True(t, links[0].IsPrimary)
}

func TestActivitiesListCarriesEditIdentifiers(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activities/artist/7", r.URL.Path)
		w.Write([]byte(`[{
			"id": 12,
			"artistId": 7,
			"activityTypeId": 4,
			"date": "2025-04-01",
			"title": "Album launch",
			"type": "Release"
		}]`))
	}))

	activities, err := client.Activities(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, 12, activities[0].ID)
	assert.Equal(t, 7, activities[0].ArtistID)
	assert.Equal(t, 4, activities[0].ActivityTypeID)
}

func TestCreateArtistValidatesBeforeSending(t *testing.T) {
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := client.CreateArtist(context.Background(), ArtistPayload{StageName: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage name")
	assert.False(t, called)
}

func TestCreateActivitySendsTrimmedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/activities/artist/4", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Tour kickoff", body["title"])
		_, hasLocation := body["location"]
		assert.False(t, hasLocation, "empty optional fields should be omitted")

		json.NewEncoder(w).Encode(model.Activity{ID: 9, Title: "Tour kickoff"})
	}))

	activity, err := client.CreateActivity(context.Background(), ActivityPayload{
		ArtistID:       4,
		ActivityTypeID: 2,
		Title:          "Tour kickoff",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, activity.ID)
}

func TestServerErrorEnvelopeSurfaces(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "stageName is required"}`))
	}))

	_, err := client.Artist(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stageName is required")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestNotFoundDetection(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "artist not found"}`))
	}))

	_, err := client.Artist(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRetryOnRateLimit(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode([]model.Artist{{ID: 1, StageName: "Nova"}})
	}))

	artists, err := client.Artists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, artists, 1)
}

func TestDeleteSendsNoBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/activities/artist/4/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.DeleteActivity(context.Background(), 4, 9))
}

func TestMetricSeriesEscapesCode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "followers", r.URL.Query().Get("metric"))
		w.Write([]byte(`[{"date": "2025-01-01", "value": 10}]`))
	}))

	points, err := client.MetricSeries(context.Background(), 1, "followers")
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 10.0, points[0].Amount())
}
