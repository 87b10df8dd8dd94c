package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"artistdesk/internal/cache"
	"artistdesk/internal/model"
	"artistdesk/internal/refresh"
)

// fetchTimeout bounds every foreground API call.
const fetchTimeout = 15 * time.Second

// cachedRosterMsg carries the snapshot loaded at startup.
type cachedRosterMsg struct {
	artists []model.Artist
}

// rosterLoadedMsg carries the live artist list, or the fetch error.
type rosterLoadedMsg struct {
	artists []model.Artist
	err     error
}

// allArtistsLoadedMsg carries the management list including inactive
// artists.
type allArtistsLoadedMsg struct {
	artists []model.Artist
	err     error
}

// dashboardLoadedMsg carries one artist's consolidated payload.
type dashboardLoadedMsg struct {
	artistID  int
	dash      model.Dashboard
	fromCache bool
	err       error
}

// metricRowsLoadedMsg carries the raw observation table, fetched
// alongside the dashboard.
type metricRowsLoadedMsg struct {
	artistID int
	rows     []model.MetricRow
	err      error
}

// activitiesLoadedMsg carries the timeline entries from the per-artist
// list endpoint. Unlike the consolidated payload, that list includes
// the artist and type ids the edit form round-trips.
type activitiesLoadedMsg struct {
	artistID int
	items    []model.Activity
	err      error
}

// linksLoadedMsg carries the social links from the per-artist list
// endpoint, which includes the record ids the link form needs.
type linksLoadedMsg struct {
	artistID int
	links    []model.SocialLink
	err      error
}

// metricSnapshotMsg carries the summary values and chart series
// refetched after a metrics mutation.
type metricSnapshotMsg struct {
	artistID int
	summary  model.MetricSummary
	series   map[string][]model.MetricPoint
	err      error
}

// activityTypesMsg, sourceTypesMsg, and metricReferenceMsg deliver the
// reference lists. Each one fails independently; a missing list only
// degrades its own selector.
type activityTypesMsg struct {
	types []model.ActivityType
	err   error
}

type sourceTypesMsg struct {
	types []model.SourceType
	err   error
}

type metricReferenceMsg struct {
	types     []model.MetricType
	platforms []model.Platform
	err       error
}

// scrapeDoneMsg carries the outcome of a server-side follower scrape.
type scrapeDoneMsg struct {
	artistID int
	result   model.ScrapeResult
	err      error
}

func (m Model) loadCachedRoster() tea.Cmd {
	c := m.cache
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		artists, _, err := c.LoadRoster(ctx)
		if err != nil {
			return nil
		}
		return cachedRosterMsg{artists: artists}
	}
}

func (m Model) fetchRoster() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		artists, err := client.Artists(ctx)
		return rosterLoadedMsg{artists: artists, err: err}
	}
}

func (m Model) fetchAllArtists() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		artists, err := client.AllArtists(ctx)
		return allArtistsLoadedMsg{artists: artists, err: err}
	}
}

// fetchDashboard loads the consolidated payload, falling back to the
// cached snapshot when the portal is unreachable.
func (m Model) fetchDashboard(artistID int) tea.Cmd {
	client := m.client
	c := m.cache
	logger := m.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		dash, err := client.Dashboard(ctx, artistID)
		if err == nil {
			if c != nil {
				if cacheErr := c.SaveDashboard(ctx, artistID, dash); cacheErr != nil {
					logger.Warn("caching dashboard failed", zap.Error(cacheErr))
				}
			}
			return dashboardLoadedMsg{artistID: artistID, dash: dash}
		}

		if c != nil {
			cached, _, cacheErr := c.LoadDashboard(ctx, artistID)
			if cacheErr == nil {
				return dashboardLoadedMsg{
					artistID:  artistID,
					dash:      cached,
					fromCache: true,
					err:       err,
				}
			}
			if !errors.Is(cacheErr, cache.ErrMiss) {
				logger.Warn("loading cached dashboard failed", zap.Error(cacheErr))
			}
		}
		return dashboardLoadedMsg{artistID: artistID, err: err}
	}
}

func (m Model) fetchMetricRows(artistID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		rows, err := client.MetricRows(ctx, artistID)
		return metricRowsLoadedMsg{artistID: artistID, rows: rows, err: err}
	}
}

func (m Model) fetchActivities(artistID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		items, err := client.Activities(ctx, artistID)
		return activitiesLoadedMsg{artistID: artistID, items: items, err: err}
	}
}

func (m Model) fetchSources(artistID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		links, err := client.Sources(ctx, artistID)
		return linksLoadedMsg{artistID: artistID, links: links, err: err}
	}
}

// chartCodes are the metric series charted on the followers tab.
var chartCodes = []string{"followers", "likes", "comments", "shares"}

// fetchMetricSnapshot refetches the summary values and the charted
// series without pulling the whole consolidated payload.
func (m Model) fetchMetricSnapshot(artistID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		summary, err := client.MetricSummary(ctx, artistID)
		if err != nil {
			return metricSnapshotMsg{artistID: artistID, err: err}
		}
		series := make(map[string][]model.MetricPoint, len(chartCodes))
		for _, code := range chartCodes {
			points, err := client.MetricSeries(ctx, artistID, code)
			if err != nil {
				return metricSnapshotMsg{artistID: artistID, err: err}
			}
			series[code] = points
		}
		return metricSnapshotMsg{artistID: artistID, summary: summary, series: series}
	}
}

func (m Model) fetchActivityTypes() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		types, err := client.ActivityTypes(ctx)
		return activityTypesMsg{types: types, err: err}
	}
}

func (m Model) fetchSourceTypes() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		types, err := client.SourceTypes(ctx)
		return sourceTypesMsg{types: types, err: err}
	}
}

func (m Model) fetchMetricReference() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		types, err := client.MetricTypes(ctx)
		if err != nil {
			return metricReferenceMsg{err: err}
		}
		platforms, err := client.Platforms(ctx)
		return metricReferenceMsg{types: types, platforms: platforms, err: err}
	}
}

// runScrape triggers the server-side follower scrape. Scrapes hit the
// platforms live, so the deadline is generous.
func (m Model) runScrape(artistID int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		result, err := client.Scrape(ctx, artistID)
		return scrapeDoneMsg{artistID: artistID, result: result, err: err}
	}
}

// reloadCurrent re-fetches whatever the active view shows. On the
// dashboard, tabs backed by a per-entity list refetch only that list.
func (m Model) reloadCurrent() tea.Cmd {
	switch m.currentView {
	case ViewManage:
		return m.fetchAllArtists()
	case ViewDashboard:
		id := m.selectedArtist.ID
		switch m.tab {
		case TabTimeline:
			return m.fetchActivities(id)
		case TabMetrics:
			return tea.Batch(m.fetchMetricSnapshot(id), m.fetchMetricRows(id))
		case TabLinks:
			return m.fetchSources(id)
		default:
			return tea.Batch(
				m.fetchDashboard(id),
				m.fetchMetricRows(id),
				m.fetchActivities(id),
				m.fetchSources(id),
			)
		}
	default:
		return m.fetchRoster()
	}
}

// routeDataMsg applies loader results to the model. The bool result
// reports whether the message was consumed.
func (m Model) routeDataMsg(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case cachedRosterMsg:
		// A live roster may already be on screen; only fill the gap.
		if len(m.roster) == 0 {
			m.roster = msg.artists
			m.fromCache = true
			return m, m.artistList.SetArtists(msg.artists), true
		}
		return m, nil, true

	case rosterLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("roster fetch failed", zap.Error(msg.err))
			m.statusErr = msg.err.Error()
			return m, nil, true
		}
		m.roster = msg.artists
		m.fromCache = false
		m.statusErr = ""
		cmd := m.artistList.SetArtists(msg.artists)
		if m.cache != nil {
			roster := msg.artists
			c := m.cache
			saveCmd := func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
				defer cancel()
				_ = c.SaveRoster(ctx, roster)
				return nil
			}
			return m, tea.Batch(cmd, saveCmd), true
		}
		return m, cmd, true

	case allArtistsLoadedMsg:
		if msg.err != nil {
			m.statusErr = msg.err.Error()
			return m, nil, true
		}
		m.statusErr = ""
		m.manageGrid.SetArtists(msg.artists)
		return m, nil, true

	case dashboardLoadedMsg:
		if msg.artistID != m.selectedArtist.ID {
			// Stale result for a previously selected artist.
			return m, nil, true
		}
		m.loading = false
		if msg.err != nil && !msg.fromCache {
			m.statusErr = msg.err.Error()
			return m, nil, true
		}
		m.fromCache = msg.fromCache
		if msg.fromCache {
			m.statusErr = "portal unreachable, showing cached data"
		} else {
			m.statusErr = ""
		}
		m.selectedArtist = msg.dash.Profile
		m.summary = msg.dash.Metrics.Summary
		m.profile.SetData(msg.dash.Profile, msg.dash.Photos)
		if msg.fromCache {
			// The consolidated payload omits the record and type ids
			// the edit forms round-trip; live timeline and link data
			// comes from the per-entity list endpoints instead.
			m.timeline.SetActivities(msg.dash.Activities)
			m.links.SetLinks(msg.dash.Sources)
		}
		m.metrics.SetSeries(msg.dash.Metrics.Series)
		m.metrics.SetData(m.summary, nil)
		return m, nil, true

	case metricRowsLoadedMsg:
		if msg.artistID != m.selectedArtist.ID {
			return m, nil, true
		}
		if msg.err != nil {
			m.logger.Warn("metric rows fetch failed", zap.Error(msg.err))
			return m, nil, true
		}
		m.metrics.SetData(m.summary, msg.rows)
		return m, nil, true

	case activitiesLoadedMsg:
		if msg.artistID != m.selectedArtist.ID {
			return m, nil, true
		}
		if msg.err != nil {
			m.logger.Warn("activities fetch failed", zap.Error(msg.err))
			return m, nil, true
		}
		m.timeline.SetActivities(msg.items)
		return m, nil, true

	case linksLoadedMsg:
		if msg.artistID != m.selectedArtist.ID {
			return m, nil, true
		}
		if msg.err != nil {
			m.logger.Warn("links fetch failed", zap.Error(msg.err))
			return m, nil, true
		}
		m.links.SetLinks(msg.links)
		return m, nil, true

	case metricSnapshotMsg:
		if msg.artistID != m.selectedArtist.ID {
			return m, nil, true
		}
		if msg.err != nil {
			m.logger.Warn("metric snapshot fetch failed", zap.Error(msg.err))
			return m, nil, true
		}
		m.summary = msg.summary
		m.metrics.SetSummary(msg.summary)
		m.metrics.SetSeries(msg.series)
		return m, nil, true

	case activityTypesMsg:
		if msg.err != nil {
			m.logger.Warn("activity types fetch failed", zap.Error(msg.err))
			return m, nil, true
		}
		m.activityForm.SetTypes(msg.types)
		return m, nil, true

	case sourceTypesMsg:
		if msg.err != nil {
			m.logger.Warn("source types fetch failed", zap.Error(msg.err))
			return m, nil, true
		}
		m.linkForm.SetTypes(msg.types)
		return m, nil, true

	case metricReferenceMsg:
		if msg.err != nil {
			m.logger.Warn("metric reference fetch failed", zap.Error(msg.err))
			return m, nil, true
		}
		m.metricForm.SetReference(msg.types, msg.platforms)
		m.metrics.SetReference(msg.platforms, msg.types)
		return m, nil, true

	case scrapeDoneMsg:
		if msg.artistID != m.selectedArtist.ID {
			return m, nil, true
		}
		if msg.err != nil {
			m.metrics.SetScraping(false)
			m.statusErr = msg.err.Error()
			return m, nil, true
		}
		m.metrics.SetScrapeResult(msg.result)
		return m, m.reloadCurrent(), true

	case refresh.ResultMsg:
		var cmds []tea.Cmd
		if msg.Error == nil {
			if len(msg.Roster) > 0 {
				m.roster = msg.Roster
				cmds = append(cmds, m.artistList.SetArtists(msg.Roster))
			}
			if msg.ArtistID != 0 && msg.ArtistID == m.selectedArtist.ID {
				m.summary = msg.Dashboard.Metrics.Summary
				m.profile.SetData(msg.Dashboard.Profile, msg.Dashboard.Photos)
				m.metrics.SetSeries(msg.Dashboard.Metrics.Series)
				cmds = append(cmds,
					m.fetchMetricRows(msg.ArtistID),
					m.fetchActivities(msg.ArtistID),
					m.fetchSources(msg.ArtistID),
				)
			}
			m.fromCache = false
			m.statusErr = ""
		}
		if m.refresher != nil {
			cmds = append(cmds, m.refresher.WaitForNextResult())
		}
		return m, tea.Batch(cmds...), true
	}

	return m, nil, false
}
