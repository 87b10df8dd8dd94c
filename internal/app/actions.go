package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"artistdesk/internal/api"
	"artistdesk/internal/ui/activityform"
	"artistdesk/internal/ui/artistform"
	"artistdesk/internal/ui/artistlist"
	"artistdesk/internal/ui/linkform"
	"artistdesk/internal/ui/links"
	"artistdesk/internal/ui/managegrid"
	"artistdesk/internal/ui/metricform"
	"artistdesk/internal/ui/metrics"
	"artistdesk/internal/ui/photoform"
	"artistdesk/internal/ui/profile"
	"artistdesk/internal/ui/settings"
	"artistdesk/internal/ui/timeline"
)

// saveResultMsg reports the outcome of a form submission. A failure
// reopens the form with the error inline; the entered values survive.
type saveResultMsg struct {
	view ViewState
	err  error
}

// deleteResultMsg reports the outcome of a delete.
type deleteResultMsg struct {
	err error
}

// routeViewMsg handles messages emitted by the sub-views: selections,
// form openings, submissions, and deletions.
func (m Model) routeViewMsg(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case artistlist.SelectedArtistMsg:
		return m.openDashboard(msg.ArtistID)

	// Management screen.
	case managegrid.AddArtistMsg:
		m.previousView = m.currentView
		m.currentView = ViewArtistForm
		return m, m.artistForm.StartCreate(), true

	case managegrid.EditArtistMsg:
		m.previousView = m.currentView
		m.currentView = ViewArtistForm
		return m, m.artistForm.StartEdit(msg.Artist), true

	case managegrid.DeleteArtistMsg:
		return m, m.deleteArtist(msg.ArtistID), true

	case managegrid.CloseMsg:
		m.currentView = ViewRoster
		return m, m.fetchRoster(), true

	// Profile tab.
	case profile.EditProfileMsg:
		m.previousView = m.currentView
		m.currentView = ViewArtistForm
		return m, m.artistForm.StartEdit(msg.Artist), true

	case profile.AddPhotoMsg:
		m.previousView = m.currentView
		m.currentView = ViewPhotoForm
		return m, m.photoForm.StartCreate(m.selectedArtist.ID), true

	case profile.EditPhotoMsg:
		m.previousView = m.currentView
		m.currentView = ViewPhotoForm
		return m, m.photoForm.StartEdit(m.selectedArtist.ID, msg.Photo), true

	case profile.DeletePhotoMsg:
		return m, m.deletePhoto(msg.PhotoID), true

	// Timeline tab.
	case timeline.AddActivityMsg:
		m.previousView = m.currentView
		m.currentView = ViewActivityForm
		return m, m.activityForm.StartCreate(m.selectedArtist.ID), true

	case timeline.EditActivityMsg:
		m.previousView = m.currentView
		m.currentView = ViewActivityForm
		return m, m.activityForm.StartEdit(msg.Activity), true

	case timeline.DeleteActivityMsg:
		return m, m.deleteActivity(msg.ActivityID), true

	// Metrics tab.
	case metrics.AddRowMsg:
		m.previousView = m.currentView
		m.currentView = ViewMetricForm
		return m, m.metricForm.StartCreate(m.selectedArtist.ID), true

	case metrics.EditRowMsg:
		m.previousView = m.currentView
		m.currentView = ViewMetricForm
		return m, m.metricForm.StartEdit(m.selectedArtist.ID, msg.Row), true

	case metrics.DeleteRowMsg:
		return m, m.deleteMetricRow(msg.MetricID), true

	case metrics.ScrapeMsg:
		m.metrics.SetScraping(true)
		return m, m.runScrape(m.selectedArtist.ID), true

	// Links tab.
	case links.AddLinkMsg:
		m.previousView = m.currentView
		m.currentView = ViewLinkForm
		return m, m.linkForm.StartCreate(m.selectedArtist.ID), true

	case links.EditLinkMsg:
		m.previousView = m.currentView
		m.currentView = ViewLinkForm
		return m, m.linkForm.StartEdit(msg.Link), true

	case links.DeleteLinkMsg:
		return m, m.deleteLink(msg.SourceID), true

	// Form submissions.
	case artistform.SubmitMsg:
		return m, m.saveArtist(msg.EditID, msg.Payload), true
	case activityform.SubmitMsg:
		return m, m.saveActivity(msg.EditID, msg.Payload), true
	case metricform.SubmitMsg:
		return m, m.saveMetricRow(msg.EditID, msg.Payload), true
	case linkform.SubmitMsg:
		return m, m.saveLink(msg.EditID, msg.Payload), true
	case photoform.SubmitMsg:
		return m, m.savePhoto(msg.EditID, msg.Payload), true

	// Form cancellations.
	case artistform.CancelMsg,
		activityform.CancelMsg,
		metricform.CancelMsg,
		linkform.CancelMsg,
		photoform.CancelMsg:
		m.currentView = m.previousView
		return m, nil, true

	case settings.SavedMsg:
		m.logger.Info("settings saved",
			zap.String("baseUrl", msg.Config.Portal.BaseURL))
		return m, nil, true

	case settings.DoneMsg:
		m.currentView = m.previousView
		return m, nil, true

	case saveResultMsg:
		if msg.err != nil {
			m.logger.Warn("save failed", zap.Error(msg.err))
			return m.reopenForm(msg.view, msg.err)
		}
		m.currentView = m.previousView
		return m, m.reloadCurrent(), true

	case deleteResultMsg:
		if msg.err != nil {
			m.statusErr = msg.err.Error()
			return m, nil, true
		}
		m.statusErr = ""
		return m, m.reloadCurrent(), true
	}

	return m, nil, false
}

// openDashboard switches to an artist's dashboard and kicks off its
// fetches.
func (m Model) openDashboard(artistID int) (tea.Model, tea.Cmd, bool) {
	for _, a := range m.roster {
		if a.ID == artistID {
			m.selectedArtist = a
			break
		}
	}
	m.selectedArtist.ID = artistID
	m.previousView = m.currentView
	m.currentView = ViewDashboard
	m.tab = TabProfile
	m.loading = true
	if m.refresher != nil {
		m.refresher.SetArtist(artistID)
	}
	return m, tea.Batch(
		m.fetchDashboard(artistID),
		m.fetchMetricRows(artistID),
		m.fetchActivities(artistID),
		m.fetchSources(artistID),
	), true
}

// reopenForm puts a failed form back on screen with its inline error.
func (m Model) reopenForm(viewState ViewState, err error) (tea.Model, tea.Cmd, bool) {
	m.currentView = viewState
	switch viewState {
	case ViewArtistForm:
		return m, m.artistForm.SaveFailed(err), true
	case ViewActivityForm:
		return m, m.activityForm.SaveFailed(err), true
	case ViewMetricForm:
		return m, m.metricForm.SaveFailed(err), true
	case ViewLinkForm:
		return m, m.linkForm.SaveFailed(err), true
	case ViewPhotoForm:
		return m, m.photoForm.SaveFailed(err), true
	}
	return m, nil, true
}

func (m Model) saveArtist(editID int, p api.ArtistPayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var err error
		if editID > 0 {
			_, err = client.UpdateArtist(ctx, editID, p)
		} else {
			_, err = client.CreateArtist(ctx, p)
		}
		return saveResultMsg{view: ViewArtistForm, err: err}
	}
}

func (m Model) deleteArtist(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return deleteResultMsg{err: client.DeleteArtist(ctx, id)}
	}
}

func (m Model) saveActivity(editID int, p api.ActivityPayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var err error
		if editID > 0 {
			_, err = client.UpdateActivity(ctx, editID, p)
		} else {
			_, err = client.CreateActivity(ctx, p)
		}
		return saveResultMsg{view: ViewActivityForm, err: err}
	}
}

func (m Model) deleteActivity(id int) tea.Cmd {
	client := m.client
	artistID := m.selectedArtist.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return deleteResultMsg{err: client.DeleteActivity(ctx, artistID, id)}
	}
}

func (m Model) saveMetricRow(editID int, p api.MetricPayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var err error
		if editID > 0 {
			_, err = client.UpdateMetricRow(ctx, editID, p)
		} else {
			_, err = client.CreateMetricRow(ctx, p)
		}
		return saveResultMsg{view: ViewMetricForm, err: err}
	}
}

func (m Model) deleteMetricRow(id int) tea.Cmd {
	client := m.client
	artistID := m.selectedArtist.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return deleteResultMsg{err: client.DeleteMetricRow(ctx, artistID, id)}
	}
}

func (m Model) saveLink(editID int, p api.SourcePayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var err error
		if editID > 0 {
			_, err = client.UpdateSource(ctx, editID, p)
		} else {
			_, err = client.CreateSource(ctx, p)
		}
		return saveResultMsg{view: ViewLinkForm, err: err}
	}
}

func (m Model) deleteLink(id int) tea.Cmd {
	client := m.client
	artistID := m.selectedArtist.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return deleteResultMsg{err: client.DeleteSource(ctx, artistID, id)}
	}
}

func (m Model) savePhoto(editID int, p api.PhotoPayload) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var err error
		if editID > 0 {
			_, err = client.UpdatePhoto(ctx, p.ArtistID, editID, p)
		} else {
			_, err = client.AddPhoto(ctx, p.ArtistID, p)
		}
		return saveResultMsg{view: ViewPhotoForm, err: err}
	}
}

func (m Model) deletePhoto(id int) tea.Cmd {
	client := m.client
	artistID := m.selectedArtist.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return deleteResultMsg{err: client.DeletePhoto(ctx, artistID, id)}
	}
}
