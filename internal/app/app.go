package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"artistdesk/internal/api"
	"artistdesk/internal/cache"
	"artistdesk/internal/keys"
	"artistdesk/internal/model"
	"artistdesk/internal/refresh"
	"artistdesk/internal/theme"
	"artistdesk/internal/ui"
	"artistdesk/internal/ui/activityform"
	"artistdesk/internal/ui/artistform"
	"artistdesk/internal/ui/artistlist"
	helpview "artistdesk/internal/ui/help"
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

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewRoster ViewState = iota
	ViewManage
	ViewDashboard
	ViewHelp
	ViewSettings
	ViewArtistForm
	ViewActivityForm
	ViewMetricForm
	ViewLinkForm
	ViewPhotoForm
)

// DashboardTab selects which dashboard panel is active.
type DashboardTab int

const (
	TabProfile DashboardTab = iota
	TabTimeline
	TabMetrics
	TabLinks
)

// Model is the root Bubble Tea model that manages view routing, layout,
// data loading, and the background refresher.
type Model struct {
	currentView  ViewState
	previousView ViewState
	tab          DashboardTab

	layout    ui.Layout
	client    *api.Client
	cache     cache.Cache
	refresher *refresh.Refresher
	keys      *keys.KeyMap
	logger    *zap.Logger

	artistList artistlist.Model
	manageGrid managegrid.Model
	profile    profile.Model
	timeline   timeline.Model
	metrics    metrics.Model
	links      links.Model
	helpView   helpview.Model
	settings   settings.Model

	artistForm   artistform.Model
	activityForm activityform.Model
	metricForm   metricform.Model
	linkForm     linkform.Model
	photoForm    photoform.Model

	selectedArtist model.Artist
	roster         []model.Artist
	summary        model.MetricSummary

	ready     bool
	fromCache bool
	loading   bool
	statusErr string
	pageSize  int
}

// New creates the root application model.
func New(client *api.Client, c cache.Cache, r *refresh.Refresher, cfg *model.AppConfig, configPath string, logger *zap.Logger) Model {
	if cfg == nil {
		cfg = &model.AppConfig{}
	}
	pageSize := cfg.Display.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	k := keys.DefaultKeyMap()

	return Model{
		currentView: ViewRoster,
		client:      client,
		cache:       c,
		refresher:   r,
		keys:        k,
		logger:      logger,
		pageSize:    pageSize,

		artistList: artistlist.New(k, 80, 24),
		manageGrid: managegrid.New(k, pageSize, 80, 24),
		profile:    profile.New(k, 80, 24),
		timeline:   timeline.New(k, pageSize, 80, 24),
		metrics:    metrics.New(k, pageSize, 80, 24),
		links:      links.New(k, 80, 24),
		helpView:   helpview.New(k, 80, 24),
		settings:   settings.New(configPath, cfg, 80, 24),

		artistForm:   artistform.New(80, 24),
		activityForm: activityform.New(80, 24),
		metricForm:   metricform.New(80, 24),
		linkForm:     linkform.New(80, 24),
		photoForm:    photoform.New(80, 24),
	}
}

// Init loads the cached roster for an instant first paint, fetches the
// live roster and reference data in parallel, and starts the
// background refresher. Each fetch fails independently without taking
// the others down.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadCachedRoster(),
		m.fetchRoster(),
		m.fetchActivityTypes(),
		m.fetchSourceTypes(),
		m.fetchMetricReference(),
	}
	if m.refresher != nil {
		cmds = append(cmds, m.refresher.Start())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.artistList.SetSize(w, h)
		m.manageGrid.SetSize(w, h)
		m.profile.SetSize(w, h)
		m.timeline.SetSize(w, h)
		m.metrics.SetSize(w, h)
		m.links.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.settings.SetSize(w, h)
		m.artistForm.SetSize(w, h)
		m.activityForm.SetSize(w, h)
		m.metricForm.SetSize(w, h)
		m.linkForm.SetSize(w, h)
		m.photoForm.SetSize(w, h)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case tea.KeyMsg:
		if handled, model, cmd := m.handleGlobalKeys(msg); handled {
			return model, cmd
		}
		return m.updateActiveView(msg)
	}

	if model, cmd, routed := m.routeDataMsg(msg); routed {
		return model, cmd
	}
	if model, cmd, routed := m.routeViewMsg(msg); routed {
		return model, cmd
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that work regardless of the active
// view. Form views keep full keyboard focus.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.inForm() || m.currentView == ViewSettings {
		if msg.String() == "ctrl+c" {
			m.stopRefresher()
			return true, m, tea.Quit
		}
		return false, m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.stopRefresher()
		return true, m, tea.Quit

	case "q":
		if m.currentView == ViewRoster {
			m.stopRefresher()
			return true, m, tea.Quit
		}

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return true, m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return true, m, nil

	case "esc":
		switch m.currentView {
		case ViewHelp:
			m.currentView = m.previousView
			return true, m, nil
		case ViewDashboard:
			m.currentView = ViewRoster
			m.selectedArtist = model.Artist{}
			if m.refresher != nil {
				m.refresher.SetArtist(0)
			}
			return true, m, nil
		}

	case "m":
		if m.currentView == ViewRoster {
			m.previousView = m.currentView
			m.currentView = ViewManage
			return true, m, m.fetchAllArtists()
		}

	case "o":
		if m.currentView == ViewRoster {
			m.previousView = m.currentView
			m.currentView = ViewSettings
			return true, m, m.settings.Start()
		}

	case "r":
		if m.currentView == ViewRoster || m.currentView == ViewDashboard {
			m.statusErr = ""
			if m.refresher != nil {
				m.refresher.Trigger(m.selectedArtist.ID)
			}
			return true, m, m.reloadCurrent()
		}

	case "1", "2", "3", "4":
		if m.currentView == ViewDashboard {
			switch msg.String() {
			case "1":
				m.tab = TabProfile
			case "2":
				m.tab = TabTimeline
			case "3":
				m.tab = TabMetrics
			case "4":
				m.tab = TabLinks
			}
			return true, m, nil
		}
	}

	return false, m, nil
}

// inForm reports whether a modal form currently has focus.
func (m Model) inForm() bool {
	switch m.currentView {
	case ViewArtistForm, ViewActivityForm, ViewMetricForm, ViewLinkForm, ViewPhotoForm:
		return true
	}
	return false
}

func (m *Model) stopRefresher() {
	if m.refresher != nil {
		m.refresher.Stop()
	}
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewRoster:
		m.artistList, cmd = m.artistList.Update(msg)
	case ViewManage:
		m.manageGrid, cmd = m.manageGrid.Update(msg)
	case ViewDashboard:
		switch m.tab {
		case TabProfile:
			m.profile, cmd = m.profile.Update(msg)
		case TabTimeline:
			m.timeline, cmd = m.timeline.Update(msg)
		case TabMetrics:
			m.metrics, cmd = m.metrics.Update(msg)
		case TabLinks:
			m.links, cmd = m.links.Update(msg)
		}
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewSettings:
		m.settings, cmd = m.settings.Update(msg)
	case ViewArtistForm:
		m.artistForm, cmd = m.artistForm.Update(msg)
	case ViewActivityForm:
		m.activityForm, cmd = m.activityForm.Update(msg)
	case ViewMetricForm:
		m.metricForm, cmd = m.metricForm.Update(msg)
	case ViewLinkForm:
		m.linkForm, cmd = m.linkForm.Update(msg)
	case ViewPhotoForm:
		m.photoForm, cmd = m.photoForm.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader(m.headerTitle(), m.headerStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

func (m Model) headerTitle() string {
	if m.currentView == ViewDashboard || m.inForm() {
		if name := m.selectedArtist.DisplayName(); m.selectedArtist.ID != 0 {
			return "Artist Desk / " + name
		}
	}
	return "Artist Desk"
}

// headerStatus describes the data freshness in the header's right edge.
func (m Model) headerStatus() string {
	if m.loading {
		return "loading"
	}
	if m.statusErr != "" {
		return "offline"
	}
	if m.fromCache {
		return "cached"
	}
	return "live"
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewRoster:
		return m.artistList.View()
	case ViewManage:
		return m.manageGrid.View()
	case ViewDashboard:
		return m.renderDashboard()
	case ViewHelp:
		return m.helpView.View()
	case ViewSettings:
		return m.settings.View()
	case ViewArtistForm:
		return m.artistForm.View()
	case ViewActivityForm:
		return m.activityForm.View()
	case ViewMetricForm:
		return m.metricForm.View()
	case ViewLinkForm:
		return m.linkForm.View()
	case ViewPhotoForm:
		return m.photoForm.View()
	default:
		return ""
	}
}

// dashboardTabLabels are the tab strip entries, indexed by DashboardTab.
var dashboardTabLabels = []string{"1 Profile", "2 Activities", "3 Followers", "4 Links"}

// renderDashboard draws the tab strip and the active panel.
func (m Model) renderDashboard() string {
	tabs := m.layout.RenderTabStrip(dashboardTabLabels, int(m.tab))

	var panel string
	switch m.tab {
	case TabProfile:
		panel = m.profile.View()
	case TabTimeline:
		panel = m.timeline.View()
	case TabMetrics:
		panel = m.metrics.View()
	case TabLinks:
		panel = m.links.View()
	}

	banner := ""
	if m.statusErr != "" {
		banner = theme.ErrorStyle.Render(m.statusErr) + "\n"
	}

	return tabs + "\n" + banner + panel
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewManage:
		return "a add | e edit | d delete | h/l page | esc back"
	case ViewDashboard:
		switch m.tab {
		case TabProfile:
			return "e edit profile | a add photo | p edit photo | d delete photo | 1-4 tabs | esc back"
		case TabTimeline:
			return "a add | e edit | d delete | h/l page | 1-4 tabs | esc back"
		case TabMetrics:
			return "a add | e edit | d delete | s scrape | h/l page | 1-4 tabs | esc back"
		case TabLinks:
			return "a add | e edit | d delete | 1-4 tabs | esc back"
		}
		return ""
	case ViewSettings:
		return "enter submit | esc cancel"
	case ViewArtistForm, ViewActivityForm, ViewMetricForm, ViewLinkForm, ViewPhotoForm:
		return "enter submit | esc cancel"
	default:
		hints := "q quit | ? help | enter open | / search | m manage | o settings | r refresh"
		if m.statusErr != "" {
			hints = fmt.Sprintf("%s  (%s)", hints, m.statusErr)
		}
		return hints
	}
}
