package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"artistdesk/internal/keys"
	"artistdesk/internal/model"
	"artistdesk/internal/theme"
	"artistdesk/internal/ui/chart"
	"artistdesk/internal/view"
)

// AddRowMsg asks the app to open the metric form in create mode.
type AddRowMsg struct{}

// EditRowMsg asks the app to open the metric form for one observation.
type EditRowMsg struct {
	Row model.MetricRow
}

// DeleteRowMsg asks the app to delete an observation after
// confirmation.
type DeleteRowMsg struct {
	MetricID int
}

// ScrapeMsg asks the app to trigger a server-side follower scrape.
type ScrapeMsg struct{}

// Model is the followers tab: summary cards, a growth chart, and the
// raw observation table.
type Model struct {
	keys *keys.KeyMap

	summary     model.MetricSummary
	rows        []model.MetricRow
	sorted      []model.MetricRow
	series      map[string][]model.MetricPoint
	platforms   map[int]model.Platform
	metricTypes map[int]model.MetricType

	growth     *chart.Chart
	engagement *chart.Chart

	page     int
	pageSize int
	cursor   int

	confirmingDelete bool
	deleteTarget     model.MetricRow

	scraping   bool
	scrapeNote string

	width  int
	height int
}

// New creates the metrics view.
func New(k *keys.KeyMap, pageSize, width, height int) Model {
	if pageSize < 1 {
		pageSize = 10
	}
	return Model{
		keys:     k,
		page:     1,
		pageSize: pageSize,
		width:    width,
		height:   height,
	}
}

// SetReference stores the platform and metric type lookup tables.
func (m *Model) SetReference(platforms []model.Platform, types []model.MetricType) {
	m.platforms = make(map[int]model.Platform, len(platforms))
	for _, p := range platforms {
		m.platforms[p.PlatformID] = p
	}
	m.metricTypes = make(map[int]model.MetricType, len(types))
	for _, t := range types {
		m.metricTypes[t.MetricTypeID] = t
	}
}

// SetData replaces the metric data, rebuilds the charts, and resets the
// table to the first page.
func (m *Model) SetData(summary model.MetricSummary, rows []model.MetricRow) {
	m.summary = summary
	m.rows = rows
	m.sorted = view.SortHistory(rows)
	m.page = 1
	m.cursor = 0
	m.rebuildCharts()
}

// SetSummary replaces the aggregated values behind the summary cards,
// leaving the observation table alone.
func (m *Model) SetSummary(summary model.MetricSummary) {
	m.summary = summary
}

// SetSeries replaces the charted series and rebuilds the charts.
func (m *Model) SetSeries(series map[string][]model.MetricPoint) {
	m.series = series
	m.rebuildCharts()
}

// rebuildCharts releases the previous chart handles and builds new ones.
// The server-side series is preferred; when only raw rows are on hand
// the points are derived from them.
func (m *Model) rebuildCharts() {
	if m.growth != nil {
		m.growth.Release()
	}
	growthPoints := view.MergeSeries(m.series, "followers")
	if len(growthPoints) == 0 {
		followers := view.FilterByMetricType(m.rows, model.MetricTypeFollowers)
		growthPoints = view.DailyTotals(followers)
	}
	m.growth = chart.New("Follower growth", growthPoints, m.chartWidth(), 5)

	if m.engagement != nil {
		m.engagement.Release()
	}
	engagedPoints := view.MergeSeries(m.series, "likes", "comments", "shares")
	if len(engagedPoints) == 0 {
		engaged := view.FilterByCodes(m.rows, "likes", "comments", "shares")
		engagedPoints = view.DailyTotals(engaged)
	}
	m.engagement = chart.New("Engagement", engagedPoints, m.chartWidth(), 5)
}

// SetScraping toggles the in-flight indicator for the scrape action.
func (m *Model) SetScraping(active bool) {
	m.scraping = active
	if active {
		m.scrapeNote = ""
	}
}

// SetScrapeResult records the outcome of a completed scrape.
func (m *Model) SetScrapeResult(result model.ScrapeResult) {
	m.scraping = false
	m.scrapeNote = fmt.Sprintf("scrape done: %d platforms updated", len(result.Details))
}

func (m Model) currentPage() view.Page[model.MetricRow] {
	return view.Paginate(m.sorted, m.pageSize, m.page)
}

// Update handles messages for the metrics view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmingDelete {
		return m.handleConfirmKeys(keyMsg)
	}

	page := m.currentPage()

	switch {
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(page.Items)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.NextPage):
		if page.HasNext() {
			m.page++
			m.cursor = 0
		}

	case key.Matches(keyMsg, m.keys.PrevPage):
		if page.HasPrev() {
			m.page--
			m.cursor = 0
		}

	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return AddRowMsg{} }

	case key.Matches(keyMsg, m.keys.Edit):
		if r, ok := m.selected(); ok {
			return m, func() tea.Msg { return EditRowMsg{Row: r} }
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if r, ok := m.selected(); ok {
			m.confirmingDelete = true
			m.deleteTarget = r
		}

	case key.Matches(keyMsg, m.keys.Scrape):
		if !m.scraping {
			return m, func() tea.Msg { return ScrapeMsg{} }
		}
	}

	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteTarget.ArtistMetricID
		m.confirmingDelete = false
		m.deleteTarget = model.MetricRow{}
		return m, func() tea.Msg { return DeleteRowMsg{MetricID: id} }
	case "n", "N", "esc":
		m.confirmingDelete = false
		m.deleteTarget = model.MetricRow{}
	}
	return m, nil
}

func (m Model) selected() (model.MetricRow, bool) {
	page := m.currentPage()
	if m.cursor < 0 || m.cursor >= len(page.Items) {
		return model.MetricRow{}, false
	}
	return page.Items[m.cursor], true
}

// View renders the followers tab.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderCards())
	b.WriteString("\n\n")

	if m.growth != nil {
		b.WriteString(m.growth.View())
		if d := m.growth.Delta(); d != 0 {
			b.WriteString("\n")
			b.WriteString(renderTrend(d))
		}
		b.WriteString("\n\n")
	}
	if m.engagement != nil {
		b.WriteString(m.engagement.View())
		b.WriteString("\n\n")
	}

	if m.scraping {
		b.WriteString(theme.HelpStyle.Render("scraping follower counts..."))
		b.WriteString("\n")
	} else if m.scrapeNote != "" {
		b.WriteString(theme.HelpStyle.Render(m.scrapeNote))
		b.WriteString("\n")
	}

	b.WriteString(m.renderTable())
	return b.String()
}

// renderCards draws the summary cards: total reach plus the latest
// per-platform follower counts.
func (m Model) renderCards() string {
	latest := view.LatestPerPlatform(
		view.FilterByMetricType(m.rows, model.MetricTypeFollowers),
	)

	cards := []string{
		m.card("Total reach", view.FormatCount(m.summary.TotalReach()), theme.ColorWhite),
		m.card("Followers", view.FormatCount(view.Total(latest)), theme.ColorGreen),
	}

	ids := make([]int, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var shown []int
	for _, id := range ids {
		if len(cards) >= 5 {
			break
		}
		p, ok := m.platforms[id]
		if !ok {
			continue
		}
		cards = append(cards, m.card(p.Name, view.FormatCount(latest[id].Amount()), theme.ColorBlue))
		shown = append(shown, id)
	}

	if other := view.TotalExcept(latest, shown...); other > 0 && len(shown) < len(latest) {
		cards = append(cards, m.card("Other platforms", view.FormatCount(other), theme.ColorBlue))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderTrend shows the change across the charted window.
func renderTrend(delta float64) string {
	arrow := "▲ +"
	color := theme.ColorGreen
	if delta < 0 {
		arrow = "▼ -"
		color = theme.ColorRed
		delta = -delta
	}
	return lipgloss.NewStyle().Foreground(color).Render(arrow + view.FormatCount(delta))
}

func (m Model) card(label, value string, color lipgloss.AdaptiveColor) string {
	content := lipgloss.NewStyle().Bold(true).Foreground(color).Render(value) +
		"\n" + theme.HelpStyle.Render(label)
	return theme.CardStyle.Render(content)
}

// renderTable draws the raw observation rows, newest first.
func (m Model) renderTable() string {
	var b strings.Builder

	if m.confirmingDelete {
		b.WriteString(theme.ErrorStyle.Render("Delete this observation? (y/n)"))
		b.WriteString("\n")
	}

	page := m.currentPage()
	if len(page.Items) == 0 {
		b.WriteString(theme.HelpStyle.Render("No observations yet. Press a to add one, s to scrape."))
		return b.String()
	}

	for i, r := range page.Items {
		b.WriteString(m.renderRow(r, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString(theme.HelpStyle.Render(
		view.PageStatus(page.Current, page.TotalPages, page.TotalItems),
	))
	return b.String()
}

func (m Model) renderRow(r model.MetricRow, selected bool) string {
	platform := "-"
	code := ""
	if p, ok := m.platforms[r.Platform()]; ok {
		platform = p.Name
		code = p.Code
	}

	metricName := "-"
	if t, ok := m.metricTypes[r.MetricTypeID]; ok {
		metricName = t.Name
	}

	line := fmt.Sprintf(
		"%-12s %s %-10s %12s",
		view.NiceDate(r.MetricDate),
		theme.PlatformStyle(code).Render(fmt.Sprintf("%-12s", platform)),
		metricName,
		view.FormatExact(r.Amount()),
	)

	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

func (m Model) chartWidth() int {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	if w > 80 {
		w = 80
	}
	return w
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
