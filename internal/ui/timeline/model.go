package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"artistdesk/internal/keys"
	"artistdesk/internal/model"
	"artistdesk/internal/theme"
	"artistdesk/internal/view"
)

// AddActivityMsg asks the app to open the activity form in create mode.
type AddActivityMsg struct{}

// EditActivityMsg asks the app to open the activity form for one entry.
type EditActivityMsg struct {
	Activity model.Activity
}

// DeleteActivityMsg asks the app to delete an activity after
// confirmation.
type DeleteActivityMsg struct {
	ActivityID int
}

// Model is the activity timeline tab: entries sorted newest first,
// grouped by day, one page at a time.
type Model struct {
	keys       *keys.KeyMap
	activities []model.Activity
	sorted     []model.Activity
	page       int
	pageSize   int
	cursor     int

	confirmingDelete bool
	deleteTarget     model.Activity

	width  int
	height int
}

// New creates the timeline view.
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

// SetActivities replaces the timeline contents, re-sorts them newest
// first, and resets to the first page.
func (m *Model) SetActivities(activities []model.Activity) {
	m.activities = activities
	m.sorted = view.SortByDateDesc(activities, func(a model.Activity) string { return a.Date })
	m.page = 1
	m.cursor = 0
}

func (m Model) currentPage() view.Page[model.Activity] {
	return view.Paginate(m.sorted, m.pageSize, m.page)
}

// Update handles messages for the timeline view.
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
		return m, func() tea.Msg { return AddActivityMsg{} }

	case key.Matches(keyMsg, m.keys.Edit):
		if a, ok := m.selected(); ok {
			return m, func() tea.Msg { return EditActivityMsg{Activity: a} }
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if a, ok := m.selected(); ok {
			m.confirmingDelete = true
			m.deleteTarget = a
		}
	}

	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.deleteTarget.ID
		m.confirmingDelete = false
		m.deleteTarget = model.Activity{}
		return m, func() tea.Msg { return DeleteActivityMsg{ActivityID: id} }
	case "n", "N", "esc":
		m.confirmingDelete = false
		m.deleteTarget = model.Activity{}
	}
	return m, nil
}

func (m Model) selected() (model.Activity, bool) {
	page := m.currentPage()
	if m.cursor < 0 || m.cursor >= len(page.Items) {
		return model.Activity{}, false
	}
	return page.Items[m.cursor], true
}

// View renders the timeline grouped by day. Entries without a usable
// date fall into a trailing "No Date" group.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.HeaderStyle.Render("Activities"))
	b.WriteString("\n\n")

	if m.confirmingDelete {
		prompt := fmt.Sprintf("Delete %q? (y/n)", m.deleteTarget.Title)
		b.WriteString(theme.ErrorStyle.Render(prompt))
		b.WriteString("\n\n")
	}

	page := m.currentPage()
	if len(page.Items) == 0 {
		b.WriteString(theme.HelpStyle.Render("No activities yet. Press a to add one."))
		return b.String()
	}

	groups := view.GroupByDate(page.Items, func(a model.Activity) string { return a.Date })

	idx := 0
	for _, g := range groups {
		header := g.Key
		if header != view.NoDateKey {
			header = view.NiceDate(g.Key)
		}
		b.WriteString(theme.HelpStyle.Render(header))
		b.WriteString("\n")

		for _, a := range g.Items {
			b.WriteString(m.renderRow(a, idx == m.cursor))
			b.WriteString("\n")
			idx++
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(
		view.PageStatus(page.Current, page.TotalPages, page.TotalItems),
	))

	return b.String()
}

func (m Model) renderRow(a model.Activity, selected bool) string {
	item := view.NormalizeActivity(a)

	typeBadge := ""
	if a.Type != "" {
		typeBadge = theme.ActivityStyle(item.Icon).Render("[" + a.Type + "] ")
	}

	location := ""
	if a.Location != "" {
		location = theme.HelpStyle.Render("  @ " + a.Location)
	}

	line := typeBadge + item.Title + location

	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
